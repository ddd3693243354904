package routes

import (
	"github.com/gin-gonic/gin"

	"visit_tracker/internal/controllers"
	"visit_tracker/internal/middleware"
)

func ReportRoutes(r *gin.Engine, ctl *controllers.InspectionController) {
	reports := r.Group("/reports")
	reports.Use(middleware.RequireVendor())
	{
		reports.POST("", ctl.CreateReport)
		reports.GET("/:id", ctl.GetReport)
		reports.PATCH("/:id/measurements/:mid", ctl.UpdateMeasurement)
		reports.PATCH("/:id/summary", ctl.UpdateSummary)
		reports.POST("/:id/photos", ctl.AddPhoto)
		reports.DELETE("/:id/photos/:photoId", ctl.RemovePhoto)
		reports.POST("/:id/submit", ctl.Submit)
	}
}
