package routes

import (
	"github.com/gin-gonic/gin"

	"visit_tracker/internal/controllers"
	"visit_tracker/internal/middleware"
)

func VisitRoutes(r *gin.Engine, ctl *controllers.VisitController) {
	visits := r.Group("/visits")
	visits.Use(middleware.RequireVendor())
	{
		visits.POST("", ctl.CreateVisit)
		visits.GET("", ctl.ListVisits)
		visits.GET("/agenda", ctl.Agenda)
		visits.POST("/:id/checkin", ctl.CheckIn)
		visits.POST("/:id/checkout", ctl.CheckOut)
		visits.DELETE("/:id", ctl.DeleteVisit)
	}
}
