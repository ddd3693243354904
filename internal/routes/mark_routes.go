package routes

import (
	"github.com/gin-gonic/gin"

	"visit_tracker/internal/controllers"
	"visit_tracker/internal/middleware"
)

func MarkRoutes(r *gin.Engine, ctl *controllers.MarkController) {
	marks := r.Group("/marks")
	marks.Use(middleware.RequireVendor())
	{
		marks.PUT("", ctl.SetMark)
		marks.DELETE("", ctl.ClearMark)
		marks.GET("", ctl.ListMarks)
	}
}
