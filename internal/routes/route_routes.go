package routes

import (
	"github.com/gin-gonic/gin"

	"visit_tracker/internal/controllers"
	"visit_tracker/internal/middleware"
)

func RouteRoutes(r *gin.Engine, ctl *controllers.RouteController) {
	routes := r.Group("/routes")
	routes.Use(middleware.RequireVendor())
	{
		routes.POST("", ctl.CreateRoute)
		routes.GET("", ctl.ListRoutes)
		routes.GET("/:id", ctl.GetRoute)
		routes.PATCH("/:id/activate", ctl.ActivateRoute)
		routes.DELETE("/:id", ctl.DeleteRoute)
		routes.GET("/:id/weekdays", ctl.ListByWeekday)
		routes.POST("/:id/stops", ctl.AddStop)
		routes.DELETE("/:id/stops/:stopId", ctl.RemoveStop)
		routes.PUT("/:id/days/:weekday/reorder", ctl.ReorderDay)
		routes.POST("/:id/days/copy", ctl.CopyDay)
	}
}
