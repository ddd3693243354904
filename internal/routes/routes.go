package routes

import (
	"github.com/gin-gonic/gin"

	"visit_tracker/internal/controllers"
)

// Controllers bundles the handler set the router mounts.
type Controllers struct {
	Routes      *controllers.RouteController
	Visits      *controllers.VisitController
	Inspections *controllers.InspectionController
	Marks       *controllers.MarkController
}

func SetupRouter(ctl Controllers) *gin.Engine {
	r := gin.Default()

	RouteRoutes(r, ctl.Routes)
	VisitRoutes(r, ctl.Visits)
	ReportRoutes(r, ctl.Inspections)
	MarkRoutes(r, ctl.Marks)

	return r
}
