package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"visit_tracker/internal/middleware"
	"visit_tracker/internal/models"
	"visit_tracker/internal/services"
)

// RouteController exposes the weekly schedule operations.
type RouteController struct {
	routes *services.RouteService
}

func NewRouteController(routes *services.RouteService) *RouteController {
	return &RouteController{routes: routes}
}

// CreateRoute opens a new active route for the authenticated vendor.
func (ctl *RouteController) CreateRoute(c *gin.Context) {
	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("CreateRoute: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	route, err := ctl.routes.CreateRoute(middleware.VendorID(c), input.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"route": route})
}

// ListRoutes returns all routes of the authenticated vendor.
func (ctl *RouteController) ListRoutes(c *gin.Context) {
	routes, err := ctl.routes.ListForVendor(middleware.VendorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"routes": routes})
}

// GetRoute returns one route with its stops.
func (ctl *RouteController) GetRoute(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	route, err := ctl.routes.GetRoute(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"route": route})
}

// ActivateRoute makes a route the vendor's single active one.
func (ctl *RouteController) ActivateRoute(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	route, err := ctl.routes.SetActive(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"route": route})
}

// DeleteRoute removes a route and its stops.
func (ctl *RouteController) DeleteRoute(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctl.routes.DeleteRoute(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Route deleted successfully"})
}

// AddStop schedules a client on a weekday of the route.
func (ctl *RouteController) AddStop(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input struct {
		ClientID uint   `json:"client_id" binding:"required"`
		Weekday  string `json:"weekday" binding:"required"`
		Position *int   `json:"position"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("AddStop: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	stop, err := ctl.routes.AddStop(id, input.ClientID, models.Weekday(input.Weekday), input.Position)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"stop": stop})
}

// RemoveStop deletes one stop from the route.
func (ctl *RouteController) RemoveStop(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	stopID, ok := pathID(c, "stopId")
	if !ok {
		return
	}
	if err := ctl.routes.RemoveStop(id, stopID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stop removed"})
}

// ReorderDay atomically replaces the stop ordering of one weekday.
func (ctl *RouteController) ReorderDay(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input struct {
		Stops []services.StopPosition `json:"stops" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("ReorderDay: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if err := ctl.routes.Reorder(id, models.Weekday(c.Param("weekday")), input.Stops); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Day reordered"})
}

// CopyDay appends one weekday's missing clients onto another weekday.
func (ctl *RouteController) CopyDay(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input struct {
		From string `json:"from" binding:"required"`
		To   string `json:"to" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("CopyDay: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	copied, err := ctl.routes.CopyDay(id, models.Weekday(input.From), models.Weekday(input.To))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"copied": copied})
}

// ListByWeekday returns the route's stops grouped by weekday.
func (ctl *RouteController) ListByWeekday(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	grouped, err := ctl.routes.ListByWeekday(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"weekdays": grouped})
}
