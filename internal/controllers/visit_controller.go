package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"visit_tracker/internal/middleware"
	"visit_tracker/internal/models"
	"visit_tracker/internal/services"
)

// VisitController exposes the visit lifecycle and the daily agenda.
type VisitController struct {
	visits *services.VisitService
}

func NewVisitController(visits *services.VisitService) *VisitController {
	return &VisitController{visits: visits}
}

type coordsInput struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

func (in coordsInput) toCoordinates() *services.Coordinates {
	if in.Lat == nil || in.Lng == nil {
		return nil
	}
	return &services.Coordinates{Lat: *in.Lat, Lng: *in.Lng}
}

// CreateVisit schedules a visit.
func (ctl *VisitController) CreateVisit(c *gin.Context) {
	var input struct {
		ClientID uint   `json:"client_id" binding:"required"`
		Date     string `json:"date" binding:"required"`
		Notes    string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("CreateVisit: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	date, ok := parseDate(input.Date)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected yyyy-mm-dd"})
		return
	}

	visit, err := ctl.visits.Create(input.ClientID, middleware.VendorID(c), date, input.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"visit": visit, "status": visit.Status()})
}

// ListVisits returns the vendor's visits, optionally filtered by client,
// date range and derived status.
func (ctl *VisitController) ListVisits(c *gin.Context) {
	vendorID := middleware.VendorID(c)
	filter := services.VisitFilter{VendorID: &vendorID}

	if raw := c.Query("client_id"); raw != "" {
		id, ok := queryID(c, raw, "client_id")
		if !ok {
			return
		}
		filter.ClientID = &id
	}
	if raw := c.Query("from"); raw != "" {
		from, ok := parseDate(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date"})
			return
		}
		filter.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, ok := parseDate(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date"})
			return
		}
		filter.To = &to
	}
	if raw := c.Query("status"); raw != "" {
		status := models.VisitStatus(raw)
		switch status {
		case models.VisitScheduled, models.VisitInProgress, models.VisitCompleted:
			filter.Status = &status
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
	}

	visits, err := ctl.visits.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"visits": visits})
}

// CheckIn starts a visit, with optional coordinates for address enrichment.
func (ctl *VisitController) CheckIn(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input coordsInput
	if err := c.ShouldBindJSON(&input); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	result, err := ctl.visits.CheckIn(c.Request.Context(), id, input.toCoordinates())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"visit":            result.Visit,
		"status":           result.Visit.Status(),
		"address_degraded": result.AddressDegraded,
	})
}

// CheckOut completes a visit and reports the computed duration.
func (ctl *VisitController) CheckOut(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input struct {
		coordsInput
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	result, err := ctl.visits.CheckOut(c.Request.Context(), id, input.toCoordinates(), input.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"visit":            result.Visit,
		"status":           result.Visit.Status(),
		"duration_minutes": result.DurationMinutes,
		"address_degraded": result.AddressDegraded,
	})
}

// DeleteVisit removes a visit that was never started.
func (ctl *VisitController) DeleteVisit(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctl.visits.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Visit deleted"})
}

// Agenda returns the merged daily view for the authenticated vendor.
func (ctl *VisitController) Agenda(c *gin.Context) {
	date, ok := parseDate(c.Query("date"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing date, expected yyyy-mm-dd"})
		return
	}

	agenda, err := ctl.visits.Agenda(middleware.VendorID(c), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"agenda": agenda})
}
