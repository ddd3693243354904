package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"visit_tracker/internal/middleware"
	"visit_tracker/internal/services"
)

// MarkController exposes the non-authoritative "visited today" ticks.
type MarkController struct {
	marks *services.MarkService
}

func NewMarkController(marks *services.MarkService) *MarkController {
	return &MarkController{marks: marks}
}

type markInput struct {
	ClientID uint   `json:"client_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
}

// SetMark ticks a client for the authenticated vendor on a date.
func (ctl *MarkController) SetMark(c *gin.Context) {
	var input markInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	date, ok := parseDate(input.Date)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected yyyy-mm-dd"})
		return
	}

	mark, err := ctl.marks.Set(middleware.VendorID(c), input.ClientID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mark": mark})
}

// ClearMark removes a tick.
func (ctl *MarkController) ClearMark(c *gin.Context) {
	var input markInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	date, ok := parseDate(input.Date)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected yyyy-mm-dd"})
		return
	}

	if err := ctl.marks.Clear(middleware.VendorID(c), input.ClientID, date); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Mark cleared"})
}

// ListMarks returns the vendor's ticks for one date.
func (ctl *MarkController) ListMarks(c *gin.Context) {
	date, ok := parseDate(c.Query("date"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing date, expected yyyy-mm-dd"})
		return
	}

	marks, err := ctl.marks.List(middleware.VendorID(c), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"marks": marks})
}
