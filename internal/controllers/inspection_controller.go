package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"visit_tracker/internal/models"
	"visit_tracker/internal/services"
)

// InspectionController exposes inspection report editing and submission.
type InspectionController struct {
	inspections *services.InspectionService
}

func NewInspectionController(inspections *services.InspectionService) *InspectionController {
	return &InspectionController{inspections: inspections}
}

// CreateReport opens a draft report for a visit.
func (ctl *InspectionController) CreateReport(c *gin.Context) {
	var input struct {
		VisitID uint `json:"visit_id" binding:"required"`
		services.ReportInput
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("CreateReport: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	report, err := ctl.inspections.CreateReport(input.VisitID, input.ReportInput)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"report": report})
}

// GetReport loads one report with measurements and photos.
func (ctl *InspectionController) GetReport(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	report, err := ctl.inspections.GetReport(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": report})
}

// UpdateMeasurement patches one measurement of a draft report.
func (ctl *InspectionController) UpdateMeasurement(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	mid, ok := pathID(c, "mid")
	if !ok {
		return
	}
	var patch services.MeasurementPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		logrus.WithError(err).Warn("UpdateMeasurement: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	m, err := ctl.inspections.UpdateMeasurement(id, mid, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"measurement": m})
}

// UpdateSummary replaces the free-text summary of a draft report.
func (ctl *InspectionController) UpdateSummary(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input struct {
		Summary string `json:"summary"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if err := ctl.inspections.UpdateSummary(id, input.Summary); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Summary updated"})
}

// AddPhoto uploads a photo tagged by component and side (multipart form).
func (ctl *InspectionController) AddPhoto(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing photo file"})
		return
	}
	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable photo file"})
		return
	}
	defer src.Close()

	photo, err := ctl.inspections.AddPhoto(
		id,
		models.ComponentType(c.PostForm("component")),
		models.MeasurementSide(c.PostForm("side")),
		file.Filename,
		src,
		c.PostForm("caption"),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"photo": photo})
}

// RemovePhoto deletes a photo record from a draft report.
func (ctl *InspectionController) RemovePhoto(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	photoID, ok := pathID(c, "photoId")
	if !ok {
		return
	}
	if err := ctl.inspections.RemovePhoto(id, photoID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Photo removed"})
}

// Submit locks the report permanently.
func (ctl *InspectionController) Submit(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	report, err := ctl.inspections.Submit(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": report})
}
