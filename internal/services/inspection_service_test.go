package services

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"visit_tracker/internal/apperrors"
	"visit_tracker/internal/models"
)

// memoryPhotoStore fakes the photo collaborator: it records the upload and
// returns a deterministic URL.
type memoryPhotoStore struct {
	saved []string
}

func (m *memoryPhotoStore) Save(filename string, r io.Reader) (string, error) {
	if _, err := io.ReadAll(r); err != nil {
		return "", err
	}
	m.saved = append(m.saved, filename)
	return "https://photos.test/" + filename, nil
}

func fptr(v float64) *float64 { return &v }

func inspectionFixture(t *testing.T) (*gorm.DB, *InspectionService, *models.Visit, *memoryPhotoStore) {
	t.Helper()
	db := newTestDB(t)
	photos := &memoryPhotoStore{}
	svc := NewInspectionService(db, photos)

	vendor := seedVendor(t, db, "vendor-a")
	client := seedClient(t, db, "client-a")
	visit := models.Visit{ClientID: client.ID, VendorID: vendor.ID, ScheduledDate: mustDate(t, "2026-03-02")}
	require.NoError(t, db.Create(&visit).Error)

	return db, svc, &visit, photos
}

func TestCreateReport_SeedsAllComponents(t *testing.T) {
	db, svc, visit, _ := inspectionFixture(t)

	report, err := svc.CreateReport(visit.ID, ReportInput{EquipmentModel: "D6T", EquipmentSerial: "SN-100"})
	require.NoError(t, err)
	assert.Equal(t, models.ReportDraft, report.Status)
	require.Len(t, report.Measurements, len(models.ComponentTypes))

	for i, m := range report.Measurements {
		assert.Equal(t, models.ComponentTypes[i], m.Component)
		assert.Greater(t, m.Standard, m.RepairLimit)
		assert.Nil(t, m.MeasuredLeft)
		assert.Nil(t, m.WearLeft)
	}

	// The visit now links back to its report.
	var stored models.Visit
	require.NoError(t, db.First(&stored, visit.ID).Error)
	require.NotNil(t, stored.InspectionReportID)
	assert.Equal(t, report.ID, *stored.InspectionReportID)
}

func TestCreateReport_OnePerVisit(t *testing.T) {
	_, svc, visit, _ := inspectionFixture(t)

	_, err := svc.CreateReport(visit.ID, ReportInput{EquipmentModel: "D6T"})
	require.NoError(t, err)

	_, err = svc.CreateReport(visit.ID, ReportInput{EquipmentModel: "D6T"})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestCreateReport_UnknownVisit(t *testing.T) {
	_, svc, _, _ := inspectionFixture(t)
	_, err := svc.CreateReport(9000, ReportInput{EquipmentModel: "D6T"})
	assert.True(t, apperrors.IsNotFound(err))
}

func padMeasurement(t *testing.T, report *models.InspectionReport) *models.ComponentMeasurement {
	t.Helper()
	for i := range report.Measurements {
		if report.Measurements[i].Component == models.ComponentPad {
			return &report.Measurements[i]
		}
	}
	t.Fatal("pad measurement missing")
	return nil
}

func TestUpdateMeasurement_RecomputesWear(t *testing.T) {
	_, svc, visit, _ := inspectionFixture(t)
	report, err := svc.CreateReport(visit.ID, ReportInput{EquipmentModel: "D6T"})
	require.NoError(t, err)
	pad := padMeasurement(t, report)

	updated, err := svc.UpdateMeasurement(report.ID, pad.ID, MeasurementPatch{MeasuredLeft: fptr(24)})
	require.NoError(t, err)
	require.NotNil(t, updated.WearLeft)
	assert.Equal(t, 80.0, *updated.WearLeft)
	assert.Equal(t, models.ConditionVerify, *updated.ConditionLeft)
	assert.Nil(t, updated.WearRight)

	// Editing the standard dimension recomputes the already-measured side.
	updated, err = svc.UpdateMeasurement(report.ID, pad.ID, MeasurementPatch{Standard: fptr(34), RepairLimit: fptr(24)})
	require.NoError(t, err)
	require.NotNil(t, updated.WearLeft)
	assert.Equal(t, 100.0, *updated.WearLeft)
	assert.Equal(t, models.ConditionCritical, *updated.ConditionLeft)
}

func TestUpdateMeasurement_InvalidDimensions(t *testing.T) {
	_, svc, visit, _ := inspectionFixture(t)
	report, err := svc.CreateReport(visit.ID, ReportInput{EquipmentModel: "D6T"})
	require.NoError(t, err)
	pad := padMeasurement(t, report)

	_, err = svc.UpdateMeasurement(report.ID, pad.ID, MeasurementPatch{
		Standard:     fptr(22),
		RepairLimit:  fptr(22),
		MeasuredLeft: fptr(20),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestSubmit_RequiresAtLeastOneMeasuredSide(t *testing.T) {
	_, svc, visit, _ := inspectionFixture(t)
	report, err := svc.CreateReport(visit.ID, ReportInput{EquipmentModel: "D6T"})
	require.NoError(t, err)

	_, err = svc.Submit(report.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestSubmit_FreezesReport(t *testing.T) {
	_, svc, visit, photos := inspectionFixture(t)
	report, err := svc.CreateReport(visit.ID, ReportInput{EquipmentModel: "D6T"})
	require.NoError(t, err)
	pad := padMeasurement(t, report)

	_, err = svc.UpdateMeasurement(report.ID, pad.ID, MeasurementPatch{MeasuredRight: fptr(25)})
	require.NoError(t, err)

	submitted, err := svc.Submit(report.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReportSubmitted, submitted.Status)
	require.NotNil(t, submitted.SubmittedAt)

	// Every subsequent edit attempt conflicts.
	_, err = svc.UpdateMeasurement(report.ID, pad.ID, MeasurementPatch{MeasuredLeft: fptr(24)})
	assert.True(t, apperrors.IsConflict(err))

	err = svc.UpdateSummary(report.ID, "late edit")
	assert.True(t, apperrors.IsConflict(err))

	_, err = svc.AddPhoto(report.ID, models.ComponentPad, models.SideLeft, "late.jpg", strings.NewReader("x"), "")
	assert.True(t, apperrors.IsConflict(err))
	assert.Empty(t, photos.saved)

	_, err = svc.Submit(report.ID)
	assert.True(t, apperrors.IsConflict(err))
}

func TestPhotos_AddAndRemove(t *testing.T) {
	_, svc, visit, photos := inspectionFixture(t)
	report, err := svc.CreateReport(visit.ID, ReportInput{EquipmentModel: "D6T"})
	require.NoError(t, err)

	photo, err := svc.AddPhoto(report.ID, models.ComponentSprocket, models.SideRight, "sprocket.jpg",
		strings.NewReader("jpegbytes"), "right sprocket, heavy scalloping")
	require.NoError(t, err)
	assert.Equal(t, "https://photos.test/sprocket.jpg", photo.URL)
	assert.Equal(t, models.ComponentSprocket, photo.Component)
	assert.Equal(t, []string{"sprocket.jpg"}, photos.saved)

	loaded, err := svc.GetReport(report.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Photos, 1)

	require.NoError(t, svc.RemovePhoto(report.ID, photo.ID))
	loaded, err = svc.GetReport(report.ID)
	require.NoError(t, err)
	assert.Empty(t, loaded.Photos)
}

func TestAddPhoto_ValidatesTags(t *testing.T) {
	_, svc, visit, _ := inspectionFixture(t)
	report, err := svc.CreateReport(visit.ID, ReportInput{EquipmentModel: "D6T"})
	require.NoError(t, err)

	_, err = svc.AddPhoto(report.ID, models.ComponentType("ENGINE"), models.SideLeft, "x.jpg", strings.NewReader("x"), "")
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.AddPhoto(report.ID, models.ComponentPad, models.MeasurementSide("TOP"), "x.jpg", strings.NewReader("x"), "")
	assert.True(t, apperrors.IsValidation(err))
}
