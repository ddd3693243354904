package services

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"visit_tracker/internal/apperrors"
	"visit_tracker/internal/geocode"
	"visit_tracker/internal/models"
)

// VisitService drives the per-visit state machine
// (Scheduled → InProgress → Completed) and builds daily agendas by merging
// a route's scheduled stops with the day's actual visits. It reads the
// schedule through RouteService and never mutates it.
type VisitService struct {
	db       *gorm.DB
	routes   *RouteService
	geocoder geocode.Reverser
}

// NewVisitService creates a new visit service
func NewVisitService(db *gorm.DB, routes *RouteService, geocoder geocode.Reverser) *VisitService {
	return &VisitService{db: db, routes: routes, geocoder: geocoder}
}

// Coordinates is an optional GPS fix supplied at check-in or check-out.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CheckInResult reports the transition outcome together with the state of
// the best-effort address enrichment, so callers can tell a degraded lookup
// apart from a failed check-in.
type CheckInResult struct {
	Visit           *models.Visit `json:"visit"`
	AddressDegraded bool          `json:"address_degraded"`
}

// CheckOutResult mirrors CheckInResult and adds the computed duration.
type CheckOutResult struct {
	Visit           *models.Visit `json:"visit"`
	DurationMinutes int           `json:"duration_minutes"`
	AddressDegraded bool          `json:"address_degraded"`
}

// VisitFilter narrows List. Status is applied in-process because it is
// derived, never stored.
type VisitFilter struct {
	VendorID *uint
	ClientID *uint
	From     *time.Time
	To       *time.Time
	Status   *models.VisitStatus
}

// AgendaStop is one scheduled stop with its matching visit, if any.
type AgendaStop struct {
	Stop   models.RouteStop   `json:"stop"`
	Visit  *models.Visit      `json:"visit,omitempty"`
	Status models.VisitStatus `json:"status"`
}

// DailyAgenda merges one weekday's scheduled stops with that date's actual
// visits. Visits matching no stop are reported as extra (walk-in) visits.
type DailyAgenda struct {
	Date           time.Time      `json:"date"`
	Weekday        models.Weekday `json:"weekday,omitempty"`
	Stops          []AgendaStop   `json:"stops"`
	ExtraVisits    []models.Visit `json:"extra_visits"`
	ScheduledCount int            `json:"scheduled_count"`
	CompletedCount int            `json:"completed_count"`
	PendingCount   int            `json:"pending_count"`
	ExtraCount     int            `json:"extra_count"`
}

// Create schedules a visit for a vendor/client pairing on a date.
func (s *VisitService) Create(clientID, vendorID uint, date time.Time, notes string) (*models.Visit, error) {
	if err := s.db.First(&models.Client{}, clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("client", clientID)
		}
		return nil, err
	}
	if err := s.db.First(&models.Vendor{}, vendorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("vendor", vendorID)
		}
		return nil, err
	}

	visit := models.Visit{
		ClientID:      clientID,
		VendorID:      vendorID,
		ScheduledDate: dateOnly(date),
		Notes:         notes,
	}
	if err := s.db.Create(&visit).Error; err != nil {
		return nil, err
	}
	return &visit, nil
}

// Get returns one visit.
func (s *VisitService) Get(visitID uint) (*models.Visit, error) {
	var visit models.Visit
	if err := s.db.Preload("Client").First(&visit, visitID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("visit", visitID)
		}
		return nil, err
	}
	return &visit, nil
}

// CheckIn starts a visit. The timestamp and coordinates are persisted
// first; the reverse-geocode lookup runs afterwards and its failure only
// leaves the address empty.
func (s *VisitService) CheckIn(ctx context.Context, visitID uint, coords *Coordinates) (*CheckInResult, error) {
	visit, err := s.Get(visitID)
	if err != nil {
		return nil, err
	}
	if visit.CheckInAt != nil {
		return nil, apperrors.NewConflict("visit %d is already checked in", visitID)
	}

	now := time.Now().UTC()
	visit.CheckInAt = &now
	if coords != nil {
		visit.CheckInLat = &coords.Lat
		visit.CheckInLng = &coords.Lng
	}
	if err := s.db.Save(visit).Error; err != nil {
		return nil, err
	}

	result := &CheckInResult{Visit: visit}
	if coords != nil {
		if addr, ok := s.resolveAddress(ctx, coords); ok {
			visit.CheckInAddress = &addr
			if err := s.db.Model(visit).Update("check_in_address", addr).Error; err != nil {
				return nil, err
			}
		} else {
			result.AddressDegraded = true
		}
	}
	return result, nil
}

// CheckOut completes a visit and computes its duration in whole minutes.
func (s *VisitService) CheckOut(ctx context.Context, visitID uint, coords *Coordinates, notes string) (*CheckOutResult, error) {
	visit, err := s.Get(visitID)
	if err != nil {
		return nil, err
	}
	if visit.CheckInAt == nil {
		return nil, apperrors.NewConflict("visit %d has no check-in", visitID)
	}
	if visit.CheckOutAt != nil {
		return nil, apperrors.NewConflict("visit %d is already checked out", visitID)
	}

	now := time.Now().UTC()
	visit.CheckOutAt = &now
	if coords != nil {
		visit.CheckOutLat = &coords.Lat
		visit.CheckOutLng = &coords.Lng
	}
	if notes != "" {
		visit.Notes = notes
	}
	if err := s.db.Save(visit).Error; err != nil {
		return nil, err
	}

	result := &CheckOutResult{Visit: visit}
	if d := visit.DurationMinutes(); d != nil {
		result.DurationMinutes = *d
	}
	if coords != nil {
		if addr, ok := s.resolveAddress(ctx, coords); ok {
			visit.CheckOutAddress = &addr
			if err := s.db.Model(visit).Update("check_out_address", addr).Error; err != nil {
				return nil, err
			}
		} else {
			result.AddressDegraded = true
		}
	}
	return result, nil
}

// Delete removes a visit that was never started. In-progress and completed
// visits are part of the field record and cannot be deleted.
func (s *VisitService) Delete(visitID uint) error {
	visit, err := s.Get(visitID)
	if err != nil {
		return err
	}
	if visit.CheckInAt != nil {
		return apperrors.NewConflict("visit %d has a check-in and cannot be deleted", visitID)
	}
	return s.db.Delete(visit).Error
}

// List returns visits matching the filter, newest scheduled date first.
func (s *VisitService) List(filter VisitFilter) ([]models.Visit, error) {
	q := s.db.Preload("Client").Order("scheduled_date DESC, id DESC")
	if filter.VendorID != nil {
		q = q.Where("vendor_id = ?", *filter.VendorID)
	}
	if filter.ClientID != nil {
		q = q.Where("client_id = ?", *filter.ClientID)
	}
	if filter.From != nil {
		q = q.Where("scheduled_date >= ?", dateOnly(*filter.From))
	}
	if filter.To != nil {
		q = q.Where("scheduled_date < ?", dateOnly(*filter.To).AddDate(0, 0, 1))
	}

	var visits []models.Visit
	if err := q.Find(&visits).Error; err != nil {
		return nil, err
	}
	if filter.Status == nil {
		return visits, nil
	}

	filtered := visits[:0]
	for _, v := range visits {
		if v.Status() == *filter.Status {
			filtered = append(filtered, v)
		}
	}
	return filtered, nil
}

// Agenda builds the merged daily view for a vendor and date. Sundays are
// never scheduled, so the agenda is empty regardless of route contents.
func (s *VisitService) Agenda(vendorID uint, date time.Time) (*DailyAgenda, error) {
	if err := s.db.First(&models.Vendor{}, vendorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("vendor", vendorID)
		}
		return nil, err
	}

	day := dateOnly(date)
	agenda := &DailyAgenda{Date: day, Stops: []AgendaStop{}, ExtraVisits: []models.Visit{}}

	weekday, ok := models.WeekdayOf(day)
	if !ok {
		return agenda, nil
	}
	agenda.Weekday = weekday

	var stops []models.RouteStop
	route, err := s.routes.ActiveForVendor(vendorID)
	if err != nil {
		return nil, err
	}
	if route != nil {
		if stops, err = s.routes.StopsForDay(route.ID, weekday); err != nil {
			return nil, err
		}
	}

	var visits []models.Visit
	if err := s.db.Preload("Client").
		Where("vendor_id = ? AND scheduled_date >= ? AND scheduled_date < ?",
			vendorID, day, day.AddDate(0, 0, 1)).
		Order("id ASC").
		Find(&visits).Error; err != nil {
		return nil, err
	}

	byClient := make(map[uint]*models.Visit, len(visits))
	for i := range visits {
		if _, seen := byClient[visits[i].ClientID]; !seen {
			byClient[visits[i].ClientID] = &visits[i]
		}
	}

	scheduled := make(map[uint]bool, len(stops))
	for _, stop := range stops {
		scheduled[stop.ClientID] = true
		entry := AgendaStop{Stop: stop, Status: models.VisitScheduled}
		if v, found := byClient[stop.ClientID]; found {
			entry.Visit = v
			entry.Status = v.Status()
		}
		if entry.Status == models.VisitCompleted {
			agenda.CompletedCount++
		} else {
			agenda.PendingCount++
		}
		agenda.Stops = append(agenda.Stops, entry)
	}
	agenda.ScheduledCount = len(stops)

	for _, v := range visits {
		if !scheduled[v.ClientID] {
			agenda.ExtraVisits = append(agenda.ExtraVisits, v)
		}
	}
	agenda.ExtraCount = len(agenda.ExtraVisits)

	return agenda, nil
}

// resolveAddress wraps the geocoder call; every failure is absorbed here
// and reported only through the log and the degraded flag.
func (s *VisitService) resolveAddress(ctx context.Context, coords *Coordinates) (string, bool) {
	if s.geocoder == nil {
		return "", false
	}
	addr, err := s.geocoder.ReverseGeocode(ctx, coords.Lat, coords.Lng)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"lat": coords.Lat,
			"lng": coords.Lng,
		}).Warn("reverse geocode degraded; keeping empty address")
		return "", false
	}
	return addr, true
}

// dateOnly truncates a timestamp to its UTC calendar date.
func dateOnly(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
