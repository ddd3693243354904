package services

import (
	"errors"

	"gorm.io/gorm"

	"visit_tracker/internal/apperrors"
	"visit_tracker/internal/models"
)

// RouteService owns the weekly schedule: ordered client stops per weekday
// per route. Reorder and day copy run as all-or-nothing transactions so a
// reader never observes a partially renumbered weekday.
type RouteService struct {
	db *gorm.DB
}

// NewRouteService creates a new route service
func NewRouteService(db *gorm.DB) *RouteService {
	return &RouteService{db: db}
}

// StopPosition pairs a stop with its caller-chosen target position.
type StopPosition struct {
	StopID   uint `json:"stop_id" binding:"required"`
	Position int  `json:"position" binding:"required"`
}

// CreateRoute creates an active route for a vendor. A vendor can hold at
// most one active route at a time.
func (s *RouteService) CreateRoute(vendorID uint, name string) (*models.Route, error) {
	if name == "" {
		return nil, apperrors.NewValidation("route name is required")
	}
	if err := s.db.First(&models.Vendor{}, vendorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("vendor", vendorID)
		}
		return nil, err
	}

	var active int64
	if err := s.db.Model(&models.Route{}).
		Where("vendor_id = ? AND active = ?", vendorID, true).
		Count(&active).Error; err != nil {
		return nil, err
	}
	if active > 0 {
		return nil, apperrors.NewConflict("vendor %d already has an active route", vendorID)
	}

	route := models.Route{Name: name, VendorID: vendorID, Active: true}
	if err := s.db.Create(&route).Error; err != nil {
		return nil, err
	}
	return &route, nil
}

// GetRoute returns a route with its stops ordered by weekday position.
func (s *RouteService) GetRoute(routeID uint) (*models.Route, error) {
	var route models.Route
	err := s.db.
		Preload("Stops", func(db *gorm.DB) *gorm.DB { return db.Order("weekday, position ASC") }).
		Preload("Stops.Client").
		First(&route, routeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("route", routeID)
		}
		return nil, err
	}
	return &route, nil
}

// ListForVendor returns all of a vendor's routes, stops included.
func (s *RouteService) ListForVendor(vendorID uint) ([]models.Route, error) {
	if err := s.db.First(&models.Vendor{}, vendorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("vendor", vendorID)
		}
		return nil, err
	}
	var routes []models.Route
	err := s.db.
		Preload("Stops", func(db *gorm.DB) *gorm.DB { return db.Order("weekday, position ASC") }).
		Where("vendor_id = ?", vendorID).
		Find(&routes).Error
	if err != nil {
		return nil, err
	}
	return routes, nil
}

// ActiveForVendor returns the vendor's single active route, or nil when the
// vendor has none.
func (s *RouteService) ActiveForVendor(vendorID uint) (*models.Route, error) {
	var route models.Route
	err := s.db.Where("vendor_id = ? AND active = ?", vendorID, true).First(&route).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &route, nil
}

// SetActive activates a route and deactivates the vendor's others in one
// transaction, preserving the single-active invariant.
func (s *RouteService) SetActive(routeID uint) (*models.Route, error) {
	var route models.Route
	if err := s.db.First(&route, routeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("route", routeID)
		}
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Route{}).
			Where("vendor_id = ? AND id <> ?", route.VendorID, route.ID).
			Update("active", false).Error; err != nil {
			return err
		}
		return tx.Model(&route).Update("active", true).Error
	})
	if err != nil {
		return nil, err
	}
	route.Active = true
	return &route, nil
}

// DeleteRoute removes a route and its stops.
func (s *RouteService) DeleteRoute(routeID uint) error {
	var route models.Route
	if err := s.db.First(&route, routeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("route", routeID)
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("route_id = ?", route.ID).Delete(&models.RouteStop{}).Error; err != nil {
			return err
		}
		return tx.Delete(&route).Error
	})
}

// AddStop schedules a client on a weekday. Without an explicit position the
// stop is appended after the weekday's current last stop.
func (s *RouteService) AddStop(routeID, clientID uint, weekday models.Weekday, position *int) (*models.RouteStop, error) {
	if _, ok := models.ParseWeekday(string(weekday)); !ok {
		return nil, apperrors.NewValidation("unknown weekday %q", string(weekday))
	}
	if position != nil && *position < 1 {
		return nil, apperrors.NewValidation("position must be positive, got %d", *position)
	}
	if err := s.db.First(&models.Route{}, routeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("route", routeID)
		}
		return nil, err
	}
	if err := s.db.First(&models.Client{}, clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("client", clientID)
		}
		return nil, err
	}

	var dup int64
	if err := s.db.Model(&models.RouteStop{}).
		Where("route_id = ? AND weekday = ? AND client_id = ?", routeID, weekday, clientID).
		Count(&dup).Error; err != nil {
		return nil, err
	}
	if dup > 0 {
		return nil, apperrors.NewConflict("client %d is already scheduled on %s", clientID, weekday)
	}

	pos := 0
	if position != nil {
		pos = *position
		var taken int64
		if err := s.db.Model(&models.RouteStop{}).
			Where("route_id = ? AND weekday = ? AND position = ?", routeID, weekday, pos).
			Count(&taken).Error; err != nil {
			return nil, err
		}
		if taken > 0 {
			return nil, apperrors.NewConflict("position %d is already taken on %s", pos, weekday)
		}
	} else {
		max, err := s.maxPosition(s.db, routeID, weekday)
		if err != nil {
			return nil, err
		}
		pos = max + 1
	}

	stop := models.RouteStop{RouteID: routeID, ClientID: clientID, Weekday: weekday, Position: pos}
	if err := s.db.Create(&stop).Error; err != nil {
		return nil, err
	}
	return &stop, nil
}

// RemoveStop deletes one stop. Remaining positions keep their values; gaps
// after deletion are tolerated.
func (s *RouteService) RemoveStop(routeID, stopID uint) error {
	var stop models.RouteStop
	if err := s.db.Where("id = ? AND route_id = ?", stopID, routeID).First(&stop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("stop", stopID)
		}
		return err
	}
	return s.db.Delete(&stop).Error
}

// Reorder atomically replaces the positions of every stop on one weekday.
// The item list must cover the weekday's stop set exactly, and the target
// positions must not collide.
func (s *RouteService) Reorder(routeID uint, weekday models.Weekday, items []StopPosition) error {
	if _, ok := models.ParseWeekday(string(weekday)); !ok {
		return apperrors.NewValidation("unknown weekday %q", string(weekday))
	}
	if len(items) == 0 {
		return apperrors.NewValidation("reorder requires at least one stop")
	}
	if err := s.db.First(&models.Route{}, routeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("route", routeID)
		}
		return err
	}

	var stops []models.RouteStop
	if err := s.db.Where("route_id = ? AND weekday = ?", routeID, weekday).Find(&stops).Error; err != nil {
		return err
	}
	existing := make(map[uint]bool, len(stops))
	for _, st := range stops {
		existing[st.ID] = true
	}

	// Validate the full target set before writing any row.
	seenStop := make(map[uint]bool, len(items))
	seenPos := make(map[int]bool, len(items))
	for _, it := range items {
		if !existing[it.StopID] {
			return apperrors.NewValidation("stop %d does not belong to %s of route %d", it.StopID, weekday, routeID)
		}
		if seenStop[it.StopID] {
			return apperrors.NewValidation("stop %d listed more than once", it.StopID)
		}
		seenStop[it.StopID] = true
		if it.Position < 1 {
			return apperrors.NewValidation("position must be positive, got %d", it.Position)
		}
		if seenPos[it.Position] {
			return apperrors.NewConflict("duplicate target position %d", it.Position)
		}
		seenPos[it.Position] = true
	}
	if len(items) != len(stops) {
		return apperrors.NewValidation("reorder must cover all %d stops of %s, got %d", len(stops), weekday, len(items))
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, it := range items {
			if err := tx.Model(&models.RouteStop{}).
				Where("id = ?", it.StopID).
				Update("position", it.Position).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// CopyDay appends the source weekday's clients that are not yet scheduled
// on the target weekday, preserving their source order. Returns the number
// of stops copied.
func (s *RouteService) CopyDay(routeID uint, from, to models.Weekday) (int, error) {
	if _, ok := models.ParseWeekday(string(from)); !ok {
		return 0, apperrors.NewValidation("unknown weekday %q", string(from))
	}
	if _, ok := models.ParseWeekday(string(to)); !ok {
		return 0, apperrors.NewValidation("unknown weekday %q", string(to))
	}
	if from == to {
		return 0, apperrors.NewValidation("source and target weekday are the same")
	}
	if err := s.db.First(&models.Route{}, routeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.NewNotFound("route", routeID)
		}
		return 0, err
	}

	var source []models.RouteStop
	if err := s.db.Where("route_id = ? AND weekday = ?", routeID, from).
		Order("position ASC").Find(&source).Error; err != nil {
		return 0, err
	}
	if len(source) == 0 {
		return 0, apperrors.NewConflict("%s has no stops to copy", from)
	}

	var target []models.RouteStop
	if err := s.db.Where("route_id = ? AND weekday = ?", routeID, to).Find(&target).Error; err != nil {
		return 0, err
	}
	present := make(map[uint]bool, len(target))
	for _, st := range target {
		present[st.ClientID] = true
	}

	var pending []models.RouteStop
	for _, st := range source {
		if !present[st.ClientID] {
			pending = append(pending, st)
		}
	}
	if len(pending) == 0 {
		return 0, apperrors.NewConflict("%s already contains every client of %s", to, from)
	}

	max, err := s.maxPosition(s.db, routeID, to)
	if err != nil {
		return 0, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		for i, src := range pending {
			stop := models.RouteStop{
				RouteID:  routeID,
				ClientID: src.ClientID,
				Weekday:  to,
				Position: max + i + 1,
			}
			if err := tx.Create(&stop).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(pending), nil
}

// ListByWeekday groups a route's stops by weekday, each list sorted by
// position ascending.
func (s *RouteService) ListByWeekday(routeID uint) (map[models.Weekday][]models.RouteStop, error) {
	if err := s.db.First(&models.Route{}, routeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("route", routeID)
		}
		return nil, err
	}

	var stops []models.RouteStop
	if err := s.db.Preload("Client").
		Where("route_id = ?", routeID).
		Order("position ASC").
		Find(&stops).Error; err != nil {
		return nil, err
	}

	grouped := make(map[models.Weekday][]models.RouteStop, len(models.Weekdays))
	for _, st := range stops {
		grouped[st.Weekday] = append(grouped[st.Weekday], st)
	}
	return grouped, nil
}

// StopsForDay returns one weekday's stops ordered by position. The visit
// lifecycle reads scheduled stops through this to build daily agendas.
func (s *RouteService) StopsForDay(routeID uint, weekday models.Weekday) ([]models.RouteStop, error) {
	var stops []models.RouteStop
	err := s.db.Preload("Client").
		Where("route_id = ? AND weekday = ?", routeID, weekday).
		Order("position ASC").
		Find(&stops).Error
	if err != nil {
		return nil, err
	}
	return stops, nil
}

func (s *RouteService) maxPosition(db *gorm.DB, routeID uint, weekday models.Weekday) (int, error) {
	var max int
	err := db.Model(&models.RouteStop{}).
		Where("route_id = ? AND weekday = ?", routeID, weekday).
		Select("COALESCE(MAX(position), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max, nil
}
