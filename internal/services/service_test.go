package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"visit_tracker/internal/config"
	"visit_tracker/internal/models"
)

// newTestDB opens an in-memory database with the full schema applied.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A pooled second connection would see an empty :memory: database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.MigrateModels(db))
	return db
}

func seedVendor(t *testing.T, db *gorm.DB, name string) *models.Vendor {
	t.Helper()
	v := models.Vendor{Name: name, Email: name + "@example.com"}
	require.NoError(t, db.Create(&v).Error)
	return &v
}

func seedClient(t *testing.T, db *gorm.DB, name string) *models.Client {
	t.Helper()
	c := models.Client{Name: name}
	require.NoError(t, db.Create(&c).Error)
	return &c
}

func seedRoute(t *testing.T, db *gorm.DB, vendorID uint, name string) *models.Route {
	t.Helper()
	r := models.Route{Name: name, VendorID: vendorID, Active: true}
	require.NoError(t, db.Create(&r).Error)
	return &r
}

// mustDate builds a UTC calendar date.
func mustDate(t *testing.T, raw string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", raw)
	require.NoError(t, err)
	return d
}
