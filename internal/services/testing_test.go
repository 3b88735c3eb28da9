package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"aeromaint/opsdesk/internal/db"
	"aeromaint/opsdesk/internal/metrics"
)

// Prometheus collectors register against the default registry once per
// process, so all tests in this package share one registry.
var testMetrics = metrics.NewMetricsRegistry()

// setupTestDB opens a fresh in-memory store with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return gdb
}
