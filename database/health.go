package database

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Health is the storage self-test reported by GET /test.
type Health struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseDriver   string   `json:"database_driver"`
	ConnectionStatus string   `json:"connection_status"`
	Tables           []string `json:"tables"`
}

// CheckHealth pings the database and lists its tables. Failures are reported, not returned.
func CheckHealth(ctx context.Context, db *gorm.DB) Health {
	h := Health{
		Backend:          "Running",
		Database:         "Not Available",
		ConnectionStatus: "Not Connected",
		Tables:           []string{},
	}
	if db == nil {
		return h
	}
	h.DatabaseDriver = db.Dialector.Name()

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	sqlDB, err := db.DB()
	if err != nil {
		h.Database = "Error: " + truncate(err.Error(), 80)
		return h
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		h.Database = "Error: " + truncate(err.Error(), 80)
		return h
	}

	h.Database = "Connected & Working"
	h.ConnectionStatus = "Connected"

	tables, err := db.WithContext(ctx).Migrator().GetTables()
	if err != nil {
		h.Database = "Error: " + truncate(err.Error(), 80)
		return h
	}
	h.Tables = tables
	return h
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
