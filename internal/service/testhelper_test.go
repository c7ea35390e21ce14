package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"facade-scan/internal/notify"
)

// Tests run against in-memory sqlite, so the schema below mirrors the
// Postgres migrations with portable column types. IDs are filled client
// side by the models' BeforeCreate hooks.
var testSchema = []string{
	`CREATE TABLE buildings (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		address TEXT,
		latitude REAL NOT NULL,
		longitude REAL NOT NULL,
		google_place_id TEXT,
		geometry TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`,
	`CREATE TABLE windows (
		id TEXT PRIMARY KEY,
		building_id TEXT NOT NULL,
		x_coordinate REAL NOT NULL,
		y_coordinate REAL NOT NULL,
		z_coordinate REAL,
		width REAL,
		height REAL,
		confidence REAL,
		floor_number INTEGER,
		window_type TEXT,
		created_at DATETIME
	);`,
	`CREATE TABLE detection_sessions (
		id TEXT PRIMARY KEY,
		building_id TEXT NOT NULL,
		status TEXT,
		total_windows INTEGER,
		processing_time TEXT,
		created_at DATETIME,
		completed_at DATETIME
	);`,
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	for _, stmt := range testSchema {
		require.NoError(t, database.Exec(stmt).Error)
	}

	return database
}

type sentNotification struct {
	Title    string
	Body     string
	Severity notify.Severity
}

// recordingNotifier captures notifications for assertions.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []sentNotification
}

func (n *recordingNotifier) Notify(title, body string, severity notify.Severity) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentNotification{Title: title, Body: body, Severity: severity})
}

func (n *recordingNotifier) bySeverity(severity notify.Severity) []sentNotification {
	n.mu.Lock()
	defer n.mu.Unlock()

	var out []sentNotification
	for _, s := range n.sent {
		if s.Severity == severity {
			out = append(out, s)
		}
	}
	return out
}
