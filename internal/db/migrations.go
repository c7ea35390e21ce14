package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	`CREATE TABLE IF NOT EXISTS buildings (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name TEXT NOT NULL,
		address TEXT,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		google_place_id TEXT,
		geometry JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_buildings_created_at ON buildings (created_at DESC);`,
	`CREATE TABLE IF NOT EXISTS windows (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		building_id UUID NOT NULL REFERENCES buildings(id) ON DELETE CASCADE,
		x_coordinate DOUBLE PRECISION NOT NULL,
		y_coordinate DOUBLE PRECISION NOT NULL,
		z_coordinate DOUBLE PRECISION,
		width DOUBLE PRECISION,
		height DOUBLE PRECISION,
		confidence DOUBLE PRECISION,
		floor_number INTEGER,
		window_type TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_windows_building_id ON windows (building_id);`,
	`CREATE INDEX IF NOT EXISTS idx_windows_created_at ON windows (created_at DESC);`,
	`CREATE TABLE IF NOT EXISTS detection_sessions (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		building_id UUID NOT NULL REFERENCES buildings(id) ON DELETE CASCADE,
		status TEXT,
		total_windows INTEGER,
		processing_time INTERVAL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		completed_at TIMESTAMPTZ
	);`,
	`CREATE INDEX IF NOT EXISTS idx_detection_sessions_building_id ON detection_sessions (building_id);`,
	`CREATE INDEX IF NOT EXISTS idx_detection_sessions_status ON detection_sessions (status);`,
	`CREATE OR REPLACE FUNCTION set_updated_at()
	RETURNS TRIGGER AS $$
	BEGIN
		NEW.updated_at = NOW();
		RETURN NEW;
	END;
	$$ LANGUAGE plpgsql;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_buildings_updated_at') THEN
			CREATE TRIGGER trg_buildings_updated_at
				BEFORE UPDATE ON buildings
				FOR EACH ROW
				EXECUTE PROCEDURE set_updated_at();
		END IF;
	END
	$$;`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
