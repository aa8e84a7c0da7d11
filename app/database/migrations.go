package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates. The full
// schema bootstrap lives in cmd/migrate; these checks only cover
// additive changes so an older database keeps working after a deploy.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	if err := ensureSessionUserIndex(db); err != nil {
		return err
	}
	if err := ensureAspectRatioColumn(db); err != nil {
		return err
	}
	if err := ensureSecureColumn(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// ensureSessionUserIndex backs the invalidate-all-sessions-for-user path
func ensureSessionUserIndex(db *sql.DB) error {
	query := `CREATE INDEX IF NOT EXISTS idx_user_sessions_user_id ON user_sessions(user_id)`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to ensure user_sessions user_id index: %v", err)
		return err
	}
	return nil
}

func ensureAspectRatioColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'landing_media'
				AND column_name = 'aspect_ratio'
			) THEN
				ALTER TABLE landing_media ADD COLUMN aspect_ratio TEXT NOT NULL DEFAULT '16:9';
				RAISE NOTICE 'Added aspect_ratio column to landing_media';
			END IF;
		END $$;
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to run migration for aspect_ratio column: %v", err)
		return err
	}
	return nil
}

func ensureSecureColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'smtp_settings'
				AND column_name = 'secure'
			) THEN
				ALTER TABLE smtp_settings ADD COLUMN secure BOOLEAN NOT NULL DEFAULT false;
				RAISE NOTICE 'Added secure column to smtp_settings';
			END IF;
		END $$;
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to run migration for secure column: %v", err)
		return err
	}
	return nil
}
