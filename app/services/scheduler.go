package services

import (
	"database/sql"
	"log"
	"time"

	"pelita-schools/app/database"
)

// StartScheduler starts the background task scheduler. Currently its
// only job is the hourly sweep of expired session rows; session
// lookups already ignore expired rows, the sweep just keeps the table
// from growing without bound.
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			purged, err := database.DeleteExpiredSessions(db)
			if err != nil {
				log.Printf("Error purging expired sessions: %v", err)
				continue
			}
			if purged > 0 {
				log.Printf("Purged %d expired sessions", purged)
			}
		}
	}()
}
