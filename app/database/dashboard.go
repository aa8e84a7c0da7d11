package database

import (
	"database/sql"

	"pelita-schools/app/models"
)

// DashboardStats are the admin home panel counters
type DashboardStats struct {
	Students     int `json:"students"`
	Teachers     int `json:"teachers"`
	Classes      int `json:"classes"`
	LandingMedia int `json:"landing_media"`
	Upcoming     int `json:"upcoming_events"`
}

func GetDashboardStats(db *sql.DB) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.Students, err = CountUsersByRole(db, models.RoleStudent); err != nil {
		return nil, err
	}
	if stats.Teachers, err = CountUsersByRole(db, models.RoleTeacher); err != nil {
		return nil, err
	}
	if stats.Classes, err = CountActiveClasses(db); err != nil {
		return nil, err
	}
	if err = db.QueryRow(`SELECT COUNT(*) FROM landing_media WHERE is_active = true`).Scan(&stats.LandingMedia); err != nil {
		return nil, err
	}
	if err = db.QueryRow(`SELECT COUNT(*) FROM events WHERE end_date >= NOW()`).Scan(&stats.Upcoming); err != nil {
		return nil, err
	}
	return stats, nil
}
