package postgres

import "time"

type scheduleTableModel struct {
	ID               int64      `db:"id"`
	PublicID         string     `db:"public_id"`
	HomeTeamPublicID string     `db:"home_team_public_id"`
	AwayTeamPublicID string     `db:"away_team_public_id"`
	StartsAt         time.Time  `db:"starts_at"`
	Arena            string     `db:"arena"`
	City             string     `db:"city"`
	Status           string     `db:"status"`
	Season           string     `db:"season"`
	Location         string     `db:"location"`
	GameDuration     int        `db:"game_duration"`
	TimeZone         string     `db:"time_zone"`
	CreatedBy        string     `db:"created_by"`
	UpdatedBy        string     `db:"updated_by"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
	DeletedAt        *time.Time `db:"deleted_at"`
}

type scheduleInsertModel struct {
	PublicID         string    `db:"public_id"`
	HomeTeamPublicID string    `db:"home_team_public_id"`
	AwayTeamPublicID string    `db:"away_team_public_id"`
	StartsAt         time.Time `db:"starts_at"`
	Arena            string    `db:"arena"`
	City             string    `db:"city"`
	Status           string    `db:"status"`
	Season           string    `db:"season"`
	Location         string    `db:"location"`
	GameDuration     int       `db:"game_duration"`
	TimeZone         string    `db:"time_zone"`
	CreatedBy        string    `db:"created_by"`
	UpdatedBy        string    `db:"updated_by"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}
