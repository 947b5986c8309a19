package postgres

import "time"

type playerTableModel struct {
	ID           int64      `db:"id"`
	PublicID     string     `db:"public_id"`
	FirstName    string     `db:"first_name"`
	LastName     string     `db:"last_name"`
	Hometown     string     `db:"hometown"`
	PlayerNumber int        `db:"player_number"`
	Position     string     `db:"position"`
	TeamPublicID *string    `db:"team_public_id"`
	Status       string     `db:"status"`
	Headshot     string     `db:"headshot"`
	CreatedBy    string     `db:"created_by"`
	UpdatedBy    string     `db:"updated_by"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
}

type playerInsertModel struct {
	PublicID     string    `db:"public_id"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Hometown     string    `db:"hometown"`
	PlayerNumber int       `db:"player_number"`
	Position     string    `db:"position"`
	TeamPublicID *string   `db:"team_public_id"`
	Status       string    `db:"status"`
	Headshot     string    `db:"headshot"`
	CreatedBy    string    `db:"created_by"`
	UpdatedBy    string    `db:"updated_by"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
