package postgres

import (
	"time"

	"github.com/lib/pq"
)

type teamTableModel struct {
	ID                int64          `db:"id"`
	PublicID          string         `db:"public_id"`
	Name              string         `db:"name"`
	City              string         `db:"city"`
	Stadium           string         `db:"stadium"`
	Sport             string         `db:"sport"`
	ManagerPublicID   *string        `db:"manager_public_id"`
	PlayerPublicIDs   pq.StringArray `db:"player_public_ids"`
	SchedulePublicIDs pq.StringArray `db:"schedule_public_ids"`
	StadiumPhoto      string         `db:"stadium_photo"`
	TeamType          string         `db:"team_type"`
	StadiumLocation   string         `db:"stadium_location"`
	StadiumCapacity   int            `db:"stadium_capacity"`
	CreatedBy         string         `db:"created_by"`
	UpdatedBy         string         `db:"updated_by"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
	DeletedAt         *time.Time     `db:"deleted_at"`
}

type teamInsertModel struct {
	PublicID          string         `db:"public_id"`
	Name              string         `db:"name"`
	City              string         `db:"city"`
	Stadium           string         `db:"stadium"`
	Sport             string         `db:"sport"`
	ManagerPublicID   *string        `db:"manager_public_id"`
	PlayerPublicIDs   pq.StringArray `db:"player_public_ids"`
	SchedulePublicIDs pq.StringArray `db:"schedule_public_ids"`
	StadiumPhoto      string         `db:"stadium_photo"`
	TeamType          string         `db:"team_type"`
	StadiumLocation   string         `db:"stadium_location"`
	StadiumCapacity   int            `db:"stadium_capacity"`
	CreatedBy         string         `db:"created_by"`
	UpdatedBy         string         `db:"updated_by"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}
