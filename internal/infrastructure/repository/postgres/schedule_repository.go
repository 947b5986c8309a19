package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-registry/internal/domain/schedule"
	qb "github.com/riskibarqy/league-registry/internal/platform/querybuilder"
)

type ScheduleRepository struct {
	db sqlx.ExtContext
}

func NewScheduleRepository(db sqlx.ExtContext) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

func (r *ScheduleRepository) Create(ctx context.Context, item schedule.Schedule) error {
	insertModel := scheduleInsertModel{
		PublicID:         item.ID,
		HomeTeamPublicID: item.HomeTeamID,
		AwayTeamPublicID: item.AwayTeamID,
		StartsAt:         item.Date.UTC(),
		Arena:            item.Arena,
		City:             item.City,
		Status:           string(item.Status),
		Season:           string(item.Season),
		Location:         string(item.Location),
		GameDuration:     item.GameDuration,
		TimeZone:         item.TimeZone,
		CreatedBy:        item.CreatedBy,
		UpdatedBy:        item.UpdatedBy,
		CreatedAt:        item.CreatedAt,
		UpdatedAt:        item.UpdatedAt,
	}
	query, args, err := qb.InsertModel("schedules", insertModel, "")
	if err != nil {
		return fmt.Errorf("build create schedule query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return writeError("create schedule", err)
	}

	return nil
}

func (r *ScheduleRepository) GetByID(ctx context.Context, scheduleID string) (schedule.Schedule, bool, error) {
	return r.getOne(ctx, "get schedule by id", qb.Eq("public_id", scheduleID))
}

func (r *ScheduleRepository) FindByMatchup(ctx context.Context, homeTeamID, awayTeamID string, date time.Time) (schedule.Schedule, bool, error) {
	return r.getOne(ctx, "get schedule by matchup",
		qb.Eq("home_team_public_id", homeTeamID),
		qb.Eq("away_team_public_id", awayTeamID),
		qb.Eq("starts_at", date.UTC()),
	)
}

func (r *ScheduleRepository) List(ctx context.Context) ([]schedule.Schedule, error) {
	return r.selectMany(ctx, "select schedules", qb.IsNull("deleted_at"))
}

func (r *ScheduleRepository) ListByTeam(ctx context.Context, teamID string) ([]schedule.Schedule, error) {
	return r.selectMany(ctx, "select schedules by team",
		qb.Or(qb.Eq("home_team_public_id", teamID), qb.Eq("away_team_public_id", teamID)),
		qb.IsNull("deleted_at"),
	)
}

func (r *ScheduleRepository) ListByIDs(ctx context.Context, scheduleIDs []string) ([]schedule.Schedule, error) {
	if len(scheduleIDs) == 0 {
		return nil, nil
	}
	return r.selectMany(ctx, "select schedules by ids",
		qb.In("public_id", stringSliceToAny(scheduleIDs)),
		qb.IsNull("deleted_at"),
	)
}

func (r *ScheduleRepository) Update(ctx context.Context, item schedule.Schedule) error {
	query, args, err := qb.Update("schedules").
		Set("home_team_public_id", item.HomeTeamID).
		Set("away_team_public_id", item.AwayTeamID).
		Set("starts_at", item.Date.UTC()).
		Set("arena", item.Arena).
		Set("city", item.City).
		Set("status", string(item.Status)).
		Set("season", string(item.Season)).
		Set("location", string(item.Location)).
		Set("game_duration", item.GameDuration).
		Set("time_zone", item.TimeZone).
		Set("updated_by", item.UpdatedBy).
		Set("updated_at", item.UpdatedAt).
		Where(
			qb.Eq("public_id", item.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update schedule query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return writeError("update schedule", err)
	}
	return checkAffected(result, "update schedule")
}

func (r *ScheduleRepository) Delete(ctx context.Context, scheduleID string) error {
	query, args, err := qb.Update("schedules").
		SetExpr("deleted_at", "NOW()").
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", scheduleID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build soft delete schedule query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("soft delete schedule: %w", err)
	}
	return checkAffected(result, "soft delete schedule")
}

func (r *ScheduleRepository) getOne(ctx context.Context, op string, conds ...qb.Condition) (schedule.Schedule, bool, error) {
	query, args, err := qb.Select("*").From("schedules").
		Where(append(conds, qb.IsNull("deleted_at"))...).
		Limit(1).
		ToSQL()
	if err != nil {
		return schedule.Schedule{}, false, fmt.Errorf("build %s query: %w", op, err)
	}

	var row scheduleTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return schedule.Schedule{}, false, nil
		}
		return schedule.Schedule{}, false, fmt.Errorf("%s: %w", op, err)
	}

	return scheduleFromRow(row), true, nil
}

func (r *ScheduleRepository) selectMany(ctx context.Context, op string, conds ...qb.Condition) ([]schedule.Schedule, error) {
	query, args, err := qb.Select("*").From("schedules").
		Where(conds...).
		OrderBy("starts_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []scheduleTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]schedule.Schedule, 0, len(rows))
	for _, row := range rows {
		out = append(out, scheduleFromRow(row))
	}
	return out, nil
}

func scheduleFromRow(row scheduleTableModel) schedule.Schedule {
	return schedule.Schedule{
		ID:           row.PublicID,
		HomeTeamID:   row.HomeTeamPublicID,
		AwayTeamID:   row.AwayTeamPublicID,
		Date:         row.StartsAt.UTC(),
		Arena:        row.Arena,
		City:         row.City,
		Status:       schedule.Status(row.Status),
		Season:       schedule.Season(row.Season),
		Location:     schedule.Location(row.Location),
		GameDuration: row.GameDuration,
		TimeZone:     row.TimeZone,
		CreatedBy:    row.CreatedBy,
		UpdatedBy:    row.UpdatedBy,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
