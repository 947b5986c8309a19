package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/league-registry/internal/domain/team"
	qb "github.com/riskibarqy/league-registry/internal/platform/querybuilder"
)

type TeamRepository struct {
	db sqlx.ExtContext
}

func NewTeamRepository(db sqlx.ExtContext) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) error {
	insertModel := teamInsertModel{
		PublicID:          item.ID,
		Name:              item.Name,
		City:              item.City,
		Stadium:           item.Stadium,
		Sport:             string(item.Sport),
		ManagerPublicID:   nullableString(item.ManagerID),
		PlayerPublicIDs:   pq.StringArray(nonNilIDs(item.PlayerIDs)),
		SchedulePublicIDs: pq.StringArray(nonNilIDs(item.ScheduleIDs)),
		StadiumPhoto:      item.StadiumPhoto,
		TeamType:          string(item.TeamType),
		StadiumLocation:   item.StadiumLocation,
		StadiumCapacity:   item.StadiumCapacity,
		CreatedBy:         item.CreatedBy,
		UpdatedBy:         item.UpdatedBy,
		CreatedAt:         item.CreatedAt,
		UpdatedAt:         item.UpdatedAt,
	}
	query, args, err := qb.InsertModel("teams", insertModel, "")
	if err != nil {
		return fmt.Errorf("build create team query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return writeError("create team", err)
	}

	return nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	return r.getOne(ctx, "get team by id", qb.Eq("public_id", teamID))
}

func (r *TeamRepository) GetByName(ctx context.Context, name string) (team.Team, bool, error) {
	return r.getOne(ctx, "get team by name", qb.Expr("LOWER(name) = LOWER(?)", strings.TrimSpace(name)))
}

func (r *TeamRepository) List(ctx context.Context, filter team.ListFilter) ([]team.Team, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(teamFilterConditions(filter)...).
		OrderBy("name", "id").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	return teamsFromRows(rows), nil
}

func (r *TeamRepository) Count(ctx context.Context, filter team.ListFilter) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("teams").
		Where(teamFilterConditions(filter)...).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count teams query: %w", err)
	}

	var total int
	if err := sqlx.GetContext(ctx, r.db, &total, query, args...); err != nil {
		return 0, fmt.Errorf("count teams: %w", err)
	}
	return total, nil
}

func (r *TeamRepository) ListByIDs(ctx context.Context, teamIDs []string) ([]team.Team, error) {
	if len(teamIDs) == 0 {
		return nil, nil
	}

	query, args, err := qb.Select("*").From("teams").
		Where(
			qb.In("public_id", stringSliceToAny(teamIDs)),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams by ids query: %w", err)
	}

	var rows []teamTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams by ids: %w", err)
	}

	return teamsFromRows(rows), nil
}

// Update writes the editable columns only. Roster and fixture arrays are
// maintained through the Append/Remove methods.
func (r *TeamRepository) Update(ctx context.Context, item team.Team) error {
	query, args, err := qb.Update("teams").
		Set("name", item.Name).
		Set("city", item.City).
		Set("stadium", item.Stadium).
		Set("sport", string(item.Sport)).
		Set("manager_public_id", nullableString(item.ManagerID)).
		Set("stadium_photo", item.StadiumPhoto).
		Set("team_type", string(item.TeamType)).
		Set("stadium_location", item.StadiumLocation).
		Set("stadium_capacity", item.StadiumCapacity).
		Set("updated_by", item.UpdatedBy).
		Set("updated_at", item.UpdatedAt).
		Where(
			qb.Eq("public_id", item.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update team query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return writeError("update team", err)
	}
	return checkAffected(result, "update team")
}

func (r *TeamRepository) Delete(ctx context.Context, teamID string) error {
	query, args, err := qb.Update("teams").
		SetExpr("deleted_at", "NOW()").
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build soft delete team query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("soft delete team: %w", err)
	}
	return checkAffected(result, "soft delete team")
}

func (r *TeamRepository) AppendPlayer(ctx context.Context, teamID, playerID string) error {
	return r.appendID(ctx, "player_public_ids", teamID, playerID)
}

func (r *TeamRepository) RemovePlayer(ctx context.Context, teamID, playerID string) error {
	return r.removeID(ctx, "player_public_ids", teamID, playerID)
}

func (r *TeamRepository) AppendSchedule(ctx context.Context, teamID, scheduleID string) error {
	return r.appendID(ctx, "schedule_public_ids", teamID, scheduleID)
}

func (r *TeamRepository) RemoveSchedule(ctx context.Context, teamID, scheduleID string) error {
	return r.removeID(ctx, "schedule_public_ids", teamID, scheduleID)
}

func (r *TeamRepository) appendID(ctx context.Context, column, teamID, id string) error {
	expr := fmt.Sprintf("CASE WHEN ? = ANY(%[1]s) THEN %[1]s ELSE array_append(%[1]s, ?) END", column)
	query, args, err := qb.Update("teams").
		SetExpr(column, expr, id, id).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build append %s query: %w", column, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("append %s: %w", column, err)
	}
	return checkAffected(result, "append "+column)
}

func (r *TeamRepository) removeID(ctx context.Context, column, teamID, id string) error {
	query, args, err := qb.Update("teams").
		SetExpr(column, fmt.Sprintf("array_remove(%s, ?)", column), id).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build remove %s query: %w", column, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("remove %s: %w", column, err)
	}
	return checkAffected(result, "remove "+column)
}

func (r *TeamRepository) getOne(ctx context.Context, op string, cond qb.Condition) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(cond, qb.IsNull("deleted_at")).
		Limit(1).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build %s query: %w", op, err)
	}

	var row teamTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("%s: %w", op, err)
	}

	return teamFromRow(row), true, nil
}

func teamFilterConditions(filter team.ListFilter) []qb.Condition {
	conds := []qb.Condition{qb.IsNull("deleted_at")}
	if strings.TrimSpace(filter.Search) != "" {
		pattern := containsPattern(filter.Search)
		conds = append(conds, qb.Or(qb.ILike("name", pattern), qb.ILike("city", pattern)))
	}
	return conds
}

func teamsFromRows(rows []teamTableModel) []team.Team {
	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}
	return out
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:              row.PublicID,
		Name:            row.Name,
		City:            row.City,
		Stadium:         row.Stadium,
		Sport:           team.Sport(row.Sport),
		ManagerID:       derefString(row.ManagerPublicID),
		PlayerIDs:       append([]string(nil), row.PlayerPublicIDs...),
		ScheduleIDs:     append([]string(nil), row.SchedulePublicIDs...),
		StadiumPhoto:    row.StadiumPhoto,
		TeamType:        team.Type(row.TeamType),
		StadiumLocation: row.StadiumLocation,
		StadiumCapacity: row.StadiumCapacity,
		CreatedBy:       row.CreatedBy,
		UpdatedBy:       row.UpdatedBy,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

func nonNilIDs(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
