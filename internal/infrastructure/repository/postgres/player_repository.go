package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-registry/internal/domain/player"
	qb "github.com/riskibarqy/league-registry/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db sqlx.ExtContext
}

func NewPlayerRepository(db sqlx.ExtContext) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) error {
	insertModel := playerInsertModel{
		PublicID:     item.ID,
		FirstName:    item.FirstName,
		LastName:     item.LastName,
		Hometown:     item.Hometown,
		PlayerNumber: item.Number,
		Position:     string(item.Position),
		TeamPublicID: nullableString(item.TeamID),
		Status:       string(item.Status),
		Headshot:     item.Headshot,
		CreatedBy:    item.CreatedBy,
		UpdatedBy:    item.UpdatedBy,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
	query, args, err := qb.InsertModel("players", insertModel, "")
	if err != nil {
		return fmt.Errorf("build create player query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return writeError("create player", err)
	}

	return nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	return r.getOne(ctx, "get player by id", qb.Eq("public_id", playerID))
}

func (r *PlayerRepository) GetByTeamAndNumber(ctx context.Context, teamID string, number int) (player.Player, bool, error) {
	return r.getOne(ctx, "get player by team and number",
		qb.Eq("team_public_id", teamID), qb.Eq("player_number", number))
}

func (r *PlayerRepository) List(ctx context.Context, filter player.ListFilter) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").
		Where(playerFilterConditions(filter)...).
		OrderBy("last_name", "first_name", "id").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	return playersFromRows(rows), nil
}

func (r *PlayerRepository) Count(ctx context.Context, filter player.ListFilter) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("players").
		Where(playerFilterConditions(filter)...).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count players query: %w", err)
	}

	var total int
	if err := sqlx.GetContext(ctx, r.db, &total, query, args...); err != nil {
		return 0, fmt.Errorf("count players: %w", err)
	}
	return total, nil
}

func (r *PlayerRepository) ListByIDs(ctx context.Context, playerIDs []string) ([]player.Player, error) {
	if len(playerIDs) == 0 {
		return nil, nil
	}

	query, args, err := qb.Select("*").From("players").
		Where(
			qb.In("public_id", stringSliceToAny(playerIDs)),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by ids query: %w", err)
	}

	var rows []playerTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players by ids: %w", err)
	}

	return playersFromRows(rows), nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) error {
	query, args, err := qb.Update("players").
		Set("first_name", item.FirstName).
		Set("last_name", item.LastName).
		Set("hometown", item.Hometown).
		Set("player_number", item.Number).
		Set("position", string(item.Position)).
		Set("team_public_id", nullableString(item.TeamID)).
		Set("status", string(item.Status)).
		Set("headshot", item.Headshot).
		Set("updated_by", item.UpdatedBy).
		Set("updated_at", item.UpdatedAt).
		Where(
			qb.Eq("public_id", item.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update player query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return writeError("update player", err)
	}
	return checkAffected(result, "update player")
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID string) error {
	query, args, err := qb.Update("players").
		SetExpr("deleted_at", "NOW()").
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", playerID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build soft delete player query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("soft delete player: %w", err)
	}
	return checkAffected(result, "soft delete player")
}

// ClearTeam detaches every active player from teamID and reports how many
// rows became orphaned.
func (r *PlayerRepository) ClearTeam(ctx context.Context, teamID string) (int, error) {
	query, args, err := qb.Update("players").
		Set("team_public_id", nil).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("team_public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build clear team players query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("clear team players: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected clear team players: %w", err)
	}
	return int(affected), nil
}

func (r *PlayerRepository) getOne(ctx context.Context, op string, conds ...qb.Condition) (player.Player, bool, error) {
	query, args, err := qb.Select("*").From("players").
		Where(append(conds, qb.IsNull("deleted_at"))...).
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build %s query: %w", op, err)
	}

	var row playerTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("%s: %w", op, err)
	}

	return playerFromRow(row), true, nil
}

func playerFilterConditions(filter player.ListFilter) []qb.Condition {
	conds := []qb.Condition{qb.IsNull("deleted_at")}
	if strings.TrimSpace(filter.TeamID) != "" {
		conds = append(conds, qb.Eq("team_public_id", strings.TrimSpace(filter.TeamID)))
	}
	if strings.TrimSpace(string(filter.Position)) != "" {
		conds = append(conds, qb.Expr("LOWER(position) = LOWER(?)", strings.TrimSpace(string(filter.Position))))
	}
	if strings.TrimSpace(filter.Search) != "" {
		pattern := containsPattern(filter.Search)
		conds = append(conds, qb.Or(qb.ILike("first_name", pattern), qb.ILike("last_name", pattern)))
	}
	return conds
}

func playersFromRows(rows []playerTableModel) []player.Player {
	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:        row.PublicID,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Hometown:  row.Hometown,
		Number:    row.PlayerNumber,
		Position:  player.Position(row.Position),
		TeamID:    derefString(row.TeamPublicID),
		Status:    player.Status(row.Status),
		Headshot:  row.Headshot,
		CreatedBy: row.CreatedBy,
		UpdatedBy: row.UpdatedBy,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
