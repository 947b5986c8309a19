package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/lib/pq"
	"github.com/riskibarqy/league-registry/internal/domain/player"
	"github.com/riskibarqy/league-registry/internal/domain/store"
	"github.com/riskibarqy/league-registry/internal/domain/team"
	qb "github.com/riskibarqy/league-registry/internal/platform/querybuilder"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get team: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped sql.ErrNoRows to be not found")
	}
	if isNotFound(errors.New("connection reset")) {
		t.Fatalf("expected unrelated error not to be not found")
	}
}

func TestWriteError_PromotesUniqueViolation(t *testing.T) {
	err := writeError("create team", &pq.Error{Code: "23505", Constraint: "uq_teams_name_active"})
	if !errors.Is(err, store.ErrDuplicate) {
		t.Fatalf("expected store.ErrDuplicate, got %v", err)
	}
	if !strings.Contains(err.Error(), "uq_teams_name_active") {
		t.Fatalf("expected constraint name in error, got %q", err.Error())
	}

	other := writeError("create team", &pq.Error{Code: "23503"})
	if errors.Is(other, store.ErrDuplicate) {
		t.Fatalf("expected foreign key violation not to map to duplicate")
	}
}

func TestContainsPattern_EscapesWildcards(t *testing.T) {
	got := containsPattern(" 50%_off ")
	if got != `%50\%\_off%` {
		t.Fatalf("unexpected pattern: %q", got)
	}
}

func TestNullableString(t *testing.T) {
	if nullableString("  ") != nil {
		t.Fatalf("expected blank string to map to NULL")
	}
	v := nullableString("u-1")
	if v == nil || *v != "u-1" {
		t.Fatalf("unexpected nullable value: %v", v)
	}
	if derefString(nil) != "" {
		t.Fatalf("expected empty string for NULL")
	}
}

type fakeResult struct {
	affected int64
	err      error
}

func (f fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (f fakeResult) RowsAffected() (int64, error) { return f.affected, f.err }

func TestCheckAffected(t *testing.T) {
	if err := checkAffected(fakeResult{affected: 1}, "update team"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := checkAffected(fakeResult{}, "update team"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected store.ErrNotFound, got %v", err)
	}
	if err := checkAffected(fakeResult{err: errors.New("driver")}, "update team"); err == nil || errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected driver error, got %v", err)
	}
}

func TestTeamFilterConditions(t *testing.T) {
	query, args, err := qb.Select("COUNT(*)").From("teams").
		Where(teamFilterConditions(team.ListFilter{Search: "mad"})...).
		ToSQL()
	if err != nil {
		t.Fatalf("build query: %v", err)
	}

	want := "SELECT COUNT(*) FROM teams WHERE deleted_at IS NULL AND (name ILIKE $1 OR city ILIKE $2)"
	if query != want {
		t.Fatalf("unexpected query:\n got: %s\nwant: %s", query, want)
	}
	if len(args) != 2 || args[0] != "%mad%" {
		t.Fatalf("unexpected args: %#v", args)
	}
}

func TestPlayerFilterConditions(t *testing.T) {
	conds := playerFilterConditions(player.ListFilter{TeamID: "t-1", Position: player.PositionForward})
	query, args, err := qb.Select("*").From("players").Where(conds...).ToSQL()
	if err != nil {
		t.Fatalf("build query: %v", err)
	}

	want := "SELECT * FROM players WHERE deleted_at IS NULL AND team_public_id = $1 AND LOWER(position) = LOWER($2)"
	if query != want {
		t.Fatalf("unexpected query:\n got: %s\nwant: %s", query, want)
	}
	if len(args) != 2 || args[0] != "t-1" || args[1] != "Forward" {
		t.Fatalf("unexpected args: %#v", args)
	}
}

func TestTeamFromRow_CopiesArrays(t *testing.T) {
	manager := "u-1"
	row := teamTableModel{
		PublicID:          "t-1",
		Name:              "Hawks",
		Sport:             "Soccer",
		ManagerPublicID:   &manager,
		PlayerPublicIDs:   pq.StringArray{"p-1", "p-2"},
		SchedulePublicIDs: pq.StringArray{},
	}

	got := teamFromRow(row)
	if got.ManagerID != "u-1" || got.Sport != team.SportSoccer {
		t.Fatalf("unexpected team: %+v", got)
	}
	row.PlayerPublicIDs[0] = "changed"
	if got.PlayerIDs[0] != "p-1" {
		t.Fatalf("expected player ids to be copied")
	}
}
