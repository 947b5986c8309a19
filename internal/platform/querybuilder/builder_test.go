package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("public_id", "name").
		From("teams").
		Where(Eq("sport", "Soccer"), IsNull("deleted_at")).
		OrderBy("id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT public_id, name FROM teams WHERE sport = $1 AND deleted_at IS NULL ORDER BY id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "Soccer" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_SearchWithPagination(t *testing.T) {
	query, args, err := Select("*").
		From("players").
		Where(
			Eq("team_public_id", "t1"),
			Or(ILike("first_name", "%ann%"), ILike("last_name", "%ann%")),
			IsNull("deleted_at"),
		).
		OrderBy("id").
		Limit(10).
		Offset(20).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT * FROM players WHERE team_public_id = $1 AND (first_name ILIKE $2 OR last_name ILIKE $3) AND deleted_at IS NULL ORDER BY id LIMIT 10 OFFSET 20"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "t1" || args[1] != "%ann%" || args[2] != "%ann%" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_NeAndSuffix(t *testing.T) {
	query, args, err := Select("public_id").
		From("schedules").
		Where(Eq("home_team_public_id", "h"), Ne("public_id", "s1")).
		Suffix("FOR UPDATE").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT public_id FROM schedules WHERE home_team_public_id = $1 AND public_id <> $2 FOR UPDATE"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("users").
		Columns("public_id", "username").
		Values("u1", "alice").
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO users (public_id, username) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "u1" || args[1] != "alice" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder_ArrayAppend(t *testing.T) {
	query, args, err := Update("teams").
		SetExpr("player_public_ids", "array_append(player_public_ids, ?)", "p1").
		SetExpr("updated_at", "NOW()").
		Where(Eq("public_id", "t1"), Expr("NOT (? = ANY(player_public_ids))", "p1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE teams SET player_public_ids = array_append(player_public_ids, $1), updated_at = NOW() WHERE public_id = $2 AND NOT ($3 = ANY(player_public_ids))"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "p1" || args[1] != "t1" || args[2] != "p1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		PublicID string `db:"public_id"`
		Name     string `db:"name"`
		Skipped  string `db:"-"`
		internal string
	}

	query, args, err := InsertModel("teams", row{PublicID: "t1", Name: "Hawks", internal: "x"}, "")
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}
	if query != "INSERT INTO teams (public_id, name) VALUES ($1, $2)" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}
