package team

import "testing"

func TestTeamValidate(t *testing.T) {
	valid := Team{ID: "t-1", Name: "Hawks", City: "Metro", Stadium: "Metro Field", Sport: SportSoccer}
	if err := valid.Validate(); err != nil {
		t.Fatalf("validate team: %v", err)
	}

	cases := map[string]Team{
		"missing name":      {ID: "t-1", City: "Metro", Stadium: "Metro Field", Sport: SportSoccer},
		"unknown sport":     {ID: "t-1", Name: "Hawks", City: "Metro", Stadium: "Metro Field", Sport: "Cricket"},
		"bad team type":     {ID: "t-1", Name: "Hawks", City: "Metro", Stadium: "Metro Field", Sport: SportSoccer, TeamType: "Pro"},
		"negative capacity": {ID: "t-1", Name: "Hawks", City: "Metro", Stadium: "Metro Field", Sport: SportSoccer, StadiumCapacity: -1},
	}
	for name, item := range cases {
		if err := item.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestTeamManagedBy(t *testing.T) {
	item := Team{ManagerID: "u-1"}
	if !item.ManagedBy("u-1") {
		t.Fatalf("expected u-1 to manage the team")
	}
	if item.ManagedBy("u-2") {
		t.Fatalf("expected u-2 not to manage the team")
	}
	if (Team{}).ManagedBy("") {
		t.Fatalf("expected team without manager to be managed by nobody")
	}
}
