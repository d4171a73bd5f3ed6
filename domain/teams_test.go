package domain

import "testing"

func TestTeamByName(t *testing.T) {
	team := TeamByName("Los Angeles Dodgers")
	if team.TeamID != 119 {
		t.Error("expected Dodgers teamId 119, got", team.TeamID)
	}
	if team.ShortName != "Dodgers" {
		t.Error("unexpected short name:", team.ShortName)
	}
	if team.LogoURL == "" {
		t.Error("expected a logo URL")
	}
}

func TestTeamByNameUnknown(t *testing.T) {
	team := TeamByName("Springfield Isotopes")
	if team.TeamID != 0 {
		t.Error("unknown teams must not resolve an id")
	}
	if team.Name != "Springfield Isotopes" {
		t.Error("unknown teams keep their feed name, got", team.Name)
	}
}

func TestTeamByID(t *testing.T) {
	team, ok := TeamByID(147)
	if !ok {
		t.Fatal("expected to find team 147")
	}
	if team.Name != "New York Yankees" {
		t.Error("unexpected team:", team.Name)
	}

	if _, ok := TeamByID(9999); ok {
		t.Error("expected lookup miss for unknown id")
	}
}

func TestTeamTableComplete(t *testing.T) {
	if len(Teams) != 30 {
		t.Fatal("expected 30 MLB teams, got", len(Teams))
	}

	seen := make(map[int]bool, len(Teams))
	for _, team := range Teams {
		if seen[team.TeamID] {
			t.Error("duplicate teamId:", team.TeamID)
		}
		seen[team.TeamID] = true
	}
}
