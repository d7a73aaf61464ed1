package domain

import (
	"errors"
	"testing"
)

func TestConditionsFallback(t *testing.T) {
	t.Run("Track", func(t *testing.T) {
		c := Conditions{ConditionWind: "Vent favorable 1.2 m/s", ConditionSurface: "Piste synthétique"}
		if c.WindOrTerrain() != "Vent favorable 1.2 m/s" {
			t.Errorf("expected wind but found '%s'", c.WindOrTerrain())
		}
		if c.SurfaceOrCourse() != "Piste synthétique" {
			t.Errorf("expected surface but found '%s'", c.SurfaceOrCourse())
		}
	})
	t.Run("Cross", func(t *testing.T) {
		c := Conditions{ConditionTerrain: "Parcours boueux", ConditionCourse: "Circuit de 2km"}
		if c.WindOrTerrain() != "Parcours boueux" {
			t.Errorf("expected terrain but found '%s'", c.WindOrTerrain())
		}
		if c.SurfaceOrCourse() != "Circuit de 2km" {
			t.Errorf("expected course but found '%s'", c.SurfaceOrCourse())
		}
	})
	t.Run("Missing", func(t *testing.T) {
		c := Conditions{ConditionWind: ""}
		if c.WindOrTerrain() != NotAvailable {
			t.Errorf("expected '%s' but found '%s'", NotAvailable, c.WindOrTerrain())
		}
		if c.Weather() != NotAvailable {
			t.Errorf("expected '%s' but found '%s'", NotAvailable, c.Weather())
		}
	})
}

func TestParseBadge(t *testing.T) {
	cases := map[string]Badge{
		"podium-1":      BadgePodium1,
		"podium-3":      BadgePodium3,
		"record":        BadgeRecord,
		"qualification": BadgeQualification,
		"podium-4":      BadgeUnknown,
		"":              BadgeUnknown,
	}
	for tag, expected := range cases {
		if b := ParseBadge(tag); b != expected {
			t.Errorf("expected '%s' for tag '%s' but found '%s'", expected, tag, b)
		}
	}
	if pos, ok := BadgePodium2.PodiumPosition(); !ok || pos != 2 {
		t.Errorf("expected podium position 2 but found %d (%v)", pos, ok)
	}
	if _, ok := BadgeRecord.PodiumPosition(); ok {
		t.Error("expected record badge to have no podium position")
	}
}

func TestTabCycling(t *testing.T) {
	if TabResults.Next() != TabHighlights || TabConditions.Next() != TabResults {
		t.Error("expected Next to cycle results -> highlights -> conditions -> results")
	}
	if TabResults.Prev() != TabConditions {
		t.Errorf("expected Prev of results to wrap to conditions but found '%s'", TabResults.Prev())
	}
	if TabHighlights.ContentID() != "highlights-tab" {
		t.Errorf("unexpected content id '%s'", TabHighlights.ContentID())
	}
	if _, err := ParseTab("photos"); !errors.Is(err, ErrUnknownTab) {
		t.Errorf("expected ErrUnknownTab parsing unknown tab but found '%v'", err)
	}
	if tab, err := ParseTab("conditions"); err != nil || tab != TabConditions {
		t.Errorf("expected conditions tab but found '%s' (%v)", tab, err)
	}
}

func TestCloneIsDeep(t *testing.T) {
	r := NewCompetitionRecord("x")
	r.Categories = append(r.Categories, Category{
		Label:    "Juniors",
		Athletes: []AthletePerformance{{Rank: 1, Name: "A", Badges: []Badge{BadgePodium1}}},
	})
	r.Conditions[ConditionWeather] = "Soleil"

	c := r.Clone()
	c.Categories[0].Athletes[0].Badges[0] = BadgeRecord
	c.Categories[0].Athletes[0].Name = "B"
	c.Conditions[ConditionWeather] = "Pluie"

	if r.Categories[0].Athletes[0].Badges[0] != BadgePodium1 {
		t.Error("expected original badges to be untouched")
	}
	if r.Categories[0].Athletes[0].Name != "A" {
		t.Error("expected original athlete to be untouched")
	}
	if r.Conditions[ConditionWeather] != "Soleil" {
		t.Error("expected original conditions to be untouched")
	}
}
