package results

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bcdxn/vsa/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDataset(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)
	assert.Equal(t, []string{"regional", "printemps", "cross"}, d.IDs())

	r, ok := d.Lookup("regional")
	require.True(t, ok)
	assert.Equal(t, "Championnat Régional d'Athlétisme", r.Title)
	require.Len(t, r.Categories, 3)
	assert.Equal(t, "Seniors Hommes", r.Categories[0].Label)
	assert.Equal(t, "Seniors Femmes", r.Categories[1].Label)
	assert.Equal(t, "Juniors", r.Categories[2].Label)

	first := r.Categories[0].Athletes[0]
	assert.Equal(t, 1, first.Rank)
	assert.Equal(t, "Thomas MARTIN", first.Name)
	assert.Equal(t, "400m", first.Event)
	assert.Equal(t, "48.32", first.Performance)
	assert.Equal(t, []domain.Badge{domain.BadgePodium1, domain.BadgeQualification}, first.Badges)

	// insertion order, not rank order
	ranks := []int{}
	for _, a := range r.Categories[0].Athletes {
		ranks = append(ranks, a.Rank)
	}
	assert.Equal(t, []int{1, 3, 5, 2}, ranks)

	assert.Contains(t, r.Highlights[0], `2'15"32`)
}

func TestCrossConditions(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)
	r, ok := d.Lookup("cross")
	require.True(t, ok)
	assert.Equal(t, "Parcours boueux et technique", r.Conditions.WindOrTerrain())
	assert.Equal(t, "Circuit de 2km x 3 ou 4 tours selon catégories", r.Conditions.SurfaceOrCourse())
}

func TestLookupMiss(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)
	_, ok := d.Lookup("nonexistent-id")
	assert.False(t, ok)

	var empty Dataset
	_, ok = empty.Lookup("regional")
	assert.False(t, ok)
}

func TestLookupReturnsCopy(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)
	r, _ := d.Lookup("regional")
	r.Title = "changed"
	r.Categories[0].Athletes[0].Name = "changed"
	r.Conditions[domain.ConditionWeather] = "changed"

	again, _ := d.Lookup("regional")
	assert.Equal(t, "Championnat Régional d'Athlétisme", again.Title)
	assert.Equal(t, "Thomas MARTIN", again.Categories[0].Athletes[0].Name)
	assert.Equal(t, "Ensoleillé, 22°C", again.Conditions.Weather())
}

func TestNewValidation(t *testing.T) {
	_, err := New(domain.NewCompetitionRecord(""))
	assert.ErrorIs(t, err, ErrInvalidRecord)

	_, err = New(domain.NewCompetitionRecord("a"), domain.NewCompetitionRecord("a"))
	assert.ErrorIs(t, err, ErrInvalidRecord)

	bad := domain.NewCompetitionRecord("b")
	bad.Categories = []domain.Category{{Label: "X", Athletes: []domain.AthletePerformance{{Rank: 0, Name: "Z"}}}}
	_, err = New(bad)
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.yaml")
	overlay := `
- id: cross
  title: "Cross Départemental 2025"
  conditions:
    meteo: "Brouillard, 9°C"
- id: indoor
  title: "Meeting en salle"
  date: "8 Février 2025 - Halle de Miramas"
  categories:
    - label: "60m"
      athletes:
        - { rank: 1, name: "Thomas MARTIN", event: "60m", performance: "6.81", club: "VSA", badges: [podium-1] }
  highlights: []
  conditions:
    participants: "98 athlètes"
`
	require.NoError(t, os.WriteFile(path, []byte(overlay), 0o600))

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"regional", "printemps", "cross", "indoor"}, d.IDs())

	cross, ok := d.Lookup("cross")
	require.True(t, ok)
	assert.Equal(t, "Cross Départemental 2025", cross.Title)
	assert.Equal(t, "12 Avril 2025 - Parc de la Poudrerie", cross.Date)
	assert.Equal(t, "Brouillard, 9°C", cross.Conditions.Weather())
	assert.Equal(t, "Parcours boueux et technique", cross.Conditions.WindOrTerrain())
	assert.Len(t, cross.Categories, 3)

	indoor, ok := d.Lookup("indoor")
	require.True(t, ok)
	assert.Equal(t, domain.NotAvailable, indoor.Conditions.WindOrTerrain())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- id: x\n  unknown_field: 1\n"), 0o600))
	_, err = Load(path)
	assert.Error(t, err)

	d, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, d.Len())
}
