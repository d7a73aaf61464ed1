package render

import (
	"bytes"
	"testing"

	"github.com/bcdxn/vsa/internal/domain"
	"github.com/bcdxn/vsa/internal/results"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultsPreservesOrder(t *testing.T) {
	d, err := results.Default()
	require.NoError(t, err)

	for _, id := range d.IDs() {
		r, ok := d.Lookup(id)
		require.True(t, ok)

		v := Results(r.Categories)
		require.Len(t, v.Groups, len(r.Categories), id)
		for i, g := range v.Groups {
			assert.Equal(t, r.Categories[i].Label, g.Label)
			require.Len(t, g.Rows, len(r.Categories[i].Athletes))
			for j, row := range g.Rows {
				assert.Equal(t, r.Categories[i].Athletes[j].Name, row.Name)
			}
		}
	}
}

func TestBadgeRendering(t *testing.T) {
	marks := Badges([]domain.Badge{domain.BadgePodium1, domain.BadgeQualification})
	require.Len(t, marks, 2)
	assert.Equal(t, BadgeMark{Kind: MarkPodium, Label: "1", Position: 1}, marks[0])
	assert.Equal(t, BadgeMark{Kind: MarkQualification, Label: "QUALIF"}, marks[1])

	assert.Empty(t, Badges([]domain.Badge{}))
	assert.Empty(t, Badges(nil))

	marks = Badges([]domain.Badge{"podium-9", domain.BadgeRecord, "sponsor"})
	require.Len(t, marks, 1)
	assert.Equal(t, "RECORD", marks[0].Label)
}

func TestHighlightsKeepsDuplicatesAndOrder(t *testing.T) {
	in := []string{"b", "a", "b"}
	v := Highlights(in)
	assert.Equal(t, []string{"b", "a", "b"}, v.Items)

	in[0] = "changed"
	assert.Equal(t, "b", v.Items[0])
}

func TestConditionsFields(t *testing.T) {
	v := Conditions(domain.Conditions{
		domain.ConditionWeather:      "Pluvieux, 15°C",
		domain.ConditionTerrain:      "Parcours boueux",
		domain.ConditionCourse:       "Circuit de 2km",
		domain.ConditionParticipants: "189 coureurs",
	})
	assert.Equal(t, [4]Field{
		{Label: "Météo", Value: "Pluvieux, 15°C"},
		{Label: "Vent", Value: "Parcours boueux"},
		{Label: "Surface", Value: "Circuit de 2km"},
		{Label: "Participation", Value: "189 coureurs"},
	}, v.Fields)

	v = Conditions(domain.Conditions{domain.ConditionWeather: "Soleil"})
	assert.Equal(t, "N/A", v.Fields[1].Value)
	assert.Equal(t, "N/A", v.Fields[2].Value)
}

func TestWriteText(t *testing.T) {
	d, err := results.Default()
	require.NoError(t, err)
	r, _ := d.Lookup("regional")

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, r))
	out := buf.String()
	assert.Contains(t, out, "Championnat Régional d'Athlétisme")
	assert.Contains(t, out, "== Seniors Hommes ==")
	assert.Contains(t, out, "Thomas MARTIN")
	assert.Contains(t, out, "1 QUALIF")
	assert.Contains(t, out, "Vent: Vent favorable 1.2 m/s")
}
