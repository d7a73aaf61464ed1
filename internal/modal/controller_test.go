package modal

import (
	"io"
	"log/slog"
	"testing"

	"github.com/bcdxn/vsa/internal/domain"
	"github.com/bcdxn/vsa/internal/metrics"
	"github.com/bcdxn/vsa/internal/render"
	"github.com/bcdxn/vsa/internal/results"
	"github.com/bcdxn/vsa/internal/scrolllock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newController(t *testing.T, opts ...ControllerOption) *Controller {
	t.Helper()
	d, err := results.Default()
	require.NoError(t, err)
	opts = append([]ControllerOption{WithLogger(testLogger())}, opts...)
	return New(d, opts...)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpenRegional(t *testing.T) {
	c := newController(t)
	require.True(t, c.Open("regional"))
	assert.True(t, c.Visible())
	assert.Equal(t, domain.TabResults, c.Tabs().Active())

	content := c.Content()
	assert.Equal(t, "Championnat Régional d'Athlétisme", content.Title)
	require.Len(t, content.Results.Groups, 3)
	assert.Equal(t, "Seniors Hommes", content.Results.Groups[0].Label)
	assert.Equal(t, "Seniors Femmes", content.Results.Groups[1].Label)
	assert.Equal(t, "Juniors", content.Results.Groups[2].Label)

	row := content.Results.Groups[0].Rows[0]
	assert.Equal(t, "1", row.Rank)
	assert.Equal(t, "Thomas MARTIN", row.Name)
	assert.Equal(t, "400m", row.Event)
	assert.Equal(t, "48.32", row.Performance)
	assert.Equal(t, []render.BadgeMark{
		{Kind: render.MarkPodium, Label: "1", Position: 1},
		{Kind: render.MarkQualification, Label: "QUALIF"},
	}, row.Marks)
}

func TestOpenUnknownLeavesStateUntouched(t *testing.T) {
	m := metrics.New()
	c := newController(t, WithMetrics(m))

	assert.NotPanics(t, func() {
		assert.False(t, c.Open("nonexistent-id"))
	})
	assert.False(t, c.Visible())

	// an open viewer stays on its current result-set and tab
	require.True(t, c.Open("cross"))
	require.True(t, c.SwitchTo(domain.TabConditions))
	assert.False(t, c.Open("nonexistent-id"))
	assert.True(t, c.Visible())
	assert.Equal(t, "cross", c.Current())
	assert.Equal(t, domain.TabConditions, c.Tabs().Active())
}

func TestCloseIsIdempotent(t *testing.T) {
	lock := scrolllock.New()
	c := newController(t, WithScrollLock(lock))

	c.Close()
	assert.False(t, c.Visible())
	assert.False(t, lock.Locked())

	require.True(t, c.Open("printemps"))
	assert.True(t, lock.Locked())
	c.Close()
	c.Close()
	assert.False(t, c.Visible())
	assert.False(t, lock.Locked())
}

func TestSwitchToKeepsExactlyOneActive(t *testing.T) {
	c := newController(t)
	require.True(t, c.Open("regional"))

	for _, tab := range append(domain.Tabs(), domain.Tabs()...) {
		require.True(t, c.SwitchTo(tab))
		active := 0
		for _, s := range c.Tabs().Selectors() {
			if s.Active {
				active++
				assert.Equal(t, tab, s.Tab)
			}
		}
		assert.Equal(t, 1, active)
	}

	before := c.Tabs()
	require.True(t, c.SwitchTo(before.Active()))
	assert.Equal(t, before, c.Tabs())

	assert.False(t, c.SwitchTo("photos"))
	assert.Equal(t, before, c.Tabs())
}

func TestSwitchToWhileClosed(t *testing.T) {
	c := newController(t)
	assert.False(t, c.SwitchTo(domain.TabHighlights))
	assert.Equal(t, domain.TabResults, c.Tabs().Active())
}

func TestReopenResetsTab(t *testing.T) {
	lock := scrolllock.New()
	c := newController(t, WithScrollLock(lock))
	require.True(t, c.Open("regional"))
	require.True(t, c.SwitchTo(domain.TabHighlights))

	// opening another result-set while open keeps a single lock hold
	require.True(t, c.Open("cross"))
	assert.Equal(t, domain.TabResults, c.Tabs().Active())
	assert.Equal(t, []string{lockOwner}, lock.Holders())

	c.Close()
	require.True(t, c.Open("regional"))
	assert.Equal(t, domain.TabResults, c.Tabs().Active())
}

func TestSharedScrollLock(t *testing.T) {
	lock := scrolllock.New()
	c := newController(t, WithScrollLock(lock))

	menu := lock.Acquire("nav")
	require.True(t, c.Open("regional"))
	menu.Release()
	assert.True(t, lock.Locked(), "modal still needs the page locked")
	c.Close()
	assert.False(t, lock.Locked())
}

func TestFixtureDataset(t *testing.T) {
	r := domain.NewCompetitionRecord("fixture")
	r.Title = "Fixture"
	r.Categories = []domain.Category{{Label: "Masters", Athletes: []domain.AthletePerformance{
		{Rank: 4, Name: "B", Badges: []domain.Badge{"mystery"}},
		{Rank: 4, Name: "A"},
	}}}
	d, err := results.New(r)
	require.NoError(t, err)

	c := New(d, WithLogger(testLogger()))
	require.True(t, c.Open("fixture"))
	rows := c.Content().Results.Groups[0].Rows
	assert.Equal(t, "B", rows[0].Name)
	assert.Empty(t, rows[0].Marks)
	assert.Equal(t, domain.NotAvailable, c.Content().Conditions.Fields[0].Value)
	assert.False(t, c.Open("regional"))
}
