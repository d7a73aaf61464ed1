package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaleDismissIsNoop(t *testing.T) {
	c := New(0)
	assert.Equal(t, DefaultDuration, c.Duration())

	first := c.Show(KindError, "Veuillez remplir tous les champs")
	second := c.Show(KindSuccess, "Message envoyé avec succès !")
	assert.NotEqual(t, first.ID, second.ID)

	assert.False(t, c.Dismiss(first.ID))
	b, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, second, b)

	assert.True(t, c.Dismiss(second.ID))
	_, ok = c.Current()
	assert.False(t, ok)
	assert.False(t, c.Dismiss(second.ID))
}

func TestCancel(t *testing.T) {
	c := New(DefaultDuration)
	b := c.Show(KindError, "Veuillez entrer une adresse email valide")
	require.True(t, c.Pending(b.ID))

	assert.True(t, c.Cancel(b.ID))
	assert.False(t, c.Pending(b.ID))
	_, ok := c.Current()
	assert.False(t, ok)

	// the timer fired after cancellation does nothing
	assert.False(t, c.Dismiss(b.ID))
	assert.False(t, c.Cancel(b.ID))
}

func TestShowCancelsReplacedTimer(t *testing.T) {
	c := New(DefaultDuration)
	first := c.Show(KindError, "Veuillez remplir tous les champs")
	second := c.Show(KindError, "Veuillez entrer une adresse email valide")
	assert.False(t, c.Pending(first.ID))
	assert.True(t, c.Pending(second.ID))

	third := c.Show(KindSuccess, "Message envoyé avec succès !")
	assert.False(t, c.Cancel(second.ID))
	cur, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, third.ID, cur.ID)
}
