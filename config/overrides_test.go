package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot() func() {
	m, p, e, l := Movement, Physics, Enemy, Level
	return func() {
		Movement, Physics, Enemy, Level = m, p, e, l
	}
}

func TestLoadOverridesKeepsUnsetDefaults(t *testing.T) {
	defer snapshot()()

	doc := `
movement:
  maxSpeed: 300
  coyoteTime: 150ms
physics:
  gravity: 1000
`
	require.NoError(t, LoadOverrides(strings.NewReader(doc)))

	assert.Equal(t, 300.0, Movement.MaxSpeed)
	assert.Equal(t, 150*time.Millisecond, Movement.CoyoteTime)
	assert.Equal(t, 160.0, Movement.MinSpeed)
	assert.Equal(t, 1000.0, Physics.Gravity)
	assert.Equal(t, 0.6, Physics.FallMultiplier)
}

func TestLoadOverridesAppliesVariantFirst(t *testing.T) {
	defer snapshot()()

	doc := `
variant: pinguim
movement:
  deceleration: snap
`
	require.NoError(t, LoadOverrides(strings.NewReader(doc)))

	assert.True(t, Movement.CanFly)
	assert.Equal(t, DecelSnap, Movement.Deceleration)
	assert.Equal(t, CollidersObjects, Level.Colliders)
	assert.False(t, Enemy.Shoot)
}

func TestLoadOverridesRejectsUnknownVariant(t *testing.T) {
	defer snapshot()()

	err := LoadOverrides(strings.NewReader("variant: nope\n"))
	assert.Error(t, err)
}

func TestLoadOverridesFileMissingIsNotAnError(t *testing.T) {
	assert.NoError(t, LoadOverridesFile(t.TempDir()+"/absent.yaml"))
}

func TestWorldForLevel(t *testing.T) {
	w, ok := WorldForLevel(1)
	require.True(t, ok)
	assert.Equal(t, "meadow", w.ID)

	_, ok = WorldForLevel(99)
	assert.False(t, ok)
}
