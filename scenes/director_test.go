package scenes

import (
	"testing"
	"time"

	"github.com/automoto/tilehop/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type changes struct {
	scenes []interface{}
}

func (c *changes) ChangeScene(scene interface{}) {
	c.scenes = append(c.scenes, scene)
}

func (c *changes) last() interface{} {
	return c.scenes[len(c.scenes)-1]
}

func newDirector(t *testing.T) (*Director, *changes, *persistence.Store) {
	t.Helper()
	repo := persistence.NewMemory()
	sc := &changes{}
	d := NewDirector(sc, repo)
	d.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	require.NoError(t, d.Start())
	require.NoError(t, d.Go(SceneSlotSelect, nil))
	return d, sc, repo
}

func TestStartShowsMainMenu(t *testing.T) {
	sc := &changes{}
	d := NewDirector(sc, persistence.NewMemory())
	require.NoError(t, d.Start())
	assert.Equal(t, SceneMainMenu, d.Flow().Current())
	assert.IsType(t, &MenuScene{}, sc.last())
}

func TestUseEmptySlotCreatesIt(t *testing.T) {
	d, sc, repo := newDirector(t)

	require.NoError(t, d.UseSlot(2))
	assert.Equal(t, 2, d.SlotID())
	assert.Equal(t, SceneWorldMap, d.Flow().Current())
	assert.Equal(t, MapPayload{WorldID: "meadow", LevelIndex: 0}, d.Flow().Payload())
	assert.IsType(t, &MenuScene{}, sc.last())

	slot, err := repo.Load(2)
	require.NoError(t, err)
	require.NotNil(t, slot)
	assert.Equal(t, "Slot 2", slot.Name)
	active, err := repo.ActiveSlot()
	require.NoError(t, err)
	assert.Equal(t, 2, active)
}

func TestUseExistingSlotOpensCursor(t *testing.T) {
	d, _, repo := newDirector(t)
	slot := persistence.NewSlot(1, "Mine", time.Time{})
	slot.CompleteLevel(0)
	slot.Cursor = persistence.Cursor{WorldID: "meadow", LevelIndex: 1}
	require.NoError(t, repo.Save(slot))

	require.NoError(t, d.UseSlot(1))
	assert.Equal(t, MapPayload{WorldID: "meadow", LevelIndex: 1}, d.Flow().Payload())

	loaded, err := repo.Load(1)
	require.NoError(t, err)
	assert.True(t, d.now().Equal(loaded.LastPlayedAt))
	assert.Equal(t, []int{0}, loaded.CompletedLevels)
}

func TestPlayLockedLevelFails(t *testing.T) {
	d, _, _ := newDirector(t)
	require.NoError(t, d.UseSlot(1))

	err := d.PlayLevel(1)
	assert.ErrorIs(t, err, ErrLocked)
	assert.Equal(t, SceneWorldMap, d.Flow().Current())

	require.NoError(t, d.PlayLevel(0))
	assert.Equal(t, ScenePlaying, d.Flow().Current())
	assert.IsType(t, &PlayScene{}, d.sc.(*changes).last())
}

func TestPlayWithoutSlotFails(t *testing.T) {
	d, _, _ := newDirector(t)
	assert.ErrorIs(t, d.PlayLevel(0), ErrNoSlot)
}

func TestLevelFailureReturnsToMapWithMessage(t *testing.T) {
	d, _, _ := newDirector(t)
	require.NoError(t, d.UseSlot(1))
	require.NoError(t, d.PlayLevel(0))

	require.NoError(t, d.LevelFailed(0, errUnknownLevel(0)))
	assert.Equal(t, SceneWorldMap, d.Flow().Current())
	assert.Contains(t, d.Flow().Payload().(MapPayload).Message, "unknown level")
}

func TestFinishingLevelContinuesToNextLevel(t *testing.T) {
	d, _, repo := newDirector(t)
	require.NoError(t, d.UseSlot(1))
	require.NoError(t, d.PlayLevel(0))

	result, err := persistence.CompleteLevel(repo, 1, 0, 15000, d.now())
	require.NoError(t, err)
	require.NoError(t, d.LevelFinished(0, result))
	assert.Equal(t, LevelCompletePayload{LevelIndex: 0, FinalTimeMs: 15000, IsNewRecord: true}, d.Flow().Payload())

	require.NoError(t, d.Continue(0))
	assert.Equal(t, ScenePlaying, d.Flow().Current())
	assert.Equal(t, LevelPayload{LevelIndex: 1}, d.Flow().Payload())
}

func TestFinishingWorldShowsSummary(t *testing.T) {
	d, _, repo := newDirector(t)
	require.NoError(t, d.UseSlot(1))
	_, err := persistence.CompleteLevel(repo, 1, 0, 15000, d.now())
	require.NoError(t, err)
	require.NoError(t, d.PlayLevel(1))

	result, err := persistence.CompleteLevel(repo, 1, 1, 20000, d.now())
	require.NoError(t, err)
	require.True(t, result.WorldCompleted)
	require.NoError(t, d.LevelFinished(1, result))

	require.NoError(t, d.Continue(1))
	assert.Equal(t, SceneWorldComplete, d.Flow().Current())
	assert.Equal(t, WorldCompletePayload{WorldID: "meadow", RescuedCharacterID: "pip", TotalTimeMs: 35000}, d.Flow().Payload())

	slot, err := d.ActiveSlot()
	require.NoError(t, err)
	assert.True(t, slot.IsUnlocked("pip"))
}

func TestChooseCharacter(t *testing.T) {
	d, _, repo := newDirector(t)
	require.NoError(t, d.UseSlot(1))
	require.NoError(t, d.Go(SceneCharacterSelect, nil))

	assert.ErrorIs(t, d.ChooseCharacter("pip"), ErrLocked)
	assert.Equal(t, SceneCharacterSelect, d.Flow().Current())

	_, err := persistence.Update(repo, 1, func(s *persistence.SaveSlot) (*persistence.SaveSlot, error) {
		s.Unlock("pip")
		return s, nil
	})
	require.NoError(t, err)
	require.NoError(t, d.ChooseCharacter("pip"))
	assert.Equal(t, SceneWorldMap, d.Flow().Current())

	slot, err := d.ActiveSlot()
	require.NoError(t, err)
	assert.Equal(t, "pip", slot.SelectedCharacter)
}

func TestDeleteSlotInUse(t *testing.T) {
	d, _, repo := newDirector(t)
	require.NoError(t, d.UseSlot(3))
	require.NoError(t, d.Go(SceneSlotSelect, nil))

	require.NoError(t, d.DeleteSlot(3))
	assert.Zero(t, d.SlotID())
	slot, err := repo.Load(3)
	require.NoError(t, err)
	assert.Nil(t, slot)
}

func TestRejectedMoveKeepsScene(t *testing.T) {
	d, sc, _ := newDirector(t)
	n := len(sc.scenes)
	assert.ErrorIs(t, d.Go(SceneWorldComplete, WorldCompletePayload{}), ErrInvalidTransition)
	assert.Len(t, sc.scenes, n)
}

func TestSlotLabel(t *testing.T) {
	assert.Equal(t, "Slot 2 - new game", SlotLabel(2, nil))
	slot := persistence.NewSlot(1, "Ada", time.Time{})
	slot.CompleteLevel(0)
	assert.Equal(t, "Ada - 1 levels, 0 worlds", SlotLabel(1, slot))
}
