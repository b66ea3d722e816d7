package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appengine-ltd/idlecraft/internal/game"
	"github.com/appengine-ltd/idlecraft/internal/gamedata"
	"github.com/appengine-ltd/idlecraft/internal/save"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func testOptions(t *testing.T) (Options, *fakeClock) {
	t.Helper()
	bundle, err := gamedata.Load(gamedata.Paths{})
	require.NoError(t, err)
	clock := &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	return Options{Data: bundle, Now: clock.Now}, clock
}

func TestNewSessionIsFresh(t *testing.T) {
	opts, _ := testOptions(t)
	s := New(opts)

	assert.Equal(t, game.ScreenActivity, s.Screen())
	assert.Len(t, s.Player().Jobs, len(game.AllJobs()))
	quests := s.Quests()
	require.Len(t, quests, len(opts.Data.Quests))
	for _, q := range quests {
		assert.False(t, q.Completed)
	}
	_, active := s.Player().Activity()
	assert.False(t, active)
}

func TestSelectActivityAndTick(t *testing.T) {
	opts, _ := testOptions(t)
	s := New(opts)

	require.NoError(t, s.Apply(SelectActivity(game.ActivityWoodcutting)))
	s.Tick(4 * time.Second)
	s.Tick(6 * time.Second)

	assert.Equal(t, uint64(1), s.Player().Inventory.ItemQuantity(1))
	job, _ := s.Player().Job(game.JobWoodcutter)
	assert.Equal(t, 2, job.Level)

	messages := s.Messages()
	require.Len(t, messages, 2)
	assert.Contains(t, messages[0], "Started Woodcutting.")
	assert.Contains(t, messages[1], "Woodcutter reached level 2.")
}

func TestSwitchingActivityDropsProgress(t *testing.T) {
	opts, _ := testOptions(t)
	s := New(opts)

	require.NoError(t, s.Apply(SelectActivity(game.ActivityMining)))
	s.Tick(9 * time.Second)
	require.NoError(t, s.Apply(SelectActivity(game.ActivityMining)))
	s.Tick(9 * time.Second)

	assert.Empty(t, s.Player().Inventory.Items)
}

func TestApplyRejectsUnknownTargets(t *testing.T) {
	opts, _ := testOptions(t)
	s := New(opts)

	require.ErrorIs(t, s.Apply(SelectActivity("Fishing")), game.ErrUnknownActivity)
	require.ErrorIs(t, s.Apply(CompleteQuest(999)), game.ErrQuestNotFound)
	require.Error(t, s.Apply(ChangeScreen("Map")))
	require.Error(t, s.Apply(Intent{Kind: IntentKind(42)}))
}

func TestChangeScreen(t *testing.T) {
	opts, _ := testOptions(t)
	s := New(opts)

	require.NoError(t, s.Apply(ChangeScreen(game.ScreenQuests)))
	assert.Equal(t, game.ScreenQuests, s.Screen())
	assert.Equal(t, game.ScreenQuests, s.Snapshot().Screen)
}

func TestCompleteQuestOnlyWhenReady(t *testing.T) {
	opts, _ := testOptions(t)
	s := New(opts)

	// Quest 1 wants a single log and pays 10 gold.
	require.NoError(t, s.Apply(CompleteQuest(1)))
	assert.False(t, s.Quests()[0].Completed)
	assert.Zero(t, s.Player().Inventory.Gold)
	assert.Contains(t, s.Messages()[len(s.Messages())-1], "Kindling is not ready: 0/1.")

	s.Player().AddItem(game.NewItem(1, 1))
	require.NoError(t, s.Apply(CompleteQuest(1)))
	require.NoError(t, s.Apply(CompleteQuest(1)))

	assert.True(t, s.Quests()[0].Completed)
	assert.Equal(t, uint64(10), s.Player().Inventory.Gold)
	assert.Contains(t, s.Messages()[len(s.Messages())-1], "Quest complete: Kindling. +10 gold.")
}

func TestTickHaltsBrokenActivity(t *testing.T) {
	opts, _ := testOptions(t)
	s := New(opts)

	require.NoError(t, s.Apply(SelectActivity(game.ActivityFarming)))
	s.Player().Jobs = s.Player().Jobs[:1]
	s.Tick(time.Minute)

	_, active := s.Player().Activity()
	assert.False(t, active)
	assert.Contains(t, s.Messages()[len(s.Messages())-1], "Activity stopped")
	assert.Empty(t, s.Player().Inventory.Items)
}

func TestOpenWithoutSaveStartsFresh(t *testing.T) {
	opts, _ := testOptions(t)
	store := save.NewStore(filepath.Join(t.TempDir(), "save.json"))

	s := Open(opts, store)
	assert.Len(t, s.Quests(), len(opts.Data.Quests))
	assert.Empty(t, s.Messages())
}

func TestOpenCorruptSaveStartsFresh(t *testing.T) {
	opts, _ := testOptions(t)
	path := filepath.Join(t.TempDir(), "save.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s := Open(opts, save.NewStore(path))
	assert.Len(t, s.Quests(), len(opts.Data.Quests))
	require.Len(t, s.Messages(), 1)
	assert.Contains(t, s.Messages()[0], "started a new game")
}

func TestSaveThenOpenCatchesUp(t *testing.T) {
	opts, clock := testOptions(t)
	store := save.NewStore(filepath.Join(t.TempDir(), "save.json"))

	s := New(opts)
	require.NoError(t, s.Apply(SelectActivity(game.ActivityWoodcutting)))
	require.NoError(t, s.Apply(ChangeScreen(game.ScreenInventory)))
	s.Tick(5 * time.Second)
	require.NoError(t, s.Save(store))

	clock.Advance(62 * time.Second)
	resumed := Open(opts, store)

	assert.Equal(t, game.ScreenInventory, resumed.Screen())
	assert.Equal(t, uint64(6), resumed.Player().Inventory.ItemQuantity(1))
	activity, ok := resumed.Player().Activity()
	require.True(t, ok)
	assert.Equal(t, 7*time.Second, activity.Timer)
	assert.Contains(t, resumed.Messages()[0], "6 Woodcutting cycles")
	assert.Equal(t, s.SaveFile().SaveID, resumed.SaveFile().SaveID)
}

func TestOpenWithClockBehindSaveGrantsNothing(t *testing.T) {
	opts, clock := testOptions(t)
	store := save.NewStore(filepath.Join(t.TempDir(), "save.json"))

	s := New(opts)
	require.NoError(t, s.Apply(SelectActivity(game.ActivityMining)))
	require.NoError(t, s.Save(store))

	clock.Advance(-time.Hour)
	resumed := Open(opts, store)
	assert.Empty(t, resumed.Player().Inventory.Items)
}

func TestRestoreFillsQuestLog(t *testing.T) {
	opts, _ := testOptions(t)
	f := save.File{
		Screen: "Bogus",
		Player: game.NewPlayer(opts.Data.LevelCurve),
		Quests: []game.Quest{{ID: 2, Completed: true}},
	}

	s := Restore(opts, f)
	quests := s.Quests()
	require.Len(t, quests, len(opts.Data.Quests))
	for _, q := range quests {
		assert.Equal(t, q.ID == 2, q.Completed, "quest %d", q.ID)
	}
	assert.Equal(t, game.ScreenActivity, s.Screen())
}

func TestRestoreClampsActivityTimer(t *testing.T) {
	opts, _ := testOptions(t)
	player := game.NewPlayer(opts.Data.LevelCurve)
	player.SetActivity(game.NewActivity(game.ActivityWoodcutting, "Cutting down trees", time.Second, nil, nil))
	player.CurrentActivity.Timer = 2500 * time.Millisecond

	s := Restore(opts, save.File{Player: player})
	activity, ok := s.Player().Activity()
	require.True(t, ok)
	assert.Equal(t, 500*time.Millisecond, activity.Timer)
	assert.Empty(t, s.Player().Inventory.Items)
}

func TestAutosaveDue(t *testing.T) {
	opts, clock := testOptions(t)
	s := New(opts)

	assert.False(t, s.AutosaveDue(time.Minute))
	clock.Advance(time.Minute)
	assert.True(t, s.AutosaveDue(time.Minute))
	assert.False(t, s.AutosaveDue(0))

	require.NoError(t, s.Save(save.NewStore(filepath.Join(t.TempDir(), "save.json"))))
	assert.False(t, s.AutosaveDue(time.Minute))
}

func TestSnapshot(t *testing.T) {
	opts, _ := testOptions(t)
	s := New(opts)
	require.NoError(t, s.Apply(SelectActivity(game.ActivityFarming)))
	s.Tick(25 * time.Second)

	v := s.Snapshot()

	require.NotNil(t, v.Activity)
	assert.Equal(t, game.ActivityFarming, v.Activity.Kind)
	assert.InDelta(t, 0.5, v.Activity.Progress, 1e-9)
	assert.Equal(t, 5*time.Second, v.Activity.Remaining)

	require.Len(t, v.Items, 1)
	assert.Equal(t, "Potato", v.Items[0].Name)
	assert.Equal(t, uint64(2), v.Items[0].Quantity)

	require.Len(t, v.Activities, 3)
	assert.True(t, v.Activities[2].Active)
	assert.False(t, v.Activities[0].Active)

	farmer := v.Jobs[2]
	assert.Equal(t, game.JobFarmer, farmer.Name)
	assert.Equal(t, 2, farmer.Level)
	assert.Equal(t, opts.Data.LevelCurve[1], farmer.NextLevelAt)

	require.Len(t, v.Quests, len(opts.Data.Quests))
	harvest := v.Quests[3]
	assert.Equal(t, "Collect Potato", harvest.Objective)
	assert.Equal(t, uint64(2), harvest.Current)
	assert.False(t, harvest.Ready)

	welcome := v.Quests[5]
	assert.True(t, welcome.Ready, "player level 1 already meets the welcome quest")
	assert.Equal(t, uint8(100), v.Stats.Health)
}
