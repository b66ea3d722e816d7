package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayerHasEveryJob(t *testing.T) {
	player := NewPlayer(DefaultLevelCurve())

	require.Len(t, player.Jobs, len(AllJobs()))
	for _, name := range AllJobs() {
		job, ok := player.Job(name)
		require.True(t, ok, name)
		assert.Equal(t, 1, job.Level)
	}
	assert.Equal(t, uint8(100), player.Health)
	assert.Equal(t, uint8(1), player.Level)
	_, ok := player.Activity()
	assert.False(t, ok)
}

func TestPlayerUpdateWithoutActivity(t *testing.T) {
	player := NewPlayer(DefaultLevelCurve())
	cycles, err := player.Update(time.Hour)
	require.NoError(t, err)
	assert.Zero(t, cycles)

	cycles, err = player.UpdateFromTimeElapsed(time.Hour)
	require.NoError(t, err)
	assert.Zero(t, cycles)
}

func TestPlayerSetActivityDiscardsProgress(t *testing.T) {
	player := NewPlayer(DefaultLevelCurve())
	catalog := DefaultActivityCatalog()

	mining, err := catalog.New(ActivityMining)
	require.NoError(t, err)
	player.SetActivity(mining)
	_, err = player.Update(9 * time.Second)
	require.NoError(t, err)

	farming, err := catalog.New(ActivityFarming)
	require.NoError(t, err)
	player.SetActivity(farming)
	_, err = player.Update(9 * time.Second)
	require.NoError(t, err)

	current, ok := player.Activity()
	require.True(t, ok)
	assert.Equal(t, ActivityFarming, current.Kind)
	assert.Equal(t, 9*time.Second, current.Timer)
	assert.Empty(t, player.Inventory.Items)
}

func TestPlayerCatchUpRoutesToActivity(t *testing.T) {
	player := NewPlayer(DefaultLevelCurve())
	woodcutting, err := DefaultActivityCatalog().New(ActivityWoodcutting)
	require.NoError(t, err)
	player.SetActivity(woodcutting)

	cycles, err := player.UpdateFromTimeElapsed(65 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, 6, cycles)
	assert.Equal(t, uint64(6), player.Inventory.ItemQuantity(1))

	job, _ := player.Job(JobWoodcutter)
	assert.Equal(t, 5, job.Level)
}

func TestPlayerForwarders(t *testing.T) {
	player := NewPlayer(DefaultLevelCurve())

	require.NoError(t, player.AddExperience(JobFarmer, 10))
	require.ErrorIs(t, player.AddExperience("Fisher", 10), ErrJobNotFound)

	player.AddItem(NewItem(5, 2))
	require.NoError(t, player.RemoveItem(NewItem(5, 2)))
	require.ErrorIs(t, player.RemoveItem(NewItem(5, 1)), ErrInsufficientStock)

	player.AddGold(5)
	require.ErrorIs(t, player.RemoveGold(6), ErrInsufficientGold)
	require.NoError(t, player.RemoveGold(5))
}

func TestPlayerEnsureJobsRepairsLoadedState(t *testing.T) {
	curve := DefaultLevelCurve()
	player := Player{
		Jobs: []Job{
			{Name: JobMiner, Level: 3, Experience: 7},
			{Name: JobMiner, Level: 9},
			{Name: "Fisher", Level: 2},
		},
	}

	player.EnsureJobs(curve)

	require.Len(t, player.Jobs, 3)
	miner, ok := player.Job(JobMiner)
	require.True(t, ok)
	assert.Equal(t, 3, miner.Level)
	assert.Equal(t, uint64(7), miner.Experience)
	assert.Equal(t, curve, miner.LevelCurve)
	assert.Equal(t, "Mine rocks", miner.Description)

	_, ok = player.Job(JobWoodcutter)
	assert.True(t, ok)
	_, ok = player.Job(JobFarmer)
	assert.True(t, ok)
	assert.NotNil(t, player.Inventory.Items)
}
