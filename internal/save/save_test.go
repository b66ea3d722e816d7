package save

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appengine-ltd/idlecraft/internal/game"
)

func samplePlayer(t *testing.T) game.Player {
	t.Helper()
	player := game.NewPlayer(game.DefaultLevelCurve())
	activity, err := game.DefaultActivityCatalog().New(game.ActivityMining)
	require.NoError(t, err)
	player.SetActivity(activity)
	_, err = player.Update(25 * time.Second)
	require.NoError(t, err)
	player.AddGold(42)
	return player
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "slot", "save.json"))
	in := File{
		Screen:    game.ScreenInventory,
		Player:    samplePlayer(t),
		Quests:    []game.Quest{{ID: 1, Completed: true}, {ID: 2}},
		Timestamp: 1_700_000_000,
	}

	written, err := store.Save(in)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, written.SaveID)
	assert.Equal(t, FormatVersion, written.FormatVersion)

	out, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, written, out)
	assert.Equal(t, 5*time.Second, out.Player.CurrentActivity.Timer)
	assert.Equal(t, uint64(2), out.Player.Inventory.ItemQuantity(2))
	assert.Equal(t, time.Unix(1_700_000_000, 0), out.SavedAt())

	_, err = os.Stat(store.Path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestSaveKeepsExistingID(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "save.json"))
	id := uuid.New()

	written, err := store.Save(File{SaveID: id, Player: game.NewPlayer(game.DefaultLevelCurve())})
	require.NoError(t, err)
	assert.Equal(t, id, written.SaveID)
}

func TestLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent.json"))
	_, err := store.Load()
	require.Error(t, err)
	assert.True(t, IsMissing(err))
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"player": `), 0o600))

	_, err := NewStore(path).Load()
	require.Error(t, err)
	assert.False(t, IsMissing(err))
}

func TestLoadRejectsNewerFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"format_version": 99}`), 0o600))

	_, err := NewStore(path).Load()
	require.Error(t, err)
}

func TestElapsedClampsBackwardsClock(t *testing.T) {
	saved := time.Unix(1_000, 0)
	assert.Equal(t, 90*time.Second, Elapsed(saved, time.Unix(1_090, 0)))
	assert.Zero(t, Elapsed(saved, time.Unix(900, 0)))
}
