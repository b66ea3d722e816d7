// Package gamedata loads the static reference data: item and quest
// databases (JSON) and the balance file (YAML). An empty path selects the
// bundled default.
package gamedata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/appengine-ltd/idlecraft/data"
	"github.com/appengine-ltd/idlecraft/internal/game"
)

type Paths struct {
	Items   string
	Quests  string
	Balance string
}

// Bundle is the validated reference data for one session.
type Bundle struct {
	Items      game.ItemDatabase
	Quests     game.QuestDatabase
	LevelCurve []uint64
	Activities game.ActivityCatalog
}

func Load(paths Paths) (*Bundle, error) {
	items, err := LoadItemDatabase(paths.Items)
	if err != nil {
		return nil, err
	}
	quests, err := LoadQuestDatabase(paths.Quests)
	if err != nil {
		return nil, err
	}
	balance, err := LoadBalance(paths.Balance)
	if err != nil {
		return nil, err
	}
	curve, err := balance.Curve()
	if err != nil {
		return nil, err
	}
	catalog, err := balance.Catalog()
	if err != nil {
		return nil, err
	}
	if err := catalog.Validate(items); err != nil {
		return nil, fmt.Errorf("balance: %w", err)
	}
	if err := quests.Validate(items); err != nil {
		return nil, fmt.Errorf("quest database: %w", err)
	}
	return &Bundle{
		Items:      items,
		Quests:     quests,
		LevelCurve: curve,
		Activities: catalog,
	}, nil
}

func LoadItemDatabase(path string) (game.ItemDatabase, error) {
	raw, err := readOrDefault(path, data.Items)
	if err != nil {
		return nil, fmt.Errorf("item database: %w", err)
	}
	var records []game.ItemData
	if err := decodeStrict(raw, &records); err != nil {
		return nil, fmt.Errorf("item database %s: %w", describe(path), err)
	}
	db := make(game.ItemDatabase, len(records))
	for _, record := range records {
		if record.ID == 0 {
			return nil, fmt.Errorf("item database %s: item %q has no id", describe(path), record.Name)
		}
		if _, dup := db[record.ID]; dup {
			return nil, fmt.Errorf("item database %s: duplicate id %d", describe(path), record.ID)
		}
		db[record.ID] = record
	}
	return db, nil
}

func LoadQuestDatabase(path string) (game.QuestDatabase, error) {
	raw, err := readOrDefault(path, data.Quests)
	if err != nil {
		return nil, fmt.Errorf("quest database: %w", err)
	}
	var records []game.QuestData
	if err := decodeStrict(raw, &records); err != nil {
		return nil, fmt.Errorf("quest database %s: %w", describe(path), err)
	}
	db := make(game.QuestDatabase, len(records))
	for _, record := range records {
		if record.ID == 0 {
			return nil, fmt.Errorf("quest database %s: quest %q has no id", describe(path), record.Name)
		}
		if _, dup := db[record.ID]; dup {
			return nil, fmt.Errorf("quest database %s: duplicate id %d", describe(path), record.ID)
		}
		db[record.ID] = record
	}
	return db, nil
}

func readOrDefault(path string, fallback []byte) ([]byte, error) {
	if path == "" {
		return fallback, nil
	}
	return os.ReadFile(path)
}

func decodeStrict(raw []byte, out any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	return dec.Decode(out)
}

func describe(path string) string {
	if path == "" {
		return "(bundled)"
	}
	return path
}
