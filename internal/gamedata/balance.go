package gamedata

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/appengine-ltd/idlecraft/data"
	"github.com/appengine-ltd/idlecraft/internal/game"
)

type Balance struct {
	LevelCurve CurveConfig        `yaml:"level_curve"`
	Activities []game.ActivityDef `yaml:"activities"`
}

// CurveConfig either lists explicit thresholds or describes a geometric
// curve. Thresholds win when both are set.
type CurveConfig struct {
	Thresholds []uint64 `yaml:"thresholds"`
	Base       uint64   `yaml:"base"`
	Growth     float64  `yaml:"growth"`
	Levels     int      `yaml:"levels"`
}

func LoadBalance(path string) (Balance, error) {
	raw, err := readOrDefault(path, data.Balance)
	if err != nil {
		return Balance{}, fmt.Errorf("balance: %w", err)
	}
	var b Balance
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&b); err != nil && !errors.Is(err, io.EOF) {
		return Balance{}, fmt.Errorf("balance %s: %w", describe(path), err)
	}
	return b, nil
}

func (b Balance) Curve() ([]uint64, error) {
	curve := b.LevelCurve.Thresholds
	if len(curve) == 0 {
		if b.LevelCurve.Base == 0 && b.LevelCurve.Levels == 0 {
			curve = game.DefaultLevelCurve()
		} else {
			curve = game.LevelCurve(b.LevelCurve.Base, b.LevelCurve.Growth, b.LevelCurve.Levels)
		}
	}
	if err := game.ValidateLevelCurve(curve); err != nil {
		return nil, fmt.Errorf("balance: %w", err)
	}
	return curve, nil
}

// Catalog indexes the activity list by kind. An empty list selects the
// built-in catalog.
func (b Balance) Catalog() (game.ActivityCatalog, error) {
	if len(b.Activities) == 0 {
		return game.DefaultActivityCatalog(), nil
	}
	catalog := make(game.ActivityCatalog, len(b.Activities))
	for _, def := range b.Activities {
		if _, dup := catalog[def.Kind]; dup {
			return nil, fmt.Errorf("balance: duplicate activity %s", def.Kind)
		}
		catalog[def.Kind] = def
	}
	if err := catalog.Validate(nil); err != nil {
		return nil, fmt.Errorf("balance: %w", err)
	}
	return catalog, nil
}
