package game

import (
	"fmt"
	"time"
)

// ActivityDef is the static definition an Activity is started from.
type ActivityDef struct {
	Kind        ActivityKind       `json:"kind" yaml:"kind"`
	Description string             `json:"description" yaml:"description"`
	Duration    time.Duration      `json:"duration" yaml:"duration"`
	Experience  []ExperienceReward `json:"experience" yaml:"experience"`
	Items       []Item             `json:"items" yaml:"items"`
}

type ActivityCatalog map[ActivityKind]ActivityDef

// New starts a fresh activity of kind with a zeroed timer.
func (c ActivityCatalog) New(kind ActivityKind) (Activity, error) {
	def, ok := c[kind]
	if !ok {
		return Activity{}, fmt.Errorf("%q: %w", kind, ErrUnknownActivity)
	}
	return NewActivity(def.Kind, def.Description, def.Duration, def.Experience, def.Items), nil
}

// Kinds lists the catalog entries in AllActivities order.
func (c ActivityCatalog) Kinds() []ActivityKind {
	out := make([]ActivityKind, 0, len(c))
	for _, kind := range AllActivities() {
		if _, ok := c[kind]; ok {
			out = append(out, kind)
		}
	}
	return out
}

// Validate checks the catalog against the known professions and the item
// database. A nil items database skips the item check.
func (c ActivityCatalog) Validate(items ItemDatabase) error {
	for kind, def := range c {
		if !kind.Valid() || def.Kind != kind {
			return fmt.Errorf("activity %q: %w", kind, ErrUnknownActivity)
		}
		if def.Duration <= 0 {
			return fmt.Errorf("activity %s: duration must be positive, got %s", kind, def.Duration)
		}
		for _, xp := range def.Experience {
			if !xp.Job.Valid() {
				return fmt.Errorf("activity %s: %q: %w", kind, xp.Job, ErrJobNotFound)
			}
		}
		if items == nil {
			continue
		}
		for _, item := range def.Items {
			if _, ok := items[item.ID]; !ok {
				return fmt.Errorf("activity %s: reward item %d not in item database", kind, item.ID)
			}
		}
	}
	return nil
}

// DefaultActivityCatalog mirrors the bundled balance file.
func DefaultActivityCatalog() ActivityCatalog {
	return ActivityCatalog{
		ActivityWoodcutting: {
			Kind:        ActivityWoodcutting,
			Description: "Woodcutting",
			Duration:    10 * time.Second,
			Experience:  []ExperienceReward{{Job: JobWoodcutter, Amount: 100}},
			Items:       []Item{{ID: 1, Quantity: 1}},
		},
		ActivityMining: {
			Kind:        ActivityMining,
			Description: "Mining",
			Duration:    10 * time.Second,
			Experience:  []ExperienceReward{{Job: JobMiner, Amount: 100}},
			Items:       []Item{{ID: 2, Quantity: 1}},
		},
		ActivityFarming: {
			Kind:        ActivityFarming,
			Description: "Farming",
			Duration:    10 * time.Second,
			Experience:  []ExperienceReward{{Job: JobFarmer, Amount: 100}},
			Items:       []Item{{ID: 3, Quantity: 1}},
		},
	}
}
