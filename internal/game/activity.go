package game

import (
	"fmt"
	"math"
	"math/bits"
	"time"
)

type ActivityKind string

const (
	ActivityWoodcutting ActivityKind = "Woodcutting"
	ActivityMining      ActivityKind = "Mining"
	ActivityFarming     ActivityKind = "Farming"
)

func AllActivities() []ActivityKind {
	return []ActivityKind{ActivityWoodcutting, ActivityMining, ActivityFarming}
}

func (k ActivityKind) Valid() bool {
	switch k {
	case ActivityWoodcutting, ActivityMining, ActivityFarming:
		return true
	default:
		return false
	}
}

func (k ActivityKind) String() string {
	return string(k)
}

type ExperienceReward struct {
	Job    JobName `json:"job" yaml:"job"`
	Amount uint64  `json:"amount" yaml:"amount"`
}

// Activity is a repeating timed action. Every time Timer reaches Duration one
// reward cycle is granted and the timer wraps.
type Activity struct {
	Kind        ActivityKind       `json:"name"`
	Description string             `json:"description"`
	Duration    time.Duration      `json:"duration"`
	Timer       time.Duration      `json:"timer"`
	Experience  []ExperienceReward `json:"experience"`
	Items       []Item             `json:"items"`
}

func NewActivity(kind ActivityKind, description string, duration time.Duration, experience []ExperienceReward, items []Item) Activity {
	return Activity{
		Kind:        kind,
		Description: description,
		Duration:    duration,
		Experience:  append([]ExperienceReward(nil), experience...),
		Items:       append([]Item(nil), items...),
	}
}

// Update advances the activity by one frame. It shares the bulk path so a
// large frame delta still grants every completed cycle.
func (a *Activity) Update(delta time.Duration, jobs []Job, inv *Inventory) (int, error) {
	return a.UpdateFromTimeElapsed(delta, jobs, inv)
}

// UpdateFromTimeElapsed advances by elapsed and grants one reward per
// completed cycle. It returns the number of cycles granted.
func (a *Activity) UpdateFromTimeElapsed(elapsed time.Duration, jobs []Job, inv *Inventory) (int, error) {
	if a.Duration <= 0 {
		return 0, fmt.Errorf("%s has non-positive duration %s", a.Kind, a.Duration)
	}
	if elapsed <= 0 {
		return 0, nil
	}
	total := a.Timer + elapsed
	if total < a.Timer {
		// Saturate rather than wrap on absurd elapsed values.
		total = math.MaxInt64
	}
	cycles := total / a.Duration
	if cycles > 0 {
		if err := a.reward(uint64(cycles), jobs, inv); err != nil {
			return 0, err
		}
	}
	a.Timer = total % a.Duration
	return int(cycles), nil
}

// ClampTimer brings a restored timer back into [0, Duration). A timer at or
// past Duration wraps without granting the cycle.
func (a *Activity) ClampTimer() {
	if a.Duration <= 0 || a.Timer < 0 {
		a.Timer = 0
		return
	}
	a.Timer %= a.Duration
}

// Progress is the completed fraction of the current cycle in [0, 1).
func (a Activity) Progress() float64 {
	if a.Duration <= 0 {
		return 0
	}
	return float64(a.Timer) / float64(a.Duration)
}

func (a Activity) Remaining() time.Duration {
	if a.Duration <= 0 {
		return 0
	}
	return a.Duration - a.Timer
}

// reward grants cycles worth of rewards. Every experience grant is staged on
// a copy of its job first, so a bad reward table or an exhausted curve leaves
// the player untouched.
func (a *Activity) reward(cycles uint64, jobs []Job, inv *Inventory) error {
	staged := make(map[*Job]Job, len(a.Experience))
	for _, xp := range a.Experience {
		job, err := findJob(jobs, xp.Job)
		if err != nil {
			return fmt.Errorf("%s reward: %w", a.Kind, err)
		}
		amount, err := scaleReward(xp.Amount, cycles)
		if err != nil {
			return fmt.Errorf("%s reward: %w", a.Kind, err)
		}
		current, ok := staged[job]
		if !ok {
			current = *job
		}
		next, err := current.withExperience(amount)
		if err != nil {
			return fmt.Errorf("%s reward: %w", a.Kind, err)
		}
		staged[job] = next
	}
	items := make([]Item, len(a.Items))
	for i, item := range a.Items {
		qty, err := scaleReward(item.Quantity, cycles)
		if err != nil {
			return fmt.Errorf("%s reward: %w", a.Kind, err)
		}
		items[i] = Item{ID: item.ID, Quantity: qty}
	}

	for job, next := range staged {
		*job = next
	}
	for _, item := range items {
		inv.AddItem(item)
	}
	return nil
}

func scaleReward(amount, cycles uint64) (uint64, error) {
	hi, lo := bits.Mul64(amount, cycles)
	if hi != 0 {
		return 0, ErrRewardOverflow
	}
	return lo, nil
}
