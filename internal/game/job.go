package game

import (
	"fmt"
	"math"
)

type JobName string

const (
	JobWoodcutter JobName = "Woodcutter"
	JobMiner      JobName = "Miner"
	JobFarmer     JobName = "Farmer"
)

// AllJobs lists every profession in display order.
func AllJobs() []JobName {
	return []JobName{JobWoodcutter, JobMiner, JobFarmer}
}

func (n JobName) Valid() bool {
	switch n {
	case JobWoodcutter, JobMiner, JobFarmer:
		return true
	default:
		return false
	}
}

func (n JobName) String() string {
	return string(n)
}

func jobDescription(name JobName) string {
	switch name {
	case JobWoodcutter:
		return "Cut down trees"
	case JobMiner:
		return "Mine rocks"
	case JobFarmer:
		return "Grow crops"
	default:
		return ""
	}
}

// Job is a per-profession level track. Experience is the progress inside the
// current level and always stays below LevelCurve[Level-1].
type Job struct {
	Name        JobName  `json:"name"`
	Description string   `json:"description"`
	Level       int      `json:"level"`
	Experience  uint64   `json:"experience"`
	LevelCurve  []uint64 `json:"level_up_experience"`
}

func NewJob(name JobName, curve []uint64) Job {
	return Job{
		Name:        name,
		Description: jobDescription(name),
		Level:       1,
		LevelCurve:  append([]uint64(nil), curve...),
	}
}

// AddExperience grants amount and levels up as many times as the curve
// allows. A grant that would run past the end of the curve is rejected and
// leaves the job unchanged.
func (j *Job) AddExperience(amount uint64) error {
	next, err := j.withExperience(amount)
	if err != nil {
		return err
	}
	*j = next
	return nil
}

// withExperience returns the job as it would be after the grant.
func (j Job) withExperience(amount uint64) (Job, error) {
	if j.Experience > math.MaxUint64-amount {
		return j, fmt.Errorf("%s experience: %w", j.Name, ErrRewardOverflow)
	}
	j.Experience += amount
	for {
		threshold, ok := j.threshold()
		if !ok {
			return j, fmt.Errorf("%s level %d: %w", j.Name, j.Level, ErrLevelCurveExhausted)
		}
		if j.Experience < threshold {
			return j, nil
		}
		j.Experience -= threshold
		j.Level++
	}
}

// NextLevelAt reports the experience needed to leave the current level.
func (j Job) NextLevelAt() (uint64, bool) {
	return j.threshold()
}

func (j Job) threshold() (uint64, bool) {
	idx := j.Level - 1
	if idx < 0 || idx >= len(j.LevelCurve) {
		return 0, false
	}
	return j.LevelCurve[idx], true
}

func findJob(jobs []Job, name JobName) (*Job, error) {
	for i := range jobs {
		if jobs[i].Name == name {
			return &jobs[i], nil
		}
	}
	return nil, fmt.Errorf("%s: %w", name, ErrJobNotFound)
}
