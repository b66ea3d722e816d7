package game

import "time"

// Player is the root aggregate of a save. Health, mana, attack, defense and
// level are display-only.
type Player struct {
	Health          uint8     `json:"health"`
	Mana            uint8     `json:"mana"`
	AttackPower     uint8     `json:"attack_power"`
	Defense         uint8     `json:"defense"`
	Level           uint8     `json:"level"`
	Jobs            []Job     `json:"jobs"`
	Inventory       Inventory `json:"inventory"`
	CurrentActivity *Activity `json:"current_activity,omitempty"`
}

func NewPlayer(curve []uint64) Player {
	jobs := make([]Job, 0, len(AllJobs()))
	for _, name := range AllJobs() {
		jobs = append(jobs, NewJob(name, curve))
	}
	return Player{
		Health:      100,
		Mana:        100,
		AttackPower: 1,
		Defense:     1,
		Level:       1,
		Jobs:        jobs,
		Inventory:   NewInventory(),
	}
}

// EnsureJobs restores missing professions and empty curves on a loaded
// player so every profession has exactly one Job.
func (p *Player) EnsureJobs(curve []uint64) {
	seen := make(map[JobName]bool, len(p.Jobs))
	jobs := p.Jobs[:0]
	for _, job := range p.Jobs {
		if !job.Name.Valid() || seen[job.Name] {
			continue
		}
		seen[job.Name] = true
		if len(job.LevelCurve) == 0 {
			job.LevelCurve = append([]uint64(nil), curve...)
		}
		if job.Level < 1 {
			job.Level = 1
		}
		if job.Description == "" {
			job.Description = jobDescription(job.Name)
		}
		jobs = append(jobs, job)
	}
	for _, name := range AllJobs() {
		if !seen[name] {
			jobs = append(jobs, NewJob(name, curve))
		}
	}
	p.Jobs = jobs
	if p.Inventory.Items == nil {
		p.Inventory.Items = make(map[ItemID]Item)
	}
}

// Update forwards one frame to the current activity.
func (p *Player) Update(delta time.Duration) (int, error) {
	if p.CurrentActivity == nil {
		return 0, nil
	}
	return p.CurrentActivity.Update(delta, p.Jobs, &p.Inventory)
}

// UpdateFromTimeElapsed applies offline catch-up to the current activity.
func (p *Player) UpdateFromTimeElapsed(elapsed time.Duration) (int, error) {
	if p.CurrentActivity == nil {
		return 0, nil
	}
	return p.CurrentActivity.UpdateFromTimeElapsed(elapsed, p.Jobs, &p.Inventory)
}

// SetActivity replaces the current activity, dropping any progress on the
// previous one.
func (p *Player) SetActivity(activity Activity) {
	p.CurrentActivity = &activity
}

func (p *Player) Activity() (Activity, bool) {
	if p.CurrentActivity == nil {
		return Activity{}, false
	}
	return *p.CurrentActivity, true
}

func (p *Player) Job(name JobName) (Job, bool) {
	for _, job := range p.Jobs {
		if job.Name == name {
			return job, true
		}
	}
	return Job{}, false
}

func (p *Player) AddExperience(name JobName, amount uint64) error {
	job, err := findJob(p.Jobs, name)
	if err != nil {
		return err
	}
	return job.AddExperience(amount)
}

func (p *Player) AddItem(item Item) {
	p.Inventory.AddItem(item)
}

func (p *Player) RemoveItem(item Item) error {
	return p.Inventory.RemoveItem(item)
}

func (p *Player) AddGold(amount uint64) {
	p.Inventory.AddGold(amount)
}

func (p *Player) RemoveGold(amount uint64) error {
	return p.Inventory.RemoveGold(amount)
}
