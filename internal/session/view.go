package session

import (
	"time"

	"github.com/appengine-ltd/idlecraft/internal/game"
)

// View is the render request handed to presentation clients. It is a copy;
// mutating it has no effect on the session.
type View struct {
	Screen     game.Screen
	Stats      StatsView
	Jobs       []JobView
	Gold       uint64
	Items      []ItemView
	Activity   *ActivityView
	Activities []ActivityOption
	Quests     []QuestView
	Messages   []string
}

type StatsView struct {
	Health      uint8
	Mana        uint8
	AttackPower uint8
	Defense     uint8
	Level       uint8
}

type JobView struct {
	Name        game.JobName
	Description string
	Level       int
	Experience  uint64
	// NextLevelAt is zero once the curve is exhausted.
	NextLevelAt uint64
}

type ItemView struct {
	ID          game.ItemID
	Name        string
	Description string
	Quantity    uint64
}

type ActivityView struct {
	Kind        game.ActivityKind
	Description string
	Progress    float64
	Remaining   time.Duration
	Duration    time.Duration
}

type ActivityOption struct {
	Kind        game.ActivityKind
	Description string
	Duration    time.Duration
	Active      bool
}

type QuestView struct {
	ID          game.QuestID
	Name        string
	Description string
	Objective   string
	Current     uint64
	Required    uint64
	Ready       bool
	Completed   bool
}

func (s *Session) Snapshot() View {
	p := &s.player
	v := View{
		Screen: s.screen,
		Stats: StatsView{
			Health:      p.Health,
			Mana:        p.Mana,
			AttackPower: p.AttackPower,
			Defense:     p.Defense,
			Level:       p.Level,
		},
		Gold:     p.Inventory.Gold,
		Messages: s.Messages(),
	}

	for _, job := range p.Jobs {
		next, _ := job.NextLevelAt()
		v.Jobs = append(v.Jobs, JobView{
			Name:        job.Name,
			Description: job.Description,
			Level:       job.Level,
			Experience:  job.Experience,
			NextLevelAt: next,
		})
	}

	for _, stack := range p.Inventory.Stacks() {
		v.Items = append(v.Items, ItemView{
			ID:          stack.ID,
			Name:        s.data.Items.Name(stack.ID),
			Description: s.data.Items[stack.ID].Description,
			Quantity:    stack.Quantity,
		})
	}

	current, active := p.Activity()
	if active {
		v.Activity = &ActivityView{
			Kind:        current.Kind,
			Description: current.Description,
			Progress:    current.Progress(),
			Remaining:   current.Remaining(),
			Duration:    current.Duration,
		}
	}
	for _, kind := range s.data.Activities.Kinds() {
		def := s.data.Activities[kind]
		v.Activities = append(v.Activities, ActivityOption{
			Kind:        kind,
			Description: def.Description,
			Duration:    def.Duration,
			Active:      active && current.Kind == kind,
		})
	}

	for _, quest := range s.quests {
		data, ok := s.data.Quests[quest.ID]
		if !ok {
			continue
		}
		v.Quests = append(v.Quests, QuestView{
			ID:          quest.ID,
			Name:        data.Name,
			Description: data.Description,
			Objective:   s.describeObjective(data.Goal),
			Current:     quest.Progress(data, p),
			Required:    data.Goal.RequiredAmount,
			Ready:       !quest.Completed && quest.CheckCompletion(data, p),
			Completed:   quest.Completed,
		})
	}
	return v
}

func (s *Session) describeObjective(goal game.Goal) string {
	switch goal.Objective.Kind {
	case game.ObjectiveCollectItem:
		return "Collect " + s.data.Items.Name(goal.Objective.ItemID)
	case game.ObjectiveCollectGold:
		return "Collect gold"
	case game.ObjectiveReachJobLevel:
		return "Reach " + goal.Objective.Job.String() + " level"
	case game.ObjectiveReachLevel:
		return "Reach level"
	default:
		return string(goal.Objective.Kind)
	}
}
