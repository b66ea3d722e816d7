package game

import (
	"fmt"
	"sort"
)

type QuestID uint64

type ObjectiveKind string

const (
	ObjectiveCollectItem   ObjectiveKind = "collect_item"
	ObjectiveCollectGold   ObjectiveKind = "collect_gold"
	ObjectiveReachJobLevel ObjectiveKind = "reach_job_level"
	ObjectiveReachLevel    ObjectiveKind = "reach_level"
)

// Objective is a tagged union: ItemID is read for collect_item and Job for
// reach_job_level.
type Objective struct {
	Kind   ObjectiveKind `json:"kind" jsonschema:"enum=collect_item,enum=collect_gold,enum=reach_job_level,enum=reach_level"`
	ItemID ItemID        `json:"item_id,omitempty"`
	Job    JobName       `json:"job,omitempty"`
}

type Goal struct {
	Objective      Objective `json:"objective"`
	RequiredAmount uint64    `json:"required_amount"`
}

// Reward components are independent; any of them may be absent.
type Reward struct {
	Experience *ExperienceReward `json:"experience,omitempty"`
	Items      []Item            `json:"items,omitempty"`
	Gold       uint64            `json:"gold,omitempty"`
}

// QuestData is the static definition of a quest.
type QuestData struct {
	ID          QuestID `json:"id" jsonschema:"minimum=1"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Goal        Goal    `json:"goal"`
	Reward      Reward  `json:"reward"`
}

type QuestDatabase map[QuestID]QuestData

func (db QuestDatabase) IDs() []QuestID {
	ids := make([]QuestID, 0, len(db))
	for id := range db {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (db QuestDatabase) Lookup(id QuestID) (QuestData, error) {
	data, ok := db[id]
	if !ok {
		return QuestData{}, fmt.Errorf("quest %d: %w", id, ErrQuestNotFound)
	}
	return data, nil
}

// Validate checks quest goals and rewards against the professions and the
// item database.
func (db QuestDatabase) Validate(items ItemDatabase) error {
	for _, id := range db.IDs() {
		q := db[id]
		obj := q.Goal.Objective
		switch obj.Kind {
		case ObjectiveCollectItem:
			if _, ok := items[obj.ItemID]; !ok {
				return fmt.Errorf("quest %d: goal item %d not in item database", id, obj.ItemID)
			}
		case ObjectiveReachJobLevel:
			if !obj.Job.Valid() {
				return fmt.Errorf("quest %d: %q: %w", id, obj.Job, ErrJobNotFound)
			}
		case ObjectiveCollectGold, ObjectiveReachLevel:
		default:
			return fmt.Errorf("quest %d: unknown objective %q", id, obj.Kind)
		}
		if xp := q.Reward.Experience; xp != nil && !xp.Job.Valid() {
			return fmt.Errorf("quest %d reward: %q: %w", id, xp.Job, ErrJobNotFound)
		}
		for _, item := range q.Reward.Items {
			if _, ok := items[item.ID]; !ok {
				return fmt.Errorf("quest %d: reward item %d not in item database", id, item.ID)
			}
		}
	}
	return nil
}

// Current evaluates the objective against live player state.
func (o Objective) Current(p *Player) uint64 {
	switch o.Kind {
	case ObjectiveCollectItem:
		return p.Inventory.ItemQuantity(o.ItemID)
	case ObjectiveCollectGold:
		return p.Inventory.Gold
	case ObjectiveReachJobLevel:
		if job, ok := p.Job(o.Job); ok {
			return uint64(job.Level)
		}
		return 0
	case ObjectiveReachLevel:
		return uint64(p.Level)
	default:
		return 0
	}
}

// Quest is the per-save completion record for a QuestData entry.
type Quest struct {
	ID        QuestID `json:"id"`
	Completed bool    `json:"completed"`
}

func (q Quest) Progress(data QuestData, p *Player) uint64 {
	return data.Goal.Objective.Current(p)
}

func (q Quest) CheckCompletion(data QuestData, p *Player) bool {
	return q.Progress(data, p) >= data.Goal.RequiredAmount
}

// Complete grants the quest reward once. It reports false without error when
// the quest is already completed or its goal is not met yet.
func (q *Quest) Complete(p *Player, db QuestDatabase) (bool, error) {
	data, err := db.Lookup(q.ID)
	if err != nil {
		return false, err
	}
	if q.Completed || !q.CheckCompletion(data, p) {
		return false, nil
	}

	reward := data.Reward
	if reward.Experience != nil {
		if _, ok := p.Job(reward.Experience.Job); !ok {
			return false, fmt.Errorf("quest %d reward: %s: %w", q.ID, reward.Experience.Job, ErrJobNotFound)
		}
		// A failed grant leaves the player and the quest unchanged.
		if err := p.AddExperience(reward.Experience.Job, reward.Experience.Amount); err != nil {
			return false, fmt.Errorf("quest %d reward: %w", q.ID, err)
		}
	}
	for _, item := range reward.Items {
		p.AddItem(item)
	}
	if reward.Gold > 0 {
		p.AddGold(reward.Gold)
	}
	q.Completed = true
	return true, nil
}

// SyncQuests returns one Quest per database entry in id order, keeping the
// completion flags from saved.
func SyncQuests(saved []Quest, db QuestDatabase) []Quest {
	done := make(map[QuestID]bool, len(saved))
	for _, q := range saved {
		if q.Completed {
			done[q.ID] = true
		}
	}
	ids := db.IDs()
	out := make([]Quest, 0, len(ids))
	for _, id := range ids {
		out = append(out, Quest{ID: id, Completed: done[id]})
	}
	return out
}
