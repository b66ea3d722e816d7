// Package session owns one running game: the player, the per-save quest log
// and the reference data, and advances them from frame ticks and intents.
package session

import (
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/appengine-ltd/idlecraft/internal/game"
	"github.com/appengine-ltd/idlecraft/internal/gamedata"
	"github.com/appengine-ltd/idlecraft/internal/save"
)

const maxMessages = 200

type Options struct {
	Data   *gamedata.Bundle
	Logger *log.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

type Session struct {
	data *gamedata.Bundle
	log  *log.Logger
	now  func() time.Time

	player game.Player
	quests []game.Quest
	screen game.Screen
	saveID uuid.UUID

	messages []string
	lastSave time.Time
}

// New starts a fresh game.
func New(opts Options) *Session {
	s := newSession(opts)
	s.player = game.NewPlayer(s.data.LevelCurve)
	s.quests = game.SyncQuests(nil, s.data.Quests)
	s.screen = game.ScreenActivity
	return s
}

// Restore resumes from f without applying offline time; see CatchUp.
func Restore(opts Options, f save.File) *Session {
	s := newSession(opts)
	s.player = f.Player
	s.player.EnsureJobs(s.data.LevelCurve)
	if s.player.CurrentActivity != nil {
		s.player.CurrentActivity.ClampTimer()
	}
	s.quests = game.SyncQuests(f.Quests, s.data.Quests)
	s.screen = f.Screen
	if !s.screen.Valid() {
		s.screen = game.ScreenActivity
	}
	s.saveID = f.SaveID
	return s
}

// Open loads the store and catches up on the time since the save. Any load
// failure starts a fresh game instead.
func Open(opts Options, store *save.Store) *Session {
	f, err := store.Load()
	if err != nil {
		s := New(opts)
		if save.IsMissing(err) {
			s.log.Printf("no save at %s, starting fresh", store.Path)
		} else {
			s.log.Printf("unreadable save, starting fresh: %v", err)
			s.appendMessage("Save file could not be read; started a new game.")
		}
		return s
	}

	s := Restore(opts, f)
	elapsed := save.Elapsed(f.SavedAt(), s.now())
	s.log.Printf("loaded save %s from %s, %s since last save", f.SaveID, store.Path, elapsed.Round(time.Second))
	if _, err := s.CatchUp(elapsed); err != nil {
		s.log.Printf("catch-up failed: %v", err)
	}
	return s
}

func newSession(opts Options) *Session {
	s := &Session{
		data: opts.Data,
		log:  opts.Logger,
		now:  opts.Now,
	}
	if s.log == nil {
		s.log = log.New(io.Discard, "", 0)
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.lastSave = s.now()
	return s
}

// Tick advances the current activity by one frame.
func (s *Session) Tick(delta time.Duration) {
	if delta <= 0 {
		return
	}
	before := s.jobLevels()
	if _, err := s.player.Update(delta); err != nil {
		s.haltActivity(err)
		return
	}
	s.announceLevelUps(before)
}

// CatchUp applies offline progress in one step and returns the cycles
// granted.
func (s *Session) CatchUp(elapsed time.Duration) (int, error) {
	activity, ok := s.player.Activity()
	if !ok || elapsed <= 0 {
		return 0, nil
	}
	before := s.jobLevels()
	cycles, err := s.player.UpdateFromTimeElapsed(elapsed)
	if err != nil {
		s.haltActivity(err)
		return 0, err
	}
	s.log.Printf("catch-up: %s elapsed, %d %s cycles", elapsed.Round(time.Second), cycles, activity.Kind)
	if cycles > 0 {
		s.appendMessage(fmt.Sprintf("While you were away (%s): %d %s cycles completed.", elapsed.Round(time.Second), cycles, activity.Kind))
	}
	s.announceLevelUps(before)
	return cycles, nil
}

func (s *Session) Apply(intent Intent) error {
	switch intent.Kind {
	case IntentSelectActivity:
		activity, err := s.data.Activities.New(intent.Activity)
		if err != nil {
			return err
		}
		s.player.SetActivity(activity)
		s.appendMessage(fmt.Sprintf("Started %s.", activity.Kind))
		return nil
	case IntentCompleteQuest:
		return s.completeQuest(intent.Quest)
	case IntentChangeScreen:
		if !intent.Screen.Valid() {
			return fmt.Errorf("unknown screen %q", intent.Screen)
		}
		s.screen = intent.Screen
		return nil
	default:
		return fmt.Errorf("unsupported intent %s", intent)
	}
}

func (s *Session) completeQuest(id game.QuestID) error {
	idx := -1
	for i := range s.quests {
		if s.quests[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("quest %d: %w", id, game.ErrQuestNotFound)
	}
	quest := &s.quests[idx]
	data, err := s.data.Quests.Lookup(id)
	if err != nil {
		return err
	}
	if quest.Completed {
		return nil
	}

	done, err := quest.Complete(&s.player, s.data.Quests)
	if err != nil {
		s.log.Printf("quest %d: %v", id, err)
		return err
	}
	if !done {
		progress, required := quest.Progress(data, &s.player), data.Goal.RequiredAmount
		s.log.Printf("quest %d (%s) not ready: %d/%d", id, data.Name, progress, required)
		s.appendMessage(fmt.Sprintf("%s is not ready: %d/%d.", data.Name, progress, required))
		return nil
	}
	s.log.Printf("quest %d (%s) completed", id, data.Name)
	s.appendMessage(fmt.Sprintf("Quest complete: %s. %s", data.Name, s.describeReward(data.Reward)))
	return nil
}

// Save writes the session through store and records the save id.
func (s *Session) Save(store *save.Store) error {
	written, err := store.Save(s.SaveFile())
	if err != nil {
		s.log.Printf("save to %s failed: %v", store.Path, err)
		return err
	}
	s.saveID = written.SaveID
	s.lastSave = s.now()
	s.log.Printf("saved %s to %s", s.saveID, store.Path)
	return nil
}

// AutosaveDue reports whether interval has passed since the last save or
// session start. A zero interval disables autosave.
func (s *Session) AutosaveDue(interval time.Duration) bool {
	if interval <= 0 {
		return false
	}
	return s.now().Sub(s.lastSave) >= interval
}

func (s *Session) SaveFile() save.File {
	return save.File{
		FormatVersion: save.FormatVersion,
		SaveID:        s.saveID,
		Screen:        s.screen,
		Player:        s.player,
		Quests:        append([]game.Quest(nil), s.quests...),
		Timestamp:     s.now().Unix(),
	}
}

func (s *Session) Screen() game.Screen {
	return s.screen
}

func (s *Session) Player() *game.Player {
	return &s.player
}

func (s *Session) Quests() []game.Quest {
	return append([]game.Quest(nil), s.quests...)
}

func (s *Session) Data() *gamedata.Bundle {
	return s.data
}

// Notify appends a client-side message to the session log.
func (s *Session) Notify(message string) {
	s.appendMessage(message)
}

func (s *Session) Messages() []string {
	return append([]string(nil), s.messages...)
}

func (s *Session) haltActivity(err error) {
	s.log.Printf("activity halted: %v", err)
	s.appendMessage(fmt.Sprintf("Activity stopped: %v", err))
	s.player.CurrentActivity = nil
}

func (s *Session) jobLevels() map[game.JobName]int {
	levels := make(map[game.JobName]int, len(s.player.Jobs))
	for _, job := range s.player.Jobs {
		levels[job.Name] = job.Level
	}
	return levels
}

func (s *Session) announceLevelUps(before map[game.JobName]int) {
	for _, job := range s.player.Jobs {
		if job.Level > before[job.Name] {
			s.appendMessage(fmt.Sprintf("%s reached level %d.", job.Name, job.Level))
		}
	}
}

func (s *Session) describeReward(r game.Reward) string {
	parts := make([]string, 0, 3)
	if r.Experience != nil {
		parts = append(parts, fmt.Sprintf("+%d %s xp", r.Experience.Amount, r.Experience.Job))
	}
	for _, item := range r.Items {
		parts = append(parts, fmt.Sprintf("+%d %s", item.Quantity, s.data.Items.Name(item.ID)))
	}
	if r.Gold > 0 {
		parts = append(parts, fmt.Sprintf("+%d gold", r.Gold))
	}
	if len(parts) == 0 {
		return "No reward."
	}
	return strings.Join(parts, ", ") + "."
}

func (s *Session) appendMessage(message string) {
	line := strings.TrimSpace(message)
	if line == "" {
		return
	}
	s.messages = append(s.messages, fmt.Sprintf("[%s] %s", s.now().Format("15:04:05"), line))
	if len(s.messages) > maxMessages {
		s.messages = append([]string(nil), s.messages[len(s.messages)-maxMessages:]...)
	}
}
