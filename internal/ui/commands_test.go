package ui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appengine-ltd/idlecraft/internal/game"
	"github.com/appengine-ltd/idlecraft/internal/gamedata"
	"github.com/appengine-ltd/idlecraft/internal/parser"
	"github.com/appengine-ltd/idlecraft/internal/save"
	"github.com/appengine-ltd/idlecraft/internal/session"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestSession(t *testing.T) *session.Session {
	t.Helper()
	bundle, err := gamedata.Load(gamedata.Paths{})
	if err != nil {
		t.Fatalf("load bundled data: %v", err)
	}
	return session.New(session.Options{Data: bundle, Now: func() time.Time { return testNow }})
}

func lastMessage(s *session.Session) string {
	msgs := s.Messages()
	if len(msgs) == 0 {
		return ""
	}
	return msgs[len(msgs)-1]
}

func TestExecuteChopStartsWoodcutting(t *testing.T) {
	s := newTestSession(t)
	if _, err := execute(s, parser.New(), "chop"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	a, ok := s.Player().Activity()
	if !ok || a.Kind != game.ActivityWoodcutting {
		t.Fatalf("expected woodcutting to be running, got %+v (active=%v)", a, ok)
	}
	if s.Screen() != game.ScreenActivity {
		t.Fatalf("expected activity screen, got %s", s.Screen())
	}
}

func TestExecuteScreenCommands(t *testing.T) {
	s := newTestSession(t)
	p := parser.New()
	tests := map[string]game.Screen{
		"inventory": game.ScreenInventory,
		"journal":   game.ScreenQuests,
		"workshop":  game.ScreenCrafting,
		"home":      game.ScreenActivity,
	}
	for in, want := range tests {
		if _, err := execute(s, p, in); err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if s.Screen() != want {
			t.Fatalf("%q: expected screen %s, got %s", in, want, s.Screen())
		}
	}
}

func TestExecuteQuestNotReadyLeavesItOpen(t *testing.T) {
	s := newTestSession(t)
	if _, err := execute(s, parser.New(), "quest 2"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, q := range s.Quests() {
		if q.ID == 2 && q.Completed {
			t.Fatalf("quest 2 should still be open")
		}
	}
	if !strings.Contains(lastMessage(s), "not ready") {
		t.Fatalf("expected not-ready message, got %q", lastMessage(s))
	}
}

func TestExecuteQuestByNameCompletes(t *testing.T) {
	s := newTestSession(t)
	if _, err := execute(s, parser.New(), "claim welcome gift"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if s.Player().Inventory.Gold != 5 {
		t.Fatalf("expected 5 gold from Welcome Gift, got %d", s.Player().Inventory.Gold)
	}
	if _, err := execute(s, parser.New(), "quest 6"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if s.Player().Inventory.Gold != 5 {
		t.Fatalf("completed quest must not pay twice, got %d gold", s.Player().Inventory.Gold)
	}
	if !strings.Contains(lastMessage(s), "already complete") {
		t.Fatalf("expected already-complete message, got %q", lastMessage(s))
	}
}

func TestExecuteUnknownQuestNumber(t *testing.T) {
	s := newTestSession(t)
	if _, err := execute(s, parser.New(), "quest 99"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(lastMessage(s), "no quest") {
		t.Fatalf("expected unknown quest message, got %q", lastMessage(s))
	}
}

func TestExecuteMetaOutcomes(t *testing.T) {
	s := newTestSession(t)
	p := parser.New()
	if out, _ := execute(s, p, "save"); out != outcomeSave {
		t.Fatalf("expected save outcome, got %v", out)
	}
	if out, _ := execute(s, p, "exit"); out != outcomeQuit {
		t.Fatalf("expected quit outcome, got %v", out)
	}
	if out, _ := execute(s, p, "help"); out != outcomeNone || !strings.Contains(lastMessage(s), "Commands:") {
		t.Fatalf("expected help text, got %q", lastMessage(s))
	}
}

func TestModelTickAdvancesSessionAndQuitSaves(t *testing.T) {
	s := newTestSession(t)
	store := save.NewStore(filepath.Join(t.TempDir(), "save.json"))
	if err := s.Apply(session.SelectActivity(game.ActivityMining)); err != nil {
		t.Fatalf("select: %v", err)
	}
	m := newModel(AppConfig{Session: s, Store: store, TickRate: time.Second}, testNow)

	updated, cmd := m.Update(tickMsg{at: testNow.Add(10 * time.Second)})
	if cmd == nil {
		t.Fatalf("expected the next tick to be scheduled")
	}
	m = updated.(model)
	if got := s.Player().Inventory.ItemQuantity(2); got != 1 {
		t.Fatalf("expected one stone after a full cycle, got %d", got)
	}

	updated, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(model)
	if !m.saved {
		t.Fatalf("expected exit save")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit command")
	}
	f, err := store.Load()
	if err != nil {
		t.Fatalf("load save: %v", err)
	}
	if f.Player.Inventory.ItemQuantity(2) != 1 {
		t.Fatalf("expected saved stone, got %d", f.Player.Inventory.ItemQuantity(2))
	}
}

func TestModelTypingAndEnter(t *testing.T) {
	s := newTestSession(t)
	m := newModel(AppConfig{Session: s}, testNow)
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("farmx")},
		{Type: tea.KeyBackspace},
		{Type: tea.KeyEnter},
	} {
		updated, _ := m.Update(msg)
		m = updated.(model)
	}
	if m.input != "" {
		t.Fatalf("expected input cleared, got %q", m.input)
	}
	a, ok := s.Player().Activity()
	if !ok || a.Kind != game.ActivityFarming {
		t.Fatalf("expected farming after typing farm, got %+v", a)
	}
	if !strings.Contains(m.View(), "Farming") {
		t.Fatalf("expected view to show the running activity")
	}
}
