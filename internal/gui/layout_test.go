package gui

import (
	"testing"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/idlecraft/internal/game"
	"github.com/appengine-ltd/idlecraft/internal/gamedata"
	"github.com/appengine-ltd/idlecraft/internal/session"
)

func newTestSession(t *testing.T) *session.Session {
	t.Helper()
	bundle, err := gamedata.Load(gamedata.Paths{})
	if err != nil {
		t.Fatalf("load bundled data: %v", err)
	}
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return session.New(session.Options{Data: bundle, Now: func() time.Time { return now }})
}

func centre(r rl.Rectangle) rl.Vector2 {
	return rl.NewVector2(r.X+r.Width/2, r.Y+r.Height/2)
}

func TestNavButtonsChangeScreen(t *testing.T) {
	s := newTestSession(t)
	v := s.Snapshot()
	l := computeLayout(1280, 760, v)
	if len(l.navButtons) != len(game.AllScreens()) {
		t.Fatalf("expected one nav button per screen, got %d", len(l.navButtons))
	}
	cmd, ok := hitTest(l, v, centre(l.navButtons[2].rect))
	if !ok || cmd.intent == nil {
		t.Fatalf("expected nav click to produce an intent")
	}
	if cmd.intent.Kind != session.IntentChangeScreen || cmd.intent.Screen != game.ScreenQuests {
		t.Fatalf("expected change to quests, got %s", cmd.intent)
	}
}

func TestActivityButtonsSelectActivity(t *testing.T) {
	s := newTestSession(t)
	v := s.Snapshot()
	l := computeLayout(1280, 760, v)
	if len(l.activities) != len(v.Activities) {
		t.Fatalf("expected one button per activity, got %d", len(l.activities))
	}
	for i, b := range l.activities {
		cmd, ok := hitTest(l, v, centre(b.rect))
		if !ok || cmd.intent == nil || cmd.intent.Activity != v.Activities[i].Kind {
			t.Fatalf("button %d: unexpected command %+v", i, cmd)
		}
		if err := s.Apply(*cmd.intent); err != nil {
			t.Fatalf("apply %s: %v", cmd.intent, err)
		}
	}
}

func TestQuestButtonOnlyWhenReady(t *testing.T) {
	s := newTestSession(t)
	if err := s.Apply(session.ChangeScreen(game.ScreenQuests)); err != nil {
		t.Fatalf("change screen: %v", err)
	}
	v := s.Snapshot()
	l := computeLayout(1280, 1400, v)
	if len(l.quests) != len(v.Quests) {
		t.Fatalf("expected a row per quest, got %d", len(l.quests))
	}
	for i, q := range v.Quests {
		cmd, ok := hitTest(l, v, centre(l.quests[i].rect))
		if ok != q.Ready {
			t.Fatalf("quest %d: ready=%v but click ok=%v", q.ID, q.Ready, ok)
		}
		if ok && cmd.intent.Quest != q.ID {
			t.Fatalf("quest %d: click completes %d", q.ID, cmd.intent.Quest)
		}
	}
}

func TestSaveButtonAndEmptySpace(t *testing.T) {
	s := newTestSession(t)
	v := s.Snapshot()
	l := computeLayout(1280, 760, v)
	if cmd, ok := hitTest(l, v, centre(l.saveButton)); !ok || !cmd.save {
		t.Fatalf("expected save command, got %+v", cmd)
	}
	if _, ok := hitTest(l, v, rl.NewVector2(2, 2)); ok {
		t.Fatalf("header click should do nothing")
	}
}

func TestKeyCommands(t *testing.T) {
	cmd, ok := keyCommand(rl.KeyTwo)
	if !ok || cmd.intent == nil || cmd.intent.Screen != game.ScreenInventory {
		t.Fatalf("expected 2 to open inventory, got %+v", cmd)
	}
	if cmd, _ := keyCommand(rl.KeyS); !cmd.save {
		t.Fatalf("expected S to save")
	}
	if cmd, _ := keyCommand(rl.KeyEscape); !cmd.quit {
		t.Fatalf("expected Esc to quit")
	}
	if _, ok := keyCommand(rl.KeyQ); ok {
		t.Fatalf("expected Q to be unbound")
	}
}
