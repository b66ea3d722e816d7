package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/idlecraft/internal/game"
	"github.com/appengine-ltd/idlecraft/internal/gui/theme"
	"github.com/appengine-ltd/idlecraft/internal/session"
)

const (
	headerHeight = float32(64)
	navWidth     = float32(210)
	logHeight    = float32(168)
	questRowH    = float32(64)
)

// layout is recomputed every frame from the window size and the view so
// hit testing and drawing agree on where things are.
type layout struct {
	header     rl.Rectangle
	nav        rl.Rectangle
	content    rl.Rectangle
	log        rl.Rectangle
	navButtons []navButton
	saveButton rl.Rectangle
	activities []activityButton
	quests     []questButton
}

type navButton struct {
	screen game.Screen
	rect   rl.Rectangle
}

type activityButton struct {
	kind game.ActivityKind
	rect rl.Rectangle
}

type questButton struct {
	id   game.QuestID
	row  rl.Rectangle
	rect rl.Rectangle
}

func computeLayout(width, height float32, v session.View) layout {
	pad := theme.PaddingS
	l := layout{
		header:  rl.NewRectangle(0, 0, width, headerHeight),
		nav:     rl.NewRectangle(pad, headerHeight+pad, navWidth, height-headerHeight-2*pad),
		content: rl.NewRectangle(navWidth+2*pad, headerHeight+pad, width-navWidth-3*pad, height-headerHeight-logHeight-3*pad),
		log:     rl.NewRectangle(navWidth+2*pad, height-logHeight-pad, width-navWidth-3*pad, logHeight),
	}

	y := l.nav.Y + theme.PaddingL + 20
	for _, s := range game.AllScreens() {
		l.navButtons = append(l.navButtons, navButton{
			screen: s,
			rect:   rl.NewRectangle(l.nav.X+pad, y, l.nav.Width-2*pad, theme.ButtonHeight),
		})
		y += theme.ButtonHeight + theme.PaddingXS
	}
	l.saveButton = rl.NewRectangle(l.nav.X+pad, l.nav.Y+l.nav.Height-theme.ButtonHeight-pad, l.nav.Width-2*pad, theme.ButtonHeight)

	switch v.Screen {
	case game.ScreenActivity:
		n := float32(len(v.Activities))
		if n == 0 {
			break
		}
		gap := theme.PaddingS
		bw := (l.content.Width - 2*theme.PaddingM - gap*(n-1)) / n
		by := l.content.Y + l.content.Height - theme.ButtonHeight - theme.PaddingM
		for i, opt := range v.Activities {
			x := l.content.X + theme.PaddingM + float32(i)*(bw+gap)
			l.activities = append(l.activities, activityButton{kind: opt.Kind, rect: rl.NewRectangle(x, by, bw, theme.ButtonHeight)})
		}
	case game.ScreenQuests:
		ry := l.content.Y + theme.PaddingL + 32
		for _, q := range v.Quests {
			row := rl.NewRectangle(l.content.X+theme.PaddingM, ry, l.content.Width-2*theme.PaddingM, questRowH)
			btn := rl.NewRectangle(row.X+row.Width-130-theme.PaddingS, row.Y+(questRowH-40)/2, 130, 40)
			l.quests = append(l.quests, questButton{id: q.ID, row: row, rect: btn})
			ry += questRowH + theme.PaddingXS
		}
	}
	return l
}

func pointIn(r rl.Rectangle, p rl.Vector2) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// command is what one click or key press asks the window to do.
type command struct {
	intent *session.Intent
	save   bool
	quit   bool
}

// hitTest maps a click at p onto a command. Quest buttons only respond
// while the quest is ready.
func hitTest(l layout, v session.View, p rl.Vector2) (command, bool) {
	for _, b := range l.navButtons {
		if pointIn(b.rect, p) {
			in := session.ChangeScreen(b.screen)
			return command{intent: &in}, true
		}
	}
	if pointIn(l.saveButton, p) {
		return command{save: true}, true
	}
	for _, b := range l.activities {
		if pointIn(b.rect, p) {
			in := session.SelectActivity(b.kind)
			return command{intent: &in}, true
		}
	}
	for i, b := range l.quests {
		if !pointIn(b.rect, p) || i >= len(v.Quests) {
			continue
		}
		q := v.Quests[i]
		if q.Completed || !q.Ready {
			return command{}, false
		}
		in := session.CompleteQuest(b.id)
		return command{intent: &in}, true
	}
	return command{}, false
}
