package gui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/idlecraft/internal/game"
	"github.com/appengine-ltd/idlecraft/internal/gui/theme"
	"github.com/appengine-ltd/idlecraft/internal/session"
)

func (ui *gameUI) draw() {
	v := ui.session.Snapshot()
	l := computeLayout(float32(ui.width), float32(ui.height), v)
	mouse := rl.GetMousePosition()

	drawHeaderBar(l.header, v, ui.cfg.Version)
	drawNav(l, v.Screen, mouse)

	switch v.Screen {
	case game.ScreenInventory:
		drawInventory(l.content, v)
	case game.ScreenQuests:
		drawQuests(l, v, mouse)
	case game.ScreenCrafting:
		theme.DrawPanel(l.content, "Crafting")
		theme.DrawHintText("The workshop is not open yet.", int32(l.content.X+theme.PaddingM), int32(l.content.Y+70))
	default:
		drawActivity(l, v, mouse)
	}
	drawMessages(l.log, v.Messages)
}

func drawHeaderBar(rect rl.Rectangle, v session.View, version string) {
	rl.DrawRectangleRec(rect, theme.Panel)
	rl.DrawLineEx(rl.NewVector2(rect.X, rect.Y+rect.Height), rl.NewVector2(rect.X+rect.Width, rect.Y+rect.Height), 2, theme.Border)
	theme.DrawText("IDLECRAFT", int32(rect.X+theme.PaddingL), int32(rect.Y+16), theme.Type.Title, theme.AccentHarvest)
	if version != "" {
		theme.DrawHintText("v"+version, int32(rect.X+theme.PaddingL)+theme.MeasureText("IDLECRAFT", theme.Type.Title)+12, int32(rect.Y+28))
	}

	s := v.Stats
	stats := fmt.Sprintf("HP %d   MP %d   ATK %d   DEF %d   LV %d", s.Health, s.Mana, s.AttackPower, s.Defense, s.Level)
	gold := fmt.Sprintf("%d gold", v.Gold)
	gw := theme.MeasureText(gold, theme.Type.Header)
	sw := theme.MeasureText(stats, theme.Type.Body)
	right := int32(rect.X+rect.Width-theme.PaddingL) - gw
	theme.DrawText(gold, right, int32(rect.Y+20), theme.Type.Header, theme.Gold)
	theme.DrawText(stats, right-sw-32, int32(rect.Y+22), theme.Type.Body, theme.TextSecondary)
}

func drawNav(l layout, current game.Screen, mouse rl.Vector2) {
	theme.DrawPanel(l.nav, "")
	theme.DrawHintText("Press 1-4", int32(l.nav.X+theme.PaddingS), int32(l.nav.Y+theme.PaddingS))
	for i, b := range l.navButtons {
		state := theme.ButtonNormal
		switch {
		case b.screen == current:
			state = theme.ButtonSelected
		case pointIn(b.rect, mouse):
			state = theme.ButtonHover
		}
		theme.DrawButton(b.rect, state, fmt.Sprintf("%d  %s", i+1, b.screen))
	}
	state := theme.ButtonNormal
	if pointIn(l.saveButton, mouse) {
		state = theme.ButtonHover
	}
	theme.DrawButton(l.saveButton, state, "Save (S)")
}

func drawActivity(l layout, v session.View, mouse rl.Vector2) {
	rect := l.content
	theme.DrawPanel(rect, "Activity")
	x := int32(rect.X + theme.PaddingM)
	y := int32(rect.Y + 64)

	if a := v.Activity; a != nil {
		theme.DrawText(a.Description, x, y, theme.Type.Header, theme.TextPrimary)
		y += theme.LineHeight(theme.Type.Header)
		bar := rl.NewRectangle(rect.X+theme.PaddingM, float32(y), rect.Width-2*theme.PaddingM, 22)
		theme.DrawProgressBar(bar, float32(a.Progress), theme.AccentPine)
		y += 30
		theme.DrawHintText(fmt.Sprintf("%s of %s left", a.Remaining.Round(100*time.Millisecond), a.Duration), x, y)
	} else {
		theme.DrawText("Idle. Pick an activity below.", x, y, theme.Type.Body, theme.AccentHarvest)
	}
	y += 44

	theme.DrawHeader("Jobs", x, y)
	y += theme.Type.Header + 18
	rowW := rect.Width - 2*theme.PaddingM
	for _, j := range v.Jobs {
		row := rl.NewRectangle(rect.X+theme.PaddingM, float32(y), rowW, theme.RowHeight)
		progress := "max level"
		if j.NextLevelAt > 0 {
			progress = fmt.Sprintf("%d / %d xp", j.Experience, j.NextLevelAt)
		}
		active := v.Activity != nil && jobFor(v.Activity.Kind) == j.Name
		theme.DrawRow(row, fmt.Sprintf("%s  lv %d", j.Name, j.Level), progress, active)
		y += int32(theme.RowHeight + theme.PaddingXS)
	}

	for _, b := range l.activities {
		state := theme.ButtonNormal
		for _, opt := range v.Activities {
			if opt.Kind == b.kind && opt.Active {
				state = theme.ButtonSelected
			}
		}
		if state == theme.ButtonNormal && pointIn(b.rect, mouse) {
			state = theme.ButtonHover
		}
		theme.DrawButton(b.rect, state, string(b.kind))
	}
}

// jobFor is only used to highlight the job row that the running activity
// trains.
func jobFor(kind game.ActivityKind) game.JobName {
	switch kind {
	case game.ActivityWoodcutting:
		return game.JobWoodcutter
	case game.ActivityMining:
		return game.JobMiner
	case game.ActivityFarming:
		return game.JobFarmer
	}
	return ""
}

func drawInventory(rect rl.Rectangle, v session.View) {
	theme.DrawPanel(rect, "Inventory")
	x := int32(rect.X + theme.PaddingM)
	y := int32(rect.Y + 64)
	theme.DrawText(fmt.Sprintf("Gold: %d", v.Gold), x, y, theme.Type.Header, theme.Gold)
	y += theme.LineHeight(theme.Type.Header) + 8

	if len(v.Items) == 0 {
		theme.DrawHintText("Your bag is empty.", x, y)
		return
	}
	rowW := rect.Width - 2*theme.PaddingM
	for _, it := range v.Items {
		if float32(y)+theme.RowHeight > rect.Y+rect.Height {
			break
		}
		row := rl.NewRectangle(rect.X+theme.PaddingM, float32(y), rowW, theme.RowHeight)
		theme.DrawRow(row, it.Name, fmt.Sprintf("x%d", it.Quantity), false)
		y += int32(theme.RowHeight + theme.PaddingXS)
	}
}

func drawQuests(l layout, v session.View, mouse rl.Vector2) {
	theme.DrawPanel(l.content, "Quests")
	for i, b := range l.quests {
		if i >= len(v.Quests) || b.row.Y+b.row.Height > l.content.Y+l.content.Height {
			break
		}
		q := v.Quests[i]
		rl.DrawRectangleRounded(b.row, theme.CornerRadius, theme.CornerSegments, rl.Fade(theme.PanelRaised, 0.5))
		tx := int32(b.row.X + theme.PaddingS)
		nameColor := theme.TextPrimary
		if q.Completed {
			nameColor = theme.TextMuted
		}
		theme.DrawText(q.Name, tx, int32(b.row.Y+8), theme.Type.Body, nameColor)
		theme.DrawHintText(fmt.Sprintf("%s  %d/%d", q.Objective, min(q.Current, q.Required), q.Required), tx, int32(b.row.Y+34))

		switch {
		case q.Completed:
			theme.DrawButton(b.rect, theme.ButtonDisabled, "Done")
		case q.Ready:
			state := theme.ButtonSelected
			if pointIn(b.rect, mouse) {
				state = theme.ButtonHover
			}
			theme.DrawButton(b.rect, state, "Complete")
		default:
			theme.DrawButton(b.rect, theme.ButtonDisabled, "Complete")
		}
	}
}

func drawMessages(rect rl.Rectangle, messages []string) {
	theme.DrawPanel(rect, "")
	size := theme.Type.Small
	step := theme.LineHeight(size)
	maxLines := int(int32(rect.Height-2*theme.PaddingS) / step)
	if len(messages) > maxLines {
		messages = messages[len(messages)-maxLines:]
	}
	y := int32(rect.Y + theme.PaddingS)
	for i, msg := range messages {
		clr := theme.TextSecondary
		if i == len(messages)-1 {
			clr = theme.TextPrimary
		}
		theme.DrawText(msg, int32(rect.X+theme.PaddingS), y, size, clr)
		y += step
	}
}
