package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/idlecraft/internal/game"
	"github.com/appengine-ltd/idlecraft/internal/session"
)

// --- Styles (retro green) ---
var (
	green       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	brightGreen = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	dimGreen    = lipgloss.NewStyle().Foreground(lipgloss.Color("22"))
	amber       = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	panel       = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("2")).Padding(0, 1)
)

const (
	barWidth      = 30
	messageLines  = 6
	minPanelWidth = 40
)

func (m model) View() string {
	v := m.cfg.Session.Snapshot()

	var b strings.Builder
	b.WriteString(brightGreen.Render("IDLECRAFT"))
	if m.cfg.Version != "" {
		b.WriteString(dimGreen.Render("  v" + m.cfg.Version))
	}
	b.WriteString("\n")
	b.WriteString(renderNav(v.Screen))
	b.WriteString("\n")

	var body string
	switch v.Screen {
	case game.ScreenInventory:
		body = renderInventory(v)
	case game.ScreenQuests:
		body = renderQuests(v)
	case game.ScreenCrafting:
		body = green.Render("The workshop is not open yet.")
	default:
		body = renderActivity(v)
	}
	width := m.width - 4
	if width < minPanelWidth {
		width = minPanelWidth
	}
	b.WriteString(panel.Width(width).Render(body))
	b.WriteString("\n")
	b.WriteString(renderMessages(v.Messages))
	b.WriteString("\n")
	b.WriteString(brightGreen.Render("> ") + green.Render(m.input) + brightGreen.Render("_"))
	b.WriteString("\n")
	b.WriteString(dimGreen.Render("type help for commands, Esc to save and quit"))
	return b.String()
}

func renderNav(current game.Screen) string {
	parts := make([]string, 0, len(game.AllScreens()))
	for _, s := range game.AllScreens() {
		if s == current {
			parts = append(parts, brightGreen.Render("["+s.String()+"]"))
			continue
		}
		parts = append(parts, dimGreen.Render(" "+s.String()+" "))
	}
	return strings.Join(parts, " ")
}

func renderActivity(v session.View) string {
	var b strings.Builder
	s := v.Stats
	b.WriteString(green.Render(fmt.Sprintf("HP %d  MP %d  ATK %d  DEF %d  LV %d  Gold %d", s.Health, s.Mana, s.AttackPower, s.Defense, s.Level, v.Gold)))
	b.WriteString("\n\n")

	if v.Activity != nil {
		a := v.Activity
		b.WriteString(brightGreen.Render(a.Description))
		b.WriteString("  ")
		b.WriteString(progressBar(a.Progress, barWidth))
		b.WriteString(dimGreen.Render(fmt.Sprintf("  %s left", a.Remaining.Round(100*time.Millisecond))))
	} else {
		b.WriteString(amber.Render("Idle. Start an activity with chop, mine or farm."))
	}
	b.WriteString("\n\n")

	for _, j := range v.Jobs {
		next := "max"
		if j.NextLevelAt > 0 {
			next = fmt.Sprintf("%d/%d xp", j.Experience, j.NextLevelAt)
		}
		b.WriteString(green.Render(fmt.Sprintf("%-11s lv %-3d %s", j.Name, j.Level, next)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	for _, opt := range v.Activities {
		marker := "  "
		if opt.Active {
			marker = "> "
		}
		b.WriteString(dimGreen.Render(fmt.Sprintf("%s%-12s %s per cycle", marker, opt.Kind, opt.Duration)))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderInventory(v session.View) string {
	var b strings.Builder
	b.WriteString(brightGreen.Render(fmt.Sprintf("Gold: %d", v.Gold)))
	b.WriteString("\n\n")
	if len(v.Items) == 0 {
		b.WriteString(dimGreen.Render("Your bag is empty."))
		return b.String()
	}
	for _, it := range v.Items {
		b.WriteString(green.Render(fmt.Sprintf("%-14s x%d", it.Name, it.Quantity)))
		if it.Description != "" {
			b.WriteString(dimGreen.Render("  " + it.Description))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderQuests(v session.View) string {
	var b strings.Builder
	for _, q := range v.Quests {
		line := fmt.Sprintf("%d. %-17s %s %d/%d", q.ID, q.Name, q.Objective, q.Current, q.Required)
		switch {
		case q.Completed:
			b.WriteString(dimGreen.Render(line + "  done"))
		case q.Ready:
			b.WriteString(amber.Render(line + fmt.Sprintf("  ready: quest %d", q.ID)))
		default:
			b.WriteString(green.Render(line))
		}
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		return dimGreen.Render("No quests.")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderMessages(messages []string) string {
	if len(messages) > messageLines {
		messages = messages[len(messages)-messageLines:]
	}
	lines := make([]string, 0, messageLines)
	for _, msg := range messages {
		lines = append(lines, dimGreen.Render(msg))
	}
	for len(lines) < messageLines {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func progressBar(progress float64, width int) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	filled := int(progress * float64(width))
	return brightGreen.Render(strings.Repeat("#", filled)) + dimGreen.Render(strings.Repeat("-", width-filled))
}
