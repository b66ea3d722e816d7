package ui

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appengine-ltd/idlecraft/internal/parser"
	"github.com/appengine-ltd/idlecraft/internal/save"
	"github.com/appengine-ltd/idlecraft/internal/session"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string
	Autosave  time.Duration
	// TickRate is how often the terminal advances the session.
	TickRate time.Duration
	Store    *save.Store
	Session  *session.Session
	Logger   *log.Logger
}

// App is the terminal client. It renders the session snapshot and reads
// commands from a single input line.
type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 100 * time.Millisecond
	}
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	m := newModel(a.cfg, time.Now())
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(model); ok && !fm.saved && a.cfg.Store != nil {
		return a.cfg.Session.Save(a.cfg.Store)
	}
	return nil
}

type model struct {
	cfg    AppConfig
	parser *parser.Parser
	input  string
	width  int
	height int
	last   time.Time
	// saved is set once the exit save has been written.
	saved bool
}

type tickMsg struct {
	at time.Time
}

func newModel(cfg AppConfig, now time.Time) model {
	return model{cfg: cfg, parser: parser.New(), last: now}
}

func tickCmd(rate time.Duration) tea.Cmd {
	return tea.Tick(rate, func(t time.Time) tea.Msg { return tickMsg{at: t} })
}

func (m model) Init() tea.Cmd {
	return tickCmd(m.cfg.TickRate)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tickMsg:
		if msg.at.After(m.last) {
			m.cfg.Session.Tick(msg.at.Sub(m.last))
			m.last = msg.at
		}
		if m.cfg.Session.AutosaveDue(m.cfg.Autosave) {
			m.save()
		}
		return m, tickCmd(m.cfg.TickRate)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m.quit()
	case tea.KeyEnter:
		line := m.input
		m.input = ""
		out, err := execute(m.cfg.Session, m.parser, line)
		if err != nil {
			m.logf("command %q: %v", line, err)
			m.cfg.Session.Notify(err.Error())
		}
		switch out {
		case outcomeSave:
			m.save()
		case outcomeQuit:
			return m.quit()
		}
		return m, nil
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
		return m, nil
	case tea.KeySpace:
		m.input += " "
		return m, nil
	case tea.KeyRunes:
		m.input += string(msg.Runes)
		return m, nil
	}
	return m, nil
}

func (m *model) save() {
	if m.cfg.Store == nil {
		return
	}
	if err := m.cfg.Session.Save(m.cfg.Store); err != nil {
		m.cfg.Session.Notify("Save failed: " + err.Error())
		return
	}
	m.cfg.Session.Notify("Game saved.")
}

func (m model) quit() (tea.Model, tea.Cmd) {
	if m.cfg.Store != nil {
		if err := m.cfg.Session.Save(m.cfg.Store); err != nil {
			m.logf("exit save: %v", err)
		} else {
			m.saved = true
		}
	}
	return m, tea.Quit
}

func (m model) logf(format string, args ...any) {
	if m.cfg.Logger != nil {
		m.cfg.Logger.Printf(format, args...)
	}
}
