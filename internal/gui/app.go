package gui

import (
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/idlecraft/internal/gui/theme"
	"github.com/appengine-ltd/idlecraft/internal/save"
	"github.com/appengine-ltd/idlecraft/internal/session"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string
	FPS       int32
	Autosave  time.Duration
	Store     *save.Store
	Session   *session.Session
	Logger    *log.Logger
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	if cfg.FPS <= 0 {
		cfg.FPS = 60
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	return &App{cfg: cfg}
}

type gameUI struct {
	cfg      AppConfig
	session  *session.Session
	width    int32
	height   int32
	lastTick time.Time
	quit     bool
}

func (a *App) Run() error {
	ui := &gameUI{
		cfg:      a.cfg,
		session:  a.cfg.Session,
		width:    1280,
		height:   760,
		lastTick: time.Now(),
	}
	return ui.Run()
}

func (ui *gameUI) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(ui.width, ui.height, "idlecraft")
	rl.SetExitKey(0)
	rl.SetTargetFPS(ui.cfg.FPS)
	defaultFont := rl.GetFontDefault()
	rl.SetTextureFilter(defaultFont.Texture, rl.FilterBilinear)

	for !ui.quit && !rl.WindowShouldClose() {
		now := time.Now()
		delta := now.Sub(ui.lastTick)
		if delta < 0 {
			delta = 0
		}
		ui.lastTick = now

		ui.width = int32(rl.GetScreenWidth())
		ui.height = int32(rl.GetScreenHeight())

		ui.update(delta)

		rl.BeginDrawing()
		rl.ClearBackground(theme.BG)
		ui.draw()
		rl.EndDrawing()
	}

	rl.CloseWindow()
	return ui.saveNow()
}

func (ui *gameUI) update(delta time.Duration) {
	ui.session.Tick(delta)

	for _, cmd := range pressedCommands() {
		ui.run(cmd)
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		v := ui.session.Snapshot()
		l := computeLayout(float32(ui.width), float32(ui.height), v)
		if cmd, ok := hitTest(l, v, rl.GetMousePosition()); ok {
			ui.run(cmd)
		}
	}

	if ui.session.AutosaveDue(ui.cfg.Autosave) {
		if err := ui.saveNow(); err == nil {
			ui.session.Notify("Autosaved.")
		}
	}
}

func (ui *gameUI) run(cmd command) {
	switch {
	case cmd.quit:
		ui.quit = true
	case cmd.save:
		if err := ui.saveNow(); err == nil {
			ui.session.Notify("Game saved.")
		}
	case cmd.intent != nil:
		if err := ui.session.Apply(*cmd.intent); err != nil {
			ui.cfg.Logger.Printf("%s: %v", cmd.intent, err)
			ui.session.Notify(err.Error())
		}
	}
}

func (ui *gameUI) saveNow() error {
	if ui.cfg.Store == nil {
		return nil
	}
	if err := ui.session.Save(ui.cfg.Store); err != nil {
		ui.session.Notify("Save failed: " + err.Error())
		return err
	}
	return nil
}
