//go:build cgo

package main

import (
	"github.com/appengine-ltd/idlecraft/internal/gui"
	"github.com/appengine-ltd/idlecraft/internal/ui"
)

func launch(rt *runtime, terminal bool) error {
	if terminal {
		return terminalApp(rt).Run()
	}
	app := gui.NewApp(gui.AppConfig{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		FPS:       rt.cfg.FPS,
		Autosave:  rt.cfg.Autosave,
		Store:     rt.store,
		Session:   rt.session,
		Logger:    rt.logger,
	})
	return app.Run()
}

func terminalApp(rt *runtime) *ui.App {
	return ui.NewApp(ui.AppConfig{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		Autosave:  rt.cfg.Autosave,
		Store:     rt.store,
		Session:   rt.session,
		Logger:    rt.logger,
	})
}
