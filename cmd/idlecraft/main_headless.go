//go:build !cgo

package main

import "github.com/appengine-ltd/idlecraft/internal/ui"

// Without cgo there is no raylib window, so the terminal client always runs.
func launch(rt *runtime, _ bool) error {
	app := ui.NewApp(ui.AppConfig{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		Autosave:  rt.cfg.Autosave,
		Store:     rt.store,
		Session:   rt.session,
		Logger:    rt.logger,
	})
	return app.Run()
}
