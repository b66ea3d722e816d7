package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/appengine-ltd/idlecraft/internal/config"
	"github.com/appengine-ltd/idlecraft/internal/gamedata"
	"github.com/appengine-ltd/idlecraft/internal/save"
	"github.com/appengine-ltd/idlecraft/internal/session"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type flags struct {
	showVersion bool
	terminal    bool
	envFile     string
	savePath    string
}

func parseFlags(args []string) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("idlecraft", flag.ContinueOnError)
	fs.BoolVar(&f.showVersion, "version", false, "print version and exit")
	fs.BoolVar(&f.terminal, "terminal", false, "run the terminal client instead of the window")
	fs.StringVar(&f.envFile, "env", config.DefaultEnvFile, "optional .env file with IDLECRAFT_* settings")
	fs.StringVar(&f.savePath, "save", "", "save file (overrides IDLECRAFT_SAVE_PATH)")
	if err := fs.Parse(args); err != nil {
		return flags{}, err
	}
	return f, nil
}

type runtime struct {
	cfg     config.Config
	logger  *log.Logger
	store   *save.Store
	session *session.Session
	logFile io.Closer
}

// setup resolves configuration, loads the static databases and opens the
// save. A database error is returned; a bad save only starts a new game.
func setup(f flags) (*runtime, error) {
	cfg, err := config.Load(f.envFile)
	if err != nil {
		return nil, err
	}
	if f.savePath != "" {
		cfg.SavePath = f.savePath
	}

	logger, logFile, err := openLog(cfg.LogPath)
	if err != nil {
		return nil, err
	}
	bundle, err := gamedata.Load(cfg.Data)
	if err != nil {
		if logFile != nil {
			_ = logFile.Close()
		}
		return nil, fmt.Errorf("load game data: %w", err)
	}

	store := save.NewStore(cfg.SavePath)
	sess := session.Open(session.Options{Data: bundle, Logger: logger}, store)
	return &runtime{
		cfg:     cfg,
		logger:  logger,
		store:   store,
		session: sess,
		logFile: logFile,
	}, nil
}

func (rt *runtime) Close() error {
	if rt.logFile == nil {
		return nil
	}
	return rt.logFile.Close()
}

func openLog(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard, "", 0), nil, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return log.New(f, "idlecraft ", log.LstdFlags), f, nil
}

func main() {
	f, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if f.showVersion {
		fmt.Printf("Idlecraft %s (%s) %s\n", version, commit, date)
		return
	}

	rt, err := setup(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer rt.Close()

	if err := launch(rt, f.terminal); err != nil {
		rt.logger.Printf("exit: %v", err)
		fmt.Fprintln(os.Stderr, err)
		rt.Close()
		os.Exit(1)
	}
}
