// Package config resolves runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/appengine-ltd/idlecraft/internal/gamedata"
)

const (
	DefaultEnvFile  = ".env"
	DefaultSavePath = "idlecraft-save.json"
	DefaultLogPath  = "idlecraft.log"
	DefaultAutosave = time.Minute
	DefaultFPS      = 60
)

const (
	envSavePath    = "IDLECRAFT_SAVE_PATH"
	envItemsPath   = "IDLECRAFT_ITEMS_PATH"
	envQuestsPath  = "IDLECRAFT_QUESTS_PATH"
	envBalancePath = "IDLECRAFT_BALANCE_PATH"
	envLogPath     = "IDLECRAFT_LOG_PATH"
	envAutosave    = "IDLECRAFT_AUTOSAVE"
	envFPS         = "IDLECRAFT_FPS"
)

type Config struct {
	SavePath string
	LogPath  string
	Autosave time.Duration
	FPS      int32
	Data     gamedata.Paths
}

// Load reads envFile into the process environment (variables already set
// win) and builds a Config. A missing env file is not an error.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from lookup, applying defaults for unset keys.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Config{
		SavePath: stringOr(lookup, envSavePath, DefaultSavePath),
		LogPath:  stringOr(lookup, envLogPath, DefaultLogPath),
		Autosave: DefaultAutosave,
		FPS:      DefaultFPS,
		Data: gamedata.Paths{
			Items:   stringOr(lookup, envItemsPath, ""),
			Quests:  stringOr(lookup, envQuestsPath, ""),
			Balance: stringOr(lookup, envBalancePath, ""),
		},
	}

	if raw, ok := lookup(envAutosave); ok && strings.TrimSpace(raw) != "" {
		d, err := parseInterval(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", envAutosave, err)
		}
		cfg.Autosave = d
	}
	if raw, ok := lookup(envFPS); ok && strings.TrimSpace(raw) != "" {
		fps, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || fps < 1 || fps > 240 {
			return Config{}, fmt.Errorf("%s must be between 1 and 240, got %q", envFPS, raw)
		}
		cfg.FPS = int32(fps)
	}
	if strings.TrimSpace(cfg.SavePath) == "" {
		return Config{}, fmt.Errorf("%s must not be empty", envSavePath)
	}
	return cfg, nil
}

func parseInterval(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative interval %s", d)
	}
	return d, nil
}

// stringOr keeps explicitly empty values so a blank log path can disable
// logging.
func stringOr(lookup func(string) (string, bool), key, fallback string) string {
	if v, ok := lookup(key); ok {
		return strings.TrimSpace(v)
	}
	return fallback
}
