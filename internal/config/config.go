package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"go.uber.org/zap/zapcore"

	"monthcal/internal/storage"
)

const (
	DefaultConfigFileName = "config.toml"
	AppDirName            = "monthcal"
	ConfigPathEnv         = "MONTHCAL_CONFIG"
)

type Keymap struct {
	Quit      string `toml:"quit"`
	Up        string `toml:"up"`
	Down      string `toml:"down"`
	Left      string `toml:"left"`
	Right     string `toml:"right"`
	Open      string `toml:"open"`
	NextMonth string `toml:"next_month"`
	PrevMonth string `toml:"prev_month"`
	NextYear  string `toml:"next_year"`
	PrevYear  string `toml:"prev_year"`
	Today     string `toml:"today"`
	Add       string `toml:"add"`
	Delete    string `toml:"delete"`
	Close     string `toml:"close"`
}

type Config struct {
	Store        string `toml:"store"`
	LogPath      string `toml:"log_path"`
	LogLevel     string `toml:"log_level"`
	Locale       string `toml:"locale"`
	Legacy31Days bool   `toml:"legacy_31_days"`
	Keys         Keymap `toml:"keys"`
}

// ResolveConfigPath honors MONTHCAL_CONFIG, then the user config directory,
// then the working directory.
func ResolveConfigPath() string {
	if p := strings.TrimSpace(os.Getenv(ConfigPathEnv)); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, AppDirName, DefaultConfigFileName)
}

func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch strings.ToLower(c.Store) {
	case storage.BackendMemory, storage.BackendSQLite:
	default:
		return fmt.Errorf("unknown store %q", c.Store)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

func write(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// fillDefaults restores entries a hand-edited file left blank.
func (c *Config) fillDefaults() {
	d := Default()
	if c.Store == "" {
		c.Store = d.Store
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	c.Store = strings.ToLower(strings.TrimSpace(c.Store))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	keys := []struct {
		v   *string
		def string
	}{
		{&c.Keys.Quit, d.Keys.Quit},
		{&c.Keys.Up, d.Keys.Up},
		{&c.Keys.Down, d.Keys.Down},
		{&c.Keys.Left, d.Keys.Left},
		{&c.Keys.Right, d.Keys.Right},
		{&c.Keys.Open, d.Keys.Open},
		{&c.Keys.NextMonth, d.Keys.NextMonth},
		{&c.Keys.PrevMonth, d.Keys.PrevMonth},
		{&c.Keys.NextYear, d.Keys.NextYear},
		{&c.Keys.PrevYear, d.Keys.PrevYear},
		{&c.Keys.Today, d.Keys.Today},
		{&c.Keys.Add, d.Keys.Add},
		{&c.Keys.Delete, d.Keys.Delete},
		{&c.Keys.Close, d.Keys.Close},
	}
	for _, k := range keys {
		if *k.v == "" {
			*k.v = k.def
		}
	}
}

func Default() Config {
	return Config{
		Store:    storage.BackendMemory,
		LogPath:  defaultLogPath(),
		LogLevel: "info",
		Keys: Keymap{
			Quit:      "q",
			Up:        "k",
			Down:      "j",
			Left:      "h",
			Right:     "l",
			Open:      "enter",
			NextMonth: "n",
			PrevMonth: "p",
			NextYear:  "N",
			PrevYear:  "P",
			Today:     "t",
			Add:       "enter",
			Delete:    "ctrl+d",
			Close:     "esc",
		},
	}
}

func defaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppDirName, "monthcal.log")
}
