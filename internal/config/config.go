package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	DefaultConfigFileName = "config.toml"
	AppDirName            = "tasklist"
	EnvPrefix             = "TASKLIST"
)

var validFilters = []string{"all", "done", "undone"}

type Keymap struct {
	Quit    string `toml:"quit"`
	Add     string `toml:"add"`
	Up      string `toml:"up"`
	Down    string `toml:"down"`
	Toggle  string `toml:"toggle"`
	Delete  string `toml:"delete"`
	Detail  string `toml:"detail"`
	Confirm string `toml:"confirm"`
	Cancel  string `toml:"cancel"`
	Edit    string `toml:"edit"`
	Filter  string `toml:"filter"`
}

type Config struct {
	DefaultFilter string `toml:"default_filter"`
	LogPath       string `toml:"log_path"`
	Keys          Keymap `toml:"keys"`
}

// ResolveConfigPath prefers TASKLIST_CONFIG, then the user config dir, then
// the working directory.
func ResolveConfigPath() string {
	v := env()
	if p := strings.TrimSpace(v.GetString("config")); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, AppDirName, DefaultConfigFileName)
}

func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return applyEnv(cfg)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.Keys = fillKeys(cfg.Keys, defaultConfig().Keys)
	return applyEnv(cfg)
}

// applyEnv lets TASKLIST_LOG_PATH and TASKLIST_DEFAULT_FILTER override the file.
func applyEnv(cfg Config) (Config, error) {
	v := env()
	if p := v.GetString("log_path"); p != "" {
		cfg.LogPath = p
	}
	if f := v.GetString("default_filter"); f != "" {
		cfg.DefaultFilter = f
	}
	cfg.DefaultFilter = strings.ToLower(strings.TrimSpace(cfg.DefaultFilter))
	if cfg.DefaultFilter == "" {
		cfg.DefaultFilter = "all"
	}
	if !validFilter(cfg.DefaultFilter) {
		return cfg, fmt.Errorf("default_filter %q: want one of %s", cfg.DefaultFilter, strings.Join(validFilters, ", "))
	}
	return cfg, nil
}

func env() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func fillKeys(k, def Keymap) Keymap {
	fill := func(v *string, d string) {
		if *v == "" {
			*v = d
		}
	}
	fill(&k.Quit, def.Quit)
	fill(&k.Add, def.Add)
	fill(&k.Up, def.Up)
	fill(&k.Down, def.Down)
	fill(&k.Toggle, def.Toggle)
	fill(&k.Delete, def.Delete)
	fill(&k.Detail, def.Detail)
	fill(&k.Confirm, def.Confirm)
	fill(&k.Cancel, def.Cancel)
	fill(&k.Edit, def.Edit)
	fill(&k.Filter, def.Filter)
	return k
}

func validFilter(f string) bool {
	for _, v := range validFilters {
		if f == v {
			return true
		}
	}
	return false
}

func Default() Config {
	return defaultConfig()
}

func defaultConfig() Config {
	return Config{
		DefaultFilter: "all",
		Keys: Keymap{
			Quit:    "q",
			Add:     "a",
			Up:      "k",
			Down:    "j",
			Toggle:  " ",
			Delete:  "d",
			Detail:  "enter",
			Confirm: "enter",
			Cancel:  "esc",
			Edit:    "e",
			Filter:  "f",
		},
	}
}
