package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	configFilename   = "config.toml"
	databaseFilename = "amiibos.json"
	logFilename      = "amiibogen.log"

	// DefaultAPIURL is the AmiiboAPI endpoint the database is pulled from.
	DefaultAPIURL = "https://www.amiiboapi.com/api/amiibo/"
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme:        "dracula",
		DataDir:      defaultDataDir(),
		APIURL:       DefaultAPIURL,
		VisibleItems: 38,
		ImageHeight:  150,
		Keys: InputConfig{
			Up:       []string{"up", "k"},
			Down:     []string{"down", "j"},
			JumpUp:   []string{"left", "h"},
			JumpDown: []string{"right", "l"},
			PageUp:   []string{"pgup", "ctrl+u"},
			PageDown: []string{"pgdown", "ctrl+d"},
			Toggle:   []string{" ", "enter"},

			ToggleAll: "a",
			Images:    "i",
			Sort:      "s",
			Generate:  "g",
			Delete:    "x",
			Update:    "u",
			Exit:      "q",
			Continue:  "b",
		},
	}
}

// ApplyDefaults fills any unset fields with the defaults from DefaultConfig.
// Loaded config files may be partial; only what they set survives.
func (c *Config) ApplyDefaults() {
	def := DefaultConfig()
	if c.Theme == "" {
		c.Theme = def.Theme
	}
	if c.DataDir == "" {
		c.DataDir = def.DataDir
	}
	if c.APIURL == "" {
		c.APIURL = def.APIURL
	}
	if c.VisibleItems == 0 {
		c.VisibleItems = def.VisibleItems
	}
	if c.ImageHeight == 0 {
		c.ImageHeight = def.ImageHeight
	}
	if len(c.Keys.Up) == 0 {
		c.Keys.Up = def.Keys.Up
	}
	if len(c.Keys.Down) == 0 {
		c.Keys.Down = def.Keys.Down
	}
	if len(c.Keys.JumpUp) == 0 {
		c.Keys.JumpUp = def.Keys.JumpUp
	}
	if len(c.Keys.JumpDown) == 0 {
		c.Keys.JumpDown = def.Keys.JumpDown
	}
	if len(c.Keys.PageUp) == 0 {
		c.Keys.PageUp = def.Keys.PageUp
	}
	if len(c.Keys.PageDown) == 0 {
		c.Keys.PageDown = def.Keys.PageDown
	}
	if len(c.Keys.Toggle) == 0 {
		c.Keys.Toggle = def.Keys.Toggle
	}
	if c.Keys.ToggleAll == "" {
		c.Keys.ToggleAll = def.Keys.ToggleAll
	}
	if c.Keys.Images == "" {
		c.Keys.Images = def.Keys.Images
	}
	if c.Keys.Sort == "" {
		c.Keys.Sort = def.Keys.Sort
	}
	if c.Keys.Generate == "" {
		c.Keys.Generate = def.Keys.Generate
	}
	if c.Keys.Delete == "" {
		c.Keys.Delete = def.Keys.Delete
	}
	if c.Keys.Update == "" {
		c.Keys.Update = def.Keys.Update
	}
	if c.Keys.Exit == "" {
		c.Keys.Exit = def.Keys.Exit
	}
	if c.Keys.Continue == "" {
		c.Keys.Continue = def.Keys.Continue
	}
}

// ClampConfig keeps tunables inside ranges the renderer can cope with.
func ClampConfig(cfg *Config) {
	if cfg.VisibleItems < 4 {
		cfg.VisibleItems = 4
	}
	if cfg.VisibleItems > 200 {
		cfg.VisibleItems = 200
	}
	if cfg.ImageHeight < 32 {
		cfg.ImageHeight = 32
	}
	if cfg.ImageHeight > 1024 {
		cfg.ImageHeight = 1024
	}
}

// defaultDataDir resolves the emuiibo root. On device the SD card is mounted
// under SDCARD_PATH; on a desktop we fall back to the user config dir so the
// browser is usable without a console attached.
func defaultDataDir() string {
	if dir := os.Getenv("AMIIBOGEN_DATA_DIR"); dir != "" {
		return dir
	}
	if sdcard := os.Getenv("SDCARD_PATH"); sdcard != "" {
		return filepath.Join(sdcard, "emuiibo")
	}
	configDir, err := os.UserConfigDir()
	if err != nil || configDir == "" {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return filepath.Join(".", "emuiibo")
		}
		return filepath.Join(home, ".amiibogen", "emuiibo")
	}
	return filepath.Join(configDir, "amiibogen", "emuiibo")
}

// DatabasePath returns the on-disk location of the downloaded catalog document.
func (c Config) DatabasePath() string {
	return filepath.Join(c.DataDir, databaseFilename)
}

// AmiiboDir returns the directory emulated figurine records are written under.
func (c Config) AmiiboDir() string {
	return filepath.Join(c.DataDir, "amiibo")
}

// LogPath returns the log file location inside the data dir.
func (c Config) LogPath() string {
	return filepath.Join(c.DataDir, logFilename)
}

// ConfigPath returns the location of config.toml inside the data dir.
func (c Config) ConfigPath() string {
	return filepath.Join(c.DataDir, configFilename)
}

// Load reads config.toml from the data dir (if present), fills defaults and
// applies environment overrides. A missing file is not an error; a malformed
// one is, so the caller can refuse to run with half a config.
func Load() (Config, error) {
	// Optional .env next to the binary, mirroring how the device launcher
	// exports SDCARD_PATH. Absence is fine.
	_ = godotenv.Load()

	cfg := Config{DataDir: defaultDataDir()}

	path := cfg.ConfigPath()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// first run, defaults only
	case err != nil:
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	default:
		if _, derr := toml.Decode(string(data), &cfg); derr != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, derr)
		}
	}

	cfg.ApplyDefaults()
	applyEnvOverrides(&cfg)
	ClampConfig(&cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if url := os.Getenv("AMIIBOGEN_API_URL"); url != "" {
		cfg.APIURL = url
	}
	if dir := os.Getenv("AMIIBOGEN_DATA_DIR"); dir != "" {
		cfg.DataDir = dir
	}
}

// FileExists reports whether path names an existing regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
