// Package config resolves gtshell settings from defaults, an optional YAML
// file and command-line flags, in that order of precedence.
package config

import (
	"flag"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"gtshell/internal/content"
)

// EnvConfigPath names the env var consulted when -config is not given.
const EnvConfigPath = "GTSHELL_CONFIG"

// MinDrawerWidth is the narrowest drawer that still fits the menu labels.
const MinDrawerWidth = 16

// Config holds the shell's presentation settings.
type Config struct {
	Title       string `yaml:"title"`
	BottomBar   bool   `yaml:"bottom_bar"`
	Fade        bool   `yaml:"fade"`
	DrawerWidth int    `yaml:"drawer_width"`
	DebugLog    string `yaml:"debug_log"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Title:       content.DefaultTitle,
		BottomBar:   false,
		Fade:        true,
		DrawerWidth: 24,
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

// Parse builds a Config from command-line args (without the program name).
// getenv is usually os.Getenv; tests pass a stub.
func Parse(args []string, getenv func(string) string) (Config, error) {
	fs := flag.NewFlagSet("gtshell", flag.ContinueOnError)

	var (
		path        string
		title       string
		bottomBar   bool
		noFade      bool
		drawerWidth int
		debugLog    string
	)
	fs.StringVar(&path, "config", "", "path to a YAML config file (default $"+EnvConfigPath+")")
	fs.StringVar(&title, "title", "", "top bar title")
	fs.BoolVar(&bottomBar, "bottom-bar", false, "show the bottom navigation bar")
	fs.BoolVar(&noFade, "no-fade", false, "disable the screen cross-fade")
	fs.IntVar(&drawerWidth, "drawer-width", 0, "drawer width in columns")
	fs.StringVar(&debugLog, "debug", "", "write debug log to this file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if path == "" && getenv != nil {
		path = getenv(EnvConfigPath)
	}
	cfg, err := Load(path)
	if err != nil {
		return cfg, err
	}

	// Only flags given explicitly override the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			cfg.Title = title
		case "bottom-bar":
			cfg.BottomBar = bottomBar
		case "no-fade":
			cfg.Fade = !noFade
		case "drawer-width":
			cfg.DrawerWidth = drawerWidth
		case "debug":
			cfg.DebugLog = debugLog
		}
	})

	return cfg, cfg.Validate()
}

// Validate fills in an empty title and rejects a drawer too narrow to draw.
func (c *Config) Validate() error {
	if c.Title == "" {
		c.Title = content.DefaultTitle
	}
	if c.DrawerWidth < MinDrawerWidth {
		return errors.Errorf("drawer width %d is below the minimum of %d", c.DrawerWidth, MinDrawerWidth)
	}
	return nil
}
