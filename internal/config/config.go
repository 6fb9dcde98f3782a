package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     App
	Logging Logging
	Files   []string
	List    bool
	Flags   map[string]string
	Args    []string
}

// App holds the options the interactive program needs.
type App struct {
	Width      int
	Height     int
	Trigger    Trigger
	ConfigPath string
	Watch      bool
}

type Logging struct {
	FilePath string
	Trace    bool
}

// Trigger selects which right-button transition opens the popup.
type Trigger string

const (
	TriggerPress   Trigger = "press"
	TriggerRelease Trigger = "release"
)

const (
	envConfig  = "MOUSE_MENU_CONFIG"
	envWatch   = "MOUSE_MENU_WATCH"
	envTrigger = "MOUSE_MENU_TRIGGER"
	envWidth   = "MOUSE_MENU_WIDTH"
	envHeight  = "MOUSE_MENU_HEIGHT"
	envTrace   = "MOUSE_MENU_TRACE"
	envLogFile = "MOUSE_MENU_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("mouse-menu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	configPath := fs.String("config", envOrDefault(env, envConfig, defaultConfigPath(env)), "path to the TOML menu table file")
	watch := fs.Bool("watch", envOrBool(env, envWatch, true), "reload the menu table file when it changes")
	trigger := fs.String("trigger", envOrDefault(env, envTrigger, string(TriggerPress)), "right button transition that opens the menu (press or release)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	list := fs.Bool("list", false, "print the resolved menu tables and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	trig := Trigger(strings.ToLower(strings.TrimSpace(*trigger)))
	if trig != TriggerPress && trig != TriggerRelease {
		return Config{}, fmt.Errorf("trigger must be %q or %q (got %q)", TriggerPress, TriggerRelease, *trigger)
	}

	cfg := Config{
		App: App{
			Width:      *width,
			Height:     *height,
			Trigger:    trig,
			ConfigPath: *configPath,
			Watch:      *watch,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Files: append([]string(nil), fs.Args()...),
		List:  *list,
		Flags: map[string]string{
			"config":  *configPath,
			"watch":   strconv.FormatBool(*watch),
			"trigger": string(trig),
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
			"list":    strconv.FormatBool(*list),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func defaultConfigPath(env map[string]string) string {
	base := strings.TrimSpace(env["XDG_CONFIG_HOME"])
	if base == "" {
		home := strings.TrimSpace(env["HOME"])
		if home == "" {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "mouse-menu", "menu.toml")
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures the configuration can start the program.
func Validate(cfg Config) error {
	if cfg.App.Watch && strings.TrimSpace(cfg.App.ConfigPath) == "" {
		return fmt.Errorf("watch requires a config path")
	}
	for _, file := range cfg.Files {
		if info, err := os.Stat(file); err == nil && info.IsDir() {
			return fmt.Errorf("%s is a directory", file)
		}
	}
	return nil
}
