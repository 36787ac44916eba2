package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/pageflow/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envWidth         = "PAGEFLOW_WIDTH"
	envHeight        = "PAGEFLOW_HEIGHT"
	envLogicalWidth  = "PAGEFLOW_LOGICAL_WIDTH"
	envLogicalHeight = "PAGEFLOW_LOGICAL_HEIGHT"
	envFPS           = "PAGEFLOW_FPS"
	envStartPage     = "PAGEFLOW_START_PAGE"
	envRollback      = "PAGEFLOW_ROLLBACK"
	envUndoDepth     = "PAGEFLOW_UNDO_DEPTH"
	envShowFooter    = "PAGEFLOW_FOOTER"
	envTrace         = "PAGEFLOW_TRACE"
	envLogFile       = "PAGEFLOW_LOG_FILE"
)

const (
	defaultLogicalWidth  = 1920
	defaultLogicalHeight = 1080
	defaultFPS           = 60
	defaultUndoDepth     = 100
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("pageflow", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, 0), "viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "viewport height in rows (0 uses terminal height)")
	logicalWidth := fs.Int("logical-width", envOrInt(env, envLogicalWidth, defaultLogicalWidth), "width of the logical canvas pages are laid out on")
	logicalHeight := fs.Int("logical-height", envOrInt(env, envLogicalHeight, defaultLogicalHeight), "height of the logical canvas pages are laid out on")
	fps := fs.Int("fps", envOrInt(env, envFPS, defaultFPS), "frames per second driving ticks and transitions")
	startPage := fs.String("start-page", envOrDefault(env, envStartPage, ""), "page shown at startup (defaults to the first registered page)")
	rollback := fs.Bool("rollback", envOrBool(env, envRollback, true), "allow back/forward page history navigation")
	undoDepth := fs.Int("undo-depth", envOrInt(env, envUndoDepth, defaultUndoDepth), "maximum number of undo snapshots")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "show the input ledger and history below the canvas")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			Width:         *width,
			Height:        *height,
			LogicalWidth:  *logicalWidth,
			LogicalHeight: *logicalHeight,
			FPS:           *fps,
			StartPage:     *startPage,
			Rollback:      *rollback,
			UndoDepth:     *undoDepth,
			ShowFooter:    *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"width":         strconv.Itoa(*width),
			"height":        strconv.Itoa(*height),
			"logicalWidth":  strconv.Itoa(*logicalWidth),
			"logicalHeight": strconv.Itoa(*logicalHeight),
			"fps":           strconv.Itoa(*fps),
			"startPage":     *startPage,
			"rollback":      strconv.FormatBool(*rollback),
			"undoDepth":     strconv.Itoa(*undoDepth),
			"footer":        strconv.FormatBool(*footer),
			"trace":         strconv.FormatBool(*trace),
			"logFile":       *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
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

// Validate rejects settings the runtime cannot work with.
func Validate(cfg Config) error {
	var errs []error
	if cfg.App.LogicalWidth <= 0 || cfg.App.LogicalHeight <= 0 {
		errs = append(errs, fmt.Errorf("logical canvas must be positive (got %dx%d)", cfg.App.LogicalWidth, cfg.App.LogicalHeight))
	}
	if cfg.App.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be > 0 (got %d)", cfg.App.FPS))
	}
	if cfg.App.UndoDepth < 0 {
		errs = append(errs, fmt.Errorf("undo-depth must be >= 0 (got %d)", cfg.App.UndoDepth))
	}
	return errors.Join(errs...)
}
