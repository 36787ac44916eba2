package config

import (
	"strings"
	"testing"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.LogicalWidth != 1920 || cfg.App.LogicalHeight != 1080 {
		t.Fatalf("expected 1920x1080 canvas, got %dx%d", cfg.App.LogicalWidth, cfg.App.LogicalHeight)
	}
	if cfg.App.FPS != 60 || cfg.App.UndoDepth != 100 {
		t.Fatalf("unexpected fps/undo defaults %d/%d", cfg.App.FPS, cfg.App.UndoDepth)
	}
	if !cfg.App.Rollback {
		t.Fatalf("expected rollback enabled by default")
	}
	if cfg.App.ShowFooter || cfg.Logging.Trace {
		t.Fatalf("expected footer and trace off by default")
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoadArgsEnvironmentAndFlags(t *testing.T) {
	env := []string{
		"PAGEFLOW_FPS=30",
		"PAGEFLOW_START_PAGE=page2",
		"PAGEFLOW_ROLLBACK=false",
		"PAGEFLOW_TRACE=1",
		"PAGEFLOW_UNDO_DEPTH=garbage",
		"MALFORMED",
	}
	cfg, err := LoadArgs([]string{"-fps", "24", "-footer", "-log-file", "/tmp/pf.log"}, env)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.FPS != 24 {
		t.Fatalf("expected flag to override env fps, got %d", cfg.App.FPS)
	}
	if cfg.App.StartPage != "page2" || cfg.App.Rollback {
		t.Fatalf("expected env start page and rollback, got %q %v", cfg.App.StartPage, cfg.App.Rollback)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/pf.log" {
		t.Fatalf("unexpected logging config %+v", cfg.Logging)
	}
	if cfg.App.UndoDepth != 100 {
		t.Fatalf("expected unparsable env to fall back, got %d", cfg.App.UndoDepth)
	}
	if !cfg.App.ShowFooter || cfg.Flags["footer"] != "true" {
		t.Fatalf("expected footer flag recorded")
	}
	if len(cfg.Args) != 5 {
		t.Fatalf("expected args copied, got %v", cfg.Args)
	}
}

func TestLoadArgsRejectsNegativeSize(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"-nope"}, nil); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestValidate(t *testing.T) {
	cfg, err := LoadArgs([]string{"-fps", "0", "-logical-width", "0"}, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	err = Validate(cfg)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, want := range []string{"logical canvas", "fps"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %v", want, err)
		}
	}
}
