// Package testutil holds helpers shared by package tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

// AssertGolden compares output, stripped of escape sequences, with
// testdata/<name> at the repository root. Setting UPDATE_GOLDEN rewrites the
// file first.
func AssertGolden(t *testing.T, name, output string) {
	t.Helper()
	path := filepath.Join(repoRoot(t), "testdata", name)
	if err := checkGolden(path, output, os.Getenv("UPDATE_GOLDEN") != ""); err != nil {
		t.Fatal(err)
	}
}

func checkGolden(path, output string, update bool) error {
	output = ansi.Strip(output)
	if update {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create testdata: %w", err)
		}
		if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
			return fmt.Errorf("failed to update golden: %w", err)
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read golden %s (set UPDATE_GOLDEN=1 to create it): %w", filepath.Base(path), err)
	}
	if string(data) != output {
		return fmt.Errorf("output mismatch for %s\nexpected:\n%s\nactual:\n%s", filepath.Base(path), string(data), output)
	}
	return nil
}

func repoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd failed: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
