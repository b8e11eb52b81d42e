package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-phoneinput/components/phoneinput"
)

func TestApplyRegionsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regions.txt")
	if err := os.WriteFile(path, []byte("# offices\nus\n\nGB\n"), 0o600); err != nil {
		t.Fatalf("write regions: %v", err)
	}

	cfg := phoneinput.Config{Regions: []string{"FR"}}
	if err := applyRegionsFile(&cfg, path); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if diff := cmp.Diff([]string{"GB", "US"}, cfg.Regions); diff != "" {
		t.Fatalf("regions mismatch (-want +got):\n%s", diff)
	}

	field := phoneinput.New(cfg.Options()...)
	if got := len(field.Countries()); got != 2 {
		t.Fatalf("expected 2 countries, got %d", got)
	}
}

func TestApplyRegionsFile_EmptyPathKeepsConfig(t *testing.T) {
	cfg := phoneinput.Config{Regions: []string{"FR"}}
	if err := applyRegionsFile(&cfg, " "); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if diff := cmp.Diff([]string{"FR"}, cfg.Regions); diff != "" {
		t.Fatalf("regions mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyRegionsFile_Errors(t *testing.T) {
	empty := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(empty, []byte("# nothing\n"), 0o600); err != nil {
		t.Fatalf("write regions: %v", err)
	}
	for _, path := range []string{empty, filepath.Join(t.TempDir(), "missing.txt")} {
		cfg := phoneinput.Config{}
		if err := applyRegionsFile(&cfg, path); err == nil {
			t.Fatalf("expected error for %s", path)
		}
	}
}
