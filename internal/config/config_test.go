package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing config should not error: %v", err)
	}
	if cfg.Database.DSN != "sqlite://./memory.db" {
		t.Fatalf("unexpected default DSN: %q", cfg.Database.DSN)
	}
	if cfg.Defaults.RunLimit != 10 || cfg.Defaults.SearchLimit != 20 {
		t.Fatalf("unexpected default limits: %+v", cfg.Defaults)
	}
}

func TestLoadValidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recall.yaml")
	contents := `project: assistant-memory
database:
  dsn: sqlite:///var/lib/recall/memory.db
defaults:
  run_limit: 25
`
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Project != "assistant-memory" {
		t.Fatalf("unexpected project: %q", cfg.Project)
	}
	if cfg.Database.DSN != "sqlite:///var/lib/recall/memory.db" {
		t.Fatalf("unexpected DSN: %q", cfg.Database.DSN)
	}
	if cfg.Defaults.RunLimit != 25 {
		t.Fatalf("run_limit not overridden: %d", cfg.Defaults.RunLimit)
	}
	// Unset values keep their defaults.
	if cfg.Defaults.SearchLimit != 20 {
		t.Fatalf("search_limit default lost: %d", cfg.Defaults.SearchLimit)
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		wantErr  string
	}{
		{
			name:     "empty project",
			contents: "project: \"  \"\n",
			wantErr:  "project name is required",
		},
		{
			name:     "wrong scheme",
			contents: "database:\n  dsn: postgres://localhost/recall\n",
			wantErr:  "sqlite:// scheme",
		},
		{
			name:     "bad run limit",
			contents: "defaults:\n  run_limit: -3\n",
			wantErr:  "run_limit must be positive",
		},
		{
			name:     "not yaml",
			contents: "{{{",
			wantErr:  "loading config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "recall.yaml")
			if err := os.WriteFile(path, []byte(tt.contents), 0o600); err != nil {
				t.Fatalf("writing config: %v", err)
			}
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
