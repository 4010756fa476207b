package sqlite

import "testing"

func TestParseDSN(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"memory", "sqlite://:memory:", ":memory:", false},
		{"absolute", "sqlite:///var/lib/recall/memory.db", "/var/lib/recall/memory.db", false},
		{"relative", "sqlite://memory.db", "./memory.db", false},
		{"explicit relative", "sqlite://./db/memory.db", "./db/memory.db", false},
		{"with query", "sqlite://memory.db?mode=ro", "./memory.db?mode=ro", false},
		{"wrong scheme", "postgres://localhost/recall", "", true},
		{"no scheme", "memory.db", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDSN(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseDSN(%q) expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDSN(%q): %v", tt.input, err)
			}
			if got != tt.expected {
				t.Fatalf("parseDSN(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
