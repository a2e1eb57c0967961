package scoring

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigBaseScores(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		priority string
		want     float64
	}{
		{"Very High", 2.0},
		{"High", 1.0},
		{"Medium", 0.25},
		{"Low", 0.05},
		{"Very Low", 0.01},
		{"Critical", 0},
		{"", 0},
	}
	for _, tc := range cases {
		if got := cfg.BaseScore(tc.priority); got != tc.want {
			t.Fatalf("BaseScore(%q): want=%v got=%v", tc.priority, tc.want, got)
		}
	}
	if cfg.PrimaryMultiplier != 1.5 {
		t.Fatalf("PrimaryMultiplier: want=1.5 got=%v", cfg.PrimaryMultiplier)
	}
}

func TestLoadOverridesOnlyPresentSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scoring.yaml")
	raw := []byte("priority_scores:\n  High: 10\nprimary_multiplier: 2.0\n")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := cfg.BaseScore("High"); got != 10 {
		t.Fatalf("overridden High: want=10 got=%v", got)
	}
	if got := cfg.BaseScore("Very High"); got != 0 {
		t.Fatalf("override replaces the whole score table: want=0 got=%v", got)
	}
	if cfg.PrimaryMultiplier != 2.0 {
		t.Fatalf("multiplier: want=2.0 got=%v", cfg.PrimaryMultiplier)
	}
	if len(cfg.PlatformRules) != len(DefaultConfig().PlatformRules) {
		t.Fatalf("platform rules should keep defaults, got %d entries", len(cfg.PlatformRules))
	}
	if len(cfg.ConnectionTypes) != 7 {
		t.Fatalf("connection types should keep defaults, got %d", len(cfg.ConnectionTypes))
	}
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if got := cfg.BaseScore("High"); got != 1.0 {
		t.Fatalf("defaults should survive a failed load: want=1.0 got=%v", got)
	}
}
