// Package scoring holds the configuration that drives priority-rating and
// event-importance calculation. It is passed explicitly to the services that
// need it rather than read from ambient state, so the scoring engine and the
// association reconciler stay pure functions of (entities, config).
package scoring

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PlatformRule controls which inputs a platform expects.
type PlatformRule struct {
	RequiresHandle bool `yaml:"requires_handle"`
	RequiresLink   bool `yaml:"requires_link"`
}

type Config struct {
	// PriorityScores maps a relationship priority level to its base score.
	// Levels absent from the map contribute nothing to any rating.
	PriorityScores map[string]float64 `yaml:"priority_scores"`
	// PrimaryMultiplier is applied to the base score for any association
	// marked primary (platform, tag, or connection type).
	PrimaryMultiplier float64 `yaml:"primary_multiplier"`
	// PlatformRules seeds platform input validation rules.
	PlatformRules map[string]PlatformRule `yaml:"platform_rules"`
	// PlatformBaseURLs synthesizes a profile link from a handle when no
	// explicit link was given.
	PlatformBaseURLs map[string]string `yaml:"platform_base_urls"`
	// ConnectionTypes seeds the initial connection-type catalog.
	ConnectionTypes []string `yaml:"connection_types"`
}

func DefaultConfig() Config {
	return Config{
		PriorityScores: map[string]float64{
			"Very High": 2.0,
			"High":      1.0,
			"Medium":    0.25,
			"Low":       0.05,
			"Very Low":  0.01,
		},
		PrimaryMultiplier: 1.5,
		PlatformRules: map[string]PlatformRule{
			"Twitter":   {RequiresHandle: true, RequiresLink: false},
			"Instagram": {RequiresHandle: true, RequiresLink: false},
			"LinkedIn":  {RequiresHandle: false, RequiresLink: true},
			"GitHub":    {RequiresHandle: true, RequiresLink: false},
			"Discord":   {RequiresHandle: true, RequiresLink: false},
			"Telegram":  {RequiresHandle: true, RequiresLink: false},
			"Email":     {RequiresHandle: true, RequiresLink: false},
			"Website":   {RequiresHandle: false, RequiresLink: true},
			"TikTok":    {RequiresHandle: true, RequiresLink: false},
			"Reddit":    {RequiresHandle: true, RequiresLink: false},
		},
		PlatformBaseURLs: map[string]string{
			"Twitter":   "https://twitter.com/",
			"Instagram": "https://instagram.com/",
			"GitHub":    "https://github.com/",
			"Telegram":  "https://t.me/",
			"TikTok":    "https://www.tiktok.com/@",
			"Email":     "mailto:",
			"Reddit":    "https://www.reddit.com/user/",
		},
		ConnectionTypes: []string{
			"Peer", "Mentor Potential", "Target Follow-Up",
			"Client Potential", "Industry Contact", "Collaborator", "Real Life",
		},
	}
}

// Load reads a YAML override on top of the defaults. Only keys present in
// the file replace the corresponding default section.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read scoring config: %w", err)
	}
	var override Config
	if err := yaml.Unmarshal(raw, &override); err != nil {
		return cfg, fmt.Errorf("parse scoring config: %w", err)
	}
	if len(override.PriorityScores) > 0 {
		cfg.PriorityScores = override.PriorityScores
	}
	if override.PrimaryMultiplier != 0 {
		cfg.PrimaryMultiplier = override.PrimaryMultiplier
	}
	if len(override.PlatformRules) > 0 {
		cfg.PlatformRules = override.PlatformRules
	}
	if len(override.PlatformBaseURLs) > 0 {
		cfg.PlatformBaseURLs = override.PlatformBaseURLs
	}
	if len(override.ConnectionTypes) > 0 {
		cfg.ConnectionTypes = override.ConnectionTypes
	}
	return cfg, nil
}

// BaseScore returns the configured score for a priority level, 0 when the
// level is not in the table.
func (c Config) BaseScore(priority string) float64 {
	return c.PriorityScores[priority]
}
