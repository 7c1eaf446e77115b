package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the root configuration structure.
type Config struct {
	Session SessionConfig `json:"session"`
	Table   TableConfig   `json:"table"`
	Filters FilterConfig  `json:"filters"`
}

// SessionConfig holds interactive prompt options.
type SessionConfig struct {
	Prompt      string `json:"prompt"`      // Default: ">> "
	InitQuery   string `json:"initQuery"`   // Run once at startup; failure is fatal
	HistoryFile string `json:"historyFile"` // Empty disables persistent history
}

// TableConfig holds result table rendering options.
type TableConfig struct {
	MaxWidth int `json:"maxWidth"` // Characters per row; 0 means unlimited
}

// FilterConfig limits which references are ingested. Patterns are
// doublestar globs matched against short reference names; empty lists
// ingest everything. Commits are never filtered.
type FilterConfig struct {
	Tags     []string `json:"tags"`
	Branches []string `json:"branches"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Session: SessionConfig{
			Prompt:    ">> ",
			InitQuery: "SELECT * FROM commits ORDER BY date DESC LIMIT 1;",
		},
		Table: TableConfig{
			MaxWidth: 0,
		},
		Filters: FilterConfig{
			Tags:     []string{},
			Branches: []string{},
		},
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		// Try default locations
		candidates := []string{".gitquery.json"}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, ".gitquery.json"))
		} else if envHome := os.Getenv("HOME"); envHome != "" {
			candidates = append(candidates, filepath.Join(envHome, ".gitquery.json"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
