package logging

import (
	"path/filepath"
	"testing"
)

func TestConfigure(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		level   string
		output  string
		wantErr bool
	}{
		{name: "text to stderr", format: "text", level: "info", output: "stderr"},
		{name: "json to stdout", format: "json", level: "debug", output: "stdout"},
		{name: "dash means stderr", format: "text", level: "warn", output: "-"},
		{name: "invalid level", format: "text", level: "verbose", output: "stderr", wantErr: true},
		{name: "invalid format", format: "yaml", level: "info", output: "stderr", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Configure(tt.format, tt.level, tt.output)
			if (err != nil) != tt.wantErr {
				t.Errorf("Configure() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigureFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "query.log")

	if err := Configure("json", "info", path); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}

	Default().Info("session started", "repo", ".")
}
