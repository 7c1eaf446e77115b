package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"

	"github.com/MatthewFay/git-query/internal/errs"
	"github.com/MatthewFay/git-query/internal/output"
	"github.com/MatthewFay/git-query/internal/store"
)

func TestGetOutputFormat(t *testing.T) {
	tests := []struct {
		input string
		want  output.OutputFormat
	}{
		{input: "json", want: output.FormatJSON},
		{input: "csv", want: output.FormatCSV},
		{input: "markdown", want: output.FormatMarkdown},
		{input: "md", want: output.FormatMarkdown},
		{input: "console", want: output.FormatConsole},
		{input: "unknown", want: output.FormatConsole},
		{input: "", want: output.FormatConsole},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := getOutputFormat(tt.input); got != tt.want {
				t.Fatalf("getOutputFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func stringFlagDefault(t *testing.T, name string) string {
	t.Helper()
	for _, f := range App().Flags {
		sf, ok := f.(*cli.StringFlag)
		if !ok {
			continue
		}
		if sf.Name == name {
			return sf.Value
		}
	}
	t.Fatalf("string flag %q not found", name)
	return ""
}

func TestAppFlagDefaults(t *testing.T) {
	tests := []struct {
		flag string
		want string
	}{
		{flag: "repo", want: "."},
		{flag: "format", want: "console"},
		{flag: "log-level", want: "warn"},
		{flag: "log-format", want: "text"},
		{flag: "log-output", want: "stderr"},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			if got := stringFlagDefault(t, tt.flag); got != tt.want {
				t.Fatalf("default for --%s = %q, want %q", tt.flag, got, tt.want)
			}
		})
	}
}

func newExecStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open()
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	if err := st.Initialize(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	author := "dev"
	_, err = st.InsertCommit(store.CommitRow{
		ID:      "abc1234",
		Author:  &author,
		Date:    "2025-06-01 12:00:00 UTC",
		Message: "first",
	})
	if err != nil {
		t.Fatalf("failed to insert commit: %v", err)
	}
	return st
}

func TestExecStatements(t *testing.T) {
	st := newExecStore(t)
	writer := output.NewResultWriter(output.FormatCSV, output.RenderOptions{})

	var buf bytes.Buffer
	statements := []string{
		"SELECT id FROM commits",
		"SELECT author FROM commits",
	}
	if err := execStatements(st, writer, &buf, statements); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "abc1234") {
		t.Errorf("output missing commit id: %q", out)
	}
	if !strings.Contains(out, "dev") {
		t.Errorf("output missing author: %q", out)
	}
}

func TestExecStatementsStopsAtFirstFailure(t *testing.T) {
	st := newExecStore(t)
	writer := output.NewResultWriter(output.FormatConsole, output.RenderOptions{})

	var buf bytes.Buffer
	statements := []string{
		"SELEC broken",
		"SELECT id FROM commits",
	}
	err := execStatements(st, writer, &buf, statements)
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !errs.IsStore(err) {
		t.Errorf("expected a store error, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output before the failure, got %q", buf.String())
	}
}
