// Package repl implements the interactive prompt: read a line, dispatch
// it as a command or as SQL, render the outcome, repeat.
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"

	"github.com/MatthewFay/git-query/config"
	"github.com/MatthewFay/git-query/internal/errs"
	"github.com/MatthewFay/git-query/internal/git"
	"github.com/MatthewFay/git-query/internal/ingest"
	"github.com/MatthewFay/git-query/internal/logging"
	"github.com/MatthewFay/git-query/internal/output"
	"github.com/MatthewFay/git-query/internal/store"
)

// Session is one interactive run over an ingested store.
type Session struct {
	store  *store.Store
	source git.Source
	cfg    *config.Config
	writer output.ResultWriter
	out    io.Writer
}

// New creates a session writing to stdout.
func New(st *store.Store, src git.Source, cfg *config.Config) *Session {
	return &Session{
		store:  st,
		source: src,
		cfg:    cfg,
		writer: &output.ConsoleResultWriter{MaxWidth: cfg.Table.MaxWidth},
		out:    os.Stdout,
	}
}

// Run executes the configured initial query, then reads lines until an
// exit command or end of input. A failing initial query is fatal; any
// failure inside the loop is printed and the session continues.
func (s *Session) Run() error {
	fmt.Fprintf(s.out, "%s%s\n", s.cfg.Session.Prompt, s.cfg.Session.InitQuery)
	if err := s.runSQL(s.cfg.Session.InitQuery); err != nil {
		return err
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          s.cfg.Session.Prompt,
		HistoryFile:     s.cfg.Session.HistoryFile,
		InterruptPrompt: "^C",
	})
	if err != nil {
		return goerr.Wrap(err, "failed to start prompt")
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			// ^C drops the current line, like a shell.
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return goerr.Wrap(err, "prompt read failed")
		}

		if s.dispatch(line) == actionQuit {
			return nil
		}
	}
}

type action int

const (
	actionContinue action = iota
	actionQuit
)

// dispatch routes one input line. Exactly "traverse <id>" extends the
// ingested history; single-token exit, quit and help are commands; every
// other non-empty line goes to the store as SQL.
func (s *Session) dispatch(line string) action {
	fields := strings.Fields(line)
	switch {
	case len(fields) == 0:
		// Nothing typed; prompt again.
	case len(fields) == 1 && (fields[0] == "exit" || fields[0] == "quit"):
		return actionQuit
	case len(fields) == 1 && fields[0] == "help":
		s.printHelp()
	case len(fields) == 2 && fields[0] == "traverse":
		if err := ingest.ExtendHistory(s.store, s.source, fields[1]); err != nil {
			s.printError(err)
		}
	default:
		if err := s.runSQL(line); err != nil {
			s.printError(err)
		}
	}
	return actionContinue
}

func (s *Session) runSQL(query string) error {
	res, err := s.store.Query(query)
	if err != nil {
		return err
	}
	return s.writer.Write(s.out, res, query)
}

func (s *Session) printHelp() {
	fmt.Fprintln(s.out, "Available commands:")
	fmt.Fprintln(s.out, " - `exit` or `quit`: Exit the program.")
	fmt.Fprintln(s.out, " - `help`: Display this help message.")
	fmt.Fprintln(s.out, " - `traverse <commit id>`: Traverse the commit history, inserting commits into the database.")
	fmt.Fprintln(s.out, " - Any other input is treated as a SQL query.")
}

func (s *Session) printError(err error) {
	color.New(color.FgRed).Fprintln(s.out, errs.Render(err))
	logging.Default().Debug("command failed", "error", err)
}
