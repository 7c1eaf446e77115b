package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/MatthewFay/git-query/config"
	"github.com/MatthewFay/git-query/internal/errs"
	"github.com/MatthewFay/git-query/internal/git"
	"github.com/MatthewFay/git-query/internal/ingest"
	"github.com/MatthewFay/git-query/internal/logging"
	"github.com/MatthewFay/git-query/internal/output"
	"github.com/MatthewFay/git-query/internal/repl"
	"github.com/MatthewFay/git-query/internal/store"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "git-query",
		Usage:   "Query Git repository history with SQL",
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "repo",
				Aliases: []string{"r"},
				Usage:   "Path to Git repository",
				Value:   ".",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
			&cli.StringSliceFlag{
				Name:    "exec",
				Aliases: []string{"e"},
				Usage:   "Run a SQL statement and exit instead of starting the prompt (can be specified multiple times)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format for --exec results (console, json, csv, markdown)",
				Value:   "console",
			},
			&cli.StringSliceFlag{
				Name:  "tag-filter",
				Usage: "Glob pattern for tag names to ingest (can be specified multiple times)",
			},
			&cli.StringSliceFlag{
				Name:  "branch-filter",
				Usage: "Glob pattern for branch names to ingest (can be specified multiple times)",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "warn",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "Log format (text, json)",
				Value: "text",
			},
			&cli.StringFlag{
				Name:  "log-output",
				Usage: "Log destination (stderr, stdout or a file path)",
				Value: "stderr",
			},
		},
		Before: func(c *cli.Context) error {
			return logging.Configure(c.String("log-format"), c.String("log-level"), c.String("log-output"))
		},
		Action: queryAction,
	}
}

// queryAction ingests the repository into an in-memory database and either
// runs the --exec statements or hands over to the interactive prompt.
func queryAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	src, err := git.Open(c.String("repo"))
	if err != nil {
		return err
	}

	st, err := ingest.InitializeStore(src, ingest.Options{
		TagFilters:    cfg.Filters.Tags,
		BranchFilters: cfg.Filters.Branches,
	})
	if err != nil {
		return err
	}
	defer st.Close()

	if statements := c.StringSlice("exec"); len(statements) > 0 {
		writer := output.NewResultWriter(getOutputFormat(c.String("format")), output.RenderOptions{
			MaxWidth: cfg.Table.MaxWidth,
		})
		return execStatements(st, writer, os.Stdout, statements)
	}

	return repl.New(st, src, cfg).Run()
}

// execStatements runs each statement in order, stopping at the first failure.
func execStatements(st *store.Store, writer output.ResultWriter, out io.Writer, statements []string) error {
	for _, stmt := range statements {
		res, err := st.Query(stmt)
		if err != nil {
			return err
		}
		if err := writer.Write(out, res, stmt); err != nil {
			return err
		}
	}
	return nil
}

// loadConfig loads configuration from file or defaults, with ingestion
// filter overrides from CLI flags.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}

	if tags := c.StringSlice("tag-filter"); len(tags) > 0 {
		cfg.Filters.Tags = tags
	}
	if branches := c.StringSlice("branch-filter"); len(branches) > 0 {
		cfg.Filters.Branches = branches
	}

	return cfg, nil
}

// getOutputFormat parses the output format flag.
func getOutputFormat(s string) output.OutputFormat {
	switch s {
	case "json":
		return output.FormatJSON
	case "csv":
		return output.FormatCSV
	case "markdown", "md":
		return output.FormatMarkdown
	default:
		return output.FormatConsole
	}
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, errs.Render(err))
		os.Exit(1)
	}
}
