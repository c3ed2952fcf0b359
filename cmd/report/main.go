// Command report prints the dashboard datasets for one filter selection as
// terminal tables.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/fc-player-dashboard/internal/app"
	"github.com/riskibarqy/fc-player-dashboard/internal/config"
	"github.com/riskibarqy/fc-player-dashboard/internal/domain/player"
	"github.com/riskibarqy/fc-player-dashboard/internal/platform/logging"
	"github.com/riskibarqy/fc-player-dashboard/internal/usecase"
)

// multiFlag collects a flag that may be given more than once.
type multiFlag []string

func (m *multiFlag) String() string {
	return strings.Join(*m, ",")
}

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

type options struct {
	criteria player.Criteria
	dataPath string
	first    string
	second   string
	rows     int
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "report:", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var (
		leagues, positions, teams multiFlag
		opts                      options
	)

	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Var(&leagues, "league", "League to include (repeatable)")
	fs.Var(&positions, "position", "Position to include (repeatable)")
	fs.Var(&teams, "team", "Team to include (repeatable)")
	fs.StringVar(&opts.dataPath, "data", "", "CSV file to read, overrides DATA_PATH")
	fs.StringVar(&opts.first, "first", "", "First player to compare, exact name")
	fs.StringVar(&opts.second, "second", "", "Second player to compare, exact name")
	fs.IntVar(&opts.rows, "rows", 0, "Print the first N filtered rows")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: report [flags]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.rows < 0 {
		return options{}, fmt.Errorf("-rows must be >= 0")
	}
	opts.first = strings.TrimSpace(opts.first)
	opts.second = strings.TrimSpace(opts.second)
	if (opts.first == "") != (opts.second == "") {
		return options{}, fmt.Errorf("%w: -first and -second must be set together", usecase.ErrInvalidInput)
	}

	opts.criteria = player.Criteria{Leagues: leagues, Positions: positions, Teams: teams}
	return opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if opts.dataPath != "" {
		cfg.DataSource = config.DataSourceCSV
		cfg.DataPath = opts.dataPath
	}

	logger := logging.NewConsole(stderr, cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	source, closeSource, err := app.NewPlayerSource(cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = closeSource() }()

	svc := app.NewDashboardService(cfg, source, logger)

	dashboard, err := svc.Dashboard(ctx, opts.criteria)
	if err != nil {
		return err
	}
	renderDashboard(stdout, dashboard)

	if opts.rows > 0 {
		view, err := svc.View(ctx, opts.criteria)
		if err != nil {
			return err
		}
		renderRows(stdout, view, opts.rows)
	}

	if opts.first != "" {
		cmp, err := svc.Compare(ctx, usecase.CompareInput{
			Criteria: opts.criteria,
			First:    opts.first,
			Second:   opts.second,
		})
		if err != nil {
			return err
		}
		renderComparison(stdout, cmp)
	}

	return nil
}
