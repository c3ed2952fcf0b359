package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fc-player-dashboard/internal/domain/player"
	"github.com/riskibarqy/fc-player-dashboard/internal/domain/ratings"
	"github.com/riskibarqy/fc-player-dashboard/internal/platform/logging"
	"github.com/riskibarqy/fc-player-dashboard/internal/platform/resilience"
	"go.opentelemetry.io/otel/attribute"
)

type DashboardOptions struct {
	IdentifierColumns int
	TopN              int
	HistogramBins     int
	NationLimit       int
}

func DefaultDashboardOptions() DashboardOptions {
	return DashboardOptions{
		IdentifierColumns: player.DefaultIdentifierColumns,
		TopN:              ratings.DefaultTopN,
		HistogramBins:     ratings.DefaultHistogramBins,
		NationLimit:       ratings.DefaultNationLimit,
	}
}

// Dashboard is every chart dataset for one set of criteria.
type Dashboard struct {
	Summary      ratings.Summary
	TopPlayers   []ratings.RankedPlayer
	Distribution []ratings.Bucket
	Nations      []ratings.NationRating
}

type CompareInput struct {
	Criteria player.Criteria
	First    string
	Second   string
}

// DashboardService runs load, filter and aggregate for each request. The
// source is expected to memoize the table; nothing here keeps state between
// calls.
type DashboardService struct {
	source  player.Source
	options DashboardOptions
	logger  *logging.Logger
}

func NewDashboardService(source player.Source, options DashboardOptions, logger *logging.Logger) *DashboardService {
	if logger == nil {
		logger = logging.Default()
	}
	defaults := DefaultDashboardOptions()
	if options.IdentifierColumns < 0 {
		options.IdentifierColumns = defaults.IdentifierColumns
	}
	if options.TopN <= 0 {
		options.TopN = defaults.TopN
	}
	if options.HistogramBins <= 0 {
		options.HistogramBins = defaults.HistogramBins
	}
	if options.NationLimit <= 0 {
		options.NationLimit = defaults.NationLimit
	}

	return &DashboardService{
		source:  source,
		options: options,
		logger:  logger,
	}
}

// Warm loads the table ahead of the first request so a broken source fails
// startup instead of the first dashboard call.
func (s *DashboardService) Warm(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Warm")
	defer span.End()

	table, err := s.table(ctx)
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "player table ready",
		"source", s.source.CacheKey(),
		"rows", table.Len(),
		"columns", len(table.Columns()),
	)
	return nil
}

func (s *DashboardService) FilterOptions(ctx context.Context) (ratings.FilterOptions, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.FilterOptions")
	defer span.End()

	table, err := s.table(ctx)
	if err != nil {
		return ratings.FilterOptions{}, err
	}

	opts, err := ratings.Options(table)
	if err != nil {
		return ratings.FilterOptions{}, fmt.Errorf("list filter options: %w", err)
	}
	return opts, nil
}

// View returns the filtered table for criteria.
func (s *DashboardService) View(ctx context.Context, criteria player.Criteria) (player.View, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.View")
	defer span.End()

	return s.view(ctx, criteria)
}

func (s *DashboardService) Summary(ctx context.Context, criteria player.Criteria) (ratings.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Summary")
	defer span.End()

	view, err := s.view(ctx, criteria)
	if err != nil {
		return ratings.Summary{}, err
	}
	return ratings.Summarize(view), nil
}

func (s *DashboardService) TopPlayers(ctx context.Context, criteria player.Criteria) ([]ratings.RankedPlayer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.TopPlayers")
	defer span.End()

	view, err := s.view(ctx, criteria)
	if err != nil {
		return nil, err
	}
	return ratings.TopPlayers(view, s.options.TopN), nil
}

func (s *DashboardService) RatingDistribution(ctx context.Context, criteria player.Criteria) ([]ratings.Bucket, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.RatingDistribution")
	defer span.End()

	view, err := s.view(ctx, criteria)
	if err != nil {
		return nil, err
	}
	return ratings.Histogram(view, s.options.HistogramBins), nil
}

func (s *DashboardService) NationRanking(ctx context.Context, criteria player.Criteria) ([]ratings.NationRating, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.NationRanking")
	defer span.End()

	view, err := s.view(ctx, criteria)
	if err != nil {
		return nil, err
	}
	return ratings.NationRanking(view, s.options.NationLimit), nil
}

// Dashboard computes every aggregate over a single filtered view.
func (s *DashboardService) Dashboard(ctx context.Context, criteria player.Criteria) (Dashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Dashboard", criteriaAttributes(criteria)...)
	defer span.End()

	view, err := s.view(ctx, criteria)
	if err != nil {
		return Dashboard{}, err
	}

	return Dashboard{
		Summary:      ratings.Summarize(view),
		TopPlayers:   ratings.TopPlayers(view, s.options.TopN),
		Distribution: ratings.Histogram(view, s.options.HistogramBins),
		Nations:      ratings.NationRanking(view, s.options.NationLimit),
	}, nil
}

func (s *DashboardService) SelectablePlayers(ctx context.Context, criteria player.Criteria) (ratings.PlayerSelection, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.SelectablePlayers")
	defer span.End()

	view, err := s.view(ctx, criteria)
	if err != nil {
		return ratings.PlayerSelection{}, err
	}

	selection, err := ratings.SelectablePlayers(view)
	if err != nil {
		return ratings.PlayerSelection{}, fmt.Errorf("list selectable players: %w", err)
	}
	return selection, nil
}

// Compare looks both players up in the filtered view. A player filtered out
// by criteria is reported with player.ErrPlayerNotFound.
func (s *DashboardService) Compare(ctx context.Context, input CompareInput) (ratings.Comparison, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Compare",
		attribute.String("player.first", input.First),
		attribute.String("player.second", input.Second),
	)
	defer span.End()

	if strings.TrimSpace(input.First) == "" || strings.TrimSpace(input.Second) == "" {
		return ratings.Comparison{}, fmt.Errorf("%w: two player names are required", ErrInvalidInput)
	}

	view, err := s.view(ctx, input.Criteria)
	if err != nil {
		return ratings.Comparison{}, err
	}

	cmp, err := ratings.Compare(view, input.First, input.Second)
	if err != nil {
		if errors.Is(err, player.ErrPlayerNotFound) {
			s.logger.WarnContext(ctx, "comparison player not in view",
				"first", input.First,
				"second", input.Second,
				"view_rows", view.Len(),
			)
		}
		return ratings.Comparison{}, fmt.Errorf("compare players: %w", err)
	}
	return cmp, nil
}

func (s *DashboardService) view(ctx context.Context, criteria player.Criteria) (player.View, error) {
	table, err := s.table(ctx)
	if err != nil {
		return player.View{}, err
	}

	view, err := ratings.Filter(table, s.options.IdentifierColumns, normalizeCriteria(criteria))
	if err != nil {
		return player.View{}, fmt.Errorf("filter players: %w", err)
	}
	return view, nil
}

func (s *DashboardService) table(ctx context.Context) (player.Table, error) {
	table, err := s.source.Load(ctx)
	if err == nil {
		return table, nil
	}

	s.logger.ErrorContext(ctx, "load player table failed", "source", s.source.CacheKey(), "error", err)
	if errors.Is(err, resilience.ErrCircuitOpen) {
		return player.Table{}, fmt.Errorf("%w: %w", ErrDependencyUnavailable, err)
	}
	return player.Table{}, crerr.Wrap(err, "load player table")
}

// normalizeCriteria trims selected values and drops blanks and duplicates so
// that an all-blank selection behaves like no selection. Trimmed values are
// then matched verbatim.
func normalizeCriteria(c player.Criteria) player.Criteria {
	return player.Criteria{
		Leagues:   cleanValues(c.Leagues),
		Positions: cleanValues(c.Positions),
		Teams:     cleanValues(c.Teams),
	}
}

func cleanValues(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func criteriaAttributes(c player.Criteria) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.StringSlice("filter.leagues", c.Leagues),
		attribute.StringSlice("filter.positions", c.Positions),
		attribute.StringSlice("filter.teams", c.Teams),
	}
}
