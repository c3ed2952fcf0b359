package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/fc-player-dashboard/internal/config"
	"github.com/riskibarqy/fc-player-dashboard/internal/domain/player"
	cacherepo "github.com/riskibarqy/fc-player-dashboard/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/fc-player-dashboard/internal/infrastructure/repository/csvfile"
	"github.com/riskibarqy/fc-player-dashboard/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fc-player-dashboard/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/fc-player-dashboard/internal/interfaces/httpapi"
	"github.com/riskibarqy/fc-player-dashboard/internal/platform/cache"
	"github.com/riskibarqy/fc-player-dashboard/internal/platform/logging"
	"github.com/riskibarqy/fc-player-dashboard/internal/platform/resilience"
	"github.com/riskibarqy/fc-player-dashboard/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

// CloseFunc releases resources held by a player source.
type CloseFunc func() error

func noopClose() error { return nil }

// NewPlayerSource builds the configured source wrapped in the in-process
// table cache.
func NewPlayerSource(cfg config.Config, logger *logging.Logger) (player.Source, CloseFunc, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var (
		source player.Source
		closer CloseFunc = noopClose
	)

	switch cfg.DataSource {
	case config.DataSourceCSV:
		source = csvfile.NewLoader(cfg.DataPath)
	case config.DataSourcePostgres:
		db, err := openDB(cfg)
		if err != nil {
			return nil, nil, err
		}
		breaker := resilience.CircuitBreakerConfig{
			Enabled:          cfg.DBCircuitEnabled,
			FailureThreshold: cfg.DBCircuitFailureCount,
			OpenTimeout:      cfg.DBCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.DBCircuitHalfOpenMaxReq,
		}
		source = postgres.NewPlayerTableSource(db, postgres.PlayerTableSourceConfig{
			Table:          cfg.DBPlayerTable,
			OrderBy:        cfg.DBPlayerOrderBy,
			RowLimit:       cfg.DBPlayerRowLimit,
			CircuitBreaker: breaker,
		})
		closer = db.Close
		logger.Info("postgres player loader configured", breaker.LogFields()...)
	case config.DataSourceMemory:
		source = memory.NewPlayerTableSource(memory.SeedName, memory.SeedPlayerTable())
	default:
		return nil, nil, fmt.Errorf("unsupported data source %q", cfg.DataSource)
	}

	logger.Info("player source configured",
		"source", source.CacheKey(),
		"cache_ttl", cfg.CacheTTL.String(),
	)

	return cacherepo.NewPlayerTableSource(source, cache.NewStore[player.Table](cfg.CacheTTL)), closer, nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	db, err := otelsqlx.Open("postgres", cfg.DBURL,
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	return db, nil
}

func NewDashboardService(cfg config.Config, source player.Source, logger *logging.Logger) *usecase.DashboardService {
	return usecase.NewDashboardService(source, usecase.DashboardOptions{
		IdentifierColumns: cfg.IdentifierColumns,
		TopN:              cfg.DashboardTopN,
		HistogramBins:     cfg.DashboardHistogramBins,
		NationLimit:       cfg.DashboardNationLimit,
	}, logger)
}

func NewHTTPServer(cfg config.Config, dashboardService *usecase.DashboardService, logger *logging.Logger) (*http.Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	handler := httpapi.NewHandler(dashboardService, logger)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}
