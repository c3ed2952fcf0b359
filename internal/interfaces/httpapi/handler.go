package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/fc-player-dashboard/internal/domain/player"
	"github.com/riskibarqy/fc-player-dashboard/internal/platform/logging"
	"github.com/riskibarqy/fc-player-dashboard/internal/usecase"
	"go.opentelemetry.io/otel/trace"
)

// Query parameters carrying filter selections. Each may repeat; values are
// trimmed, then matched exactly.
const (
	queryLeague   = "league"
	queryPosition = "position"
	queryTeam     = "team"
)

type Handler struct {
	dashboardService *usecase.DashboardService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(dashboardService *usecase.DashboardService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		dashboardService: dashboardService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func criteriaFromQuery(span trace.Span, q url.Values) player.Criteria {
	c := player.Criteria{
		Leagues:   q[queryLeague],
		Positions: q[queryPosition],
		Teams:     q[queryTeam],
	}
	span.SetAttributes(queryAttributes(c)...)
	return c
}
