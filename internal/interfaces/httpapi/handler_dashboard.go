package httpapi

import "net/http"

func (h *Handler) ListFilterOptions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFilterOptions")
	defer span.End()

	opts, err := h.dashboardService.FilterOptions(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list filter options failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, filterOptionsToDTO(opts))
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboard")
	defer span.End()

	dashboard, err := h.dashboardService.Dashboard(ctx, criteriaFromQuery(span, r.URL.Query()))
	if err != nil {
		h.logger.WarnContext(ctx, "get dashboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dashboardToDTO(dashboard))
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSummary")
	defer span.End()

	summary, err := h.dashboardService.Summary(ctx, criteriaFromQuery(span, r.URL.Query()))
	if err != nil {
		h.logger.WarnContext(ctx, "get summary failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summaryToDTO(summary))
}

func (h *Handler) ListTopPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopPlayers")
	defer span.End()

	items, err := h.dashboardService.TopPlayers(ctx, criteriaFromQuery(span, r.URL.Query()))
	if err != nil {
		h.logger.WarnContext(ctx, "list top players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rankedPlayersToDTO(items))
}

func (h *Handler) ListNationRanking(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListNationRanking")
	defer span.End()

	items, err := h.dashboardService.NationRanking(ctx, criteriaFromQuery(span, r.URL.Query()))
	if err != nil {
		h.logger.WarnContext(ctx, "list nation ranking failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, nationRatingsToDTO(items))
}

func (h *Handler) GetRatingDistribution(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRatingDistribution")
	defer span.End()

	items, err := h.dashboardService.RatingDistribution(ctx, criteriaFromQuery(span, r.URL.Query()))
	if err != nil {
		h.logger.WarnContext(ctx, "get rating distribution failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, bucketsToDTO(items))
}
