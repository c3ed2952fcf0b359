package httpapi

import (
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/riskibarqy/fc-player-dashboard/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const exportFileName = "players.csv"

type compareRequest struct {
	First  string `validate:"required,max=200"`
	Second string `validate:"required,max=200"`
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	view, err := h.dashboardService.View(ctx, criteriaFromQuery(span, r.URL.Query()))
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, viewToDTO(view))
}

// ExportPlayers writes the filtered table as CSV with a header row.
func (h *Handler) ExportPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportPlayers")
	defer span.End()

	view, err := h.dashboardService.View(ctx, criteriaFromQuery(span, r.URL.Query()))
	if err != nil {
		h.logger.WarnContext(ctx, "export players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	cw := csv.NewWriter(buf)
	if err := cw.Write(view.Columns()); err != nil {
		h.logger.ErrorContext(ctx, "encode export header failed", "error", err)
		writeInternalError(ctx, w)
		return
	}
	if err := cw.WriteAll(view.Rows()); err != nil {
		h.logger.ErrorContext(ctx, "encode export rows failed", "error", err)
		writeInternalError(ctx, w)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFileName+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.B)
}

func (h *Handler) ListPlayerNames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerNames")
	defer span.End()

	selection, err := h.dashboardService.SelectablePlayers(ctx, criteriaFromQuery(span, r.URL.Query()))
	if err != nil {
		h.logger.WarnContext(ctx, "list player names failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, selectionToDTO(selection))
}

func (h *Handler) ComparePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ComparePlayers")
	defer span.End()

	q := r.URL.Query()
	req := compareRequest{First: q.Get("first"), Second: q.Get("second")}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	cmp, err := h.dashboardService.Compare(ctx, usecase.CompareInput{
		Criteria: criteriaFromQuery(span, q),
		First:    req.First,
		Second:   req.Second,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "compare players failed", "first", req.First, "second", req.Second, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, comparisonToDTO(cmp))
}
