package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if swaggerEnabled {
		mux.HandleFunc("GET "+openAPIPath, handler.OpenAPI)
		mux.HandleFunc("GET /docs", handler.SwaggerUI)
		mux.HandleFunc("GET /docs/", handler.SwaggerUI)
	}
}

func registerDashboardRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/filters", handler.ListFilterOptions)
	mux.HandleFunc("GET /v1/dashboard", handler.GetDashboard)
	mux.HandleFunc("GET /v1/summary", handler.GetSummary)
	mux.HandleFunc("GET /v1/rankings/top", handler.ListTopPlayers)
	mux.HandleFunc("GET /v1/rankings/nations", handler.ListNationRanking)
	mux.HandleFunc("GET /v1/distribution/overall", handler.GetRatingDistribution)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/export", handler.ExportPlayers)
	mux.HandleFunc("GET /v1/players/names", handler.ListPlayerNames)
	mux.HandleFunc("GET /v1/compare", handler.ComparePlayers)
}
