package scores

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()

	r.Get("/seasons", SeasonHandler)
	r.Get("/seasons/{year}/shows", SeasonShowsHandler)
	r.Get("/shows/{id}/results", ShowResultsHandler)
	r.Get("/groups/{id}/history", GroupHistoryHandler)

	return r
}
