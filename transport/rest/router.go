package rest

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter - allowedOrigins lists the browser origins granted CORS access, "*" allows any.
func NewRouter(logger *slog.Logger, handlers Handlers, allowedOrigins []string) http.Handler {
	r := mux.NewRouter()
	r.Use(recovery(logger))
	r.Use(logging(logger))

	r.HandleFunc("/ping", pingHandler).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// results
	api.HandleFunc("/saveGame", handlers.SaveGame).Methods(http.MethodPost)
	api.HandleFunc("/stats", handlers.Stats).Methods(http.MethodGet)

	// game sessions
	api.HandleFunc("/games", handlers.NewGame).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}", handlers.GetGame).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}", handlers.EndGame).Methods(http.MethodDelete)
	api.HandleFunc("/games/{id}/moves", handlers.MakeMove).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/reset", handlers.ResetGame).Methods(http.MethodPost)

	return cors(allowedOrigins)(r)
}

func pingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("pong"))
}
