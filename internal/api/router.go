package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/weixigu/boardgame-go/internal/api/handler"
	apimiddleware "github.com/weixigu/boardgame-go/internal/api/middleware"
	"github.com/weixigu/boardgame-go/internal/middleware"
	"github.com/weixigu/boardgame-go/internal/services/history"
	"github.com/weixigu/boardgame-go/internal/services/ledger"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	LedgerService  ledger.ServiceInterface
	HistoryService history.ServiceInterface
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	playerHandler := handler.NewPlayerHandler(cfg.LedgerService)
	gameHandler := handler.NewGameHandler(cfg.HistoryService)

	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := apimiddleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Player ledger routes. Delete and replace carry full records in the
	// body for stale-write checks, so they are POSTs.
	api.HandleFunc("/players", playerHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/players/delete", playerHandler.Delete).Methods(http.MethodPost)
	api.HandleFunc("/players/replace", playerHandler.Replace).Methods(http.MethodPost)
	api.HandleFunc("/players/record", playerHandler.SaveRecord).Methods(http.MethodPost)

	// Game history routes
	api.HandleFunc("/game/reset", gameHandler.Reset).Methods(http.MethodPost)
	api.HandleFunc("/game/moves", gameHandler.SaveMove).Methods(http.MethodPost)
	api.HandleFunc("/game/moves/{index}", gameHandler.ViewMove).Methods(http.MethodGet)
	api.HandleFunc("/game/moves/{index}/revert", gameHandler.Revert).Methods(http.MethodPost)
	api.HandleFunc("/game/winner", gameHandler.Winner).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
