package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/smartscrabble/internal/api/handler"
	"github.com/mcoot/smartscrabble/internal/api/middleware"
	"github.com/mcoot/smartscrabble/internal/services/board"
	"github.com/mcoot/smartscrabble/internal/services/bot"
	"github.com/mcoot/smartscrabble/internal/services/dictionary"
	"github.com/mcoot/smartscrabble/internal/services/game"
	"github.com/mcoot/smartscrabble/internal/services/tournament"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	APITokenHash      string // bcrypt hash guarding game and tournament creation; empty disables auth
	DictionaryService *dictionary.Service
	BoardService      *board.Service
	BotService        *bot.Service
	GameController    *game.Controller
	TournamentService *tournament.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	dictionaryHandler := handler.NewDictionaryHandler(cfg.DictionaryService, cfg.BotService)
	moveHandler := handler.NewMoveHandler(cfg.BoardService, cfg.GameController, cfg.BotService, cfg.Logger)
	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.BotService)
	tournamentHandler := handler.NewTournamentHandler(cfg.TournamentService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.APITokenHash)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Read-only routes (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)
	api.HandleFunc("/dictionary", dictionaryHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/moves", moveHandler.Choose).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/tournaments/{id}", tournamentHandler.Get).Methods(http.MethodGet)

	// Routes that create or advance stored state
	protected := api.NewRoute().Subrouter()
	protected.Use(authMiddleware)
	protected.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/games/{id}", gameHandler.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/games/{id}/turn", gameHandler.Turn).Methods(http.MethodPost)
	protected.HandleFunc("/tournaments", tournamentHandler.Run).Methods(http.MethodPost)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
