package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/smartscrabble/internal/api/request"
	"github.com/mcoot/smartscrabble/internal/api/response"
	"github.com/mcoot/smartscrabble/internal/model"
	"github.com/mcoot/smartscrabble/internal/services/tournament"
)

// TournamentHandler handles tournament endpoints
type TournamentHandler struct {
	tournamentService *tournament.Service
}

// NewTournamentHandler creates a new tournament handler
func NewTournamentHandler(tournamentService *tournament.Service) *TournamentHandler {
	return &TournamentHandler{tournamentService: tournamentService}
}

// Run handles POST /api/v1/tournaments
func (h *TournamentHandler) Run(w http.ResponseWriter, r *http.Request) {
	var req request.RunTournamentRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	t, err := h.tournamentService.Run(r.Context(), model.TournamentConfig{
		Entrants:    req.Entrants,
		Rounds:      req.Rounds,
		Parallelism: req.Parallelism,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Created(w, response.TournamentFromModel(t))
}

// Get handles GET /api/v1/tournaments/{id}
func (h *TournamentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.TournamentID(mux.Vars(r)["id"])

	t, err := h.tournamentService.GetTournament(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TournamentFromModel(t))
}
