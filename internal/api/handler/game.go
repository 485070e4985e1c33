package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/smartscrabble/internal/api/request"
	"github.com/mcoot/smartscrabble/internal/api/response"
	"github.com/mcoot/smartscrabble/internal/model"
	"github.com/mcoot/smartscrabble/internal/services/bot"
	"github.com/mcoot/smartscrabble/internal/services/game"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	gameController *game.Controller
	botService     *bot.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController *game.Controller, botService *bot.Service) *GameHandler {
	return &GameHandler{
		gameController: gameController,
		botService:     botService,
	}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	if req.First == "" || req.Second == "" {
		WriteError(w, NewInvalidRequestError("first and second strategies are required"))
		return
	}

	var players []*model.Player
	var agents []bot.Agent
	for _, strategy := range []string{req.First, req.Second} {
		agent, err := h.botService.NewAgent(strategy)
		if err != nil {
			WriteError(w, err)
			return
		}
		player, err := h.botService.CreateBotPlayer(r.Context(), "", strategy)
		if err != nil {
			WriteError(w, err)
			return
		}
		agents = append(agents, agent)
		players = append(players, player)
	}

	g, err := h.gameController.CreateGame(r.Context(), players)
	if err != nil {
		WriteError(w, err)
		return
	}

	var summary *model.GameSummary
	if req.PlayToEnd == nil || *req.PlayToEnd {
		summary, err = h.gameController.PlayGame(r.Context(), g, agents)
		if err != nil {
			WriteError(w, err)
			return
		}
	}

	response.Created(w, response.GameFromModel(g, summary))
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	g, err := h.gameController.GetGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	var summary *model.GameSummary
	if g.IsComplete() {
		summary = game.Summarize(g)
	}
	response.JSON(w, http.StatusOK, response.GameFromModel(g, summary))
}

// Delete handles DELETE /api/v1/games/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	if err := h.gameController.DeleteGame(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Turn handles POST /api/v1/games/{id}/turn.
// The seat to move plays with its own strategy.
func (h *GameHandler) Turn(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	g, err := h.gameController.GetGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	if g.IsComplete() {
		WriteError(w, model.ErrGameComplete)
		return
	}

	agent, err := h.botService.NewAgent(g.Seats[g.CurrentSeat].Strategy)
	if err != nil {
		WriteError(w, err)
		return
	}

	record, err := h.gameController.PlayTurn(g, agent)
	if err != nil {
		WriteError(w, err)
		return
	}
	if err := h.gameController.SaveGame(r.Context(), g); err != nil {
		WriteError(w, err)
		return
	}

	var summary *model.GameSummary
	if g.IsComplete() {
		summary = game.Summarize(g)
	}
	response.JSON(w, http.StatusOK, response.TurnResult{
		Turn: response.TurnFromModel(*record),
		Game: response.GameFromModel(g, summary),
	})
}
