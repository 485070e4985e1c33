package handler

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/smartscrabble/internal/api/request"
	"github.com/mcoot/smartscrabble/internal/api/response"
	"github.com/mcoot/smartscrabble/internal/model"
	"github.com/mcoot/smartscrabble/internal/services/board"
	"github.com/mcoot/smartscrabble/internal/services/bot"
	"github.com/mcoot/smartscrabble/internal/services/game"
)

// MoveHandler chooses moves for positions supplied by the caller
type MoveHandler struct {
	boardService   *board.Service
	gameController *game.Controller
	botService     *bot.Service
	logger         *slog.Logger
}

// NewMoveHandler creates a new move handler
func NewMoveHandler(
	boardService *board.Service,
	gameController *game.Controller,
	botService *bot.Service,
	logger *slog.Logger,
) *MoveHandler {
	return &MoveHandler{
		boardService:   boardService,
		gameController: gameController,
		botService:     botService,
		logger:         logger,
	}
}

// Choose handles POST /api/v1/moves
func (h *MoveHandler) Choose(w http.ResponseWriter, r *http.Request) {
	var req request.MoveRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	if req.Strategy == "" {
		req.Strategy = model.BotStrategySmart
	}

	rules := h.boardService.Rules()
	b := h.boardService.NewBoard()
	if len(req.Board) > 0 {
		parsed, err := model.ParseBoard(req.Board)
		if err != nil {
			WriteError(w, err)
			return
		}
		if parsed.Size != rules.BoardSize {
			WriteError(w, model.ErrInvalidBoard)
			return
		}
		b = parsed
	}

	rack, err := model.ParseRack(req.Rack)
	if err != nil {
		WriteError(w, err)
		return
	}
	if len(rack) == 0 || len(rack) > rules.RackSize {
		WriteError(w, model.ErrInvalidRack)
		return
	}

	agent, err := h.botService.NewAgent(req.Strategy)
	if err != nil {
		WriteError(w, err)
		return
	}

	// A one-seat game is enough for the oracle to judge placements
	g := &model.Game{
		Board: b,
		Seats: []model.Seat{{Strategy: req.Strategy, Rack: rack}},
	}
	oracle := h.gameController.GateKeeper(g, 0)
	agent.SetCollaborator(oracle)

	action, err := agent.ChooseMove()
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.Move{
		Strategy: req.Strategy,
		Action:   response.ActionFromModel(action),
	}
	if action.IsPlacement() {
		resp.Score = oracle.Score(action.Placement())
	}

	h.logger.Debug("move chosen",
		slog.String("strategy", req.Strategy),
		slog.String("rack", rack.String()),
		slog.String("action", action.String()),
	)
	response.JSON(w, http.StatusOK, resp)
}
