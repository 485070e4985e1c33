package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/smartscrabble/internal/dependencies/clock"
	"github.com/mcoot/smartscrabble/internal/dependencies/random"
	"github.com/mcoot/smartscrabble/internal/model"
	"github.com/mcoot/smartscrabble/internal/services/board"
	"github.com/mcoot/smartscrabble/internal/services/bot"
	"github.com/mcoot/smartscrabble/internal/services/gatekeeper"
	"github.com/mcoot/smartscrabble/internal/services/scoring"
	"github.com/mcoot/smartscrabble/internal/storage"
)

const (
	// GameIDAlphabet is the character set for generating game IDs
	GameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// GameIDLength is the length of generated game IDs
	GameIDLength = 12
	// MaxTurns is a safety limit for the PlayGame loop
	MaxTurns = 1000
)

// Controller manages game state and turn flow
type Controller struct {
	storage        storage.Storage
	boardService   *board.Service
	scoringService *scoring.Service
	clock          clock.Clock
	random         random.Random
	logger         *slog.Logger
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	boardService *board.Service,
	scoringService *scoring.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:        storage,
		boardService:   boardService,
		scoringService: scoringService,
		clock:          clock,
		random:         random,
		logger:         logger.With(slog.String("component", "game-controller")),
	}
}

// NewGame sets up a game in memory: a shuffled bag and a dealt rack per seat
func (c *Controller) NewGame(players []*model.Player) (*model.Game, error) {
	if len(players) != 2 {
		return nil, model.ErrInsufficientPlayers
	}

	rules := c.boardService.Rules()
	now := c.clock.Now()

	bag := rules.TileSet()
	c.random.Shuffle(len(bag), func(i, j int) { bag[i], bag[j] = bag[j], bag[i] })

	game := &model.Game{
		ID:        model.GameID(c.random.String(GameIDLength, GameIDAlphabet)),
		State:     model.GameStateInProgress,
		Board:     c.boardService.NewBoard(),
		Bag:       bag,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, p := range players {
		seat := model.Seat{PlayerID: p.ID, Strategy: p.BotStrategy}
		seat.Rack = draw(game, rules.RackSize)
		game.Seats = append(game.Seats, seat)
	}

	return game, nil
}

// CreateGame sets up a new game and saves it
func (c *Controller) CreateGame(ctx context.Context, players []*model.Player) (*model.Game, error) {
	game, err := c.NewGame(players)
	if err != nil {
		return nil, err
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.String("first", game.Seats[0].Strategy),
		slog.String("second", game.Seats[1].Strategy),
	)

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// SaveGame persists a game's current state
func (c *Controller) SaveGame(ctx context.Context, game *model.Game) error {
	return c.storage.SaveGame(ctx, game)
}

// DeleteGame removes a game and the bot players seated in it
func (c *Controller) DeleteGame(ctx context.Context, gameID model.GameID) error {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	for _, seat := range game.Seats {
		if err := c.storage.DeletePlayer(ctx, seat.PlayerID); err != nil {
			return err
		}
	}
	if err := c.storage.DeleteGame(ctx, gameID); err != nil {
		return err
	}

	c.logger.Info("game deleted", slog.String("game_id", string(gameID)))
	return nil
}

// GateKeeper returns the oracle for a seat of the game
func (c *Controller) GateKeeper(game *model.Game, seat int) *gatekeeper.GateKeeper {
	return gatekeeper.New(game, seat, c.boardService, c.scoringService)
}

// ApplyAction plays an action for the seat to move and advances the turn
func (c *Controller) ApplyAction(game *model.Game, seat int, action model.Action) (*model.TurnRecord, error) {
	if game.IsComplete() {
		return nil, model.ErrGameComplete
	}
	if seat != game.CurrentSeat {
		return nil, model.ErrNotPlayerTurn
	}

	player := &game.Seats[seat]
	record := model.TurnRecord{
		Seat:       seat,
		Action:     action,
		RackBefore: player.Rack.String(),
	}

	switch action.Type {
	case model.ActionPlaceWord, model.ActionPlaceSingleTile:
		score, err := c.place(game, player, action.Placement())
		if err != nil {
			return nil, err
		}
		record.Score = score
	case model.ActionExchangeAll:
		c.exchange(game, player)
	default:
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownAction, action.Type)
	}

	if record.Score > 0 {
		game.ScorelessTurns = 0
	} else {
		game.ScorelessTurns++
	}
	game.Turns = append(game.Turns, record)
	game.UpdatedAt = c.clock.Now()

	rules := c.boardService.Rules()
	switch {
	case len(player.Rack) == 0 && len(game.Bag) == 0:
		c.finish(game, seat)
	case game.ScorelessTurns >= rules.MaxScorelessTurns:
		c.finish(game, -1)
	default:
		game.CurrentSeat = (game.CurrentSeat + 1) % len(game.Seats)
	}

	return &record, nil
}

// place resolves and applies a placement, then refills the rack
func (c *Controller) place(game *model.Game, player *model.Seat, p model.Placement) (int, error) {
	layout, err := c.boardService.Resolve(game.Board, player.Rack, p)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", model.ErrIllegalMove, err)
	}

	score := c.scoringService.Score(layout).Total
	c.boardService.Apply(game.Board, layout)

	rack := player.Rack
	for _, tile := range layout.RackTiles {
		rack, _ = rack.Remove(tile)
	}
	player.Rack = append(rack, draw(game, c.boardService.Rules().RackSize-len(rack))...)
	player.Score += score

	return score, nil
}

// exchange swaps the whole rack for fresh tiles.
// With fewer tiles in the bag than in the rack the turn is a pass.
func (c *Controller) exchange(game *model.Game, player *model.Seat) {
	n := len(player.Rack)
	if n == 0 || len(game.Bag) < n {
		return
	}

	fresh := draw(game, n)
	game.Bag = append(game.Bag, player.Rack...)
	c.random.Shuffle(len(game.Bag), func(i, j int) { game.Bag[i], game.Bag[j] = game.Bag[j], game.Bag[i] })
	player.Rack = fresh
}

// finish applies end-of-game rack penalties and closes the game.
// outSeat is the seat that emptied its rack, or -1 if play stalled.
func (c *Controller) finish(game *model.Game, outSeat int) {
	rules := c.boardService.Rules()

	for i := range game.Seats {
		if i == outSeat {
			continue
		}
		penalty := rules.RackValue(game.Seats[i].Rack)
		game.Seats[i].Score -= penalty
		if outSeat >= 0 {
			game.Seats[outSeat].Score += penalty
		}
	}

	now := c.clock.Now()
	game.State = model.GameStateComplete
	game.CompletedAt = now
	game.UpdatedAt = now

	c.logger.Info("game complete",
		slog.String("game_id", string(game.ID)),
		slog.Int("turns", len(game.Turns)),
		slog.Int("first_score", game.Seats[0].Score),
		slog.Int("second_score", game.Seats[1].Score),
	)
}

// PlayTurn asks the agent for the current seat's move and applies it
func (c *Controller) PlayTurn(game *model.Game, agent bot.Agent) (*model.TurnRecord, error) {
	seat := game.CurrentSeat
	agent.SetCollaborator(c.GateKeeper(game, seat))

	action, err := agent.ChooseMove()
	if err != nil {
		return nil, err
	}

	record, err := c.ApplyAction(game, seat, action)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("turn played",
		slog.String("game_id", string(game.ID)),
		slog.Int("seat", seat),
		slog.String("action", action.String()),
		slog.Int("score", record.Score),
	)
	return record, nil
}

// PlayGame alternates the agents, one per seat, until the game is over,
// then saves the finished game
func (c *Controller) PlayGame(ctx context.Context, game *model.Game, agents []bot.Agent) (*model.GameSummary, error) {
	if len(agents) != len(game.Seats) {
		return nil, model.ErrInsufficientPlayers
	}

	for turn := 0; !game.IsComplete(); turn++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if turn >= MaxTurns {
			c.logger.Warn("turn limit reached", slog.String("game_id", string(game.ID)))
			c.finish(game, -1)
			break
		}
		if _, err := c.PlayTurn(game, agents[game.CurrentSeat]); err != nil {
			return nil, err
		}
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return Summarize(game), nil
}

// Summarize reports the final scores and winner of a game
func Summarize(game *model.Game) *model.GameSummary {
	summary := &model.GameSummary{
		ID:          game.ID,
		FinalScores: game.Scores(),
		Turns:       len(game.Turns),
		CompletedAt: game.CompletedAt,
	}

	best := -1
	for i, s := range game.Seats {
		switch {
		case best < 0 || s.Score > game.Seats[best].Score:
			best = i
			summary.Winner = s.PlayerID
		case s.Score == game.Seats[best].Score:
			summary.Winner = ""
		}
	}
	return summary
}

// draw pops up to n tiles from the end of the bag
func draw(game *model.Game, n int) model.Rack {
	if n > len(game.Bag) {
		n = len(game.Bag)
	}
	if n <= 0 {
		return model.Rack{}
	}
	split := len(game.Bag) - n
	tiles := make(model.Rack, n)
	copy(tiles, game.Bag[split:])
	game.Bag = game.Bag[:split]
	return tiles
}
