package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Game errors
	ErrGameNotFound        = errors.New("game not found")
	ErrGameComplete        = errors.New("game is already complete")
	ErrNotPlayerTurn       = errors.New("not this player's turn")
	ErrInsufficientPlayers = errors.New("a game needs exactly two players")
	ErrIllegalMove         = errors.New("illegal move")
	ErrUnknownAction       = errors.New("unknown action type")

	// Tournament errors
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrInvalidTournament  = errors.New("tournament needs at least two entrants and one round")

	// Bot errors
	ErrUnknownStrategy = errors.New("unknown bot strategy")
	ErrNoCollaborator  = errors.New("no oracle bound to agent")

	// Input errors
	ErrInvalidBoard       = errors.New("invalid board")
	ErrInvalidRack        = errors.New("invalid rack")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidRules       = errors.New("invalid rules")

	// Placement rejection reasons
	ErrEmptyWord        = errors.New("word places no tiles")
	ErrOutOfBounds      = errors.New("word runs off the board")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrMissingBoardTile = errors.New("padding square has no tile")
	ErrTilesNotInRack   = errors.New("rack cannot supply the tiles")
	ErrMissesCenter     = errors.New("first word must cover the centre square")
	ErrNotConnected     = errors.New("word does not touch existing tiles")
	ErrInvalidWord      = errors.New("word is not in the dictionary")
	ErrInvalidCrossWord = errors.New("cross word is not in the dictionary")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
)
