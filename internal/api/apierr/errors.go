package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/smartscrabble/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeInvalidBoard        = "INVALID_BOARD"
	CodeInvalidRack         = "INVALID_RACK"
	CodeInvalidOrientation  = "INVALID_ORIENTATION"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeUnknownStrategy     = "UNKNOWN_STRATEGY"
	CodeInvalidTournament   = "INVALID_TOURNAMENT"
	CodePlayerNotFound      = "PLAYER_NOT_FOUND"
	CodeGameNotFound        = "GAME_NOT_FOUND"
	CodeTournamentNotFound  = "TOURNAMENT_NOT_FOUND"
	CodeGameComplete        = "GAME_COMPLETE"
	CodeNotYourTurn         = "NOT_YOUR_TURN"
	CodeIllegalMove         = "ILLEGAL_MOVE"
	CodeInsufficientPlayers = "INSUFFICIENT_PLAYERS"
	CodeDictionaryNotLoaded = "DICTIONARY_NOT_LOADED"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrTournamentNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeTournamentNotFound, "Tournament not found"}}
	case errors.Is(err, model.ErrUnknownStrategy):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownStrategy, err.Error()}}
	case errors.Is(err, model.ErrInvalidTournament):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidTournament, err.Error()}}
	case errors.Is(err, model.ErrInvalidBoard):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidBoard, "Board must be square rows of letters and '.'"}}
	case errors.Is(err, model.ErrInvalidRack):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRack, "Rack must be letters and '_' blanks"}}
	case errors.Is(err, model.ErrInvalidOrientation):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidOrientation, "Orientation must be horizontal or vertical"}}
	case errors.Is(err, model.ErrGameComplete):
		return &httpError{http.StatusConflict, APIError{CodeGameComplete, "Game is already complete"}}
	case errors.Is(err, model.ErrNotPlayerTurn):
		return &httpError{http.StatusForbidden, APIError{CodeNotYourTurn, "Not this seat's turn"}}
	case errors.Is(err, model.ErrIllegalMove):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeIllegalMove, err.Error()}}
	case errors.Is(err, model.ErrInsufficientPlayers):
		return &httpError{http.StatusBadRequest, APIError{CodeInsufficientPlayers, "A game needs exactly two players"}}
	case errors.Is(err, model.ErrDictionaryNotLoaded):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeDictionaryNotLoaded, "Dictionary not loaded"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewPanicError reports a request that panicked, naming the route it hit
func NewPanicError(route string) error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal error handling " + route}}
}
