package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mcoot/smartscrabble/internal/api/response"
	"github.com/mcoot/smartscrabble/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Health:
		fmt.Printf("Status: %s\n", v.Status)
	case response.Dictionary:
		o.printDictionary(v)
	case response.Move:
		o.printMove(v)
	case response.Game:
		o.printGame(v)
	case response.TurnResult:
		o.printTurn(v.Turn)
		fmt.Println()
		o.printGame(v.Game)
	case response.Tournament:
		o.printTournament(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printDictionary(d response.Dictionary) {
	if !d.Loaded {
		fmt.Println("Dictionary: not loaded")
		return
	}
	fmt.Printf("Words: %d\n", d.Words)
	fmt.Printf("Candidate words: %d (up to %d letters)\n", d.CandidateWords, d.MaxWordLength)
}

func (o *Output) printMove(m response.Move) {
	fmt.Printf("Strategy: %s\n", m.Strategy)
	fmt.Printf("Move: %s\n", describeAction(m.Action))
	if m.Action.Type != string(model.ActionExchangeAll) {
		fmt.Printf("Score: %d\n", m.Score)
	}
}

func (o *Output) printTurn(t response.Turn) {
	fmt.Printf("Seat %d played %s for %d (rack %s)\n", t.Seat, describeAction(t.Action), t.Score, t.RackBefore)
}

func (o *Output) printGame(g response.Game) {
	fmt.Printf("Game: %s\n", g.ID)
	fmt.Printf("State: %s\n", g.State)
	fmt.Printf("Turns: %d\n", len(g.Turns))
	fmt.Printf("Bag: %d tiles\n", g.BagCount)

	fmt.Println("\nSeats:")
	for i, s := range g.Seats {
		marker := " "
		if i == g.CurrentSeat && g.State != string(model.GameStateComplete) {
			marker = "*"
		}
		fmt.Printf(" %s %d. %s (%s): %d points, rack %s\n", marker, i, s.Strategy, s.PlayerID, s.Score, s.Rack)
	}

	fmt.Println()
	o.printBoard(g.Board)

	if g.Winner != nil {
		fmt.Printf("\nWinner: %s\n", *g.Winner)
	} else if g.State == string(model.GameStateComplete) {
		fmt.Println("\nResult: draw")
	}
}

func (o *Output) printBoard(rows []string) {
	if len(rows) == 0 {
		return
	}

	size := len(rows)

	// Print column headers
	fmt.Print("    ")
	for col := 0; col < size; col++ {
		fmt.Printf("%2d", col)
	}
	fmt.Println()

	for row := 0; row < size; row++ {
		fmt.Printf(" %2d ", row)
		for _, cell := range rows[row] {
			fmt.Printf(" %c", cell)
		}
		fmt.Println()
	}
}

func (o *Output) printTournament(t response.Tournament) {
	fmt.Printf("Tournament: %s\n", t.ID)
	fmt.Printf("Rounds: %d, games: %d\n", t.Rounds, len(t.Results))

	fmt.Println("\nStandings:")
	for i, s := range t.Standings {
		fmt.Printf("  %d. %-10s %5.1f points from %d games\n", i+1, s.Strategy, s.Points, s.Games)
	}

	if o.verboseResults() {
		fmt.Println("\nGames:")
		for _, r := range t.Results {
			fmt.Printf("  %s: %s %d - %d %s\n", r.GameID, r.First, r.FirstScore, r.SecondScore, r.Second)
		}
	}

	fmt.Printf("\nFirst entrant win rate: %.1f%%\n", t.WinRate*100)
}

func (o *Output) verboseResults() bool {
	return cfg != nil && cfg.Verbose
}

func describeAction(a response.Action) string {
	switch model.ActionType(a.Type) {
	case model.ActionPlaceWord:
		return fmt.Sprintf("%s at (%d,%d) %s", a.Word, a.Row, a.Col, a.Orientation)
	case model.ActionPlaceSingleTile:
		return fmt.Sprintf("tile %s as %q at (%d,%d) %s", a.Tile, a.Word, a.Row, a.Col, a.Orientation)
	case model.ActionExchangeAll:
		return "exchange all tiles"
	default:
		return a.Type
	}
}
