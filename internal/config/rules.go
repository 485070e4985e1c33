package config

import (
	"fmt"
	"os"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/mcoot/smartscrabble/internal/model"
)

// rulesFile is the YAML form of model.Rules.
// Omitted fields keep the standard English values.
type rulesFile struct {
	BoardSize         int            `yaml:"board_size"`
	RackSize          int            `yaml:"rack_size"`
	BingoBonus        *int           `yaml:"bingo_bonus"`
	MaxScorelessTurns int            `yaml:"max_scoreless_turns"`
	Center            *positionFile  `yaml:"center"`
	Premiums          []string       `yaml:"premiums"`
	TileValues        map[string]int `yaml:"tile_values"`
	TileCounts        map[string]int `yaml:"tile_counts"`
}

type positionFile struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// LoadRules reads a rules file. An empty path returns the standard rules.
func LoadRules(path string) (*model.Rules, error) {
	if path == "" {
		return model.DefaultRules(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open rules: %w", err)
	}
	return ParseRules(data)
}

// ParseRules decodes YAML rules over the standard rules
func ParseRules(data []byte) (*model.Rules, error) {
	var f rulesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrInvalidRules, err)
	}

	rules := model.DefaultRules()
	if f.BoardSize != 0 {
		rules.BoardSize = f.BoardSize
		// Standard premiums only fit the standard board
		if f.Premiums == nil {
			rules.Premiums = nil
		}
	}
	if f.RackSize != 0 {
		rules.RackSize = f.RackSize
	}
	if f.BingoBonus != nil {
		rules.BingoBonus = *f.BingoBonus
	}
	if f.MaxScorelessTurns != 0 {
		rules.MaxScorelessTurns = f.MaxScorelessTurns
	}
	if f.Center != nil {
		rules.Center = model.Position{Row: f.Center.Row, Col: f.Center.Col}
	}
	if f.Premiums != nil {
		rules.Premiums = f.Premiums
	}

	if f.TileValues != nil {
		values, err := tileTable(f.TileValues)
		if err != nil {
			return nil, err
		}
		rules.TileValues = values
	}
	if f.TileCounts != nil {
		counts, err := tileTable(f.TileCounts)
		if err != nil {
			return nil, err
		}
		rules.TileCounts = counts
	}

	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return rules, nil
}

// tileTable converts single-letter keys to tiles
func tileTable(in map[string]int) (map[rune]int, error) {
	out := make(map[rune]int, len(in))
	for key, n := range in {
		r := []rune(key)
		if len(r) != 1 {
			return nil, fmt.Errorf("%w: tile key %q", model.ErrInvalidRules, key)
		}
		tile := unicode.ToUpper(r[0])
		if tile != model.Blank && !model.IsLetter(tile) {
			return nil, fmt.Errorf("%w: tile key %q", model.ErrInvalidRules, key)
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: negative value for %q", model.ErrInvalidRules, key)
		}
		out[tile] = n
	}
	return out, nil
}
