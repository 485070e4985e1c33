package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/smartscrabble/internal/model"
)

const boardSize = 15

func TestFindPlacementFirstLegalTakesScanOrder(t *testing.T) {
	oracle := newFakeOracle("CAT").
		allow("CAT", 3, 4, model.Vertical, 50).
		allow("CAT", 2, 9, model.Horizontal, 1).
		allow("CAT", 2, 9, model.Vertical, 7)

	got, ok := FindPlacement(oracle, boardSize, "CAT", FirstLegal)

	require.True(t, ok)
	assert.Equal(t, model.Position{Row: 2, Col: 9}, got.Origin)
	assert.Equal(t, model.Horizontal, got.Orientation)
	assert.Equal(t, 1, got.Score)
	// Stops at the hit
	assert.Equal(t, model.Placement{Word: "CAT", Origin: model.Position{Row: 2, Col: 9}, Orientation: model.Horizontal}, oracle.queries[len(oracle.queries)-1])
}

func TestFindPlacementBestScoringTakesMaximum(t *testing.T) {
	oracle := newFakeOracle("CAT").
		allow("CAT", 1, 1, model.Horizontal, 5).
		allow("CAT", 4, 4, model.Horizontal, 9).
		allow("CAT", 14, 0, model.Vertical, 3)

	got, ok := FindPlacement(oracle, boardSize, "CAT", BestScoring)

	require.True(t, ok)
	assert.Equal(t, model.Position{Row: 4, Col: 4}, got.Origin)
	assert.Equal(t, 9, got.Score)
	assert.Len(t, oracle.queries, boardSize*boardSize*2)
}

func TestFindPlacementBestScoringTieKeepsEarliest(t *testing.T) {
	oracle := newFakeOracle("CAT").
		allow("CAT", 1, 1, model.Horizontal, 5).
		allow("CAT", 0, 5, model.Vertical, 5).
		allow("CAT", 0, 5, model.Horizontal, 5)

	got, ok := FindPlacement(oracle, boardSize, "CAT", BestScoring)

	require.True(t, ok)
	assert.Equal(t, model.Position{Row: 0, Col: 5}, got.Origin)
	assert.Equal(t, model.Horizontal, got.Orientation)
}

func TestFindPlacementNoneLegal(t *testing.T) {
	for _, policy := range []PlacementPolicy{FirstLegal, BestScoring} {
		oracle := newFakeOracle("CAT")

		got, ok := FindPlacement(oracle, boardSize, "CAT", policy)

		assert.False(t, ok, policy.String())
		assert.Equal(t, model.ScoredPlacement{}, got)
		assert.Len(t, oracle.queries, boardSize*boardSize*2)
	}
}

func TestParsePlacementPolicy(t *testing.T) {
	p, err := ParsePlacementPolicy("best_scoring")
	require.NoError(t, err)
	assert.Equal(t, BestScoring, p)

	p, err = ParsePlacementPolicy("first-legal")
	require.NoError(t, err)
	assert.Equal(t, FirstLegal, p)

	_, err = ParsePlacementPolicy("greedy")
	assert.Error(t, err)
}
