package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/smartscrabble/internal/model"
)

func TestCanFormWord(t *testing.T) {
	tests := []struct {
		name string
		rack string
		word string
		want bool
	}{
		{"exact letters", "CATXYZQ", "CAT", true},
		{"missing letter", "CAXYZQR", "CAT", false},
		{"letter used once", "CATXYZQ", "TACT", false},
		{"blank covers shortfall", "CA_", "CAT", true},
		{"blanks cover everything", "___", "ZAX", true},
		{"blank plus repeat", "T_", "TT", true},
		{"not enough blanks", "C_", "CAT", false},
		{"longer than rack", "CAT", "CATS", false},
		{"non letter", "CAT____", "C-T", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rack, err := model.ParseRack(tt.rack)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, CanFormWord(rack, tt.word))
		})
	}
}

func TestCanFormWordDoesNotConsumeRack(t *testing.T) {
	rack := model.Rack("CAT")
	assert.True(t, CanFormWord(rack, "CAT"))
	assert.True(t, CanFormWord(rack, "CAT"))
	assert.Equal(t, "CAT", rack.String())
}

func TestFeasibleWords(t *testing.T) {
	rack := model.Rack("CAT_")
	words := []string{"ACTS", "AT", "CATS", "DOG", "TACIT", "ZA"}

	assert.Equal(t, []string{"ACTS", "AT", "CATS", "ZA"}, FeasibleWords(rack, words))
}
