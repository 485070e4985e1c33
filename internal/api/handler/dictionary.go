package handler

import (
	"net/http"

	"github.com/mcoot/smartscrabble/internal/api/response"
	"github.com/mcoot/smartscrabble/internal/services/bot"
	"github.com/mcoot/smartscrabble/internal/services/dictionary"
)

// DictionaryHandler reports on the loaded lexicon
type DictionaryHandler struct {
	dictionaryService *dictionary.Service
	botService        *bot.Service
}

// NewDictionaryHandler creates a new dictionary handler
func NewDictionaryHandler(dictionaryService *dictionary.Service, botService *bot.Service) *DictionaryHandler {
	return &DictionaryHandler{
		dictionaryService: dictionaryService,
		botService:        botService,
	}
}

// Get handles GET /api/v1/dictionary
func (h *DictionaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	words := h.botService.Words()
	response.JSON(w, http.StatusOK, response.Dictionary{
		Loaded:         h.dictionaryService.IsLoaded(),
		Words:          h.dictionaryService.WordCount(),
		CandidateWords: words.Len(),
		MaxWordLength:  words.MaxLength(),
	})
}
