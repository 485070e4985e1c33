package dictionary

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mcoot/smartscrabble/internal/model"
	"github.com/mcoot/smartscrabble/internal/storage"
)

// MinWordLength is the shortest word the lexicon accepts on the board
const MinWordLength = 2

// Service is the full lexicon used to judge words formed on the board
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu     sync.RWMutex
	words  map[string]struct{}
	loaded bool
}

// New creates a new DictionaryService
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger.With(slog.String("component", "dictionary")),
		words:   make(map[string]struct{}),
	}
}

// LoadFromStorage loads dictionary words from storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetDictionaryWords(ctx)
	if err != nil {
		return err
	}
	return s.loadWords(words)
}

// LoadFromFile loads dictionary words from a file (one word per line)
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	words, err := readWordFile(path)
	if err != nil {
		return err
	}

	// Save to storage for future use
	if err := s.storage.SaveDictionaryWords(ctx, words); err != nil {
		return err
	}

	return s.loadWords(words)
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) error {
	return s.loadWords(words)
}

func (s *Service) loadWords(words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.words = make(map[string]struct{}, len(words))
	for _, word := range words {
		normalized, ok := model.NormalizeWord(word)
		if !ok {
			continue
		}
		s.words[normalized] = struct{}{}
	}
	s.loaded = true

	s.logger.Info("dictionary loaded", slog.Int("words", len(s.words)))
	return nil
}

// IsValidWord checks if a word exists in the dictionary.
// Matching is case-insensitive, so letters played from blanks match too.
func (s *Service) IsValidWord(word string) bool {
	if len([]rune(word)) < MinWordLength {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return false
	}

	_, ok := s.words[strings.ToUpper(word)]
	return ok
}

// IsLoaded returns whether the dictionary has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// WordCount returns the number of words in the dictionary
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// WordList snapshots the lexicon as an immutable candidate list
// holding only words of at most maxLength letters
func (s *Service) WordList(maxLength int) (*WordList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return nil, ErrDictionaryNotLoaded
	}

	words := make([]string, 0, len(s.words))
	for w := range s.words {
		words = append(words, w)
	}
	return NewWordList(words, maxLength), nil
}

// readWordFile reads one word per line, skipping blank lines
func readWordFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer file.Close()

	words, err := readWords(file)
	if err != nil {
		return nil, fmt.Errorf("read word list %s: %w", path, err)
	}
	return words, nil
}

func readWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// Interface check
type ServiceInterface interface {
	IsValidWord(word string) bool
	IsLoaded() bool
	WordCount() int
	WordList(maxLength int) (*WordList, error)
	LoadFromStorage(ctx context.Context) error
	LoadFromFile(ctx context.Context, path string) error
	LoadWords(words []string) error
}

var _ ServiceInterface = (*Service)(nil)

// ErrDictionaryNotLoaded is returned when operations are attempted before loading
var ErrDictionaryNotLoaded = model.ErrDictionaryNotLoaded
