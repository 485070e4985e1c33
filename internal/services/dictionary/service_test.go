package dictionary

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mcoot/smartscrabble/internal/storage/memory"
	"github.com/mcoot/smartscrabble/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestIsNotLoadedByDefault() {
	s.False(s.service.IsLoaded())
	s.Equal(0, s.service.WordCount())
}

func (s *ServiceSuite) TestLoadWords() {
	words := []string{"apple", "banana", "cherry"}
	err := s.service.LoadWords(words)
	s.Require().NoError(err)

	s.True(s.service.IsLoaded())
	s.Equal(3, s.service.WordCount())
}

func (s *ServiceSuite) TestLoadWordsSkipsNonAlphabetic() {
	err := s.service.LoadWords([]string{"cat", "can't", "x-ray", "dog"})
	s.Require().NoError(err)

	s.Equal(2, s.service.WordCount())
	s.False(s.service.IsValidWord("can't"))
}

func (s *ServiceSuite) TestIsValidWordCaseInsensitive() {
	_ = s.service.LoadWords([]string{"Apple", "BANANA"})

	s.True(s.service.IsValidWord("apple"))
	s.True(s.service.IsValidWord("APPLE"))
	s.True(s.service.IsValidWord("bAnana"))
	s.False(s.service.IsValidWord("grape"))
}

func (s *ServiceSuite) TestIsValidWordRequiresMinLength() {
	_ = s.service.LoadWords([]string{"a", "ab", "abc"})

	s.False(s.service.IsValidWord("a")) // Stored but too short to play
	s.True(s.service.IsValidWord("ab"))
	s.True(s.service.IsValidWord("abc"))
}

func (s *ServiceSuite) TestIsValidWordWhenNotLoaded() {
	s.False(s.service.IsValidWord("apple"))
}

func (s *ServiceSuite) TestLoadFromStorage() {
	err := s.storage.SaveDictionaryWords(s.ctx, []string{"test", "word", "example"})
	s.Require().NoError(err)

	err = s.service.LoadFromStorage(s.ctx)
	s.Require().NoError(err)

	s.True(s.service.IsLoaded())
	s.Equal(3, s.service.WordCount())
	s.True(s.service.IsValidWord("test"))
}

func (s *ServiceSuite) TestLoadFromStorageWhenEmpty() {
	err := s.service.LoadFromStorage(s.ctx)
	s.ErrorIs(err, ErrDictionaryNotLoaded)
}

func (s *ServiceSuite) TestLoadFromFileSavesToStorage() {
	path := filepath.Join(s.T().TempDir(), "words.txt")
	s.Require().NoError(os.WriteFile(path, []byte("cat\n\n  dog  \nbird\n"), 0o644))

	err := s.service.LoadFromFile(s.ctx, path)
	s.Require().NoError(err)
	s.Equal(3, s.service.WordCount())
	s.True(s.service.IsValidWord("DOG"))

	stored, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"cat", "dog", "bird"}, stored)
}

func (s *ServiceSuite) TestLoadFromFileMissing() {
	err := s.service.LoadFromFile(s.ctx, filepath.Join(s.T().TempDir(), "missing.txt"))
	s.Error(err)
	s.False(s.service.IsLoaded())
}

func (s *ServiceSuite) TestWordListFiltersByLength() {
	_ = s.service.LoadWords([]string{"cat", "catalog", "catalogue"})

	list, err := s.service.WordList(7)
	s.Require().NoError(err)
	s.Equal([]string{"CAT", "CATALOG"}, list.Words())
}

func (s *ServiceSuite) TestWordListWhenNotLoaded() {
	_, err := s.service.WordList(7)
	s.ErrorIs(err, ErrDictionaryNotLoaded)
}
