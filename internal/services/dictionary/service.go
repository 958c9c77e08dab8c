package dictionary

import (
	"bufio"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/crypto/blake2b"

	"github.com/mcoot/wordgrid/internal/model"
	"github.com/mcoot/wordgrid/internal/storage"
)

// Service is the word-membership oracle.
//
// Words are stored upper-cased and Contains matches exactly against that
// stored form: "CAT" is found after loading "cat", "cat" is not. Board tiles
// are always upper case so formed words can be looked up as read.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu          sync.RWMutex
	words       map[string]struct{}
	fingerprint string
	loaded      bool
}

// New creates a new DictionaryService
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
		words:   make(map[string]struct{}),
	}
}

// Load reads one word per line from r and saves the list to storage
func (s *Service) Load(ctx context.Context, r io.Reader) error {
	words, err := readWords(r)
	if err != nil {
		return err
	}

	if err := s.storage.SaveDictionaryWords(ctx, words); err != nil {
		return err
	}

	return s.loadWords(words)
}

// LoadFromFile loads dictionary words from a file (one word per line)
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", model.ErrWordListUnreadable, err)
	}
	defer file.Close()

	if err := s.Load(ctx, file); err != nil {
		return err
	}

	s.logger.Info("dictionary loaded",
		slog.String("path", path),
		slog.Int("word_count", s.WordCount()),
		slog.String("fingerprint", s.Fingerprint()),
	)
	return nil
}

// LoadFromStorage loads dictionary words previously saved to storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetDictionaryWords(ctx)
	if err != nil {
		return err
	}
	return s.loadWords(words)
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) error {
	return s.loadWords(words)
}

func (s *Service) loadWords(words []string) error {
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		word = normalize(word)
		if word == "" {
			continue
		}
		set[word] = struct{}{}
	}
	fingerprint := fingerprintOf(set)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.words = set
	s.fingerprint = fingerprint
	s.loaded = true
	return nil
}

// Contains reports whether word is in the dictionary, matching the stored
// upper-case form exactly
func (s *Service) Contains(word string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.words[word]
	return ok
}

// IsLoaded returns whether the dictionary has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// WordCount returns the number of distinct words in the dictionary
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// Fingerprint identifies the loaded word set independent of source order
// and duplicates. Empty until loaded.
func (s *Service) Fingerprint() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fingerprint
}

func readWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if !utf8.ValidString(text) {
			return nil, fmt.Errorf("%w: line %d is not valid UTF-8", model.ErrWordListUnreadable, line)
		}
		if word := normalize(text); word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrWordListUnreadable, err)
	}
	return words, nil
}

func normalize(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}

func fingerprintOf(set map[string]struct{}) string {
	sorted := make([]string, 0, len(set))
	for word := range set {
		sorted = append(sorted, word)
	}
	sort.Strings(sorted)

	h, _ := blake2b.New256(nil)
	for _, word := range sorted {
		h.Write([]byte(word))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Interface check
type ServiceInterface interface {
	Contains(word string) bool
	IsLoaded() bool
	WordCount() int
	Fingerprint() string
	Load(ctx context.Context, r io.Reader) error
	LoadFromStorage(ctx context.Context) error
	LoadFromFile(ctx context.Context, path string) error
	LoadWords(words []string) error
}

var _ ServiceInterface = (*Service)(nil)
