package factory

import (
	"time"

	"github.com/mcoot/wordgrid/internal/dependencies/mocks"
	"github.com/mcoot/wordgrid/internal/services/scoring"
	"github.com/mcoot/wordgrid/internal/storage"
	"github.com/mcoot/wordgrid/internal/storage/memory"
	"github.com/mcoot/wordgrid/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App on memory storage with mocked dependencies
func NewTestApp() *TestApp {
	return NewTestAppWithStorage(memory.New())
}

// NewTestAppWithStorage creates an App on the given storage with mocked dependencies
func NewTestAppWithStorage(store storage.Storage) *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, scoring.DefaultConfig(), testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestDictionary loads a small dictionary for testing
func (t *TestApp) LoadTestDictionary() error {
	words := []string{
		// 2-letter words
		"at", "be", "do", "go", "he", "if", "in", "is", "it", "me",
		"my", "no", "of", "on", "or", "so", "to", "up", "us", "we",
		"ax", "ox", "xi", "qi", "za",
		// 3-letter words
		"act", "ant", "art", "ate", "bat", "cat", "cot", "dog", "eat", "god",
		"hat", "hot", "nod", "not", "oat", "rat", "sat", "tan", "tea", "ten",
		"tin", "toe", "ton", "tot", "zap", "zen", "zoo",
		// 4-letter words
		"cats", "coat", "dogs", "east", "rate", "seat", "star", "tone", "zone",
		// 5-letter words
		"scats", "stone", "toast",
		// 7-letter words
		"retains", "stainer",
	}
	return t.DictionaryService.LoadWords(words)
}
