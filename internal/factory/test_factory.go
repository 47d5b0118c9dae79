package factory

import (
	"strings"
	"time"

	"github.com/mcoot/wordgrid/internal/dependencies/mocks"
	"github.com/mcoot/wordgrid/internal/storage/memory"
	"github.com/mcoot/wordgrid/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
	Memory     *memory.Storage
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	return NewTestAppWithConfig(Config{})
}

// NewTestAppWithConfig is NewTestApp with rules, grid size and session
// settings taken from cfg; storage and logger are always test doubles
func NewTestAppWithConfig(cfg Config) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	logger := cfg.Logger
	if logger == nil {
		logger = testutil.NopLogger()
	}
	app := newWithDependencies(store, mockClock, mockRandom, cfg, logger)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
		Memory:     store,
	}
}

// QueueBoard makes the next generated board equal rows
func (t *TestApp) QueueBoard(rows [][]string) {
	var letters strings.Builder
	for _, row := range rows {
		for _, cell := range row {
			letters.WriteString(strings.ToUpper(cell))
		}
	}
	t.MockRandom.QueueLetters(letters.String())
}

// LoadTestDictionary loads a small dictionary for testing.
// It covers words traceable on testutil.ExampleGrid and omits "xyz".
func (t *TestApp) LoadTestDictionary() error {
	words := []string{
		"a", "i",
		"an", "at", "go", "is", "to",
		"ant", "bog", "cat", "dog", "god", "nit", "sum", "tan", "tin",
		"cats", "dogs", "mint", "pose", "rode", "sums",
		"animal", "spice",
	}
	return t.DictionaryService.LoadWords(words)
}
