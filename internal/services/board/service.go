package board

import (
	"log/slog"
	"strings"

	"github.com/mcoot/wordgrid/internal/dependencies/random"
	"github.com/mcoot/wordgrid/internal/model"
)

// Dictionary is the lexical check the engine depends on
type Dictionary interface {
	Contains(word string) bool
}

// Service generates grids and validates words against them.
// It holds no per-round state and is safe for concurrent use as long as
// its Random and Dictionary are.
type Service struct {
	dictionary Dictionary
	random     random.Random
	logger     *slog.Logger
	rules      Rules
	size       int
}

// Option configures a Service
type Option func(*Service)

// WithRules overrides the default validation rules
func WithRules(rules Rules) Option {
	return func(s *Service) {
		s.rules = rules
	}
}

// WithGridSize sets the size used by NewBoard
func WithGridSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.size = size
		}
	}
}

// New creates a new BoardService
func New(dictionary Dictionary, rnd random.Random, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		dictionary: dictionary,
		random:     rnd,
		logger:     logger,
		rules:      DefaultRules(),
		size:       model.DefaultGridSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Rules returns the validation rules in effect
func (s *Service) Rules() Rules {
	return s.rules
}

// GridSize returns the size used by NewBoard
func (s *Service) GridSize() int {
	return s.size
}

// NewBoard generates a grid of the configured size
func (s *Service) NewBoard() *model.Grid {
	return s.MakeBoard(s.size)
}

// MakeBoard generates a size×size grid, sampling every cell independently
// and uniformly from A-Z. A non-positive size uses the default.
func (s *Service) MakeBoard(size int) *model.Grid {
	if size <= 0 {
		size = model.DefaultGridSize
	}
	grid := model.NewGrid(size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			grid.Cells[row][col] = rune(model.Alphabet[s.random.Intn(len(model.Alphabet))])
		}
	}
	return grid
}

// CheckValidWord decides whether word is playable on grid.
// A missing or malformed grid returns ErrInvalidGrid and an empty word
// returns ErrEmptyWord; neither is folded into a result.
func (s *Service) CheckValidWord(grid *model.Grid, word string) (model.ValidationResult, error) {
	if err := grid.Validate(); err != nil {
		return "", err
	}
	word = strings.TrimSpace(word)
	if word == "" {
		return "", model.ErrEmptyWord
	}

	var result model.ValidationResult
	if !isLetterWord(word) {
		result = model.ResultNotOnBoard
	} else if s.rules.Order == DictionaryFirst {
		switch {
		case !s.dictionary.Contains(strings.ToLower(word)):
			result = model.ResultNotWord
		case s.tracePath(grid, word) == nil:
			result = model.ResultNotOnBoard
		default:
			result = model.ResultOK
		}
	} else {
		switch {
		case s.tracePath(grid, word) == nil:
			result = model.ResultNotOnBoard
		case !s.dictionary.Contains(strings.ToLower(word)):
			result = model.ResultNotWord
		default:
			result = model.ResultOK
		}
	}

	s.logger.Debug("word checked",
		slog.String("word", word),
		slog.String("result", string(result)),
	)
	return result, nil
}

// FindPath returns the cells spelling word on grid, or nil if there is none
func (s *Service) FindPath(grid *model.Grid, word string) []model.Position {
	if grid.Validate() != nil {
		return nil
	}
	return s.tracePath(grid, strings.TrimSpace(word))
}

// Interface for dependency injection
type ServiceInterface interface {
	NewBoard() *model.Grid
	MakeBoard(size int) *model.Grid
	CheckValidWord(grid *model.Grid, word string) (model.ValidationResult, error)
	FindPath(grid *model.Grid, word string) []model.Position
}

var _ ServiceInterface = (*Service)(nil)
