package factory

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordgrid/internal/model"
	"github.com/mcoot/wordgrid/internal/services/board"
	redisstorage "github.com/mcoot/wordgrid/internal/storage/redis"
	"github.com/mcoot/wordgrid/internal/testutil"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
	s.Require().NoError(s.app.LoadTestDictionary())
}

// Test: a full round from session creation to posting the score
func (s *IntegrationSuite) TestCompleteRound() {
	s.app.MockRandom.QueueString("round1")

	// Step 1: Start a session
	sess, err := s.app.GameController.StartSession(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.SessionID("s_round1"), sess.ID)

	// Step 2: Start a game on the reference grid
	s.app.QueueBoard(testutil.ExampleGrid)
	grid, err := s.app.GameController.NewGame(s.ctx, sess.ID)
	s.Require().NoError(err)
	s.Equal(testutil.ExampleGrid, grid.Strings())

	// Step 3: Guess words
	accepted := []string{}
	for _, guess := range []string{"cat", "dogs", "xyz", "tac"} {
		result, err := s.app.GameController.CheckWord(s.ctx, sess.ID, guess)
		s.Require().NoError(err)
		if result == model.ResultOK {
			accepted = append(accepted, guess)
		}
	}
	s.Equal([]string{"cat", "dogs"}, accepted)

	// Step 4: Score and post
	score := s.app.GameController.Score(accepted)
	s.Equal(7, score)

	stats, err := s.app.GameController.PostScore(s.ctx, sess.ID, score)
	s.Require().NoError(err)
	s.Equal(model.Stats{GamesPlayed: 1, HighScore: 7}, stats)

	// Step 5: A second round keeps the running stats
	_, err = s.app.GameController.NewGame(s.ctx, sess.ID)
	s.Require().NoError(err)
	stats, err = s.app.GameController.PostScore(s.ctx, sess.ID, 3)
	s.Require().NoError(err)
	s.Equal(model.Stats{GamesPlayed: 2, HighScore: 7}, stats)
}

// Test: the original app's rule set reproduces its reference results
func (s *IntegrationSuite) TestOrthogonalDictionaryFirstRound() {
	app := NewTestAppWithConfig(Config{Rules: board.Rules{
		Adjacency: board.AdjacencyOrthogonal,
		Order:     board.DictionaryFirst,
	}})
	s.Require().NoError(app.LoadTestDictionary())

	sess, err := app.GameController.StartSession(s.ctx)
	s.Require().NoError(err)
	app.QueueBoard(testutil.ExampleGrid)
	_, err = app.GameController.NewGame(s.ctx, sess.ID)
	s.Require().NoError(err)

	expected := map[string]model.ValidationResult{
		"CAT":  model.ResultOK,
		"DOGS": model.ResultNotOnBoard,
		"XYZ":  model.ResultNotWord,
	}
	for word, want := range expected {
		result, err := app.GameController.CheckWord(s.ctx, sess.ID, word)
		s.Require().NoError(err)
		s.Equal(want, result, word)
	}
}

// Test: sessions expire after the configured duration
func (s *IntegrationSuite) TestSessionExpiry() {
	sess, err := s.app.GameController.StartSession(s.ctx)
	s.Require().NoError(err)

	s.app.MockClock.Advance(23 * time.Hour)
	_, err = s.app.GameController.Stats(s.ctx, sess.ID)
	s.Require().NoError(err)

	s.app.MockClock.Advance(2 * time.Hour)
	_, err = s.app.GameController.Stats(s.ctx, sess.ID)
	s.ErrorIs(err, model.ErrSessionNotFound)
	s.Equal(0, s.app.Memory.SessionCount())
}

func (s *IntegrationSuite) TestGridSizeConfig() {
	app := NewTestAppWithConfig(Config{GridSize: 4})
	sess, err := app.GameController.StartSession(s.ctx)
	s.Require().NoError(err)

	grid, err := app.GameController.NewGame(s.ctx, sess.ID)
	s.Require().NoError(err)
	s.Equal(4, grid.Size)
}

// Factory construction tests

func (s *IntegrationSuite) TestNewDefaultsToMemory() {
	app, err := New(Config{})
	s.Require().NoError(err)
	defer func() { _ = app.Close() }()

	s.Equal(board.DefaultRules(), app.BoardService.Rules())
	s.Equal(model.DefaultGridSize, app.BoardService.GridSize())
}

func (s *IntegrationSuite) TestNewRejectsUnknownStorage() {
	_, err := New(Config{StorageType: "sqlite"})
	s.Error(err)
}

func (s *IntegrationSuite) TestNewRedisRequiresConfig() {
	_, err := New(Config{StorageType: StorageTypeRedis})
	s.Error(err)
}

func (s *IntegrationSuite) TestNewWithRedis() {
	mr := miniredis.RunT(s.T())
	redisCfg := redisstorage.DefaultConfig()
	redisCfg.URL = "redis://" + mr.Addr()

	app, err := New(Config{StorageType: StorageTypeRedis, RedisConfig: &redisCfg})
	s.Require().NoError(err)
	defer func() { _ = app.Close() }()

	s.Require().NoError(app.LoadDictionary(s.ctx))
	sess, err := app.GameController.StartSession(s.ctx)
	s.Require().NoError(err)
	_, err = app.GameController.NewGame(s.ctx, sess.ID)
	s.Require().NoError(err)
	stats, err := app.GameController.PostScore(s.ctx, sess.ID, 4)
	s.Require().NoError(err)
	s.Equal(model.Stats{GamesPlayed: 1, HighScore: 4}, stats)

	// The dictionary is mirrored for other instances
	other, err := New(Config{StorageType: StorageTypeRedis, RedisConfig: &redisCfg})
	s.Require().NoError(err)
	defer func() { _ = other.Close() }()
	s.Require().NoError(other.DictionaryService.LoadFromStorage(s.ctx))
	s.Equal(app.DictionaryService.WordCount(), other.DictionaryService.WordCount())
}

func (s *IntegrationSuite) TestNewWithUnreachableRedis() {
	redisCfg := redisstorage.DefaultConfig()
	redisCfg.URL = "redis://127.0.0.1:1"

	_, err := New(Config{StorageType: StorageTypeRedis, RedisConfig: &redisCfg})
	s.Error(err)
}

// Dictionary loading tests

func (s *IntegrationSuite) TestLoadDictionaryEmbedded() {
	app, err := New(Config{})
	s.Require().NoError(err)

	s.Require().NoError(app.LoadDictionary(s.ctx))
	s.True(app.DictionaryService.Contains("cat"))
	s.False(app.DictionaryService.Contains("xyz"))
}

func (s *IntegrationSuite) TestLoadDictionaryFromFile() {
	path := filepath.Join(s.T().TempDir(), "words.txt")
	s.Require().NoError(os.WriteFile(path, []byte("zebra\n\nquartz\n"), 0o600))

	app, err := New(Config{DictionaryPath: path})
	s.Require().NoError(err)

	s.Require().NoError(app.LoadDictionary(s.ctx))
	s.Equal(2, app.DictionaryService.WordCount())
	s.True(app.DictionaryService.Contains("QUARTZ"))
}

func (s *IntegrationSuite) TestLoadDictionaryMissingFile() {
	app, err := New(Config{DictionaryPath: filepath.Join(s.T().TempDir(), "missing.txt")})
	s.Require().NoError(err)

	s.ErrorIs(app.LoadDictionary(s.ctx), os.ErrNotExist)
	s.False(app.DictionaryService.IsLoaded())
}
