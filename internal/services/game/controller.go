package game

import (
	"context"
	"log/slog"

	"github.com/mcoot/wordgrid/internal/model"
	"github.com/mcoot/wordgrid/internal/services/board"
	"github.com/mcoot/wordgrid/internal/services/scoring"
	"github.com/mcoot/wordgrid/internal/services/session"
)

// Recorder receives game events for instrumentation
type Recorder interface {
	SessionCreated()
	BoardGenerated()
	WordChecked(result model.ValidationResult)
	ScorePosted(score int)
}

type nopRecorder struct{}

func (nopRecorder) SessionCreated()                    {}
func (nopRecorder) BoardGenerated()                    {}
func (nopRecorder) WordChecked(model.ValidationResult) {}
func (nopRecorder) ScorePosted(int)                    {}

// Controller runs a player's rounds: it puts boards into sessions, checks
// words against the session's board and records finished rounds
type Controller struct {
	sessions       *session.Service
	boardService   *board.Service
	scoringService *scoring.Service
	recorder       Recorder
	logger         *slog.Logger
	locks          *sessionLocks
}

// NewController creates a new GameController. A nil recorder disables
// instrumentation.
func NewController(
	sessions *session.Service,
	boardService *board.Service,
	scoringService *scoring.Service,
	recorder Recorder,
	logger *slog.Logger,
) *Controller {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Controller{
		sessions:       sessions,
		boardService:   boardService,
		scoringService: scoringService,
		recorder:       recorder,
		logger:         logger,
		locks:          newSessionLocks(),
	}
}

// StartSession creates a fresh session with no board
func (c *Controller) StartSession(ctx context.Context) (*model.Session, error) {
	sess, err := c.sessions.Create(ctx)
	if err != nil {
		return nil, err
	}
	c.recorder.SessionCreated()
	return sess, nil
}

// Session returns the session, or ErrSessionNotFound
func (c *Controller) Session(ctx context.Context, sessionID model.SessionID) (*model.Session, error) {
	return c.sessions.Get(ctx, sessionID)
}

// NewGame generates a board and makes it the session's current board,
// replacing any previous one
func (c *Controller) NewGame(ctx context.Context, sessionID model.SessionID) (*model.Grid, error) {
	unlock := c.locks.lock(sessionID)
	defer unlock()

	sess, err := c.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sess.Grid = c.boardService.NewBoard()
	if err := c.sessions.Save(ctx, sess); err != nil {
		c.logger.Error("failed to save session",
			slog.String("session_id", string(sessionID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.recorder.BoardGenerated()
	c.logger.Info("game started",
		slog.String("session_id", string(sessionID)),
		slog.Int("grid_size", sess.Grid.Size),
	)
	return sess.Grid, nil
}

// CurrentBoard returns the session's board, or ErrNoBoard if no game was started
func (c *Controller) CurrentBoard(ctx context.Context, sessionID model.SessionID) (*model.Grid, error) {
	sess, err := c.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Grid == nil {
		return nil, model.ErrNoBoard
	}
	return sess.Grid, nil
}

// CheckWord validates word against the session's current board
func (c *Controller) CheckWord(ctx context.Context, sessionID model.SessionID, word string) (model.ValidationResult, error) {
	grid, err := c.CurrentBoard(ctx, sessionID)
	if err != nil {
		return "", err
	}

	result, err := c.boardService.CheckValidWord(grid, word)
	if err != nil {
		return "", err
	}

	c.recorder.WordChecked(result)
	return result, nil
}

// Score totals a round's accepted words
func (c *Controller) Score(words []string) int {
	return c.scoringService.Score(words)
}

// PostScore records a finished round: games played goes up by one and the
// high score keeps the best seen
func (c *Controller) PostScore(ctx context.Context, sessionID model.SessionID, score int) (model.Stats, error) {
	if score < 0 {
		return model.Stats{}, model.ErrInvalidScore
	}

	unlock := c.locks.lock(sessionID)
	defer unlock()

	sess, err := c.sessions.Get(ctx, sessionID)
	if err != nil {
		return model.Stats{}, err
	}

	sess.RecordScore(score)
	if err := c.sessions.Save(ctx, sess); err != nil {
		c.logger.Error("failed to save session",
			slog.String("session_id", string(sessionID)),
			slog.String("error", err.Error()),
		)
		return model.Stats{}, err
	}

	c.recorder.ScorePosted(score)
	c.logger.Info("score posted",
		slog.String("session_id", string(sessionID)),
		slog.Int("score", score),
		slog.Int("games_played", sess.GamesPlayed),
		slog.Int("high_score", sess.HighScore),
	)
	return sess.Stats(), nil
}

// Stats returns the session's games played and high score
func (c *Controller) Stats(ctx context.Context, sessionID model.SessionID) (model.Stats, error) {
	sess, err := c.sessions.Get(ctx, sessionID)
	if err != nil {
		return model.Stats{}, err
	}
	return sess.Stats(), nil
}

// Interface for dependency injection
type ControllerInterface interface {
	StartSession(ctx context.Context) (*model.Session, error)
	Session(ctx context.Context, sessionID model.SessionID) (*model.Session, error)
	NewGame(ctx context.Context, sessionID model.SessionID) (*model.Grid, error)
	CurrentBoard(ctx context.Context, sessionID model.SessionID) (*model.Grid, error)
	CheckWord(ctx context.Context, sessionID model.SessionID, word string) (model.ValidationResult, error)
	Score(words []string) int
	PostScore(ctx context.Context, sessionID model.SessionID, score int) (model.Stats, error)
	Stats(ctx context.Context, sessionID model.SessionID) (model.Stats, error)
}

var _ ControllerInterface = (*Controller)(nil)
