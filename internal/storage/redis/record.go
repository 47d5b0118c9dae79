package redis

import (
	"time"

	"github.com/mcoot/wordgrid/internal/model"
)

// sessionRecord is the JSON stored under a session key. The grid uses its
// wire form so records stay readable with redis-cli.
type sessionRecord struct {
	ID          model.SessionID `json:"id"`
	Grid        [][]string      `json:"grid,omitempty"`
	GamesPlayed int             `json:"games_played"`
	HighScore   int             `json:"high_score"`
	CreatedAt   time.Time       `json:"created_at"`
	ExpiresAt   time.Time       `json:"expires_at"`
}

func toRecord(s *model.Session) sessionRecord {
	rec := sessionRecord{
		ID:          s.ID,
		GamesPlayed: s.GamesPlayed,
		HighScore:   s.HighScore,
		CreatedAt:   s.CreatedAt,
		ExpiresAt:   s.ExpiresAt,
	}
	if s.Grid != nil {
		rec.Grid = s.Grid.Strings()
	}
	return rec
}

func (rec sessionRecord) toSession() (*model.Session, error) {
	s := &model.Session{
		ID:          rec.ID,
		GamesPlayed: rec.GamesPlayed,
		HighScore:   rec.HighScore,
		CreatedAt:   rec.CreatedAt,
		ExpiresAt:   rec.ExpiresAt,
	}
	if rec.Grid != nil {
		grid, err := model.GridFromStrings(rec.Grid)
		if err != nil {
			return nil, err
		}
		s.Grid = grid
	}
	return s, nil
}
