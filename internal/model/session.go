package model

import "time"

// SessionID uniquely identifies a player session
type SessionID string

// Session is the per-player state kept between requests
type Session struct {
	ID          SessionID
	Grid        *Grid // nil until the first game is started
	GamesPlayed int
	HighScore   int
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

// Stats returns the session's cumulative record
func (s *Session) Stats() Stats {
	return Stats{
		GamesPlayed: s.GamesPlayed,
		HighScore:   s.HighScore,
	}
}

// RecordScore counts a completed round and keeps the best score seen
func (s *Session) RecordScore(score int) {
	s.GamesPlayed++
	if score > s.HighScore {
		s.HighScore = score
	}
}

// IsExpired reports whether the session has passed its expiry time
func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// Clone returns a deep copy so stored sessions are never shared with callers
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	clone := *s
	clone.Grid = s.Grid.Clone()
	return &clone
}
