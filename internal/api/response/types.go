package response

import "github.com/mcoot/wordgrid/internal/model"

// Stats represents a session's cumulative record
type Stats struct {
	GamesPlayed int `json:"games_played"`
	HighScore   int `json:"high_score"`
}

// StatsFromModel converts model.Stats
func StatsFromModel(s model.Stats) Stats {
	return Stats{
		GamesPlayed: s.GamesPlayed,
		HighScore:   s.HighScore,
	}
}

// SessionResponse is the response for session endpoints
type SessionResponse struct {
	SessionToken string `json:"session_token,omitempty"`
	Stats        Stats  `json:"stats"`
	HasBoard     bool   `json:"has_board"`
}

// SessionResponseFromModel creates a SessionResponse; the token is only
// included when withToken is set
func SessionResponseFromModel(s *model.Session, withToken bool) SessionResponse {
	resp := SessionResponse{
		Stats:    StatsFromModel(s.Stats()),
		HasBoard: s.Grid != nil,
	}
	if withToken {
		resp.SessionToken = string(s.ID)
	}
	return resp
}

// Board represents a letter grid as rows of single-letter strings
type Board struct {
	Size  int        `json:"size"`
	Cells [][]string `json:"cells"`
}

// BoardFromModel converts model.Grid to response Board
func BoardFromModel(g *model.Grid) Board {
	return Board{
		Size:  g.Size,
		Cells: g.Strings(),
	}
}

// BoardResponse wraps a board
type BoardResponse struct {
	Board Board `json:"board"`
}

// CheckWordResponse is the result of checking a word
type CheckWordResponse struct {
	Result string `json:"result"`
}

// ScoreResponse is the total for a set of words
type ScoreResponse struct {
	Score int `json:"score"`
}

// HealthResponse reports server readiness
type HealthResponse struct {
	Status          string `json:"status"`
	DictionaryWords int    `json:"dictionary_words"`
}
