package request

// CheckWordRequest is the request body for checking a word
type CheckWordRequest struct {
	Word string `json:"word"`
}

// ScoreRequest is the request body for scoring a round's words
type ScoreRequest struct {
	Words []string `json:"words"`
}

// PostScoreRequest is the request body for recording a finished round.
// Score is a pointer so a missing field can be told apart from zero.
type PostScoreRequest struct {
	Score *int `json:"score"`
}
