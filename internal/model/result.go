package model

// ValidationResult is the outcome of checking a word against a grid
type ValidationResult string

const (
	// ResultOK means the word traces a path on the grid and is in the dictionary
	ResultOK ValidationResult = "ok"
	// ResultNotOnBoard means no adjacency path spells the word
	ResultNotOnBoard ValidationResult = "not-on-board"
	// ResultNotWord means the word is not in the dictionary
	ResultNotWord ValidationResult = "not-word"
)

// Stats is a session's cumulative record across completed rounds
type Stats struct {
	GamesPlayed int
	HighScore   int
}
