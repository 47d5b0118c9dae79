package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to stdout
func NewOutput(format string) *Output {
	return &Output{format: format, w: os.Stdout}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		o.printJSON(map[string]string{"message": msg})
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Session:
		o.printSession(v)
	case Stats:
		o.printStats(v)
	case BoardResult:
		o.printBoard(v.Board)
	case CheckResult:
		o.printCheck(v)
	case ScoreResult:
		_, _ = fmt.Fprintf(o.w, "Score: %d\n", v.Score)
	case HealthResult:
		_, _ = fmt.Fprintf(o.w, "Status: %s\nDictionary: %d words\n", v.Status, v.DictionaryWords)
	default:
		o.printJSON(data)
	}
}

// Stats response type (matches API)
type Stats struct {
	GamesPlayed int `json:"games_played"`
	HighScore   int `json:"high_score"`
}

// Session response type
type Session struct {
	SessionToken string `json:"session_token,omitempty"`
	Stats        Stats  `json:"stats"`
	HasBoard     bool   `json:"has_board"`
}

// Board response type
type Board struct {
	Size  int        `json:"size"`
	Cells [][]string `json:"cells"`
}

// BoardResult wraps a board
type BoardResult struct {
	Board Board `json:"board"`
}

// CheckResult is a word check outcome; Word is filled in locally
type CheckResult struct {
	Word   string `json:"word,omitempty"`
	Result string `json:"result"`
}

// ScoreResult response type
type ScoreResult struct {
	Score int `json:"score"`
}

// HealthResult response type
type HealthResult struct {
	Status          string `json:"status"`
	DictionaryWords int    `json:"dictionary_words"`
}

func (o *Output) printSession(s Session) {
	if s.SessionToken != "" {
		_, _ = fmt.Fprintf(o.w, "Token: %s\n", s.SessionToken)
	}
	o.printStats(s.Stats)
	if s.HasBoard {
		_, _ = fmt.Fprintln(o.w, "Board: in progress")
	}
}

func (o *Output) printStats(s Stats) {
	_, _ = fmt.Fprintf(o.w, "Games Played: %d\n", s.GamesPlayed)
	_, _ = fmt.Fprintf(o.w, "Highest Score: %d\n", s.HighScore)
}

func (o *Output) printCheck(c CheckResult) {
	switch c.Result {
	case "ok":
		_, _ = fmt.Fprintf(o.w, "%s: ok\n", strings.ToUpper(c.Word))
	case "not-on-board":
		_, _ = fmt.Fprintf(o.w, "%s: not on the board\n", strings.ToUpper(c.Word))
	case "not-word":
		_, _ = fmt.Fprintf(o.w, "%s: not a word\n", strings.ToUpper(c.Word))
	default:
		_, _ = fmt.Fprintf(o.w, "%s: %s\n", strings.ToUpper(c.Word), c.Result)
	}
}

func (o *Output) printBoard(b Board) {
	if len(b.Cells) == 0 {
		return
	}
	size := len(b.Cells)

	// Column headers
	_, _ = fmt.Fprint(o.w, "    ")
	for col := 0; col < size; col++ {
		_, _ = fmt.Fprintf(o.w, " %d ", col)
	}
	_, _ = fmt.Fprintln(o.w)

	border := "   +" + strings.Repeat("---", size) + "+"
	_, _ = fmt.Fprintln(o.w, border)
	for row := 0; row < size; row++ {
		_, _ = fmt.Fprintf(o.w, " %d |", row)
		for _, cell := range b.Cells[row] {
			_, _ = fmt.Fprintf(o.w, " %s ", cell)
		}
		_, _ = fmt.Fprintln(o.w, "|")
	}
	_, _ = fmt.Fprintln(o.w, border)
}
