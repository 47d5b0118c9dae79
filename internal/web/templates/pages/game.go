package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/wordgrid/internal/model"
	"github.com/mcoot/wordgrid/internal/web/templates/layout"
)

// GameData is the data for the game page
type GameData struct {
	layout.PageData
	Board           *model.Grid
	DurationSeconds int
}

// Game renders the board, the guess form and the round's running score
func Game(data GameData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section class="game" data-duration="%d">
<div id="timer" class="timer">Time Left: %ds</div>
`, data.DurationSeconds, data.DurationSeconds); err != nil {
			return err
		}

		if err := Board(data.Board).Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, `
<form id="guess-form" autocomplete="off">
<input id="guess" name="word" type="text" placeholder="Enter a word" required>
<button type="submit">Guess</button>
</form>
<p id="result" class="result" aria-live="polite"></p>
<p>Score: <span id="score">0</span></p>
<ul id="found-words" class="found"></ul>
<p><a class="button" href="/new-game">New game</a></p>
</section>
<script src="/static/wordgrid.js"></script>`)
		return err
	})
	return layout.Base(data.PageData, body)
}

// Board renders the grid as a table inside #board
func Board(grid *model.Grid) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div id="board" data-size="%d"><table class="board">`, grid.Size); err != nil {
			return err
		}
		for row := range grid.Cells {
			if _, err := io.WriteString(w, "<tr>"); err != nil {
				return err
			}
			for col, letter := range grid.Cells[row] {
				if _, err := fmt.Fprintf(w, `<td data-row="%d" data-col="%d">%s</td>`,
					row, col, templ.EscapeString(string(letter))); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "</tr>"); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</table></div>")
		return err
	})
}
