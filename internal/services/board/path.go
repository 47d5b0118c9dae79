package board

import (
	"strings"

	"github.com/mcoot/wordgrid/internal/model"
)

// tracePath runs a depth-first backtracking search for word on grid.
// Cells are marked visited only along the current branch.
func (s *Service) tracePath(grid *model.Grid, word string) []model.Position {
	if !isLetterWord(word) {
		return nil
	}
	letters := []rune(strings.ToUpper(word))
	if len(letters) == 0 || len(letters) > grid.CellCount() {
		return nil
	}
	if !hasLetters(grid, letters) {
		return nil
	}

	t := &tracer{
		grid:    grid,
		letters: letters,
		steps:   s.rules.steps(),
		visited: make([][]bool, grid.Size),
		path:    make([]model.Position, 0, len(letters)),
	}
	for row := range t.visited {
		t.visited[row] = make([]bool, grid.Size)
	}

	for row := 0; row < grid.Size; row++ {
		for col := 0; col < grid.Size; col++ {
			if t.extend(model.Position{Row: row, Col: col}) {
				return t.path
			}
		}
	}
	return nil
}

type tracer struct {
	grid    *model.Grid
	letters []rune
	steps   []model.Position
	visited [][]bool
	path    []model.Position
}

// extend tries to place the next letter at pos and finish the word from there
func (t *tracer) extend(pos model.Position) bool {
	if !t.grid.IsValidPosition(pos) || t.visited[pos.Row][pos.Col] {
		return false
	}
	if t.grid.Cells[pos.Row][pos.Col] != t.letters[len(t.path)] {
		return false
	}

	t.visited[pos.Row][pos.Col] = true
	t.path = append(t.path, pos)
	if len(t.path) == len(t.letters) {
		return true
	}

	for _, step := range t.steps {
		if t.extend(model.Position{Row: pos.Row + step.Row, Col: pos.Col + step.Col}) {
			return true
		}
	}

	t.visited[pos.Row][pos.Col] = false
	t.path = t.path[:len(t.path)-1]
	return false
}

// isLetterWord reports whether word is non-empty and made only of ASCII letters.
// strings.ToUpper would otherwise fold runes such as 'ı' and 'ſ' onto grid letters.
func isLetterWord(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		c := word[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return true
}

// hasLetters reports whether the grid holds at least as many of each letter
// as the word needs; a cheap rejection before searching.
func hasLetters(grid *model.Grid, letters []rune) bool {
	need := make(map[rune]int, len(letters))
	for _, l := range letters {
		need[l]++
	}
	for _, row := range grid.Cells {
		for _, cell := range row {
			if n, ok := need[cell]; ok {
				if n == 1 {
					delete(need, cell)
				} else {
					need[cell] = n - 1
				}
			}
		}
	}
	return len(need) == 0
}
