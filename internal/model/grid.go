package model

// DefaultGridSize is the dimension of a standard grid (5x5)
const DefaultGridSize = 5

// Alphabet is the set of letters a grid cell may hold
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Position identifies a cell on the grid
type Position struct {
	Row int `json:"row"` // 0-indexed from top
	Col int `json:"col"` // 0-indexed from left
}

// Grid is one round's N×N matrix of uppercase letters.
// A generated grid is never modified; use Clone to get a private copy.
type Grid struct {
	Size  int      `json:"size"`
	Cells [][]rune `json:"cells"` // Row-major: Cells[row][col]
}

// NewGrid creates a grid of the given size with every cell set to 0
func NewGrid(size int) *Grid {
	cells := make([][]rune, size)
	for i := range cells {
		cells[i] = make([]rune, size)
	}
	return &Grid{
		Size:  size,
		Cells: cells,
	}
}

// GridFromStrings builds a grid from its wire form, an N×N array of
// single-character strings. Letters are upper-cased.
func GridFromStrings(rows [][]string) (*Grid, error) {
	size := len(rows)
	if size == 0 {
		return nil, ErrInvalidGrid
	}
	grid := NewGrid(size)
	for r, row := range rows {
		if len(row) != size {
			return nil, ErrInvalidGrid
		}
		for c, cell := range row {
			letters := []rune(cell)
			if len(letters) != 1 {
				return nil, ErrInvalidGrid
			}
			letter := toUpper(letters[0])
			if letter < 'A' || letter > 'Z' {
				return nil, ErrInvalidGrid
			}
			grid.Cells[r][c] = letter
		}
	}
	return grid, nil
}

// Strings returns the wire form of the grid
func (g *Grid) Strings() [][]string {
	rows := make([][]string, g.Size)
	for r := 0; r < g.Size; r++ {
		rows[r] = make([]string, g.Size)
		for c := 0; c < g.Size; c++ {
			rows[r][c] = string(g.Cells[r][c])
		}
	}
	return rows
}

// Get returns the letter at the given position, or 0 if out of bounds
func (g *Grid) Get(pos Position) rune {
	if !g.IsValidPosition(pos) {
		return 0
	}
	return g.Cells[pos.Row][pos.Col]
}

// IsValidPosition returns true if the position is within bounds
func (g *Grid) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < g.Size && pos.Col >= 0 && pos.Col < g.Size
}

// CellCount returns the number of cells (rows × cols)
func (g *Grid) CellCount() int {
	return g.Size * g.Size
}

// Validate checks the grid is square, matches Size and holds only A-Z
func (g *Grid) Validate() error {
	if g == nil || g.Size <= 0 || len(g.Cells) != g.Size {
		return ErrInvalidGrid
	}
	for _, row := range g.Cells {
		if len(row) != g.Size {
			return ErrInvalidGrid
		}
		for _, letter := range row {
			if letter < 'A' || letter > 'Z' {
				return ErrInvalidGrid
			}
		}
	}
	return nil
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	if g == nil {
		return nil
	}
	clone := NewGrid(g.Size)
	for r := range g.Cells {
		copy(clone.Cells[r], g.Cells[r])
	}
	return clone
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}
