package board

import (
	"fmt"
	"strings"

	"github.com/mcoot/wordgrid/internal/model"
)

// Adjacency selects which neighbouring cells a path may step to
type Adjacency string

const (
	// AdjacencyDiagonal allows all 8 surrounding cells
	AdjacencyDiagonal Adjacency = "diagonal"
	// AdjacencyOrthogonal allows only the 4 horizontal and vertical neighbours
	AdjacencyOrthogonal Adjacency = "orthogonal"
)

// CheckOrder selects which check decides the result when both fail
type CheckOrder string

const (
	// PathFirst reports not-on-board before consulting the dictionary
	PathFirst CheckOrder = "path-first"
	// DictionaryFirst reports not-word before searching the grid
	DictionaryFirst CheckOrder = "dictionary-first"
)

// Rules controls word validation
type Rules struct {
	Adjacency Adjacency
	Order     CheckOrder
}

// DefaultRules returns 8-way adjacency with the path checked first
func DefaultRules() Rules {
	return Rules{
		Adjacency: AdjacencyDiagonal,
		Order:     PathFirst,
	}
}

// ParseRules builds Rules from their string names; empty values keep defaults
func ParseRules(adjacency, order string) (Rules, error) {
	rules := DefaultRules()

	switch Adjacency(strings.ToLower(adjacency)) {
	case "":
	case AdjacencyDiagonal:
		rules.Adjacency = AdjacencyDiagonal
	case AdjacencyOrthogonal:
		rules.Adjacency = AdjacencyOrthogonal
	default:
		return Rules{}, fmt.Errorf("invalid adjacency %q: must be %q or %q", adjacency, AdjacencyDiagonal, AdjacencyOrthogonal)
	}

	switch CheckOrder(strings.ToLower(order)) {
	case "":
	case PathFirst:
		rules.Order = PathFirst
	case DictionaryFirst:
		rules.Order = DictionaryFirst
	default:
		return Rules{}, fmt.Errorf("invalid check order %q: must be %q or %q", order, PathFirst, DictionaryFirst)
	}

	return rules, nil
}

var (
	diagonalSteps = []model.Position{
		{Row: -1, Col: -1}, {Row: -1, Col: 0}, {Row: -1, Col: 1},
		{Row: 0, Col: -1}, {Row: 0, Col: 1},
		{Row: 1, Col: -1}, {Row: 1, Col: 0}, {Row: 1, Col: 1},
	}
	orthogonalSteps = []model.Position{
		{Row: -1, Col: 0},
		{Row: 0, Col: -1}, {Row: 0, Col: 1},
		{Row: 1, Col: 0},
	}
)

func (r Rules) steps() []model.Position {
	if r.Adjacency == AdjacencyOrthogonal {
		return orthogonalSteps
	}
	return diagonalSteps
}
