package testutil

import "github.com/mcoot/wordgrid/internal/model"

// ExampleGrid is the reference 5x5 grid used across the test suites
var ExampleGrid = [][]string{
	{"C", "A", "T", "S", "P"},
	{"A", "N", "I", "M", "L"},
	{"B", "O", "G", "T", "H"},
	{"E", "R", "D", "O", "G"},
	{"M", "P", "U", "S", "E"},
}

// MustGrid builds a grid from rows of letters, panicking on malformed input
func MustGrid(rows [][]string) *model.Grid {
	grid, err := model.GridFromStrings(rows)
	if err != nil {
		panic(err)
	}
	return grid
}
