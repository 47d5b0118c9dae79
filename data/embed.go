// Package data bundles the default dictionary so the server can start
// without a word list on disk.
package data

import (
	_ "embed"
)

//go:embed words.txt
var Words string
