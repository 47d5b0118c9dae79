// Package static bundles the browser assets into the binary.
package static

import "embed"

// FS holds the stylesheet and game script
//
//go:embed *.css *.js
var FS embed.FS
