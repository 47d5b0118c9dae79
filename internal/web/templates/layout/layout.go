// Package layout holds the page shell shared by every HTML page.
package layout

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/wordgrid/internal/model"
)

// FlashType selects the styling of a flash message
type FlashType string

const (
	FlashInfo    FlashType = "info"
	FlashWarning FlashType = "warning"
	FlashError   FlashType = "error"
)

// FlashMessage is a one-shot notice shown at the top of the next page
type FlashMessage struct {
	Type    FlashType
	Message string
}

// PageData is common to all pages
type PageData struct {
	Title string
	Stats *model.Stats
	Flash *FlashMessage
}

// Base wraps body in the document shell: head, nav with the player's
// running stats, and the flash message if any
func Base(data PageData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s | Wordgrid</title>
<link rel="stylesheet" href="/static/style.css">
</head>
<body>
<nav class="nav"><a href="/" class="brand">Wordgrid</a>`, templ.EscapeString(data.Title)); err != nil {
			return err
		}

		if data.Stats != nil {
			if _, err := fmt.Fprintf(w, `<span id="stats" class="stats">Games Played: %d | Highest Score: %d</span>`,
				data.Stats.GamesPlayed, data.Stats.HighScore); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</nav>\n<main>\n"); err != nil {
			return err
		}

		if data.Flash != nil {
			if _, err := fmt.Fprintf(w, `<div class="flash flash-%s" role="status">%s</div>`+"\n",
				templ.EscapeString(string(data.Flash.Type)), templ.EscapeString(data.Flash.Message)); err != nil {
				return err
			}
		}

		if err := body.Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, "\n</main>\n</body>\n</html>\n")
		return err
	})
}
