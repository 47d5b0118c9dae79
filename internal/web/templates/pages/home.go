package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/wordgrid/internal/web/templates/layout"
)

// HomeData is the data for the home page
type HomeData struct {
	layout.PageData
}

// Home renders the landing page with a start button
func Home(data HomeData) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section class="home">
<h1>Wordgrid</h1>
<p>Find as many words as you can by chaining neighbouring letters. Each cell may be used once per word.</p>
<a id="start" class="button" href="/new-game">Start game</a>
</section>`)
		return err
	})
	return layout.Base(data.PageData, body)
}
