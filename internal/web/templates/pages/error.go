package pages

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"github.com/mcoot/pickleball-finder/internal/web/templates/html"
	"github.com/mcoot/pickleball-finder/internal/web/templates/layout"
)

var errorText = map[int]string{
	http.StatusNotFound:            "La página que buscas no existe.",
	http.StatusInternalServerError: "Algo salió mal. Inténtalo de nuevo más tarde.",
}

// Error renders a bare error page for the given status
func Error(status int) templ.Component {
	msg, ok := errorText[status]
	if !ok {
		msg = http.StatusText(status)
	}
	data := layout.PageData{Title: "Error"}
	return layout.Base(data, templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		b := html.New(w)
		b.Raw(`<section id="error" data-status="`).Attr(strconv.Itoa(status)).Raw(`">`)
		b.Raw(`<h1>`).Text(msg).Raw(`</h1>`)
		b.Raw(`<p><a href="/">Volver al buscador</a></p></section>`)
		return b.Err()
	}))
}
