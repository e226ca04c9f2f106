package layout

import (
	"bytes"
	"context"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/pickleball-finder/internal/model"
)

func renderBase(t *testing.T, data PageData) (*goquery.Document, string) {
	t.Helper()
	var buf bytes.Buffer
	body := templ.Raw(`<p id="content">hola</p>`)
	require.NoError(t, Base(data, body).Render(context.Background(), &buf))
	html := buf.String()
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc, html
}

func TestBaseAnonymous(t *testing.T) {
	doc, html := renderBase(t, PageData{Title: "Buscar"})

	assert.Equal(t, "Buscar | Pickleball Finder", doc.Find("title").Text())
	assert.Equal(t, "es", doc.Find("html").AttrOr("lang", ""))
	assert.Equal(t, 1, doc.Find("main #content").Length())
	_, hasEvents := doc.Find("body").Attr("data-events")
	assert.False(t, hasEvents)
	assert.Equal(t, 0, doc.Find("#inbox-link").Length())
	assert.NotContains(t, html, "EventSource")
}

func TestBaseSignedIn(t *testing.T) {
	doc, html := renderBase(t, PageData{
		Title:  "Mensajes",
		Player: &model.Player{ID: "p_1", Name: "Ana & Bea"},
		Flash:  &FlashMessage{Type: "success", Message: "Mensaje enviado"},
		Unread: 3,
	})

	assert.Equal(t, "/events", doc.Find("body").AttrOr("data-events", ""))
	assert.Equal(t, "Ana & Bea", doc.Find("nav .player-name").Text())
	assert.Equal(t, "3", doc.Find("#inbox-link #unread-count").Text())
	assert.Equal(t, 1, doc.Find("nav a#profile-link").Length())
	assert.Equal(t, "Mensaje enviado", doc.Find(".flash.flash-success[role='alert']").Text())
	assert.Contains(t, html, "EventSource")
}

func TestBaseHidesEmptyBadge(t *testing.T) {
	doc, _ := renderBase(t, PageData{Title: "Buscar", Player: &model.Player{ID: "p_1", Name: "Ana"}})
	assert.Equal(t, 0, doc.Find("#unread-count").Length())
}
