package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/pickleball-finder/internal/model"
	"github.com/mcoot/pickleball-finder/internal/web/templates/components"
	"github.com/mcoot/pickleball-finder/internal/web/templates/html"
	"github.com/mcoot/pickleball-finder/internal/web/templates/layout"
)

// InboxData is the data for the inbox page
type InboxData struct {
	layout.PageData
	Page *model.NotificationPage
}

// Inbox renders the player's notifications, newest first
func Inbox(data InboxData) templ.Component {
	return layout.Base(data.PageData, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := html.New(w)
		b.Raw(`<h1>Mensajes</h1>`)
		if len(data.Page.Notifications) == 0 {
			b.Raw(`<p class="empty">Aún no tienes mensajes.</p>`)
			return b.Err()
		}
		b.Raw(`<ul id="notifications">`)
		for i := len(data.Page.Notifications) - 1; i >= 0; i-- {
			b.Component(ctx, components.NotificationItem(data.Page.Notifications[i]))
		}
		b.Raw(`</ul>`)
		return b.Err()
	}))
}
