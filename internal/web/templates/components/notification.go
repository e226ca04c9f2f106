package components

import (
	"context"
	"io"
	"time"

	"github.com/a-h/templ"

	"github.com/mcoot/pickleball-finder/internal/model"
	"github.com/mcoot/pickleball-finder/internal/web/templates/html"
)

// NotificationItem renders one inbox entry
func NotificationItem(n model.Notification) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := html.New(w)
		class := "notification"
		if !n.Read {
			class += " unread"
		}
		b.Raw(`<li class="`).Attr(class).Raw(`" data-notification-id="`).Attr(string(n.ID)).Raw(`">`)
		b.Raw(`<strong class="from">`).Text(n.From.Name).Raw(`</strong>`)
		b.Raw(`<time datetime="`).Attr(n.Timestamp.Format(time.RFC3339)).Raw(`">`).
			Text(n.Timestamp.Format("02/01/2006 15:04")).Raw(`</time>`)
		b.Raw(`<p class="message">`).Text(n.Message).Raw(`</p>`)
		if !n.Read {
			b.Raw(`<form method="post" action="/inbox/`).Attr(string(n.ID)).Raw(`/read">`)
			b.Raw(`<button type="submit">Marcar como leído</button></form>`)
		}
		b.Raw(`</li>`)
		return b.Err()
	})
}
