// Package layout holds the page shell shared by every web page.
package layout

import "github.com/mcoot/pickleball-finder/internal/model"

// FlashMessage is a one-shot message shown at the top of the next page
type FlashMessage struct {
	Type    string // success, error, info
	Message string
}

// PageData is common data for all pages
type PageData struct {
	Title  string
	Player *model.Player // nil when anonymous
	Flash  *FlashMessage
	Unread int
}

// liveInboxScript bumps the unread badge when a notification event arrives
const liveInboxScript = `<script>
(function () {
  var src = document.body.dataset.events;
  if (!src || !window.EventSource) return;
  new EventSource(src).addEventListener("notification", function () {
    var link = document.getElementById("inbox-link");
    var badge = document.getElementById("unread-count");
    if (!badge) {
      badge = document.createElement("span");
      badge.id = "unread-count";
      badge.className = "badge";
      badge.textContent = "0";
      link.appendChild(badge);
    }
    badge.textContent = String(Number(badge.textContent) + 1);
  });
})();
</script>`
