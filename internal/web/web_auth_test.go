package web_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnonymousHomeShowsAuthForms(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/")
	assert.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, "form#login-form[action='/auth/login']")
	assertContainsElement(t, doc, "form#register-form[action='/auth/register']")
	assertNotContainsElement(t, doc, "#inbox-link")
	assertNotContainsElement(t, doc, "body[data-events]")
}

func TestRegister(t *testing.T) {
	ts := newWebTestServer(t)

	form := url.Values{
		"username": {"alice"},
		"name":     {"Alice"},
		"password": {"password123"},
	}
	rr := ts.post("/auth/register", form)

	// Should redirect to home
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
	assert.True(t, ts.cookies.hasSession())

	// Follow redirect and verify logged in
	rr = ts.followRedirect(rr)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "nav", "Alice")
	assertContainsElement(t, doc, "#inbox-link")
	assertContainsElement(t, doc, "body[data-events='/events']")
	assertNotContainsElement(t, doc, "form#login-form")
}

func TestRegisterInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
	}{
		{"short username", url.Values{"username": {"al"}, "name": {"Alice"}, "password": {"password123"}}},
		{"short password", url.Values{"username": {"alice"}, "name": {"Alice"}, "password": {"short"}}},
		{"missing name", url.Values{"username": {"alice"}, "name": {"  "}, "password": {"password123"}}},
		{"symbols in username", url.Values{"username": {"al ice!"}, "name": {"Alice"}, "password": {"password123"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newWebTestServer(t)

			rr := ts.post("/auth/register", tt.form)
			assert.Equal(t, http.StatusSeeOther, rr.Code)
			assert.False(t, ts.cookies.hasSession())

			doc := parseHTML(ts.followRedirect(rr).Body)
			assertContainsElement(t, doc, ".flash-error")
		})
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	ts := newWebTestServer(t)
	ts.registerViaForm("alice", "Alice")

	other := ts.browser()
	rr := other.post("/auth/register", url.Values{
		"username": {"alice"},
		"name":     {"Other Alice"},
		"password": {"password123"},
	})
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.False(t, other.cookies.hasSession())

	doc := parseHTML(other.followRedirect(rr).Body)
	assertContainsText(t, doc, ".flash-error", "ya existe")
}

func TestLogin(t *testing.T) {
	ts := newWebTestServer(t)
	ts.registerViaForm("alice", "Alice")

	other := ts.browser()
	rr := other.post("/auth/login", url.Values{
		"username": {"alice"},
		"password": {"password123"},
	})
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
	assert.True(t, other.cookies.hasSession())

	doc := parseHTML(other.followRedirect(rr).Body)
	assertContainsText(t, doc, ".flash-success", "Alice")
	assertContainsText(t, doc, "nav", "Alice")
}

func TestLoginRedirectsToNext(t *testing.T) {
	ts := newWebTestServer(t)
	ts.registerViaForm("alice", "Alice")

	other := ts.browser()
	rr := other.post("/auth/login", url.Values{
		"username": {"alice"},
		"password": {"password123"},
		"next":     {"/inbox"},
	})
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/inbox", rr.Header().Get("Location"))
}

func TestLoginIgnoresOffsiteNext(t *testing.T) {
	tests := []struct {
		name string
		next string
	}{
		{"protocol relative", "//evil.example.com"},
		{"backslash host", `/\evil.example`},
		{"backslash later", `/inbox\..\evil`},
		{"triple slash", "///evil.example"},
		{"absolute url", "https://evil.example"},
		{"relative path", "inbox"},
		{"tab in path", "/\t/evil.example"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newWebTestServer(t)
			ts.registerViaForm("alice", "Alice")

			other := ts.browser()
			rr := other.post("/auth/login", url.Values{
				"username": {"alice"},
				"password": {"password123"},
				"next":     {tt.next},
			})
			assert.Equal(t, http.StatusSeeOther, rr.Code)
			assert.Equal(t, "/", rr.Header().Get("Location"))
		})
	}
}

func TestLoginWrongPassword(t *testing.T) {
	ts := newWebTestServer(t)
	ts.registerViaForm("alice", "Alice")

	other := ts.browser()
	rr := other.post("/auth/login", url.Values{
		"username": {"alice"},
		"password": {"wrong-password"},
	})
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.False(t, other.cookies.hasSession())

	doc := parseHTML(other.followRedirect(rr).Body)
	assertContainsElement(t, doc, ".flash-error")
}

func TestLoginMissingFields(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.post("/auth/login", url.Values{"username": {"alice"}})
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.False(t, ts.cookies.hasSession())
}

func TestLogout(t *testing.T) {
	ts := newWebTestServer(t)
	ts.registerViaForm("alice", "Alice")
	token := ts.cookies.cookies["session"].Value

	rr := ts.post("/auth/logout", nil)
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.False(t, ts.cookies.hasSession())

	// The old token no longer works
	_, err := ts.app.AuthService.ValidateSession(token)
	assert.Error(t, err)

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsElement(t, doc, "form#login-form")
}
