// Package pages holds full-page components.
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

// HomeData is the data for the finder page
type HomeData struct {
	layout.PageData
	Query   string
	Filters model.SearchFilters
	Results []model.Player // already redacted
	Error   string         // invalid filter message
}

// Home renders the finder page
func Home(data HomeData) templ.Component {
	return layout.Base(data.PageData, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := html.New(w)
		b.Raw(`<h1>Encuentra jugadores</h1>`)
		if data.Player == nil {
			authForms(b)
		}
		b.Component(ctx, components.SearchForm(data.Query, data.Filters))

		if data.Error != "" {
			b.Raw(`<p class="error" id="search-error">`).Text(data.Error).Raw(`</p>`)
			return b.Err()
		}

		b.Raw(`<p id="result-count">`).Int(len(data.Results)).Raw(` jugadores encontrados</p>`)
		if len(data.Results) == 0 {
			b.Raw(`<p class="empty">No se encontraron jugadores con esos criterios.</p>`)
			return b.Err()
		}
		b.Raw(`<section id="results">`)
		for _, p := range data.Results {
			canContact := data.Player != nil && data.Player.ID != p.ID
			b.Component(ctx, components.PlayerCard(p, canContact))
		}
		b.Raw(`</section>`)
		return b.Err()
	}))
}

func authForms(b *html.Builder) {
	b.Raw(`<section id="auth">`)
	b.Raw(`<form method="post" action="/auth/login" id="login-form"><h2>Iniciar sesión</h2>`)
	b.Raw(`<input type="text" name="username" placeholder="Usuario" required>`)
	b.Raw(`<input type="password" name="password" placeholder="Contraseña" required>`)
	b.Raw(`<button type="submit">Entrar</button></form>`)
	b.Raw(`<form method="post" action="/auth/register" id="register-form"><h2>Crear cuenta</h2>`)
	b.Raw(`<input type="text" name="username" placeholder="Usuario" required>`)
	b.Raw(`<input type="text" name="name" placeholder="Nombre" required>`)
	b.Raw(`<input type="password" name="password" placeholder="Contraseña" required minlength="8">`)
	b.Raw(`<button type="submit">Registrarme</button></form>`)
	b.Raw(`</section>`)
}
