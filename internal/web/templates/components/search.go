// Package components holds reusable HTML fragments.
package components

import (
	"context"
	"io"
	"slices"

	"github.com/a-h/templ"

	"github.com/mcoot/pickleball-finder/internal/model"
	"github.com/mcoot/pickleball-finder/internal/web/templates/html"
)

// AvailabilityOptions are the availability tags offered by the search form
var AvailabilityOptions = []string{"Weekdays", "Weekends", "Mornings", "Evenings"}

// SkillOptions are the skill levels offered by the search form
var SkillOptions = []string{"2.5", "3.0", "3.5", "4.0", "4.5", "5.0"}

// SearchForm renders the finder form, pre-filled with the current query
func SearchForm(query string, filters model.SearchFilters) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := html.New(w)
		b.Raw(`<form id="search-form" method="get" action="/">`)
		b.Raw(`<input type="search" name="q" placeholder="Nombre, ciudad o bio" value="`).Attr(query).Raw(`">`)

		b.Raw(`<select name="skill_level"><option value="">Cualquier nivel</option>`)
		for _, level := range SkillOptions {
			b.Raw(`<option value="`).Attr(level).Raw(`"`)
			if filters.SkillLevel != nil && *filters.SkillLevel == level {
				b.Raw(` selected`)
			}
			b.Raw(`>`).Text(level).Raw(`</option>`)
		}
		b.Raw(`</select>`)

		location := ""
		if filters.Location != nil {
			location = *filters.Location
		}
		b.Raw(`<input type="text" name="location" placeholder="Ubicación" value="`).Attr(location).Raw(`">`)

		b.Raw(`<fieldset class="availability">`)
		for _, tag := range AvailabilityOptions {
			b.Raw(`<label><input type="checkbox" name="availability" value="`).Attr(tag).Raw(`"`).
				Checked(slices.Contains(filters.Availability, tag)).Raw(`> `).Text(tag).Raw(`</label>`)
		}
		b.Raw(`</fieldset>`)

		b.Raw(`<label><input type="checkbox" name="has_photo" value="true"`).Checked(filters.HasPhoto).Raw(`> Con foto</label>`)
		b.Raw(`<label><input type="checkbox" name="is_active" value="true"`).Checked(filters.IsActive).Raw(`> Activos esta semana</label>`)
		b.Raw(`<button type="submit">Buscar</button></form>`)
		return b.Err()
	})
}
