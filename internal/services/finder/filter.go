// Package finder implements player search: a stable, pure filter over a
// snapshot of player profiles.
package finder

import (
	"slices"
	"strings"
	"time"

	"github.com/mcoot/pickleball-finder/internal/model"
)

// ActiveWindow is how recently a player must have been active to match IsActive
const ActiveWindow = 7 * 24 * time.Hour

// Filter returns the players that are visible and match the query and every
// constrained facet, in their original order. The input slice is not modified.
func Filter(players []model.Player, query string, filters model.SearchFilters, now time.Time) []model.Player {
	query = strings.ToLower(query)
	activeSince := now.Add(-ActiveWindow)

	result := make([]model.Player, 0, len(players))
	for i := range players {
		p := &players[i]
		if !p.IsVisible() {
			continue
		}
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		if !matchesFilters(p, filters, activeSince) {
			continue
		}
		result = append(result, *p)
	}
	return result
}

// matchesQuery expects query to be lowercased already
func matchesQuery(p *model.Player, query string) bool {
	return containsFold(p.Name, query) ||
		containsFold(p.Location, query) ||
		containsFold(p.Bio, query)
}

func matchesFilters(p *model.Player, f model.SearchFilters, activeSince time.Time) bool {
	if f.SkillLevel != nil && p.SkillLevel != *f.SkillLevel {
		return false
	}
	if f.Location != nil && !containsFold(p.Location, strings.ToLower(*f.Location)) {
		return false
	}
	if len(f.Availability) > 0 && !slices.ContainsFunc(f.Availability, func(tag string) bool {
		return hasTag(p.Availability, tag)
	}) {
		return false
	}
	if f.HasPhoto && !p.HasPhoto() {
		return false
	}
	if f.IsActive && p.LastActive.Before(activeSince) {
		return false
	}
	return true
}

// hasTag reports whether tags holds tag, ignoring case
func hasTag(tags []string, tag string) bool {
	return slices.ContainsFunc(tags, func(t string) bool { return strings.EqualFold(t, tag) })
}

// containsFold expects substr to be lowercased already
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}
