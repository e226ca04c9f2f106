package model

// SearchFilters holds the facets of a player search.
// A nil pointer or empty slice means the facet places no constraint.
type SearchFilters struct {
	SkillLevel   *string  // exact match
	Location     *string  // case-insensitive substring
	Availability []string // matches if the player has ANY of these tags
	HasPhoto     bool
	IsActive     bool // active within ActiveWindow
}

// IsZero reports whether no facet is constrained
func (f SearchFilters) IsZero() bool {
	return f.SkillLevel == nil && f.Location == nil && len(f.Availability) == 0 && !f.HasPhoto && !f.IsActive
}
