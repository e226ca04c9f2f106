package finder

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/mcoot/pickleball-finder/internal/model"
)

// Skill ratings accepted by skill_level
const (
	MinSkillLevel = 1.0
	MaxSkillLevel = 8.0
)

// Query parameter names understood by ParseQuery
const (
	ParamQuery        = "q"
	ParamSkillLevel   = "skill_level"
	ParamLocation     = "location"
	ParamAvailability = "availability"
	ParamHasPhoto     = "has_photo"
	ParamIsActive     = "is_active"
)

// ParseQuery reads the free-text query and filters from URL query values.
// Empty values place no constraint. Unknown parameters, including a legacy
// max_distance, are ignored.
func ParseQuery(values url.Values) (string, model.SearchFilters, error) {
	var filters model.SearchFilters

	query := strings.TrimSpace(values.Get(ParamQuery))

	if skill := strings.TrimSpace(values.Get(ParamSkillLevel)); skill != "" {
		if err := ValidateSkillLevel(skill); err != nil {
			return "", filters, err
		}
		filters.SkillLevel = &skill
	}

	if location := strings.TrimSpace(values.Get(ParamLocation)); location != "" {
		filters.Location = &location
	}

	for _, raw := range values[ParamAvailability] {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				filters.Availability = append(filters.Availability, tag)
			}
		}
	}

	var err error
	if filters.HasPhoto, err = parseBool(values, ParamHasPhoto); err != nil {
		return "", filters, err
	}
	if filters.IsActive, err = parseBool(values, ParamIsActive); err != nil {
		return "", filters, err
	}

	return query, filters, nil
}

// skillLevelPattern is a plain decimal rating. ParseFloat alone also takes
// NaN, exponents and hex floats.
var skillLevelPattern = regexp.MustCompile(`^\d(\.\d{1,2})?$`)

// ValidSkillLevel reports whether skill is a decimal rating within range
func ValidSkillLevel(skill string) bool {
	if !skillLevelPattern.MatchString(skill) {
		return false
	}
	v, err := strconv.ParseFloat(skill, 64)
	return err == nil && v >= MinSkillLevel && v <= MaxSkillLevel
}

// ValidateSkillLevel checks that a skill level is a decimal rating in range
func ValidateSkillLevel(skill string) error {
	if !ValidSkillLevel(skill) {
		return fmt.Errorf("%w: skill_level must be a rating between %.1f and %.1f, like 3.5",
			model.ErrInvalidFilter, MinSkillLevel, MaxSkillLevel)
	}
	return nil
}

func parseBool(values url.Values, key string) (bool, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be true or false", model.ErrInvalidFilter, key)
	}
	return v, nil
}

// Values encodes a query and filters as URL query values, the inverse of ParseQuery
func Values(query string, filters model.SearchFilters) url.Values {
	values := url.Values{}
	if query != "" {
		values.Set(ParamQuery, query)
	}
	if filters.SkillLevel != nil {
		values.Set(ParamSkillLevel, *filters.SkillLevel)
	}
	if filters.Location != nil {
		values.Set(ParamLocation, *filters.Location)
	}
	for _, tag := range filters.Availability {
		values.Add(ParamAvailability, tag)
	}
	if filters.HasPhoto {
		values.Set(ParamHasPhoto, "true")
	}
	if filters.IsActive {
		values.Set(ParamIsActive, "true")
	}
	return values
}
