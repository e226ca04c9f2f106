package finder

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/pickleball-finder/internal/model"
)

func TestParseQueryEmpty(t *testing.T) {
	query, filters, err := ParseQuery(url.Values{})
	require.NoError(t, err)
	assert.Empty(t, query)
	assert.True(t, filters.IsZero())
}

func TestParseQueryAllFields(t *testing.T) {
	values := url.Values{
		"q":            {"  sarah  "},
		"skill_level":  {"4.0"},
		"location":     {"Jalisco"},
		"availability": {"Weekdays,Evenings", "Weekends"},
		"has_photo":    {"true"},
		"is_active":    {"1"},
		"max_distance": {"not-a-number"},
	}

	query, filters, err := ParseQuery(values)
	require.NoError(t, err)

	assert.Equal(t, "sarah", query)
	require.NotNil(t, filters.SkillLevel)
	assert.Equal(t, "4.0", *filters.SkillLevel)
	require.NotNil(t, filters.Location)
	assert.Equal(t, "Jalisco", *filters.Location)
	assert.Equal(t, []string{"Weekdays", "Evenings", "Weekends"}, filters.Availability)
	assert.True(t, filters.HasPhoto)
	assert.True(t, filters.IsActive)
}

func TestParseQueryBlankValuesAreUnconstrained(t *testing.T) {
	values := url.Values{
		"skill_level":  {" "},
		"location":     {""},
		"availability": {" , "},
	}

	_, filters, err := ParseQuery(values)
	require.NoError(t, err)
	assert.Nil(t, filters.SkillLevel)
	assert.Nil(t, filters.Location)
	assert.Empty(t, filters.Availability)
}

func TestParseQueryRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		values url.Values
	}{
		{name: "non-numeric skill", values: url.Values{"skill_level": {"pro"}}},
		{name: "skill too low", values: url.Values{"skill_level": {"0.5"}}},
		{name: "skill too high", values: url.Values{"skill_level": {"9.0"}}},
		{name: "NaN skill", values: url.Values{"skill_level": {"NaN"}}},
		{name: "lowercase nan skill", values: url.Values{"skill_level": {"nan"}}},
		{name: "hex float skill", values: url.Values{"skill_level": {"0x1p2"}}},
		{name: "exponent skill", values: url.Values{"skill_level": {"4e0"}}},
		{name: "signed skill", values: url.Values{"skill_level": {"+4.0"}}},
		{name: "too many decimals", values: url.Values{"skill_level": {"4.125"}}},
		{name: "bad has_photo", values: url.Values{"has_photo": {"maybe"}}},
		{name: "bad is_active", values: url.Values{"is_active": {"yes"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseQuery(tt.values)
			assert.ErrorIs(t, err, model.ErrInvalidFilter)
		})
	}
}

func TestValidSkillLevel(t *testing.T) {
	for _, skill := range []string{"1", "1.0", "3.5", "4.25", "8.0"} {
		assert.True(t, ValidSkillLevel(skill), skill)
	}
	for _, skill := range []string{"", "0.9", "8.5", "NaN", "Inf", "0x1p2", "4e0", "4.", ".5", "04.0"} {
		assert.False(t, ValidSkillLevel(skill), skill)
	}
}

func TestValuesRoundTripsThroughParseQuery(t *testing.T) {
	skill := "3.5"
	filters := model.SearchFilters{
		SkillLevel:   &skill,
		Availability: []string{"Mornings"},
		IsActive:     true,
	}

	query, parsed, err := ParseQuery(Values("coach", filters))
	require.NoError(t, err)
	assert.Equal(t, "coach", query)
	assert.Equal(t, filters, parsed)
}
