package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/pickleball-finder/internal/api/response"
	"github.com/mcoot/pickleball-finder/internal/model"
	"github.com/mcoot/pickleball-finder/internal/services/finder"
)

func newSearchCmd() *cobra.Command {
	var (
		skill        string
		location     string
		availability []string
		hasPhoto     bool
		active       bool
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search for visible players",
		Long: `Search the visible players by free text over name, location and bio.

Filters combine: every given filter must match. Availability matches
when the player has any of the given tags.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var filters model.SearchFilters
			if skill != "" {
				filters.SkillLevel = &skill
			}
			if location != "" {
				filters.Location = &location
			}
			filters.Availability = availability
			filters.HasPhoto = hasPhoto
			filters.IsActive = active

			query := ""
			if len(args) == 1 {
				query = strings.TrimSpace(args[0])
			}

			path := "/players/search"
			if values := finder.Values(query, filters); len(values) > 0 {
				path += "?" + values.Encode()
			}

			var result response.SearchResponse
			if err := client.Get(cmd.Context(), path, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&skill, "skill", "", "Exact skill level, e.g. 4.0")
	cmd.Flags().StringVar(&location, "location", "", "Location substring")
	cmd.Flags().StringSliceVar(&availability, "availability", nil, "Availability tags, any of which must match")
	cmd.Flags().BoolVar(&hasPhoto, "has-photo", false, "Only players with a photo")
	cmd.Flags().BoolVar(&active, "active", false, "Only players active in the last 7 days")

	return cmd
}
