package cli

import (
	"net/url"

	"github.com/spf13/cobra"

	"github.com/mcoot/pickleball-finder/internal/api/request"
	"github.com/mcoot/pickleball-finder/internal/api/response"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Profile commands",
	}

	cmd.AddCommand(newProfileShowCmd())
	cmd.AddCommand(newProfileUpdateCmd())

	return cmd
}

func newProfileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [player-id]",
		Short: "Show a player's profile (yours when no id is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/players/me"
			if len(args) == 1 {
				path = "/players/" + url.PathEscape(args[0])
			}

			var result response.Player
			if err := client.Get(cmd.Context(), path, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newProfileUpdateCmd() *cobra.Command {
	var update request.UpdateProfileRequest

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update your profile",
		Long: `Update your profile. Only the given flags change; every other field
keeps its current value.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var me response.Player
			if err := client.Get(cmd.Context(), "/players/me", &me); err != nil {
				return err
			}

			req := request.UpdateProfileRequest{
				Name:         me.Name,
				Email:        me.Email,
				Phone:        me.Phone,
				Location:     me.Location,
				Bio:          me.Bio,
				SkillLevel:   me.SkillLevel,
				Availability: me.Availability,
				PhotoURL:     me.PhotoURL,
			}
			flags := cmd.Flags()
			if flags.Changed("name") {
				req.Name = update.Name
			}
			if flags.Changed("email") {
				req.Email = update.Email
			}
			if flags.Changed("phone") {
				req.Phone = update.Phone
			}
			if flags.Changed("location") {
				req.Location = update.Location
			}
			if flags.Changed("bio") {
				req.Bio = update.Bio
			}
			if flags.Changed("skill") {
				req.SkillLevel = update.SkillLevel
			}
			if flags.Changed("availability") {
				req.Availability = update.Availability
			}
			if flags.Changed("photo-url") {
				req.PhotoURL = update.PhotoURL
			}

			var result response.Player
			if err := client.Put(cmd.Context(), "/players/"+url.PathEscape(me.ID), req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&update.Name, "name", "", "Display name")
	cmd.Flags().StringVar(&update.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&update.Phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&update.Location, "location", "", "Location")
	cmd.Flags().StringVar(&update.Bio, "bio", "", "Short bio")
	cmd.Flags().StringVar(&update.SkillLevel, "skill", "", "Skill level, e.g. 3.5")
	cmd.Flags().StringSliceVar(&update.Availability, "availability", nil, "Availability tags")
	cmd.Flags().StringVar(&update.PhotoURL, "photo-url", "", "Photo URL")

	return cmd
}

func newPrivacyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "privacy",
		Short: "Privacy commands",
	}

	cmd.AddCommand(newPrivacySetCmd())

	return cmd
}

func newPrivacySetCmd() *cobra.Command {
	var visible, showEmail, showPhone, showLocation, allowContact bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change your privacy settings",
		Long: `Change your privacy settings. Only the given flags change; the
others keep their current value. The whole set is then saved at once.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var me response.Player
			if err := client.Get(cmd.Context(), "/players/me", &me); err != nil {
				return err
			}

			current := response.Privacy{}
			if me.Privacy != nil {
				current = *me.Privacy
			}

			flags := cmd.Flags()
			pick := func(name string, value, fallback bool) *bool {
				if flags.Changed(name) {
					return &value
				}
				return &fallback
			}
			req := request.UpdatePrivacyRequest{
				IsVisible:    pick("visible", visible, current.IsVisible),
				ShowEmail:    pick("show-email", showEmail, current.ShowEmail),
				ShowPhone:    pick("show-phone", showPhone, current.ShowPhone),
				ShowLocation: pick("show-location", showLocation, current.ShowLocation),
				AllowContact: pick("allow-contact", allowContact, current.AllowContact),
			}

			var result response.Privacy
			if err := client.Put(cmd.Context(), "/players/"+url.PathEscape(me.ID)+"/privacy", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&visible, "visible", false, "Appear in search results")
	cmd.Flags().BoolVar(&showEmail, "show-email", false, "Show email to other players")
	cmd.Flags().BoolVar(&showPhone, "show-phone", false, "Show phone to other players")
	cmd.Flags().BoolVar(&showLocation, "show-location", false, "Show location to other players")
	cmd.Flags().BoolVar(&allowContact, "allow-contact", false, "Accept messages from other players")

	return cmd
}
