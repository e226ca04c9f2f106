package cli

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/pickleball-finder/internal/api/request"
	"github.com/mcoot/pickleball-finder/internal/api/response"
)

func newContactCmd() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "contact <player-id>",
		Short: "Send a message to a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Notification
			path := "/players/" + url.PathEscape(args[0]) + "/contact"
			if err := client.Post(cmd.Context(), path, request.ContactRequest{Message: message}, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Message text (required)")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}

func newNotificationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"inbox"},
		Short:   "Inbox commands",
	}

	cmd.AddCommand(newNotificationsListCmd())
	cmd.AddCommand(newNotificationsReadCmd())

	return cmd
}

func newNotificationsListCmd() *cobra.Command {
	var offset, limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List received messages, oldest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			values := url.Values{}
			if offset > 0 {
				values.Set("offset", strconv.Itoa(offset))
			}
			if limit > 0 {
				values.Set("limit", strconv.Itoa(limit))
			}
			path := "/players/me/notifications"
			if len(values) > 0 {
				path += "?" + values.Encode()
			}

			var result response.NotificationPage
			if err := client.Get(cmd.Context(), path, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&offset, "offset", 0, "Number of messages to skip")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of messages (server default when 0)")

	return cmd
}

func newNotificationsReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <notification-id>",
		Short: "Mark a message as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/players/me/notifications/" + url.PathEscape(args[0]) + "/read"
			if err := client.Post(cmd.Context(), path, nil, nil); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage(fmt.Sprintf("Marked %s as read", args[0]))
			return nil
		},
	}
}
