package cli

import (
	"context"
	"fmt"

	"github.com/thaedal/thaedal-admin/internal/validation"
	pkgapi "github.com/thaedal/thaedal-admin/pkg/api"
)

func (c *Cli) runNotifications(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: thaedal-admin notifications <list|send>")
	}

	switch args[0] {
	case "list":
		return c.runNotificationsList(ctx)
	case "send":
		return c.runNotificationsSend(ctx)
	default:
		return fmt.Errorf("unknown subcommand: %s. Usage: thaedal-admin notifications <list|send>", args[0])
	}
}

func (c *Cli) runNotificationsList(ctx context.Context) error {
	notifications, err := c.client.Notifications(ctx)
	if err != nil {
		return fmt.Errorf("failed to load notifications: %w", err)
	}

	if len(notifications) == 0 {
		fmt.Fprintln(c.out, "No notifications sent yet.")
		return nil
	}

	rows := make([][]string, 0, len(notifications))
	for _, n := range notifications {
		rows = append(rows, []string{n.ID, n.Title, n.Audience, formatDate(n.SentAt)})
	}
	c.renderTable([]string{"ID", "TITLE", "AUDIENCE", "SENT"}, rows)
	return nil
}

func (c *Cli) runNotificationsSend(ctx context.Context) error {
	title, err := c.readInput("Title: ")
	if err != nil {
		return err
	}
	body, err := c.readInput("Body: ")
	if err != nil {
		return err
	}
	audience, err := c.promptString("Audience (all/subscribers/trial)", "all")
	if err != nil {
		return err
	}
	if err := validation.ValidateOneOf("audience", audience, "all", "subscribers", "trial"); err != nil {
		return err
	}

	ok, err := c.confirm(fmt.Sprintf("Send %q to %s users?", title, audience))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(c.out, "Aborted.")
		return nil
	}

	sent, err := c.client.SendNotification(ctx, pkgapi.SendNotificationRequest{
		Title:    title,
		Body:     body,
		Audience: audience,
	})
	if err != nil {
		return describeMutationError(c, err)
	}

	fmt.Fprintf(c.out, "✓ Notification %s sent to %s users.\n", sent.ID, sent.Audience)
	return nil
}
