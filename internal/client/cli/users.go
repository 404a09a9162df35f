package cli

import (
	"context"
	"fmt"

	"github.com/thaedal/thaedal-admin/internal/client/api"
	"github.com/thaedal/thaedal-admin/internal/client/controller"
	"github.com/thaedal/thaedal-admin/internal/models"
)

// userScreen is read-only apart from delete: users sign up through the
// app, the console only inspects and moderates them.
func userScreen() screen[models.User] {
	return screen[models.User]{
		name: "users",
		spec: controller.Spec[models.User]{
			ID:       func(u models.User) string { return u.ID },
			Defaults: func() models.User { return models.User{} },
			SearchFields: func(u models.User) []string {
				return []string{u.Name, u.Email, u.Phone}
			},
			Filters: map[string]func(models.User, string) bool{
				"status": func(u models.User, value string) bool { return u.Status == value },
				"plan": func(u models.User, value string) bool {
					switch value {
					case "subscribed":
						return u.IsSubscribed
					case "trial":
						return u.IsTrialActive
					case "free":
						return !u.IsSubscribed && !u.IsTrialActive
					default:
						return false
					}
				},
			},
		},
		filterKeys: []string{"status", "plan"},
		columns:    []string{"ID", "NAME", "EMAIL", "PHONE", "PLAN", "STATUS"},
		row: func(u models.User) []string {
			plan := "free"
			switch {
			case u.IsSubscribed:
				plan = "subscribed"
			case u.IsTrialActive:
				plan = "trial"
			}
			return []string{u.ID, u.Name, u.Email, u.Phone, plan, u.Status}
		},
		detail: func(c *Cli, u models.User) {
			fmt.Fprintf(c.out, "=== User %s ===\n\n", u.ID)
			fmt.Fprintf(c.out, "Name:         %s\n", u.Name)
			fmt.Fprintf(c.out, "Email:        %s\n", u.Email)
			fmt.Fprintf(c.out, "Phone:        %s\n", u.Phone)
			fmt.Fprintf(c.out, "Subscribed:   %s\n", yesNo(u.IsSubscribed))
			fmt.Fprintf(c.out, "Trial active: %s\n", yesNo(u.IsTrialActive))
			if u.SubscriptionEndDate != nil {
				fmt.Fprintf(c.out, "Sub ends:     %s\n", formatDate(*u.SubscriptionEndDate))
			}
			fmt.Fprintf(c.out, "Status:       %s\n", u.Status)
			fmt.Fprintf(c.out, "Joined:       %s\n", formatDate(u.CreatedAt))
		},
	}
}

func (c *Cli) runUsers(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "toggle-subscription" {
		return c.runToggleSubscription(ctx, args[1:])
	}
	res := api.NewResource[models.User](c.client, "users")
	return runScreen(ctx, c, userScreen(), res, args)
}

func (c *Cli) runToggleSubscription(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing id. Usage: thaedal-admin users toggle-subscription <id>")
	}

	user, err := c.client.ToggleUserSubscription(ctx, args[0])
	if err != nil {
		return err
	}

	state := "unsubscribed"
	if user.IsSubscribed {
		state = "subscribed"
	}
	fmt.Fprintf(c.out, "✓ %s is now %s.\n", user.Name, state)
	return nil
}
