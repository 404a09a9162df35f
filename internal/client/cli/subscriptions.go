package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/thaedal/thaedal-admin/internal/client/api"
	"github.com/thaedal/thaedal-admin/internal/client/controller"
	"github.com/thaedal/thaedal-admin/internal/models"
	"github.com/thaedal/thaedal-admin/internal/validation"
)

// subscriptionScreen is read-only: subscriptions are created by
// payments, the console only inspects them and flips their status.
func subscriptionScreen() screen[models.Subscription] {
	return screen[models.Subscription]{
		name: "subscriptions",
		spec: controller.Spec[models.Subscription]{
			ID:       func(s models.Subscription) string { return s.ID },
			Defaults: func() models.Subscription { return models.Subscription{} },
			SearchFields: func(s models.Subscription) []string {
				return []string{s.User, s.Plan}
			},
			Filters: map[string]func(models.Subscription, string) bool{
				"status": func(s models.Subscription, value string) bool { return s.Status == value },
				"plan":   func(s models.Subscription, value string) bool { return s.Plan == value },
			},
		},
		filterKeys: []string{"status", "plan"},
		columns:    []string{"ID", "USER", "PLAN", "START", "END", "AMOUNT", "STATUS"},
		row: func(s models.Subscription) []string {
			return []string{
				s.ID, s.User, s.Plan,
				formatDate(s.StartDate), formatDate(s.EndDate),
				fmt.Sprintf("₹%.2f", s.Amount), s.Status,
			}
		},
		detail: func(c *Cli, s models.Subscription) {
			fmt.Fprintf(c.out, "=== Subscription %s ===\n\n", s.ID)
			fmt.Fprintf(c.out, "User:   %s\n", s.User)
			fmt.Fprintf(c.out, "Plan:   %s\n", s.Plan)
			fmt.Fprintf(c.out, "Start:  %s\n", formatDate(s.StartDate))
			fmt.Fprintf(c.out, "End:    %s\n", formatDate(s.EndDate))
			fmt.Fprintf(c.out, "Amount: ₹%.2f\n", s.Amount)
			fmt.Fprintf(c.out, "Status: %s\n", s.Status)
		},
	}
}

func planScreen() screen[models.Plan] {
	return screen[models.Plan]{
		name: "plans",
		spec: controller.Spec[models.Plan]{
			ID:       func(p models.Plan) string { return p.ID },
			Defaults: func() models.Plan { return models.Plan{IsActive: true} },
			Clone: func(p models.Plan) models.Plan {
				clone := p
				clone.Features = append([]string(nil), p.Features...)
				return clone
			},
			SearchFields: func(p models.Plan) []string {
				return []string{p.Name}
			},
			Filters: map[string]func(models.Plan, string) bool{
				"active": func(p models.Plan, value string) bool {
					return strconv.FormatBool(p.IsActive) == value
				},
			},
		},
		filterKeys: []string{"active"},
		columns:    []string{"ID", "NAME", "PRICE", "DAYS", "SUBSCRIBERS", "ACTIVE"},
		row: func(p models.Plan) []string {
			return []string{
				p.ID, p.Name, fmt.Sprintf("₹%.2f", p.Price),
				strconv.Itoa(p.DurationDays), strconv.Itoa(p.SubscribersCount),
				yesNo(p.IsActive),
			}
		},
		form: func(c *Cli, draft *models.Plan) error {
			var err error
			if draft.Name, err = c.promptString("Name", draft.Name); err != nil {
				return err
			}
			if draft.Price, err = c.promptFloat("Price (₹)", draft.Price); err != nil {
				return err
			}
			if draft.DurationDays, err = c.promptInt("Duration (days)", draft.DurationDays); err != nil {
				return err
			}
			features, err := c.promptString("Features (comma-separated)", strings.Join(draft.Features, ", "))
			if err != nil {
				return err
			}
			draft.Features = draft.Features[:0]
			for _, feature := range strings.Split(features, ",") {
				if feature = strings.TrimSpace(feature); feature != "" {
					draft.Features = append(draft.Features, feature)
				}
			}
			if draft.IsActive, err = c.promptBool("Active", draft.IsActive); err != nil {
				return err
			}
			return nil
		},
		detail: func(c *Cli, p models.Plan) {
			fmt.Fprintf(c.out, "=== Plan %s ===\n\n", p.ID)
			fmt.Fprintf(c.out, "Name:        %s\n", p.Name)
			fmt.Fprintf(c.out, "Price:       ₹%.2f\n", p.Price)
			fmt.Fprintf(c.out, "Duration:    %d days\n", p.DurationDays)
			fmt.Fprintf(c.out, "Subscribers: %d\n", p.SubscribersCount)
			fmt.Fprintf(c.out, "Active:      %s\n", yesNo(p.IsActive))
			if len(p.Features) > 0 {
				fmt.Fprintln(c.out, "Features:")
				for _, feature := range p.Features {
					fmt.Fprintf(c.out, "  - %s\n", feature)
				}
			}
		},
	}
}

func (c *Cli) runSubscriptions(ctx context.Context, args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "status":
			return c.runSubscriptionStatus(ctx, args[1:])
		case "plans":
			res := api.NewResource[models.Plan](c.client, "subscriptions/plans")
			return runScreen(ctx, c, planScreen(), res, args[1:])
		}
	}
	res := api.NewResource[models.Subscription](c.client, "subscriptions")
	return runScreen(ctx, c, subscriptionScreen(), res, args)
}

func (c *Cli) runSubscriptionStatus(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: thaedal-admin subscriptions status <id> <active|expired|cancelled>")
	}
	id, status := args[0], args[1]
	if err := validation.ValidateOneOf("status", status,
		models.SubscriptionStatusActive,
		models.SubscriptionStatusExpired,
		models.SubscriptionStatusCancelled,
	); err != nil {
		return err
	}

	sub, err := c.client.UpdateSubscriptionStatus(ctx, id, status)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "✓ Subscription %s is now %s.\n", sub.ID, sub.Status)
	return nil
}
