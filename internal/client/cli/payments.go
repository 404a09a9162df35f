package cli

import (
	"context"
	"fmt"

	"github.com/thaedal/thaedal-admin/internal/client/api"
	"github.com/thaedal/thaedal-admin/internal/client/controller"
	"github.com/thaedal/thaedal-admin/internal/models"
)

// paymentScreen is strictly read-only; payments are immutable records.
func paymentScreen() screen[models.Payment] {
	return screen[models.Payment]{
		name: "payments",
		spec: controller.Spec[models.Payment]{
			ID:       func(p models.Payment) string { return p.ID },
			Defaults: func() models.Payment { return models.Payment{} },
			SearchFields: func(p models.Payment) []string {
				return []string{p.User, p.TransactionID, p.Plan}
			},
			Filters: map[string]func(models.Payment, string) bool{
				"status": func(p models.Payment, value string) bool { return p.Status == value },
				"method": func(p models.Payment, value string) bool { return p.Method == value },
			},
		},
		filterKeys: []string{"status", "method"},
		columns:    []string{"ID", "USER", "PLAN", "AMOUNT", "METHOD", "STATUS", "DATE"},
		row: func(p models.Payment) []string {
			return []string{
				p.ID, p.User, p.Plan, fmt.Sprintf("₹%.2f", p.Amount),
				p.Method, p.Status, formatDate(p.Date),
			}
		},
		detail: func(c *Cli, p models.Payment) {
			fmt.Fprintf(c.out, "=== Payment %s ===\n\n", p.ID)
			fmt.Fprintf(c.out, "User:        %s\n", p.User)
			fmt.Fprintf(c.out, "Plan:        %s\n", p.Plan)
			fmt.Fprintf(c.out, "Amount:      ₹%.2f\n", p.Amount)
			fmt.Fprintf(c.out, "Method:      %s\n", p.Method)
			fmt.Fprintf(c.out, "Transaction: %s\n", p.TransactionID)
			fmt.Fprintf(c.out, "Status:      %s\n", p.Status)
			fmt.Fprintf(c.out, "Date:        %s\n", formatDate(p.Date))
		},
	}
}

func (c *Cli) runPayments(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "delete" {
		return fmt.Errorf("'payments delete' is not supported; payment records are immutable")
	}
	res := api.NewResource[models.Payment](c.client, "payments")
	return runScreen(ctx, c, paymentScreen(), res, args)
}
