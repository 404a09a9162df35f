package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runDashboard(ctx context.Context) error {
	stats, err := c.client.Stats(ctx)
	if err != nil {
		return fmt.Errorf("failed to load dashboard stats: %w", err)
	}

	fmt.Fprintln(c.out, "=== Dashboard ===")
	fmt.Fprintln(c.out)
	fmt.Fprintf(c.out, "Total users:          %d\n", stats.TotalUsers)
	fmt.Fprintf(c.out, "Active subscriptions: %d\n", stats.ActiveSubscriptions)
	fmt.Fprintf(c.out, "Total videos:         %d\n", stats.TotalVideos)
	fmt.Fprintf(c.out, "Revenue:              ₹%.2f\n", stats.Revenue)
	return nil
}
