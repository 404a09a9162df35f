package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogout(ctx context.Context) error {
	if c.session.IsLoading() {
		if err := c.session.CheckSession(ctx); err != nil {
			return fmt.Errorf("failed to check session: %w", err)
		}
	}

	if err := c.session.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	fmt.Fprintln(c.out, "✓ Logged out. Local session cleared.")
	return nil
}
