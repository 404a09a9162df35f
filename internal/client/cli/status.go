package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runStatus(ctx context.Context) error {
	fmt.Fprintln(c.out, "=== Session Status ===")
	fmt.Fprintln(c.out)

	if c.session.IsLoading() {
		if err := c.session.CheckSession(ctx); err != nil {
			return fmt.Errorf("failed to check session: %w", err)
		}
	}

	identity := c.session.Identity()
	if identity == nil {
		fmt.Fprintln(c.out, "Status: Not authenticated")
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "Run 'thaedal-admin login' to sign in.")
		return nil
	}

	fmt.Fprintln(c.out, "Status: Authenticated")
	fmt.Fprintf(c.out, "Name:   %s\n", identity.Name)
	fmt.Fprintf(c.out, "Email:  %s\n", identity.Email)
	return nil
}
