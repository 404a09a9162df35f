package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogin(ctx context.Context) error {
	fmt.Fprintln(c.out, "=== Thaedal Admin Login ===")
	fmt.Fprintln(c.out)

	if c.session.IsLoading() {
		if err := c.session.CheckSession(ctx); err != nil {
			return fmt.Errorf("failed to check session: %w", err)
		}
	}
	if identity := c.session.Identity(); identity != nil {
		fmt.Fprintf(c.out, "Already logged in as %s <%s>.\n", identity.Name, identity.Email)
		fmt.Fprintln(c.out, "Run 'thaedal-admin logout' to switch accounts.")
		return nil
	}

	email, err := c.readInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.readPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "Authenticating...")

	result := c.session.Login(ctx, email, password)
	if !result.OK {
		return fmt.Errorf("%s", result.Message)
	}

	identity := c.session.Identity()
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "✓ Login successful!")
	fmt.Fprintf(c.out, "Logged in as %s <%s>.\n", identity.Name, identity.Email)
	return nil
}
