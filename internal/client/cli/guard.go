package cli

import (
	"context"
	"fmt"
)

// guarded runs fn only for an authenticated session. While the startup
// identity check is pending it waits for the result instead of
// guessing; an unauthenticated session gets the login hint and the
// command never runs.
func (c *Cli) guarded(ctx context.Context, fn func() error) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}
	return fn()
}

func (c *Cli) requireAuth(ctx context.Context) error {
	if c.session.IsLoading() {
		if err := c.session.CheckSession(ctx); err != nil {
			return fmt.Errorf("failed to check session: %w", err)
		}
	}
	if !c.session.IsAuthenticated() {
		return fmt.Errorf("not authenticated. Please run 'thaedal-admin login' first")
	}
	return nil
}
