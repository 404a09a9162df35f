// Package cli implements the admin console shell: command dispatch,
// prompts, table rendering and the authentication guard in front of
// protected commands.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/thaedal/thaedal-admin/internal/client/api"
	"github.com/thaedal/thaedal-admin/internal/client/session"
)

type Cli struct {
	client  *api.Client
	session *session.Store
	logger  *slog.Logger

	in  *bufio.Reader
	out io.Writer

	// readPassword is swappable so tests can feed passwords without a
	// terminal.
	readPassword func(prompt string) (string, error)
}

func New(client *api.Client, sess *session.Store, logger *slog.Logger) *Cli {
	c := &Cli{
		client:  client,
		session: sess,
		logger:  logger,
		in:      bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
	c.readPassword = c.readPasswordTerm
	return c
}

// Run executes one console command. Protected commands go through the
// guard first; login and status work in every session state.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "dashboard":
		return c.guarded(ctx, func() error { return c.runDashboard(ctx) })
	case "videos":
		return c.guarded(ctx, func() error { return c.runVideos(ctx, args) })
	case "categories":
		return c.guarded(ctx, func() error { return c.runCategories(ctx, args) })
	case "creators":
		return c.guarded(ctx, func() error { return c.runCreators(ctx, args) })
	case "users":
		return c.guarded(ctx, func() error { return c.runUsers(ctx, args) })
	case "subscriptions":
		return c.guarded(ctx, func() error { return c.runSubscriptions(ctx, args) })
	case "payments":
		return c.guarded(ctx, func() error { return c.runPayments(ctx, args) })
	case "pages":
		return c.guarded(ctx, func() error { return c.runPages(ctx, args) })
	case "settings":
		return c.guarded(ctx, func() error { return c.runSettings(ctx, args) })
	case "notifications":
		return c.guarded(ctx, func() error { return c.runNotifications(ctx, args) })
	default:
		PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// readInput reads one trimmed line from stdin.
func (c *Cli) readInput(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	input, err := c.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// readPasswordTerm reads a password without echoing it.
func (c *Cli) readPasswordTerm(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(c.out)
	if err != nil {
		return "", err
	}
	return string(passwordBytes), nil
}

// confirm asks a y/N question. Anything but an explicit yes is a no.
func (c *Cli) confirm(prompt string) (bool, error) {
	answer, err := c.readInput(prompt + " [y/N]: ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func PrintUsage() {
	fmt.Print(usageTemplate)
}
