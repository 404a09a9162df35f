package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/thaedal/thaedal-admin/internal/client/api"
	"github.com/thaedal/thaedal-admin/internal/client/controller"
)

// screen binds one resource collection to its console commands: the
// controller spec, the list table shape and the create/edit form. A
// screen without a form is read-only apart from delete.
type screen[T any] struct {
	name       string
	spec       controller.Spec[T]
	filterKeys []string
	columns    []string
	row        func(T) []string
	form       func(c *Cli, draft *T) error
	detail     func(c *Cli, item T)
}

func (s screen[T]) subcommands() string {
	subs := []string{"list", "get"}
	if s.form != nil {
		subs = append(subs, "add", "edit")
	}
	return strings.Join(append(subs, "delete"), "|")
}

// runScreen dispatches one resource subcommand.
func runScreen[T any](ctx context.Context, c *Cli, s screen[T], res *api.Resource[T], args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: thaedal-admin %s <%s>", s.name, s.subcommands())
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "list":
		return runScreenList(ctx, c, s, res, rest)
	case "get":
		return runScreenGet(ctx, c, s, res, rest)
	case "add":
		if s.form == nil {
			return fmt.Errorf("'%s add' is not supported", s.name)
		}
		return runScreenAdd(ctx, c, s, res)
	case "edit":
		if s.form == nil {
			return fmt.Errorf("'%s edit' is not supported", s.name)
		}
		return runScreenEdit(ctx, c, s, res, rest)
	case "delete":
		return runScreenDelete(ctx, c, s, res, rest)
	default:
		return fmt.Errorf("unknown subcommand: %s. Usage: thaedal-admin %s <%s>", sub, s.name, s.subcommands())
	}
}

func runScreenList[T any](ctx context.Context, c *Cli, s screen[T], res *api.Resource[T], args []string) error {
	fs := flag.NewFlagSet(s.name+" list", flag.ContinueOnError)
	fs.SetOutput(c.out)
	search := fs.String("search", "", "substring match, case-insensitive")
	selected := make(map[string]*string, len(s.filterKeys))
	for _, key := range s.filterKeys {
		selected[key] = fs.String(key, "", "filter by "+key)
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctrl := controller.New(s.spec, res, c.logger)
	if err := ctrl.Load(ctx, nil); err != nil {
		return fmt.Errorf("failed to load %s: %w", s.name, err)
	}

	state := controller.FilterState{Search: *search, Filters: make(map[string]string, len(selected))}
	for key, value := range selected {
		state.Filters[key] = *value
	}

	items := ctrl.Filtered(state)
	if len(items) == 0 {
		fmt.Fprintf(c.out, "No %s found.\n", s.name)
		return nil
	}

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, s.row(item))
	}
	c.renderTable(s.columns, rows)
	fmt.Fprintf(c.out, "\n%d of %d shown.\n", len(items), len(ctrl.Items()))
	return nil
}

func runScreenGet[T any](ctx context.Context, c *Cli, s screen[T], res *api.Resource[T], args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing id. Usage: thaedal-admin %s get <id>", s.name)
	}

	item, err := res.Get(ctx, args[0])
	if err != nil {
		return err
	}
	s.detail(c, item)
	return nil
}

func runScreenAdd[T any](ctx context.Context, c *Cli, s screen[T], res *api.Resource[T]) error {
	ctrl := controller.New(s.spec, res, c.logger)
	ctrl.OpenCreate()
	defer ctrl.Close()

	if err := fillDraft(c, s, ctrl); err != nil {
		return err
	}
	if err := ctrl.Submit(ctx); err != nil {
		return describeMutationError(c, err)
	}

	items := ctrl.Items()
	created := items[len(items)-1]
	fmt.Fprintf(c.out, "✓ Created %s %s.\n", strings.TrimSuffix(s.name, "s"), s.spec.ID(created))
	return nil
}

func runScreenEdit[T any](ctx context.Context, c *Cli, s screen[T], res *api.Resource[T], args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing id. Usage: thaedal-admin %s edit <id>", s.name)
	}
	id := args[0]

	ctrl := controller.New(s.spec, res, c.logger)
	defer ctrl.Close()
	if err := ctrl.Load(ctx, nil); err != nil {
		return fmt.Errorf("failed to load %s: %w", s.name, err)
	}

	item, ok := findByID(s, ctrl.Items(), id)
	if !ok {
		return fmt.Errorf("no %s with id %s", strings.TrimSuffix(s.name, "s"), id)
	}

	ctrl.OpenEdit(item)
	if err := fillDraft(c, s, ctrl); err != nil {
		return err
	}
	if err := ctrl.Submit(ctx); err != nil {
		return describeMutationError(c, err)
	}

	fmt.Fprintf(c.out, "✓ Updated %s %s.\n", strings.TrimSuffix(s.name, "s"), id)
	return nil
}

func runScreenDelete[T any](ctx context.Context, c *Cli, s screen[T], res *api.Resource[T], args []string) error {
	fs := flag.NewFlagSet(s.name+" delete", flag.ContinueOnError)
	fs.SetOutput(c.out)
	yes := fs.Bool("yes", false, "skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("missing id. Usage: thaedal-admin %s delete <id> [--yes]", s.name)
	}
	id := fs.Arg(0)

	ctrl := controller.New(s.spec, res, c.logger)
	defer ctrl.Close()
	if err := ctrl.Load(ctx, nil); err != nil {
		return fmt.Errorf("failed to load %s: %w", s.name, err)
	}
	if _, ok := findByID(s, ctrl.Items(), id); !ok {
		return fmt.Errorf("no %s with id %s", strings.TrimSuffix(s.name, "s"), id)
	}

	if !*yes {
		ok, err := c.confirm(fmt.Sprintf("Delete %s %s? This cannot be undone.", strings.TrimSuffix(s.name, "s"), id))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(c.out, "Aborted.")
			return nil
		}
	}

	if err := ctrl.Remove(ctx, id); err != nil {
		return describeMutationError(c, err)
	}
	fmt.Fprintf(c.out, "✓ Deleted %s %s.\n", strings.TrimSuffix(s.name, "s"), id)
	return nil
}

// fillDraft runs the form over a copy of the open draft and writes the
// answers back in one step.
func fillDraft[T any](c *Cli, s screen[T], ctrl *controller.Controller[T]) error {
	draft, ok := ctrl.Draft()
	if !ok {
		return controller.ErrNoDraft
	}
	if err := s.form(c, &draft); err != nil {
		return err
	}
	return ctrl.UpdateDraft(func(d *T) { *d = draft })
}

func findByID[T any](s screen[T], items []T, id string) (T, bool) {
	for _, item := range items {
		if s.spec.ID(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// describeMutationError prints field-level validation messages before
// surfacing the failure.
func describeMutationError(c *Cli, err error) error {
	var vErr *api.ValidationError
	if errors.As(err, &vErr) {
		fmt.Fprintln(c.out, "Validation failed:")
		for field, message := range vErr.Fields {
			fmt.Fprintf(c.out, "  %s: %s\n", field, message)
		}
	}
	return err
}
