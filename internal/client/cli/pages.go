package cli

import (
	"context"
	"fmt"
	"strings"
)

// Legal pages are keyed by page type, not by a server-assigned id, and
// there are only ever a handful of them, so they bypass the generic
// resource screen.

func (c *Cli) runPages(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: thaedal-admin pages <list|get|edit>")
	}

	switch args[0] {
	case "list":
		return c.runPagesList(ctx)
	case "get":
		return c.runPagesGet(ctx, args[1:])
	case "edit":
		return c.runPagesEdit(ctx, args[1:])
	default:
		return fmt.Errorf("unknown subcommand: %s. Usage: thaedal-admin pages <list|get|edit>", args[0])
	}
}

func (c *Cli) runPagesList(ctx context.Context) error {
	pages, err := c.client.LegalPages(ctx)
	if err != nil {
		return fmt.Errorf("failed to load legal pages: %w", err)
	}

	rows := make([][]string, 0, len(pages))
	for _, page := range pages {
		rows = append(rows, []string{page.PageType, page.Title, formatDate(page.UpdatedAt)})
	}
	c.renderTable([]string{"TYPE", "TITLE", "UPDATED"}, rows)
	return nil
}

func (c *Cli) runPagesGet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing page type. Usage: thaedal-admin pages get <terms|privacy|refund>")
	}

	page, err := c.client.LegalPage(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "=== %s ===\n", page.Title)
	fmt.Fprintf(c.out, "Updated: %s\n\n", formatDate(page.UpdatedAt))
	fmt.Fprintln(c.out, page.Content)
	return nil
}

// runPagesEdit reads replacement content line by line until a lone "."
// so multi-paragraph documents can be pasted in.
func (c *Cli) runPagesEdit(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing page type. Usage: thaedal-admin pages edit <terms|privacy|refund>")
	}
	pageType := args[0]

	page, err := c.client.LegalPage(ctx, pageType)
	if err != nil {
		return err
	}

	title, err := c.promptString("Title", page.Title)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, "Enter content, finish with a single '.' on its own line")
	fmt.Fprintln(c.out, "(leave the first line empty to keep the current content):")
	var lines []string
	for {
		line, err := c.readInput("")
		if err != nil {
			return fmt.Errorf("failed to read content: %w", err)
		}
		if line == "." {
			break
		}
		if line == "" && len(lines) == 0 {
			lines = nil
			break
		}
		lines = append(lines, line)
	}

	page.Title = title
	if lines != nil {
		page.Content = strings.Join(lines, "\n")
	}

	updated, err := c.client.UpdateLegalPage(ctx, pageType, *page)
	if err != nil {
		return describeMutationError(c, err)
	}
	fmt.Fprintf(c.out, "✓ Updated %s (%s).\n", updated.Title, updated.PageType)
	return nil
}
