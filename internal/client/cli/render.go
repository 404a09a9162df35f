package cli

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"
)

// renderTable prints rows in aligned columns with an upper-case header.
func (c *Cli) renderTable(columns []string, rows [][]string) {
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(columns, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}

// promptString asks for a field value. An empty answer keeps the
// current value, so edit forms default to the stored fields.
func (c *Cli) promptString(label, current string) (string, error) {
	prompt := label + ": "
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]: ", label, current)
	}
	answer, err := c.readInput(prompt)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return current, nil
	}
	return answer, nil
}

// promptBool asks a yes/no field question; empty keeps the current
// value.
func (c *Cli) promptBool(label string, current bool) (bool, error) {
	hint := "y/N"
	if current {
		hint = "Y/n"
	}
	answer, err := c.readInput(fmt.Sprintf("%s [%s]: ", label, hint))
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "":
		return current, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// promptFloat asks for a numeric field; empty keeps the current value.
func (c *Cli) promptFloat(label string, current float64) (float64, error) {
	answer, err := c.readInput(fmt.Sprintf("%s [%g]: ", label, current))
	if err != nil {
		return 0, err
	}
	if answer == "" {
		return current, nil
	}
	value, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", label, err)
	}
	return value, nil
}

// promptInt asks for an integer field; empty keeps the current value.
func (c *Cli) promptInt(label string, current int) (int, error) {
	answer, err := c.readInput(fmt.Sprintf("%s [%d]: ", label, current))
	if err != nil {
		return 0, err
	}
	if answer == "" {
		return current, nil
	}
	value, err := strconv.Atoi(answer)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", label, err)
	}
	return value, nil
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

func formatCount(n int64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return strconv.FormatInt(n, 10)
	}
}
