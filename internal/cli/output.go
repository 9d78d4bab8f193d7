// Package cli holds the table and JSON output helpers shared by the
// command-line tools.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
)

// TabWriter wraps tabwriter with error tracking.
type TabWriter struct {
	*tabwriter.Writer
	err error
}

// NewTabWriter returns a TabWriter with two-space column padding.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

// Writef formats a row. Errors are kept and reported by Finish.
func (tw *TabWriter) Writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

// Finish flushes the table and returns the first write error.
func (tw *TabWriter) Finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

// OutputJSON writes v as indented JSON.
func OutputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Truncate shortens s to maxLen runes, ending with an ellipsis.
func Truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

// Money formats an amount with its currency code.
func Money(amount float64, currency string) string {
	if currency == "" {
		return fmt.Sprintf("%.2f", amount)
	}
	return fmt.Sprintf("%s %.2f", currency, amount)
}
