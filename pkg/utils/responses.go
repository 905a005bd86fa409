package utils

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"feedback-desk/pkg/apperror"
)

// ResponseSuccess prints a one-line confirmation.
func ResponseSuccess(w io.Writer, message string) {
	fmt.Fprintln(w, message)
}

// ResponseError prints the user-facing line for err. Causes stay in the log.
func ResponseError(w io.Writer, err error) {
	fmt.Fprintln(w, apperror.Message(err))
}

// ResponseTable prints rows as an aligned grid, or empty when there are none.
func ResponseTable(w io.Writer, title, empty string, headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(w, empty)
		return
	}

	if title != "" {
		fmt.Fprintf(w, "\n--- %s ---\n", title)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.Debug)
	fmt.Fprintln(tw, strings.Join(headers, "\t")+"\t")

	rule := make([]string, len(headers))
	for i, h := range headers {
		rule[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(tw, strings.Join(rule, "\t")+"\t")

	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t")+"\t")
	}
	tw.Flush()
}
