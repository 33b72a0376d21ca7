// Package console implements the operator-facing side of the
// preview/confirm protocol: rendering the field-level diff and reading
// the yes/no answer. It never touches storage.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/example/flightdeck/internal/core/preview"
	"github.com/example/flightdeck/internal/models"
)

// Console renders change previews to out and reads confirmations from in.
type Console struct {
	out io.Writer
	in  *bufio.Reader
}

// New creates a Console over the given streams.
func New(out io.Writer, in io.Reader) *Console {
	return &Console{out: out, in: bufio.NewReader(in)}
}

// ConfirmChange renders the current state, the proposed state with
// changed fields marked, the list of changed field names, then asks for
// approval. Declined or unreadable input counts as "no".
func (c *Console) ConfirmChange(current, proposed *models.FlightDetails) (bool, error) {
	fields := preview.Diff(current, proposed)

	fmt.Fprintln(c.out, "\n--- Current ---")
	for _, f := range fields {
		fmt.Fprintf(c.out, "%-20s: %s\n", f.Label, f.Old)
	}

	fmt.Fprintln(c.out, "\n--- Proposed ---")
	changedMark := color.New(color.FgYellow).Sprint("[CHANGED]")
	for _, f := range fields {
		if f.Changed {
			fmt.Fprintf(c.out, "%-20s: %s %s\n", f.Label, f.New, changedMark)
		} else {
			fmt.Fprintf(c.out, "%-20s: %s\n", f.Label, f.New)
		}
	}

	if changed := preview.ChangedLabels(fields); len(changed) > 0 {
		fmt.Fprintf(c.out, "\nChanges: %s\n", strings.Join(changed, ", "))
	} else {
		fmt.Fprintln(c.out, "\nNo changes detected.")
	}

	return c.prompt("Apply changes?")
}

func (c *Console) prompt(msg string) (bool, error) {
	fmt.Fprintf(c.out, "%s [y/N]: ", msg)
	response, err := c.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

// AutoApprove is a ChangeConfirmer that approves every change without
// prompting. Used by the --yes flag.
type AutoApprove struct{}

// ConfirmChange always approves.
func (AutoApprove) ConfirmChange(current, proposed *models.FlightDetails) (bool, error) {
	return true, nil
}
