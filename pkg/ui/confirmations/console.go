// Package confirmations provides UI implementations for confirmation dialogs.
package confirmations

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/swt/pkg/logging"
)

// ConsoleDialog asks yes/no questions on a console
type ConsoleDialog struct {
	in  io.Reader
	out io.Writer
}

// NewConsoleDialog creates a dialog on stdin and stderr. Stdout stays free for
// output the shell integration captures.
func NewConsoleDialog() *ConsoleDialog {
	return NewDialog(os.Stdin, os.Stderr)
}

// NewDialog creates a dialog on arbitrary streams
func NewDialog(in io.Reader, out io.Writer) *ConsoleDialog {
	return &ConsoleDialog{in: in, out: out}
}

// Confirm prints prompt and reports whether the user answered yes. Anything
// else, including an empty answer or a read error, is a no.
func (d *ConsoleDialog) Confirm(prompt string) bool {
	fmt.Fprintf(d.out, "%s [y/N]: ", prompt)

	var response string
	_, err := fmt.Fscanln(d.in, &response)
	if err != nil && err.Error() != "unexpected newline" {
		logger := logging.GetLogger("ui.confirmations")
		logger.Debug().Err(err).Msg("failed to read confirmation")
		fmt.Fprintln(d.out)
		return false
	}

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
