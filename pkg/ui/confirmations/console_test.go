// pkg/ui/confirmations/console_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test yes/no parsing of the console dialog

package confirmations

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleDialogConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"y", "y\n", true},
		{"yes uppercase", "YES\n", true},
		{"n", "n\n", false},
		{"empty answer", "\n", false},
		{"other word", "maybe\n", false},
		{"no input", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			dialog := NewDialog(strings.NewReader(tt.input), out)

			assert.Equal(t, tt.want, dialog.Confirm("Delete worktree /tmp/x?"))
			assert.Contains(t, out.String(), "Delete worktree /tmp/x? [y/N]: ")
		})
	}
}
