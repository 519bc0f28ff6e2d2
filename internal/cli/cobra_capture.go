package cli

import (
	"bytes"
	"strings"

	"github.com/alexanderramin/wellow/internal/cli/formatter"
)

// captureCobraOutput runs a command through a fresh Cobra tree bound to the
// same App and returns what it printed. Every command writes through
// cmd.OutOrStdout, so nothing reaches the terminal under the TUI.
func captureCobraOutput(app *App, args []string) string {
	var buf bytes.Buffer

	root := NewRootCmd(app)
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	root.SilenceUsage = true
	root.SilenceErrors = true

	if err := root.Execute(); err != nil {
		if buf.Len() > 0 && !strings.HasSuffix(buf.String(), "\n") {
			buf.WriteString("\n")
		}
		buf.WriteString(shellError(err))
		if strings.Contains(err.Error(), "unknown flag") && len(args) > 0 {
			buf.WriteString("\n" + formatter.Dim("Try: "+args[0]+" --help"))
		}
	}
	return buf.String()
}
