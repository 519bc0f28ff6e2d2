package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/wellow/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
)

// executeCommand dispatches a text command and returns a tea.Cmd.
// Commands may return cmdOutputMsg for display, navigation messages
// for view transitions, or quitMsg for exit.
func (c *commandBar) executeCommand(input string) tea.Cmd {
	parts, err := splitShellArgs(input)
	if err != nil {
		return outputCmd(shellError(err))
	}
	if len(parts) == 0 {
		return nil
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "needs", "partners", "activities", "suggest", "impact", "export":
		return outputCmd(captureCobraOutput(c.state.App, parts))
	case "view", "go":
		return c.cmdView(args)
	case "reset":
		c.state.ResetCriteria()
		return tea.Batch(refreshViews, outputCmd(formatter.Dim("Filters cleared.")))
	case "dashboard":
		return outputCmd(formatter.Dim("The dashboard is already open."))
	case "help":
		return outputCmd(formatter.FormatHelp())
	case "clear":
		return nil
	case "exit", "quit":
		return func() tea.Msg { return quitMsg{} }
	default:
		return outputCmd(fmt.Sprintf("Unknown command: %s. Type 'help' for available commands.", cmd))
	}
}

// cmdView switches to the named page.
func (c *commandBar) cmdView(args []string) tea.Cmd {
	if len(args) == 0 {
		return outputCmd(formatter.StyleYellow.Render("Usage: view <" + strings.Join(pageNames(), "|") + ">"))
	}
	id, ok := pageByName(args[0])
	if !ok {
		return outputCmd(shellError(fmt.Errorf("unknown page %q", args[0])))
	}
	c.Blur()
	return replaceView(newPageView(c.state, id))
}

func pageByName(name string) (ViewID, bool) {
	switch strings.ToLower(name) {
	case "needs", "1":
		return ViewNeeds, true
	case "partners", "2":
		return ViewPartners, true
	case "suggester", "activities", "3":
		return ViewSuggester, true
	case "impact", "4":
		return ViewImpact, true
	}
	return 0, false
}

// outputCmd returns a tea.Cmd that sends a cmdOutputMsg.
func outputCmd(s string) tea.Cmd {
	if s == "" {
		return nil
	}
	return func() tea.Msg { return cmdOutputMsg{output: s} }
}

func shellError(err error) string {
	return formatter.StylePink.Render("Error: " + err.Error())
}

// splitShellArgs splits a command line into words, honoring single and
// double quotes and backslash escapes.
func splitShellArgs(input string) ([]string, error) {
	var parts []string
	var cur strings.Builder

	inSingle := false
	inDouble := false
	escaped := false
	tokenStarted := false

	flush := func() {
		parts = append(parts, cur.String())
		cur.Reset()
		tokenStarted = false
	}

	for _, r := range input {
		switch {
		case escaped:
			cur.WriteRune(r)
			tokenStarted = true
			escaped = false
		case inSingle:
			if r == '\'' {
				inSingle = false
			} else {
				cur.WriteRune(r)
			}
		case inDouble:
			switch r {
			case '"':
				inDouble = false
			case '\\':
				escaped = true
			default:
				cur.WriteRune(r)
			}
		case r == '\\':
			escaped = true
			tokenStarted = true
		case r == '\'':
			inSingle = true
			tokenStarted = true
		case r == '"':
			inDouble = true
			tokenStarted = true
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			if tokenStarted {
				flush()
			}
		default:
			cur.WriteRune(r)
			tokenStarted = true
		}
	}

	if escaped {
		return nil, fmt.Errorf("unterminated escape sequence")
	}
	if inSingle || inDouble {
		return nil, fmt.Errorf("unterminated quoted string")
	}
	if tokenStarted {
		flush()
	}

	return parts, nil
}
