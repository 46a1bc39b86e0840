package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Palette for terminal output.
var (
	colourPrimary = lipgloss.Color("#7C3AED") // Purple
	colourAccent  = lipgloss.Color("#06B6D4") // Cyan
	colourMuted   = lipgloss.Color("#6C7086") // Medium gray
	colourWarning = lipgloss.Color("#F9E2AF") // Yellow
	colourError   = lipgloss.Color("#F38BA8") // Red
)

var (
	bannerStyle  = lipgloss.NewStyle().Bold(true).Foreground(colourPrimary)
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(colourAccent)
	linkStyle    = lipgloss.NewStyle().Foreground(colourMuted).Underline(true)
	emptyStyle   = lipgloss.NewStyle().Bold(true).Foreground(colourWarning)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(colourError)
	mutedStyle   = lipgloss.NewStyle().Foreground(colourMuted)
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// writeResult prints a tool result, styled when w is a terminal.
func writeResult(w io.Writer, text string) {
	if isTerminal(w) {
		text = stylize(text)
	}
	fmt.Fprintln(w, text)
}

// stylize applies terminal styles line by line. Content is unchanged.
func stylize(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "Found "):
			lines[i] = bannerStyle.Render(line)
		case strings.HasPrefix(line, "No documentation found"):
			lines[i] = emptyStyle.Render(line)
		case strings.HasPrefix(line, "Sorry,"):
			lines[i] = errorStyle.Render(line)
		case strings.HasPrefix(line, "## "), strings.HasPrefix(line, "### "):
			lines[i] = headingStyle.Render(line)
		case strings.HasPrefix(line, "Link: "):
			lines[i] = mutedStyle.Render("Link: ") + linkStyle.Render(strings.TrimPrefix(line, "Link: "))
		case line == "---":
			lines[i] = mutedStyle.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
