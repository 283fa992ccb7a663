package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const wordWrap = 100

type theme struct {
	heading lipgloss.Style
	id      lipgloss.Style
	dim     lipgloss.Style
	badge   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	total   lipgloss.Style
}

// newTheme binds styles to w so color is only emitted on terminals.
func newTheme(w io.Writer, noColor bool) theme {
	r := lipgloss.NewRenderer(w)
	r.SetHasDarkBackground(true)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return theme{
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		id:      r.NewStyle().Foreground(lipgloss.Color("63")),
		dim:     r.NewStyle().Faint(true),
		badge:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		success: r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		failure: r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		total:   r.NewStyle().Bold(true),
	}
}

// contentMarkdown turns rule markup into Markdown. Plain lines become hard
// breaks and "- " lines become list items, so glamour lays them out the way
// the web page does.
func contentMarkdown(content string) string {
	var b strings.Builder
	inList := false
	for i, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		item := strings.HasPrefix(line, "- ")
		if i > 0 {
			switch {
			case item != inList:
				b.WriteString("\n\n")
			case item:
				b.WriteString("\n")
			default:
				b.WriteString("  \n")
			}
		}
		b.WriteString(line)
		inList = item
	}
	return b.String()
}

// renderContent renders rule content for the terminal, falling back to the
// raw text when glamour fails.
func renderContent(content string, noColor bool) string {
	style := glamour.WithAutoStyle()
	if noColor {
		style = glamour.WithStandardStyle(styles.NoTTYStyle)
	}
	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(wordWrap))
	if err != nil {
		return content + "\n"
	}
	out, err := renderer.Render(contentMarkdown(content))
	if err != nil {
		return content + "\n"
	}
	return out
}
