// Package markup renders the rule content markup subset to HTML.
//
// The subset has three constructs: **bold** spans, lines starting with "- "
// as list items, and newlines as line breaks. Input is escaped first, so the
// output never contains markup supplied by the content itself.
package markup

import (
	"html"
	"strings"
)

const boldMarker = "**"

// Format converts content to HTML. It never fails: unbalanced markers are
// left as literal text.
func Format(content string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = formatLine(line)
	}
	return strings.Join(out, "<br>")
}

func formatLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if item, ok := strings.CutPrefix(trimmed, "- "); ok {
		return "<li>" + emphasize(html.EscapeString(item)) + "</li>"
	}
	return emphasize(html.EscapeString(line))
}

// emphasize replaces ** pairs left to right. A trailing marker without a
// partner stays literal.
func emphasize(s string) string {
	var b strings.Builder
	for {
		open := strings.Index(s, boldMarker)
		if open == -1 {
			break
		}
		rest := s[open+len(boldMarker):]
		closing := strings.Index(rest, boldMarker)
		if closing == -1 {
			break
		}
		b.WriteString(s[:open])
		b.WriteString("<strong>")
		b.WriteString(rest[:closing])
		b.WriteString("</strong>")
		s = rest[closing+len(boldMarker):]
	}
	b.WriteString(s)
	return b.String()
}

// Plain strips the markup subset, yielding the text a screen reader or
// terminal would read.
func Plain(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if item, ok := strings.CutPrefix(trimmed, "- "); ok {
			line = "• " + item
		}
		lines[i] = strings.ReplaceAll(line, boldMarker, "")
	}
	return strings.Join(lines, "\n")
}
