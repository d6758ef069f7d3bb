package tui

import "strings"

const uiDivider = "──────────────────────────────────────────────────────"

// renderPage frames a screen with a title, body and hotkey footer.
func renderPage(title, body, footer string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(body) != "" {
		b.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			b.WriteString("\n")
		}
	} else {
		b.WriteString("-\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(footer) != "" {
		b.WriteString(helpStyle.Render(footer))
		b.WriteString("\n")
	}

	return b.String()
}

// inputBox renders a labelled input field with a focus marker.
func inputBox(label, value string, focused bool) string {
	marker := "  "
	if focused {
		marker = "> "
	}
	return marker + label + " [" + value + "]"
}
