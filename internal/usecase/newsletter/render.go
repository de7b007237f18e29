package newsletter

import (
	"html"
	"regexp"
	"strings"

	"alumni-portal/internal/domain/user"
)

var (
	boldPattern      = regexp.MustCompile(`\*\*(.+?)\*\*`)
	underlinePattern = regexp.MustCompile(`__(.+?)__`)
	italicPattern    = regexp.MustCompile(`\*(.+?)\*`)
	orderedPattern   = regexp.MustCompile(`^\d+\.\s+`)
)

// Personalize substitutes {{firstName}} placeholders for one recipient.
func Personalize(body string, recipient user.AlumniRecord) string {
	return strings.ReplaceAll(body, "{{firstName}}", recipient.FirstName)
}

// RenderPreview converts the lightweight markup used in newsletter bodies
// into an HTML fragment. Raw HTML in the body is escaped first, so the
// output is safe to embed as-is.
func RenderPreview(body string) string {
	var b strings.Builder
	list := "" // "ul", "ol" or "" when no list is open

	closeList := func() {
		if list != "" {
			b.WriteString("</" + list + ">")
			list = ""
		}
	}
	openList := func(kind string) {
		if list != kind {
			closeList()
			b.WriteString("<" + kind + ">")
			list = kind
		}
	}

	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			closeList()
			b.WriteString("<br/>")
		case strings.HasPrefix(trimmed, "- "):
			openList("ul")
			b.WriteString("<li>" + renderInline(strings.TrimPrefix(trimmed, "- ")) + "</li>")
		case orderedPattern.MatchString(trimmed):
			openList("ol")
			b.WriteString("<li>" + renderInline(orderedPattern.ReplaceAllString(trimmed, "")) + "</li>")
		default:
			closeList()
			b.WriteString("<p>" + renderInline(trimmed) + "</p>")
		}
	}
	closeList()
	return b.String()
}

// renderInline escapes HTML and applies the inline emphasis markers.
// Bold and underline run before italic so ** and __ are not consumed
// as two single markers.
func renderInline(s string) string {
	s = html.EscapeString(s)
	s = boldPattern.ReplaceAllString(s, "<strong>$1</strong>")
	s = underlinePattern.ReplaceAllString(s, "<u>$1</u>")
	s = italicPattern.ReplaceAllString(s, "<em>$1</em>")
	return s
}
