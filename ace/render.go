package ace

import (
	"fmt"
	"html"
	"sort"
	"strings"
)

// RenderMarkup serializes a widget tree to an AceML document. Attribute
// and text content are entity-escaped; event handler names are recorded as
// on:* attributes so the shell knows which hooks a scene expects.
func RenderMarkup(roots []*Widget) string {
	var b strings.Builder
	b.WriteString("<aceml>\n")
	for _, root := range roots {
		writeWidget(&b, root, 1)
	}
	b.WriteString("</aceml>\n")
	return b.String()
}

func writeWidget(b *strings.Builder, w *Widget, depth int) {
	indent := strings.Repeat("  ", depth)
	text := w.Text
	if w.Kind == KindWindow {
		// Window titles render as an attribute, not content.
		text = ""
	}

	b.WriteString(indent)
	b.WriteByte('<')
	b.WriteString(string(w.Kind))
	writeAttrs(b, w)

	switch {
	case len(w.Children) == 0 && text == "":
		b.WriteString("/>\n")
	case len(w.Children) == 0:
		fmt.Fprintf(b, ">%s</%s>\n", html.EscapeString(text), w.Kind)
	default:
		b.WriteString(">\n")
		if text != "" {
			fmt.Fprintf(b, "%s  %s\n", indent, html.EscapeString(text))
		}
		for _, child := range w.Children {
			writeWidget(b, child, depth+1)
		}
		fmt.Fprintf(b, "%s</%s>\n", indent, w.Kind)
	}
}

func writeAttrs(b *strings.Builder, w *Widget) {
	if w.Kind == KindWindow && w.Text != "" {
		fmt.Fprintf(b, " title=%q", html.EscapeString(w.Text))
	}
	if w.Path != "" {
		fmt.Fprintf(b, " path=%q", html.EscapeString(w.Path))
	}
	if len(w.Classes) > 0 {
		fmt.Fprintf(b, " class=%q", html.EscapeString(strings.Join(w.Classes, " ")))
	}
	if w.Background != "" {
		fmt.Fprintf(b, " background=%q", html.EscapeString(w.Background))
	}
	events := make([]string, 0, len(w.Handlers))
	for event := range w.Handlers {
		events = append(events, event)
	}
	sort.Strings(events)
	for _, event := range events {
		fmt.Fprintf(b, " on:%s=\"true\"", event)
	}
}
