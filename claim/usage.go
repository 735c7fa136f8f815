package claim

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	claimio "github.com/dzonerzy/go-claim/io"
)

// renderUsage builds the help text for a parser: prelude, handler lines
// grouped by group label, epilogue. Metadata is display-only; nothing here
// feeds back into scanning or extraction.
func renderUsage(name string, p *Parser, io *claimio.IOManager) string {
	var b strings.Builder

	header := color.New(color.Bold)
	if io.SupportsColor() {
		header.EnableColor()
	} else {
		header.DisableColor()
	}

	if p.prelude != "" {
		b.WriteString(p.prelude)
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "%s %s [arguments]\n", header.Sprint("Usage:"), name)

	sections, labels := groupHandlers(p.handlers)
	maxWidth := 0
	for _, hs := range sections {
		for _, h := range hs {
			if w := len(usageLabel(h)); w > maxWidth {
				maxWidth = w
			}
		}
	}

	for _, label := range labels {
		b.WriteString("\n")
		b.WriteString(header.Sprint(label + ":"))
		b.WriteString("\n")
		for _, h := range sections[label] {
			fmt.Fprintf(&b, "  %-*s  %s\n", maxWidth, usageLabel(h), h.help)
		}
	}

	if p.epilogue != "" {
		b.WriteString("\n")
		b.WriteString(p.epilogue)
		b.WriteString("\n")
	}
	return b.String()
}

// groupHandlers buckets handlers by group label, preserving first-seen
// label order. Unlabeled handlers land in "Options".
func groupHandlers(handlers []Handler) (map[string][]Handler, []string) {
	sections := make(map[string][]Handler)
	var labels []string
	for _, h := range handlers {
		label := h.group
		if label == "" {
			label = "Options"
		}
		if _, seen := sections[label]; !seen {
			labels = append(labels, label)
		}
		sections[label] = append(sections[label], h)
	}
	return sections, labels
}

// usageLabel is the left column of a handler's usage line: its activators,
// or the bracketed key for positionals.
func usageLabel(h Handler) string {
	if acts := h.Activators(); len(acts) > 0 {
		return strings.Join(acts, ", ")
	}
	if h.key != "" {
		return "<" + h.key + ">"
	}
	return "<argument>"
}
