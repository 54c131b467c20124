package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/heneryville/graphql-schema-utils/internal/diff"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorGray   = lipgloss.Color("245")
)

var (
	styleBreaking   = lipgloss.NewStyle().Foreground(colorRed)
	styleCompatible = lipgloss.NewStyle().Foreground(colorGreen)
	styleKind       = lipgloss.NewStyle().Foreground(colorCyan)
	styleSummary    = lipgloss.NewStyle().Foreground(colorGray)
	styleWarning    = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
)

const (
	iconBreaking   = "✗"
	iconCompatible = "✓"
)

// paint applies style only when output is styled.
type paint bool

func (p paint) render(s lipgloss.Style, text string) string {
	if !p {
		return text
	}
	return s.Render(text)
}

func text(r Report, styled bool) string {
	p := paint(styled)
	var b strings.Builder
	if len(r.Diffs) == 0 {
		b.WriteString(p.render(styleCompatible, iconCompatible+" No differences"))
		b.WriteString("\n")
		return b.String()
	}
	for _, d := range r.Diffs {
		writeDiff(&b, p, d)
	}
	b.WriteString("\n")
	summary := fmt.Sprintf("%d differences: %d breaking, %d compatible",
		len(r.Diffs), r.BreakingCount, r.CompatibleCount)
	if r.HasBreakingChanges {
		b.WriteString(p.render(styleWarning, summary))
	} else {
		b.WriteString(p.render(styleSummary, summary))
	}
	b.WriteString("\n")
	return b.String()
}

func writeDiff(b *strings.Builder, p paint, d diff.Diff) {
	if d.BackwardCompatible {
		b.WriteString(p.render(styleCompatible, iconCompatible))
	} else {
		b.WriteString(p.render(styleBreaking, iconBreaking))
	}
	b.WriteString(" ")
	b.WriteString(p.render(styleKind, "["+string(d.Kind)+"]"))
	b.WriteString(" ")
	b.WriteString(d.Description)
	b.WriteString("\n")
}
