package tui

import (
	"fmt"
	"strings"

	"github.com/aryribeiro/gitapp/internal/catalog"
)

// detailMarkdown builds the markdown source for the detail pane:
// heading, importance badge, description, then each usage example as
// its own bash block.
func detailMarkdown(e catalog.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## `%s`\n\n", e.Name)
	fmt.Fprintf(&b, "**Importância:** #%d — %s\n\n", e.Rank, catalog.TierFor(e.Rank))
	fmt.Fprintf(&b, "%s\n\n", e.Description)
	if len(e.Usage) > 0 {
		b.WriteString("**💡 Como usar:**\n\n")
		for _, example := range e.Usage {
			fmt.Fprintf(&b, "```bash\n%s\n```\n\n", example)
		}
	}
	return b.String()
}

func (m Model) renderDetail() string {
	md := detailMarkdown(m.selected)
	if m.renderer == nil {
		return strings.TrimRight(md, "\n")
	}
	out, err := m.renderer.Render(md)
	if err != nil {
		return strings.TrimRight(md, "\n")
	}
	return strings.TrimRight(out, "\n")
}
