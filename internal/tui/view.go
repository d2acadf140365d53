package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/aryribeiro/gitapp/internal/catalog"
)

func (m Model) View() string {
	parts := []string{
		m.renderHeader(),
		renderTierChips(m.tiers, m.tierIdx),
		m.search.View(),
		m.renderSection("Comandos", renderList(m.filtered, m.cursor, m.topIndex, m.visibleRows(), m.listContentWidth())),
	}
	if m.hasSelected {
		parts = append(parts, m.renderSection("Detalhes", m.renderDetail()))
	}
	parts = append(parts, statsStyle.Render(renderStats(m.dist, len(m.entries), len(m.filtered))))

	body := strings.Join(parts, "\n")
	statusLine := m.renderStatus(m.status)
	footer := m.renderFooter(renderHelp(m.helpBindings()))
	return m.placeWithFooter(body, statusLine, footer)
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("🔧 " + appName)
	subtitle := subtitleStyle.Render("o seu guia de comandos Git no terminal")
	line := title + "  " + subtitle
	if m.width == 0 {
		return line
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, line)
}

// renderTierChips draws the importance buckets as a chip row; the
// active bucket carries the cursor marker.
func renderTierChips(tiers []catalog.Tier, active int) string {
	parts := make([]string, 0, len(tiers))
	for i, tier := range tiers {
		chip := "[" + tier.Label + "]"
		if i == active {
			parts = append(parts, activeChipStyle.Render("> "+chip))
			continue
		}
		parts = append(parts, chipStyle.Render(chip))
	}
	return strings.Join(parts, " ")
}

// renderList renders the windowed command list, one line per entry:
// cursor, zero-padded rank, name, truncated description.
func renderList(entries []catalog.Entry, cursor, topIndex, visible, width int) string {
	if len(entries) == 0 {
		return statusStyle.Render("Nenhum comando encontrado com os filtros aplicados.")
	}

	const rankWidth = 4
	nameWidth := 22
	descWidth := width - rankWidth - nameWidth - 8
	if descWidth < 5 {
		descWidth = 5
	}

	header := fmt.Sprintf("  %-*s  %-*s  %-*s", rankWidth, "Nº", nameWidth, "Comando", descWidth, "Descrição")
	lines := []string{subtitleStyle.Render(header)}

	end := topIndex + visible
	if end > len(entries) {
		end = len(entries)
	}
	for i := topIndex; i < end; i++ {
		e := entries[i]
		prefix := "  "
		if i == cursor {
			prefix = cursorStyle.Render("> ")
		}
		rankField := fmt.Sprintf("#%03d", e.Rank)
		nameField := padRight(truncate(e.Name, nameWidth), nameWidth)
		descField := truncate(e.Description, descWidth)
		lines = append(lines, prefix+rankField+"  "+nameField+"  "+descField)
	}
	return strings.Join(lines, "\n")
}

func renderStats(d catalog.Distribution, total, filtered int) string {
	return fmt.Sprintf("Total: %d  Filtrados: %d  |  🔥 Essenciais: %d  🚀 Intermediários: %d  ⚡ Avançados: %d",
		total, filtered, d.Essential, d.Intermediate, d.Advanced)
}

func (m Model) helpBindings() []key.Binding {
	if m.search.Focused() {
		return m.searchKeys.ShortHelp()
	}
	return m.keys.ShortHelp()
}

func (m Model) renderSection(title, content string) string {
	header := titleStyle.Render(title)
	section := header + "\n" + listBoxStyle.Width(m.sectionWidth()).Render(content)
	if m.width == 0 {
		return section
	}
	return lipgloss.Place(m.width, lipgloss.Height(section), lipgloss.Center, lipgloss.Top, section)
}

func (m Model) sectionWidth() int {
	if m.width == 0 {
		return 80
	}
	width := m.width - 4
	if width < 20 {
		width = m.width
	}
	return width
}

func (m Model) listContentWidth() int {
	if m.width == 0 {
		return 80
	}
	frameH := listBoxStyle.GetHorizontalFrameSize()
	contentWidth := m.sectionWidth() - frameH
	if contentWidth < 20 {
		contentWidth = 20
	}
	return contentWidth
}

func (m Model) visibleRows() int {
	if m.height == 0 {
		return 10
	}
	frameV := listBoxStyle.GetVerticalFrameSize()
	// header, chips, search, section title, stats, status, footer
	chrome := 7 + frameV
	available := m.height - chrome - 2
	if m.hasSelected {
		// leave room for the detail section below the list
		available -= 14
	}
	if available < 3 {
		available = 3
	}
	if available > 20 {
		available = 20
	}
	return available
}

func (m Model) renderFooter(text string) string {
	if m.width == 0 {
		return footerStyle.Render(text)
	}
	flat := strings.ReplaceAll(text, "\n", " ")
	return footerStyle.Render(padRight(flat, m.width-footerStyle.GetHorizontalFrameSize()))
}

func (m Model) renderStatus(text string) string {
	if m.width == 0 {
		return statusBarStyle.Render(text)
	}
	flat := strings.ReplaceAll(text, "\n", " ")
	return statusBarStyle.Render(padRight(flat, m.width-statusBarStyle.GetHorizontalFrameSize()))
}

func (m Model) placeWithFooter(body, statusLine, footer string) string {
	if m.height == 0 {
		return body + "\n\n" + statusLine + "\n" + footer
	}
	contentHeight := m.height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}
	if lipgloss.Height(body) >= contentHeight {
		return body + "\n" + statusLine + "\n" + footer
	}
	main := lipgloss.Place(m.width, contentHeight, lipgloss.Left, lipgloss.Top, body)
	return main + "\n" + statusLine + "\n" + footer
}
