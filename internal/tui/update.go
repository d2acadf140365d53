package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/aryribeiro/gitapp/internal/catalog"
)

type copyDoneMsg struct {
	text string
	err  error
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.search.Width = clampInt(m.width-20, 20, 48)
		m.ensureCursorInWindow()
		return m, nil
	case copyDoneMsg:
		if msg.err != nil {
			m.logger.Warn("clipboard write failed", zap.Error(msg.err))
			m.status = "Não foi possível copiar para a área de transferência."
			return m, nil
		}
		m.status = fmt.Sprintf("Copiado: %s", msg.text)
		return m, nil
	case tea.KeyMsg:
		if m.search.Focused() {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "enter":
		m.search.Blur()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.applyFilter()
	}
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "/":
		cmd := m.search.Focus()
		return m, cmd
	case "left", "h":
		m.setTier(m.tierIdx - 1)
		return m, nil
	case "right", "l", "tab":
		m.setTier(m.tierIdx + 1)
		return m, nil
	case "up", "k":
		m.moveCursor(-1)
		return m, nil
	case "down", "j":
		m.moveCursor(1)
		return m, nil
	case "enter":
		if len(m.filtered) == 0 {
			return m, nil
		}
		m.selected = m.filtered[m.cursor]
		m.hasSelected = true
		m.status = fmt.Sprintf("Selecionado: %s", m.selected.Name)
		return m, nil
	case "esc":
		m.hasSelected = false
		return m, nil
	case "y":
		if !m.hasSelected {
			m.status = "Selecione um comando antes de copiar."
			return m, nil
		}
		return m, copyCmd(copyText(m.selected))
	}
	return m, nil
}

// setTier switches the active bucket, wrapping at both ends so tab can
// cycle through all of them.
func (m *Model) setTier(idx int) {
	n := len(m.tiers)
	m.tierIdx = ((idx % n) + n) % n
	m.applyFilter()
}

func (m *Model) moveCursor(delta int) {
	if len(m.filtered) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor > len(m.filtered)-1 {
		m.cursor = len(m.filtered) - 1
	}
	m.ensureCursorInWindow()
}

// applyFilter recomputes the reduced set from the full catalog. The
// selection survives only while its entry is still visible.
func (m *Model) applyFilter() {
	tier := m.tiers[m.tierIdx]
	m.filtered = catalog.Filter(m.entries, tier.Min, tier.Max, m.search.Value())

	if m.cursor > len(m.filtered)-1 {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureCursorInWindow()

	if m.hasSelected && !containsEntry(m.filtered, m.selected) {
		m.hasSelected = false
	}

	if len(m.filtered) == 0 {
		m.status = noMatchesStatus(m.entries, m.search.Value())
		return
	}
	m.status = fmt.Sprintf("%d de %d comandos.", len(m.filtered), len(m.entries))
}

func noMatchesStatus(entries []catalog.Entry, term string) string {
	if suggestion, ok := catalog.Suggest(entries, term); ok {
		return fmt.Sprintf("Nenhum comando encontrado — tente '%s'.", suggestion)
	}
	return "Nenhum comando encontrado com os filtros aplicados."
}

func (m *Model) ensureCursorInWindow() {
	visible := m.visibleRows()
	if visible <= 0 {
		return
	}
	if m.cursor < m.topIndex {
		m.topIndex = m.cursor
	} else if m.cursor >= m.topIndex+visible {
		m.topIndex = m.cursor - visible + 1
	}
	maxTop := len(m.filtered) - visible
	if maxTop < 0 {
		maxTop = 0
	}
	if m.topIndex > maxTop {
		m.topIndex = maxTop
	}
	if m.topIndex < 0 {
		m.topIndex = 0
	}
}

func containsEntry(entries []catalog.Entry, target catalog.Entry) bool {
	for _, e := range entries {
		if e.Rank == target.Rank && e.Name == target.Name {
			return true
		}
	}
	return false
}

// copyText picks what "copy" means for an entry: its first usage
// example, or the bare command when it has none.
func copyText(e catalog.Entry) string {
	if len(e.Usage) > 0 {
		return e.Usage[0]
	}
	return e.Name
}

func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return copyDoneMsg{text: text, err: clipboard.WriteAll(text)}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
