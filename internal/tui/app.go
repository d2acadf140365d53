// Package tui is the terminal front end: a Bubble Tea model over the
// loaded catalog. Filtering is synchronous in Update; the only async
// work is the clipboard write.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"github.com/aryribeiro/gitapp/internal/catalog"
	"github.com/aryribeiro/gitapp/internal/config"
)

const appName = "GitApp"

// Model holds all UI state. The entries slice is owned by the loader
// and read-only here; filtered is recomputed from it on every filter
// change.
type Model struct {
	cfg     config.Config
	logger  *zap.Logger
	entries []catalog.Entry
	dist    catalog.Distribution
	tiers   []catalog.Tier

	tierIdx  int
	search   textinput.Model
	filtered []catalog.Entry

	cursor   int
	topIndex int

	selected    catalog.Entry
	hasSelected bool

	renderer *glamour.TermRenderer

	keys       keyMap
	searchKeys searchKeyMap
	status     string
	width      int
	height     int
}

// New builds the model for an already loaded catalog. Load errors are
// fatal before the program starts, so entries is always complete here.
func New(cfg config.Config, logger *zap.Logger, entries []catalog.Entry) Model {
	ti := textinput.New()
	ti.Placeholder = "Ex: commit, branch, merge..."
	ti.CharLimit = 64
	ti.Width = 40
	ti.Prompt = "Buscar: "
	ti.PromptStyle = searchPromptStyle

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(cfg.UI.Wrap),
	)
	if err != nil {
		// Plain markdown text is still readable without the renderer.
		renderer = nil
	}

	m := Model{
		cfg:      cfg,
		logger:   logger,
		entries:  entries,
		dist:     catalog.Distribute(entries),
		tiers:    catalog.Tiers(catalog.MaxRank(entries)),
		search:   ti,
		renderer: renderer,
		keys:     newKeyMap(),
		searchKeys: searchKeyMap{
			keyMap: newKeyMap(),
		},
	}
	m.applyFilter()
	m.status = fmt.Sprintf("%d comandos Git disponíveis. Use os filtros para encontrar comandos.", len(entries))
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}
