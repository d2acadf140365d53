package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	subtitleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusBarStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 2)
	footerStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Padding(0, 2)
	listBoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	cursorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	chipStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	activeChipStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	searchPromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	statsStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("108"))
)
