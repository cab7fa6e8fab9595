package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent(debounce time.Duration, endpoint string) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	noteStyle := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("userdir Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Pages"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("Tab"), descStyle.Render("Next page (Directory, Services, Pricing)")))
	help.WriteString(fmt.Sprintf("  %s    %s\n", keyStyle.Render("Shift+Tab"), descStyle.Render("Previous page")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("↑/↓"), descStyle.Render("Scroll up/down")))
	help.WriteString(fmt.Sprintf("  %s    %s\n", keyStyle.Render("PgUp/PgDn"), descStyle.Render("Page up/down")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Search"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("type"), descStyle.Render("Search users by name, username, or email")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("Esc"), descStyle.Render("Clear search")))
	help.WriteString(noteStyle.Render(fmt.Sprintf("  Results update after %s without typing. Matching is case-insensitive.", debounce)))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Directory"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s       %s\n", keyStyle.Render("Ctrl+R"), descStyle.Render("Reload the directory from scratch")))
	help.WriteString(noteStyle.Render("  Users are fetched once from " + endpoint))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s           %s\n", keyStyle.Render("F1"), descStyle.Render("Show this help")))
	help.WriteString(fmt.Sprintf("  %s       %s", keyStyle.Render("Ctrl+C"), descStyle.Render("Quit")))

	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps() *HelpOps {
	return &HelpOps{}
}

// SetProgram sets the program reference for terminal management
func (h *HelpOps) SetProgram(p *tea.Program) {
	h.program = p
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
