package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Tagline      lipgloss.Style
	Action       lipgloss.Style
	ActionAlt    lipgloss.Style
	Tab          lipgloss.Style
	ActiveTab    lipgloss.Style
	SectionTitle lipgloss.Style
	Dim          lipgloss.Style
	Status       lipgloss.Style
	Filter       lipgloss.Style
	Help         lipgloss.Style
	Main         lipgloss.Style
	Error        lipgloss.Style
	Spinner      lipgloss.Style
	Card         lipgloss.Style
	PopularCard  lipgloss.Style
	Avatar       lipgloss.Style
	CardTitle    lipgloss.Style
	Handle       lipgloss.Style
	Label        lipgloss.Style
	Value        lipgloss.Style
	CatchPhrase  lipgloss.Style
	Price        lipgloss.Style
	Badge        lipgloss.Style
	Check        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Tagline:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Action:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("99")).Padding(0, 1),
		ActionAlt: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Border(lipgloss.NormalBorder(), false, true).Padding(0, 1),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1),
		SectionTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		Dim:    lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:   lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Spinner: lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		PopularCard: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Avatar: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1),
		CardTitle:   lipgloss.NewStyle().Bold(true),
		Handle:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Label:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		Value:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		CatchPhrase: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245")),
		Price:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")), // green
		Badge: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("99")).
			Padding(0, 1),
		Check: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
	}
}
