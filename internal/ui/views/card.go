package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"userdir/internal/directory"
	"userdir/internal/domain"
)

// cardGap is the horizontal space between grid columns
const cardGap = 1

// CardRenderer handles rendering of user cards
type CardRenderer struct {
	styles *Styles
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles) *CardRenderer {
	return &CardRenderer{
		styles: styles,
	}
}

// RenderUser renders one user card with an outer width of width cells
func (r *CardRenderer) RenderUser(user domain.User, width int) string {
	inner := innerWidth(r.styles.Card, width)

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		r.styles.Avatar.Render(directory.Initials(user.Name)),
		" ",
		lipgloss.JoinVertical(lipgloss.Left,
			r.styles.CardTitle.Render(truncate(user.Name, inner-5)),
			r.styles.Handle.Render(truncate("@"+user.Username, inner-5)),
		),
	)

	lines := []string{
		header,
		"",
		r.field("Email", user.Email, inner),
		r.field("Phone", user.Phone, inner),
		r.field("Website", user.Website, inner),
		"",
		r.styles.Label.Render("Company:"),
		r.styles.Value.Render(truncate(user.Company.Name, inner)),
		r.styles.CatchPhrase.Render(truncate(`"`+user.Company.CatchPhrase+`"`, inner)),
	}

	return r.styles.Card.Width(inner + r.styles.Card.GetHorizontalPadding()).Render(strings.Join(lines, "\n"))
}

func (r *CardRenderer) field(label, value string, width int) string {
	prefix := label + ": "
	return r.styles.Label.Render(prefix) + r.styles.Value.Render(truncate(value, width-len(prefix)))
}

// Columns returns how many cards fit side by side in width cells
func Columns(width int) int {
	switch {
	case width >= 120:
		return 3
	case width >= 76:
		return 2
	default:
		return 1
	}
}

// Grid lays out rendered blocks in rows of cols
func Grid(blocks []string, cols int) string {
	if cols < 1 {
		cols = 1
	}

	rows := make([]string, 0, (len(blocks)+cols-1)/cols)
	for start := 0; start < len(blocks); start += cols {
		end := start + cols
		if end > len(blocks) {
			end = len(blocks)
		}

		row := make([]string, 0, 2*(end-start))
		for i, block := range blocks[start:end] {
			if i > 0 {
				row = append(row, strings.Repeat(" ", cardGap))
			}
			row = append(row, block)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

// CardWidth returns the outer width of each card for a grid of cols in width cells
func CardWidth(width, cols int) int {
	if cols < 1 {
		cols = 1
	}
	w := (width - cardGap*(cols-1)) / cols
	if w < 24 {
		w = 24
	}
	return w
}

// innerWidth returns the content width left inside style for an outer width
func innerWidth(style lipgloss.Style, outer int) int {
	w := outer - style.GetHorizontalFrameSize()
	if w < 10 {
		w = 10
	}
	return w
}

// truncate shortens s to at most width cells, marking the cut with an ellipsis
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
