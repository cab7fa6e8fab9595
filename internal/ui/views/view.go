package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"userdir/internal/content"
	"userdir/internal/directory"
	"userdir/internal/domain"
)

// Page identifies one screen of the application
type Page int

const (
	PageDirectory Page = iota
	PageServices
	PagePricing
	pageCount
)

var pageNames = [...]string{"Directory", "Services", "Pricing"}

func (p Page) String() string {
	if p < 0 || p >= pageCount {
		return "Unknown"
	}
	return pageNames[p]
}

// Next returns the page after p, wrapping around
func (p Page) Next() Page {
	return (p + 1) % pageCount
}

// Prev returns the page before p, wrapping around
func (p Page) Prev() Page {
	return (p + pageCount - 1) % pageCount
}

// ParsePage maps a config name to a page, defaulting to the directory
func ParsePage(name string) Page {
	for i, pageName := range pageNames {
		if strings.EqualFold(name, pageName) {
			return Page(i)
		}
	}
	return PageDirectory
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width        int
	Height       int
	Page         Page
	SearchInput  string // rendered search box
	AppliedQuery string
	Status       directory.Status
	Message      string
	Spinner      string
	Visible      int
	Total        int
	Body         string // scrollable content, already clipped to the viewport
	ScrollInfo   string
	HelpView     string
}

// Renderer handles all view rendering
type Renderer struct {
	styles  *Styles
	cards   *CardRenderer
	landing *LandingRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:  styles,
		cards:   NewCardRenderer(styles),
		landing: NewLandingRenderer(styles),
	}
}

// ContentWidth returns the usable width inside the main container
func (r *Renderer) ContentWidth(termWidth int) int {
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	w := termWidth - r.styles.Main.GetHorizontalFrameSize()
	if w < 20 {
		w = 20
	}
	return w
}

// PageContent renders the scrollable body of a page
func (r *Renderer) PageContent(page Page, users []domain.User, width int) string {
	switch page {
	case PageServices:
		return r.landing.RenderServices(content.Services, width)
	case PagePricing:
		return r.landing.RenderPricing(content.Plans, width)
	default:
		return r.UserCards(users, width)
	}
}

// UserCards renders the grid of user cards for width cells
func (r *Renderer) UserCards(users []domain.User, width int) string {
	cols := Columns(width)
	cardWidth := CardWidth(width, cols)

	cards := make([]string, 0, len(users))
	for _, user := range users {
		cards = append(cards, r.cards.RenderUser(user, cardWidth))
	}
	return Grid(cards, cols)
}

// BodyHeight returns the number of lines left for the scrollable body
func (r *Renderer) BodyHeight(state ViewState) int {
	header, toolbar, footer := r.frame(state)

	used := lipgloss.Height(header) + 1 + lipgloss.Height(footer) + 1
	if toolbar != "" {
		used += lipgloss.Height(toolbar) + 1
	}

	height := state.Height
	if height <= 0 {
		height = 24 // Default terminal height
	}
	available := height - r.styles.Main.GetVerticalFrameSize() - used
	if available < 3 {
		available = 3
	}
	return available
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	header, toolbar, footer := r.frame(state)

	content := &strings.Builder{}
	content.WriteString(header)
	content.WriteString("\n\n")
	if toolbar != "" {
		content.WriteString(toolbar)
		content.WriteString("\n\n")
	}
	content.WriteString(r.mainContent(state))

	// Push the footer to the bottom of the screen
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - r.styles.Main.GetVerticalFrameSize()
	if state.Height <= 0 {
		availableLines = 22
	}
	content.WriteString("\n")
	if paddingNeeded := availableLines - currentLines - lipgloss.Height(footer); paddingNeeded > 0 {
		content.WriteString(strings.Repeat("\n", paddingNeeded))
	}
	content.WriteString(footer)

	return r.styles.Main.Render(content.String())
}

// frame renders the fixed parts around the body
func (r *Renderer) frame(state ViewState) (header, toolbar, footer string) {
	width := r.ContentWidth(state.Width)

	header = r.landing.RenderHero(content.LandingHero, width) + "\n\n" + r.titleLine(state, width)

	if state.Page == PageDirectory {
		toolbar = strings.Join([]string{
			r.styles.SectionTitle.Render(content.DirectoryTitle),
			r.styles.Dim.Width(width).Render(content.DirectoryIntro),
			"",
			state.SearchInput,
			r.statusLine(state),
		}, "\n")
	}

	footer = r.styles.Help.Render(state.HelpView)
	return header, toolbar, footer
}

// titleLine renders the page tabs with right-aligned indicators
func (r *Renderer) titleLine(state ViewState, width int) string {
	tabs := make([]string, 0, int(pageCount))
	for p := PageDirectory; p < pageCount; p++ {
		style := r.styles.Tab
		if p == state.Page {
			style = r.styles.ActiveTab
		}
		tabs = append(tabs, style.Render(p.String()))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	right := ""
	if state.Page == PageDirectory && strings.TrimSpace(state.AppliedQuery) != "" {
		right = r.styles.Filter.Render(fmt.Sprintf("[Filter: %s]", state.AppliedQuery))
	}
	if state.ScrollInfo != "" {
		if right != "" {
			right += "  "
		}
		right += r.styles.Dim.Render(state.ScrollInfo)
	}
	if right == "" {
		return left
	}

	paddingWidth := width - lipgloss.Width(left) - lipgloss.Width(right)
	if paddingWidth < 2 {
		paddingWidth = 2
	}
	return left + strings.Repeat(" ", paddingWidth) + right
}

func (r *Renderer) statusLine(state ViewState) string {
	switch state.Status {
	case directory.StatusLoading:
		return r.styles.Status.Render("Loading users...")
	case directory.StatusFailed:
		return r.styles.Status.Render("No users loaded")
	default:
		return r.styles.Status.Render(fmt.Sprintf("Showing %d of %d users", state.Visible, state.Total))
	}
}

// mainContent picks between the loading indicator, error, empty state and body
func (r *Renderer) mainContent(state ViewState) string {
	if state.Page != PageDirectory {
		return state.Body
	}

	switch {
	case state.Status == directory.StatusLoading:
		return r.styles.Spinner.Render(state.Spinner) + " " + r.styles.Dim.Render("Fetching users...")
	case state.Status == directory.StatusFailed:
		return r.styles.Error.Render(state.Message)
	case state.Visible == 0:
		return r.styles.Dim.Render(directory.EmptyResultMessage)
	default:
		return state.Body
	}
}
