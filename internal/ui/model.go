package ui

import (
	"context"
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"userdir/internal/config"
	"userdir/internal/directory"
	"userdir/internal/ui/views"
)

// searchPlaceholder is shown in the empty search box
const searchPlaceholder = "Search users by name, username, or email..."

// Model represents the UI state
type Model struct {
	config *config.Config
	source directory.Source
	dir    *directory.Directory // state of the current mount

	// Mount bookkeeping; results for an older generation are discarded
	generation int
	cancelLoad context.CancelFunc
	quitting   bool

	debouncer *Debouncer
	search    textinput.Model
	spinner   spinner.Model
	viewport  viewport.Model
	help      help.Model
	keys      keyMap

	width  int
	height int
	page   views.Page

	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	helpOps      *HelpOps
}

// NewModel creates a new UI model reading users from source
func NewModel(cfg *config.Config, source directory.Source) *Model {
	search := textinput.New()
	search.Placeholder = searchPlaceholder
	search.Prompt = "🔍 "
	search.Focus()

	m := &Model{
		config:       cfg,
		source:       source,
		dir:          directory.New(),
		debouncer:    NewDebouncer(cfg.Directory.Debounce.Duration),
		search:       search,
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		viewport:     viewport.New(80, 10),
		help:         help.New(),
		keys:         newKeyMap(),
		page:         views.ParsePage(cfg.UISettings.StartPage),
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(),
		helpOps:      NewHelpOps(),
	}
	m.viewport.KeyMap = viewport.KeyMap{} // scrolling is driven by m.keys

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.helpOps.SetProgram(p)
}

// Directory returns the state of the current mount
func (m *Model) Directory() *directory.Directory {
	return m.dir
}

// Init mounts the directory and starts the loading indicator
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.mount())
}

// mount starts a fresh directory and issues its single fetch
func (m *Model) mount() tea.Cmd {
	if m.cancelLoad != nil {
		m.cancelLoad()
	}
	m.debouncer.Cancel()

	m.generation++
	m.dir = directory.New()
	m.dir.SetQuery(m.search.Value())
	m.dir.ApplyQuery(m.search.Value())

	ctx, cancel := context.WithCancel(context.Background())
	m.cancelLoad = cancel

	return loadUsers(ctx, m.source, m.generation)
}

// loadUsers returns a command performing the fetch for one mount
func loadUsers(ctx context.Context, source directory.Source, generation int) tea.Cmd {
	return func() tea.Msg {
		log.Printf("Fetching users (mount %d)", generation)
		users, err := source.FetchUsers(ctx)
		if err != nil {
			return usersFailedMsg{generation: generation, err: err}
		}
		return usersLoadedMsg{generation: generation, users: users}
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.refreshContent()
		return m, nil

	case usersLoadedMsg:
		if msg.generation != m.generation || m.quitting {
			log.Printf("Discarding users for stale mount %d", msg.generation)
			return m, nil
		}
		if err := m.dir.Loaded(msg.users); err != nil {
			log.Printf("Ignoring users for mount %d: %v", msg.generation, err)
			return m, nil
		}
		log.Printf("Loaded %d users (mount %d)", len(msg.users), msg.generation)
		m.viewport.GotoTop()
		m.refreshContent()
		return m, nil

	case usersFailedMsg:
		if msg.generation != m.generation || m.quitting {
			log.Printf("Discarding failure for stale mount %d: %v", msg.generation, msg.err)
			return m, nil
		}
		log.Printf("Error fetching users: %v", msg.err)
		m.dir.Failed()
		m.refreshContent()
		return m, nil

	case searchTickMsg:
		if !m.debouncer.Accept(msg) {
			return m, nil
		}
		m.dir.ApplyQuery(msg.query)
		m.viewport.GotoTop()
		m.refreshContent()
		return m, nil

	case spinner.TickMsg:
		// Stop ticking once the directory has settled
		if m.dir.Status() != directory.StatusLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// handleKey routes key presses to bindings, falling back to the search box
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		if m.cancelLoad != nil {
			m.cancelLoad()
		}
		m.debouncer.Cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Remount):
		log.Printf("Remounting directory")
		m.search.Reset()
		m.viewport.GotoTop()
		cmd := m.mount()
		m.refreshContent()
		return m, tea.Batch(cmd, m.spinner.Tick)

	case key.Matches(msg, m.keys.NextPage):
		m.setPage(m.page.Next())
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		m.setPage(m.page.Prev())
		return m, nil

	case key.Matches(msg, m.keys.ScrollUp):
		m.viewport.LineUp(1)
		return m, nil

	case key.Matches(msg, m.keys.ScrollDown):
		m.viewport.LineDown(1)
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.ViewUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.ViewDown()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		return m, m.showHelpPager()

	case key.Matches(msg, m.keys.ClearSearch):
		if m.page != views.PageDirectory || m.search.Value() == "" {
			return m, nil
		}
		m.search.Reset()
		return m, m.setQuery(m.search.Value())
	}

	if m.page != views.PageDirectory {
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if after := m.search.Value(); after != before {
		return m, tea.Batch(cmd, m.setQuery(after))
	}
	return m, cmd
}

// setQuery records the raw input and schedules a debounced recomputation
func (m *Model) setQuery(text string) tea.Cmd {
	m.dir.SetQuery(text)
	return m.debouncer.Schedule(text)
}

func (m *Model) setPage(page views.Page) {
	m.page = page
	if page == views.PageDirectory {
		m.search.Focus()
	} else {
		m.search.Blur()
	}
	m.viewport.GotoTop()
	m.refreshContent()
}

// showHelpPager returns a command that shows help using ov pager
func (m *Model) showHelpPager() tea.Cmd {
	content := m.helpRenderer.RenderHelpContent(m.debouncer.Delay(), m.config.Directory.Endpoint)
	return func() tea.Msg {
		return helpPagerMsg{err: m.helpOps.ShowHelpInPager(content)}
	}
}

// viewState collects everything the renderer needs
func (m *Model) viewState() views.ViewState {
	state := views.ViewState{
		Width:        m.width,
		Height:       m.height,
		Page:         m.page,
		SearchInput:  m.search.View(),
		AppliedQuery: m.dir.AppliedQuery(),
		Status:       m.dir.Status(),
		Message:      m.dir.Message(),
		Spinner:      m.spinner.View(),
		Visible:      m.dir.VisibleCount(),
		Total:        m.dir.Total(),
		HelpView:     m.help.View(m.keys),
	}
	if !m.viewport.AtTop() || !m.viewport.AtBottom() {
		state.ScrollInfo = fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100)
	}
	return state
}

// refreshContent re-renders the scrollable body and resizes the viewport
func (m *Model) refreshContent() {
	state := m.viewState()
	m.viewport.Width = m.renderer.ContentWidth(m.width)
	m.viewport.Height = m.renderer.BodyHeight(state)

	body := m.renderer.PageContent(m.page, m.dir.VisibleUsers(), m.viewport.Width)
	m.viewport.SetContent(body)
}

// View renders the UI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	state := m.viewState()
	state.Body = lipgloss.NewStyle().MaxWidth(m.viewport.Width).Render(m.viewport.View())
	return m.renderer.Render(state)
}
