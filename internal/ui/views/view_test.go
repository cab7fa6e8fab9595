package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userdir/internal/directory"
	"userdir/internal/domain"
)

func TestPage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Directory", PageDirectory.String())
	assert.Equal(t, PageServices, PageDirectory.Next())
	assert.Equal(t, PageDirectory, PagePricing.Next())
	assert.Equal(t, PagePricing, PageDirectory.Prev())
	assert.Equal(t, "Unknown", Page(9).String())

	assert.Equal(t, PagePricing, ParsePage("pricing"))
	assert.Equal(t, PageServices, ParsePage("Services"))
	assert.Equal(t, PageDirectory, ParsePage("contact"))
}

func TestColumns(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Columns(60))
	assert.Equal(t, 2, Columns(80))
	assert.Equal(t, 3, Columns(150))
}

func TestGrid(t *testing.T) {
	t.Parallel()

	out := Grid([]string{"a", "b", "c", "d", "e"}, 2)
	assert.Equal(t, "a b\nc d\ne", out)
	assert.Empty(t, Grid(nil, 3))
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello", truncate("hello", 5))
	assert.Equal(t, "hel…", truncate("hello", 4))
	assert.Empty(t, truncate("hello", 0))
}

func TestCardRenderer_RenderUser(t *testing.T) {
	t.Parallel()

	r := NewCardRenderer(NewStyles())
	user := domain.User{
		Name:     "Leanne Graham",
		Username: "Bret",
		Email:    "Sincere@april.biz",
		Phone:    "1-770-736-8031 x56442",
		Website:  "hildegard.org",
		Company:  domain.Company{Name: "Romaguera-Crona", CatchPhrase: "Multi-layered client-server neural-net"},
	}

	card := r.RenderUser(user, 60)
	assert.Equal(t, 60, lipgloss.Width(card))
	for _, want := range []string{
		"LG", "Leanne Graham", "@Bret",
		"Email: Sincere@april.biz",
		"Phone: 1-770-736-8031 x56442",
		"Website: hildegard.org",
		"Company:", "Romaguera-Crona",
		`"Multi-layered client-server neural-net"`,
	} {
		assert.Contains(t, card, want)
	}
}

func TestRenderer_DirectoryStates(t *testing.T) {
	t.Parallel()

	r := NewRenderer()
	base := ViewState{Width: 120, Height: 40, Page: PageDirectory, SearchInput: "> search"}

	t.Run("loading", func(t *testing.T) {
		t.Parallel()
		state := base
		state.Status = directory.StatusLoading
		state.Spinner = "*"
		out := r.Render(state)
		assert.Contains(t, out, "Fetching users...")
		assert.Contains(t, out, "Loading users...")
	})

	t.Run("failed", func(t *testing.T) {
		t.Parallel()
		state := base
		state.Status = directory.StatusFailed
		state.Message = directory.LoadFailureMessage
		assert.Contains(t, r.Render(state), directory.LoadFailureMessage)
	})

	t.Run("empty result", func(t *testing.T) {
		t.Parallel()
		state := base
		state.Status = directory.StatusLoaded
		state.Total = 10
		state.AppliedQuery = "zzz-no-match"
		out := r.Render(state)
		assert.Contains(t, out, directory.EmptyResultMessage)
		assert.Contains(t, out, "Showing 0 of 10 users")
		assert.Contains(t, out, "[Filter: zzz-no-match]")
	})

	t.Run("loaded", func(t *testing.T) {
		t.Parallel()
		state := base
		state.Status = directory.StatusLoaded
		state.Visible = 1
		state.Total = 1
		state.Body = "CARDS"
		out := r.Render(state)
		assert.Contains(t, out, "CARDS")
		assert.NotContains(t, out, "[Filter:")
	})
}

func TestRenderer_FillsTerminalHeight(t *testing.T) {
	t.Parallel()

	r := NewRenderer()
	state := ViewState{Width: 100, Height: 40, Page: PageServices, HelpView: "tab next page"}
	state.Body = strings.Repeat("line\n", r.BodyHeight(state)-1) + "line"

	out := r.Render(state)
	assert.Equal(t, 40, lipgloss.Height(out))
	assert.True(t, strings.HasSuffix(strings.TrimRight(out, " \n"), "tab next page"))
}

func TestRenderer_PageContent(t *testing.T) {
	t.Parallel()

	r := NewRenderer()

	services := r.PageContent(PageServices, nil, 100)
	assert.Contains(t, services, "Our Services")
	assert.Contains(t, services, "Enterprise Security")

	pricing := r.PageContent(PagePricing, nil, 130)
	for _, want := range []string{"Pricing Plans", "Basic", "$29", "/month", "Popular", "Contact Sales", "Unlimited users"} {
		assert.Contains(t, pricing, want)
	}

	users := r.PageContent(PageDirectory, []domain.User{{Name: "Ervin Howell", Username: "Antonette"}}, 100)
	require.Contains(t, users, "Ervin Howell")
	assert.Contains(t, users, "EH")
}
