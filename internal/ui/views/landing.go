package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"userdir/internal/content"
)

// LandingRenderer renders the static marketing sections
type LandingRenderer struct {
	styles *Styles
}

// NewLandingRenderer creates a new landing renderer
func NewLandingRenderer(styles *Styles) *LandingRenderer {
	return &LandingRenderer{
		styles: styles,
	}
}

// RenderHero renders the headline, tagline and calls to action
func (r *LandingRenderer) RenderHero(hero content.Hero, width int) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render(hero.Headline))
	b.WriteString("\n")
	b.WriteString(r.styles.Tagline.Width(width).Render(hero.Tagline))
	b.WriteString("\n")

	actions := make([]string, 0, len(hero.Actions)*2)
	for i, action := range hero.Actions {
		if i > 0 {
			actions = append(actions, "  ")
		}
		style := r.styles.Action
		if i > 0 {
			style = r.styles.ActionAlt
		}
		actions = append(actions, style.Render(action))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, actions...))
	return b.String()
}

// RenderServices renders the services section for width cells
func (r *LandingRenderer) RenderServices(services []content.Service, width int) string {
	cols := Columns(width)
	cardWidth := CardWidth(width, cols)
	inner := innerWidth(r.styles.Card, cardWidth)

	cards := make([]string, 0, len(services))
	for _, svc := range services {
		body := r.styles.CardTitle.Render(svc.Title) + "\n\n" +
			r.styles.Value.Width(inner).Render(svc.Description)
		cards = append(cards, r.styles.Card.Width(inner+r.styles.Card.GetHorizontalPadding()).Render(body))
	}

	return r.section(content.ServicesTitle, content.ServicesIntro, width) + "\n\n" + Grid(cards, cols)
}

// RenderPricing renders the pricing plans for width cells
func (r *LandingRenderer) RenderPricing(plans []content.Plan, width int) string {
	cols := Columns(width)
	cardWidth := CardWidth(width, cols)

	cards := make([]string, 0, len(plans))
	for _, plan := range plans {
		cards = append(cards, r.renderPlan(plan, cardWidth))
	}

	return r.section(content.PricingTitle, content.PricingIntro, width) + "\n\n" + Grid(cards, cols)
}

func (r *LandingRenderer) renderPlan(plan content.Plan, width int) string {
	style := r.styles.Card
	if plan.Popular {
		style = r.styles.PopularCard
	}
	inner := innerWidth(style, width)

	title := r.styles.CardTitle.Render(plan.Name)
	if plan.Popular {
		title += " " + r.styles.Badge.Render("Popular")
	}

	lines := []string{
		title,
		r.styles.Price.Render(plan.Price) + r.styles.Dim.Render("/month"),
		r.styles.Value.Width(inner).Render(plan.Description),
		"",
	}
	for _, feature := range plan.Features {
		lines = append(lines, r.styles.Check.Render("✓")+" "+truncate(feature, inner-2))
	}
	lines = append(lines, "", r.styles.Action.Render(plan.CTA))

	return style.Width(inner + style.GetHorizontalPadding()).Render(strings.Join(lines, "\n"))
}

func (r *LandingRenderer) section(title, intro string, width int) string {
	return r.styles.SectionTitle.Render(title) + "\n" + r.styles.Dim.Width(width).Render(intro)
}
