package tui

import (
	"strings"

	"roboshep/content"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type page int

const (
	pageHome page = iota
	pageAbout
	pageSkills
	pageProjects
	pageCount
)

func (p page) String() string {
	switch p {
	case pageAbout:
		return "About"
	case pageSkills:
		return "Skills"
	case pageProjects:
		return "Projects"
	default:
		return "Home"
	}
}

func renderTabs(active page) string {
	tabs := make([]string, 0, pageCount)
	for p := pageHome; p < pageCount; p++ {
		style := tabStyle
		if p == active {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(p.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderMarkdown renders md for a terminal of the given width. A renderer
// failure falls back to the raw text.
func renderMarkdown(md string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(width-4, 20)),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func homePage(c *content.Content) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Hi, I'm " + c.Name))
	b.WriteByte('\n')
	b.WriteString(subtitleStyle.Render("a.k.a. " + c.Alias))
	b.WriteString("\n\n")
	b.WriteString(c.Intro)
	b.WriteString("\n\n")
	for _, l := range c.Links {
		b.WriteString(mutedStyle.Render(l.Label+": ") + l.URL + "\n")
	}
	return b.String()
}

func skillsPage(c *content.Content, width int) string {
	rows := make([]string, 0)
	var row []string
	rowWidth := 0
	for _, s := range c.Skills {
		cell := skillStyle.Render(s)
		w := lipgloss.Width(cell)
		if rowWidth+w > width && len(row) > 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		row = append(row, cell)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return titleStyle.Render("Skills") + "\n" + lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func projectsPage(c *content.Content) string {
	cards := make([]string, 0, len(c.Projects))
	for _, p := range c.Projects {
		cards = append(cards, cardStyle.Render(subtitleStyle.Render(p.Title)+"\n"+p.Description))
	}
	return titleStyle.Render("Projects") + "\n" + lipgloss.JoinVertical(lipgloss.Left, cards...)
}
