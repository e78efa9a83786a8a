package tui

import (
	"strings"
)

const uiDivider = "──────────────────────────────────────────────────────"

func (m browserModel) View() string {
	var b strings.Builder

	header := "Star Wars API"
	if m.loading {
		header += "  " + m.spinner.View()
	}
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	for t := 0; t < tabCount; t++ {
		style := tabStyle
		if t == m.tab {
			style = activeTabStyle
		}
		b.WriteString(style.Render(tabTitles[t]))
		b.WriteString("   ")
	}
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.rows[m.tab]) == 0:
		b.WriteString("No entries\n")
	default:
		kind := tabKinds[m.tab]
		for i, r := range m.rows[m.tab] {
			line := "  "
			if m.isFavorite(kind, r.id) {
				line += "★ "
			} else {
				line += "  "
			}
			line += r.label
			if i == m.idx[m.tab] {
				line = selectedStyle.Render(">" + line[1:])
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("←/→ tab  ↑/↓ move  f favorite  c copy  r reload  q quit"))

	return appStyle.Render(b.String())
}
