package console

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	diagnostic lipgloss.Style
}

func newStyles(out, errOut *lipgloss.Renderer) styles {
	return styles{
		title:      out.NewStyle().Bold(true),
		diagnostic: errOut.NewStyle().Bold(true),
	}
}
