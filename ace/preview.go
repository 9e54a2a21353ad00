package ace

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	windowStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3B82F6")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3B82F6")).
			Bold(true)

	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D1D5DB"))

	dockStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("#6B7280")).
			Padding(0, 1)

	iconStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B")).
			Padding(0, 1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

// RenderPreview draws a rough terminal rendition of the scene. It is a
// development aid for the CLI, not the shell's real renderer.
func RenderPreview(roots []*Widget) string {
	parts := make([]string, 0, len(roots))
	for _, root := range roots {
		parts = append(parts, previewWidget(root))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func previewWidget(w *Widget) string {
	switch w.Kind {
	case KindWindow:
		inner := previewChildren(w)
		title := titleStyle.Render(w.Text)
		if inner == "" {
			return windowStyle.Render(title)
		}
		return windowStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, inner))
	case KindButton:
		return buttonStyle.Render(w.Text)
	case KindLabel:
		return labelStyle.Render(w.Text)
	case KindIconGrid:
		return previewRow(w)
	case KindDock:
		row := previewRow(w)
		if row == "" {
			row = mutedStyle.Render("(empty dock)")
		}
		return dockStyle.Render(row)
	case KindAppIcon:
		return iconStyle.Render("[" + w.Text + "]")
	case KindBackground:
		return mutedStyle.Render("background: " + w.Path)
	default:
		return ""
	}
}

func previewChildren(w *Widget) string {
	parts := make([]string, 0, len(w.Children))
	for _, child := range w.Children {
		parts = append(parts, previewWidget(child))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func previewRow(w *Widget) string {
	parts := make([]string, 0, len(w.Children))
	for _, child := range w.Children {
		parts = append(parts, previewWidget(child))
	}
	if len(parts) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
