package browse

import "github.com/charmbracelet/lipgloss"

// MinLeftWidth is the minimum character width for the list pane.
const MinLeftWidth = 24

var (
	accent = lipgloss.AdaptiveColor{Light: "4", Dark: "12"}
	dim    = lipgloss.AdaptiveColor{Light: "240", Dark: "240"}
	red    = lipgloss.AdaptiveColor{Light: "1", Dark: "9"}

	selectedStyle = lipgloss.NewStyle().Foreground(accent).Bold(true)
	statusStyle   = lipgloss.NewStyle().Foreground(dim)
	errorStyle    = lipgloss.NewStyle().Foreground(red)
)

// focusedBorder returns a rounded border in the accent color.
func focusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent)
}

// unfocusedBorder returns a rounded border in a dim color.
func unfocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(dim)
}

// PaneWidths splits totalWidth into list and detail panes.
// The list gets a third, never less than MinLeftWidth.
func PaneWidths(totalWidth int) (left, right int) {
	if totalWidth <= 0 {
		return 0, 0
	}
	left = max(totalWidth/3, MinLeftWidth)
	right = max(totalWidth-left, 0)
	return left, right
}
