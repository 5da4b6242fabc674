package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")
	Blue      = lipgloss.Color("#60A5FA")

	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Element tree
	ElementRoot = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	ElementContainer = lipgloss.NewStyle().
				Foreground(Secondary)

	ElementLeaf = lipgloss.NewStyle()

	ElementPattern = lipgloss.NewStyle().
			Foreground(Blue)

	ElementSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	TreeBranch    = lipgloss.NewStyle().Foreground(Muted)
	TreeContainer = "▼ "
	TreeLeaf      = "• "

	// Property panel
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(0, 1)

	PropertyPath = lipgloss.NewStyle().
			Foreground(Secondary)

	PropertyValue = lipgloss.NewStyle()

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	StatusDirty = lipgloss.NewStyle().
			Background(Warning).
			Foreground(Black).
			Padding(0, 1)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// ElementStyle returns the tree style for an element at depth with the
// given number of children
func ElementStyle(depth, children int) lipgloss.Style {
	switch {
	case depth == 0:
		return ElementRoot
	case children > 0:
		return ElementContainer
	default:
		return ElementLeaf
	}
}
