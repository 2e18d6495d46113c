package components

import "github.com/charmbracelet/lipgloss"

// Color palette for the UI with semantic naming
const (
	FgPrimary = lipgloss.Color("#7D56F4") // Purple - focus, active input
	FgMuted   = lipgloss.Color("7")       // Light gray - secondary text
	FgBorder  = lipgloss.Color("8")       // Gray - borders and help text

	BgSelection = lipgloss.Color("235") // Dark gray - highlighted background
	BgMatch     = lipgloss.Color("58")  // Olive - search match background
)

// Level colors, from most to least severe
var (
	LevelErrorColor = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
	LevelWarnColor  = lipgloss.AdaptiveColor{Light: "#d97706", Dark: "#fbbf24"}
	LevelInfoColor  = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34d399"}
	LevelDebugColor = lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"}
	LevelTraceColor = lipgloss.AdaptiveColor{Light: "#737373", Dark: "#a3a3a3"}
)

// SeparatorColor is the adaptive color for column separators
var SeparatorColor = lipgloss.AdaptiveColor{Light: "#737373", Dark: "#a3a3a3"}

// CategoryColorPalette provides distinct colors for category names
var CategoryColorPalette = []lipgloss.AdaptiveColor{
	{Light: "#0891b2", Dark: "#22d3ee"}, // Cyan
	{Light: "#7c3aed", Dark: "#a78bfa"}, // Violet
	{Light: "#db2777", Dark: "#f472b6"}, // Pink
	{Light: "#65a30d", Dark: "#a3e635"}, // Lime
	{Light: "#0d9488", Dark: "#2dd4bf"}, // Teal
	{Light: "#ea580c", Dark: "#fb923c"}, // Orange
	{Light: "#4f46e5", Dark: "#818cf8"}, // Indigo
	{Light: "#0284c7", Dark: "#38bdf8"}, // Sky
	{Light: "#15803d", Dark: "#86efac"}, // Green
	{Light: "#9333ea", Dark: "#e879f9"}, // Magenta
	{Light: "#b45309", Dark: "#fcd34d"}, // Gold
	{Light: "#047857", Dark: "#6ee7b7"}, // Mint
}
