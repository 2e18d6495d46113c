package layout

//go:generate mockgen -source=formatter.go -destination=formatter_mock.go -package=layout

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"logdeck/internal/app/logs"
	"logdeck/internal/app/ui/components"
	"logdeck/internal/config"
)

const (
	ellipsis      = "…"
	separator     = "│"
	newlineMarker = " ↵ "
	badgeOpen     = "["
	badgeClose    = "]"
	columnSpacing = " "
)

// Line is one formatted record
type Line struct {
	Text  string
	Plain string
	Level logs.Level
}

// Formatter turns a record into a display line; the result depends only on the record and widths
type Formatter interface {
	Format(record logs.Record, widths Widths) Line
}

type formatter struct {
	mu             sync.Mutex
	timeFormat     string
	levelStyles    map[logs.Level]lipgloss.Style
	categoryStyles map[string]lipgloss.Style
	timeStyle      lipgloss.Style
	separatorStyle lipgloss.Style
	messageStyle   lipgloss.Style
}

// NewFormatter creates a lipgloss formatter for the configured time format
func NewFormatter(cfg *config.Config) Formatter {
	return &formatter{
		timeFormat: cfg.View.TimeFormat,
		levelStyles: map[logs.Level]lipgloss.Style{
			logs.Error: lipgloss.NewStyle().Foreground(components.LevelErrorColor).Bold(true),
			logs.Warn:  lipgloss.NewStyle().Foreground(components.LevelWarnColor).Bold(true),
			logs.Info:  lipgloss.NewStyle().Foreground(components.LevelInfoColor),
			logs.Debug: lipgloss.NewStyle().Foreground(components.LevelDebugColor),
			logs.Trace: lipgloss.NewStyle().Foreground(components.LevelTraceColor),
		},
		categoryStyles: make(map[string]lipgloss.Style),
		timeStyle:      lipgloss.NewStyle().Foreground(components.FgMuted),
		separatorStyle: lipgloss.NewStyle().Foreground(components.SeparatorColor),
		messageStyle:   lipgloss.NewStyle(),
	}
}

// Format renders "[L] time category │ message"
func (f *formatter) Format(record logs.Record, widths Widths) Line {
	f.mu.Lock()
	defer f.mu.Unlock()

	badge := badgeOpen + record.Level.Short() + badgeClose
	timestamp := padRight(FormatTimestamp(record.Time, widths.Origin, f.timeFormat), widths.Timestamp)
	category := fitCategory(record.Category, widths.Category)
	message := flatten(record.Message)

	plain := strings.Join([]string{badge, timestamp, category, separator, message}, columnSpacing)

	text := strings.Join([]string{
		f.levelStyle(record.Level).Render(badge),
		f.timeStyle.Render(timestamp),
		f.categoryStyle(record.Category).Render(category),
		f.separatorStyle.Render(separator),
		f.messageStyle.Render(message),
	}, columnSpacing)

	return Line{
		Text:  text,
		Plain: plain,
		Level: record.Level,
	}
}

// levelStyle returns the badge style of a level
func (f *formatter) levelStyle(level logs.Level) lipgloss.Style {
	if style, ok := f.levelStyles[level]; ok {
		return style
	}

	return f.messageStyle
}

// categoryStyle returns a consistent style for a category name
func (f *formatter) categoryStyle(category string) lipgloss.Style {
	if style, exists := f.categoryStyles[category]; exists {
		return style
	}

	colorIndex := hashString(category) % len(components.CategoryColorPalette)
	style := lipgloss.NewStyle().Foreground(components.CategoryColorPalette[colorIndex]).Bold(true)
	f.categoryStyles[category] = style

	return style
}

// fitCategory pads or truncates a category to exactly width cells
func fitCategory(category string, width int) string {
	if width <= 0 {
		return category
	}

	if ansi.StringWidth(category) > width {
		return ansi.Truncate(category, width, ellipsis)
	}

	return padRight(category, width)
}

// padRight pads s with spaces up to width cells
func padRight(s string, width int) string {
	if gap := width - ansi.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}

	return s
}

// flatten keeps a multi-line message on a single row
func flatten(message string) string {
	message = strings.TrimRight(message, "\r\n")

	if !strings.ContainsAny(message, "\r\n") {
		return message
	}

	message = strings.ReplaceAll(message, "\r\n", "\n")

	return strings.ReplaceAll(message, "\n", newlineMarker)
}

// hashString returns a simple hash of a string
func hashString(s string) int {
	h := 0
	for _, c := range s {
		h = 31*h + int(c)
	}

	if h < 0 {
		h = -h
	}

	return h
}
