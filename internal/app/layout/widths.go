package layout

import (
	"time"

	"github.com/muesli/ansi"

	"logdeck/internal/config"
)

// ClockLayout is the timestamp layout of the clock time format
const ClockLayout = "15:04:05.000"

// Widths are the column widths shared by every line of one frame
type Widths struct {
	Category  int
	Timestamp int
	Origin    time.Time
}

// NewWidths computes the frame's columns from store state. The category column is capped at limit
func NewWidths(maxCategoryLen, limit int, origin, latest time.Time, timeFormat string) Widths {
	category := maxCategoryLen
	if limit > 0 && category > limit {
		category = limit
	}

	return Widths{
		Category:  category,
		Timestamp: ansi.PrintableRuneWidth(FormatTimestamp(latest, origin, timeFormat)),
		Origin:    origin,
	}
}

// FormatTimestamp renders ts as a wall clock or as time elapsed since origin
func FormatTimestamp(ts, origin time.Time, timeFormat string) string {
	if timeFormat != config.TimeFormatElapsed {
		return ts.Format(ClockLayout)
	}

	elapsed := ts.Sub(origin)
	if elapsed < 0 {
		elapsed = 0
	}

	return "+" + elapsed.Truncate(time.Millisecond).String()
}
