package components

import "time"

// Stats polling
const (
	StatsPollingInterval = 2 * time.Second
	StatsTimeout         = 500 * time.Millisecond
)

// Header layout constants
const (
	HeaderSeparatorMinWidth = 4
	HeaderFixedChars        = 10
)

// Footer layout constants
const (
	FooterSeparatorMinWidth = 4
	FooterFixedChars        = 5
)

// Log view layout
const (
	HeaderHeight         = 2
	FooterHeight         = 3
	MinBodyHeight        = 3
	DefaultViewportWidth = 80
)

// Pulse animation
const (
	PulseFPS              = 20
	PulseAngularFrequency = 6.0
	PulseDampingRatio     = 0.8
)
