package config

import "time"

// app constants
const (
	AppName    = "logdeck"
	AppDesc    = "in-process log viewer with live filtering and search"
	FileName   = "logdeck.yaml"
	EnvPrefix  = "LOGDECK"
	EnvFile    = ".env"
	Version    = "0.3.0"
	ConfigMode = 0600
)

// logging constants
const (
	DefaultLogLevel  = "debug"
	DefaultLogFormat = "console"
	DefaultCategory  = "app"
)

// sink constants
const (
	DefaultMaxLevel          = "debug"
	DefaultShowAllCategories = true
	DefaultSinkLockTimeout   = 5 * time.Millisecond
)

// DefaultBlacklist contains categories that emit far too fast to be useful in the viewer
var DefaultBlacklist = []string{
	"tracing::span",
	"tracing::span::active",
}

// view constants
const (
	DefaultMaxLogLength     = 1000
	DefaultMaxLogLengthStep = 100
	DefaultViewLockTimeout  = 50 * time.Millisecond
	DefaultFrameInterval    = 50 * time.Millisecond
	DefaultCategoryMaxWidth = 24

	TimeFormatClock   = "clock"
	TimeFormatElapsed = "elapsed"
)

// DefaultLevels lists the levels a new viewer shows
var DefaultLevels = []string{"error", "warn", "info"}

// demo constants
const (
	DefaultDemoRate  = 20
	DefaultDemoBurst = 1000
)

// watch constants
const (
	WatchDebounce = 300 * time.Millisecond
)
