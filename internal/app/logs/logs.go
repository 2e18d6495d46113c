package logs

import (
	"fmt"
	"strings"
	"time"

	"logdeck/internal/app/errors"
)

// Level is the severity of a record, Error being the most severe
type Level int

// Record levels
const (
	Off Level = iota
	Error
	Warn
	Info
	Debug
	Trace
)

// Levels lists every record level from most to least severe
var Levels = []Level{Error, Warn, Info, Debug, Trace}

// LevelCount is the number of record levels
const LevelCount = 5

var levelNames = [...]string{"off", "error", "warn", "info", "debug", "trace"}

// String returns the lowercase level name
func (l Level) String() string {
	if l < Off || l > Trace {
		return fmt.Sprintf("level(%d)", int(l))
	}

	return levelNames[l]
}

// Short returns the single letter badge of the level
func (l Level) Short() string {
	if l <= Off || l > Trace {
		return "?"
	}

	return strings.ToUpper(levelNames[l][:1])
}

// Index returns the zero based position of the level in Levels, or -1 for Off
func (l Level) Index() int {
	if l <= Off || l > Trace {
		return -1
	}

	return int(l) - 1
}

// Allows reports whether a record at level passes when l is the maximum level
func (l Level) Allows(level Level) bool {
	return level > Off && level <= l
}

// ParseLevel converts a level name into a Level
func ParseLevel(name string) (Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	for i, levelName := range levelNames {
		if levelName == name {
			return Level(i), nil
		}
	}

	return Off, fmt.Errorf("%w: '%s'", errors.ErrInvalidLevel, name)
}

// Record is a single immutable log entry
type Record struct {
	Level    Level
	Message  string
	Category string
	Time     time.Time
}

// Category is a category known to the store with its visibility
type Category struct {
	Name    string
	Enabled bool
}
