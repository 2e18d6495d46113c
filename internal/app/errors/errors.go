package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrInvalidConfig       = errors.New("invalid configuration")
	ErrConfigFileExists    = errors.New("config file already exists")
	ErrUnknownFormat       = errors.New("unknown config format")

	ErrInvalidLevel          = errors.New("invalid log level")
	ErrInvalidMaxLogLength   = errors.New("max log length must be positive")
	ErrInvalidLockTimeout    = errors.New("lock timeout must not be negative")
	ErrInvalidFrameInterval  = errors.New("frame interval must be positive")
	ErrInvalidTimeFormat     = errors.New("invalid time format")
	ErrInvalidBlacklistEntry = errors.New("invalid blacklist pattern")
	ErrInvalidDemoRate       = errors.New("demo rate must not be negative")

	ErrStoreBusy             = errors.New("log store is busy")
	ErrStorePoisoned         = errors.New("log store is poisoned")
	ErrSinkAlreadyRegistered = errors.New("log sink already registered")
	ErrSinkNotRegistered     = errors.New("log sink not registered")

	ErrUnknownCommand = errors.New("unknown command")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)
