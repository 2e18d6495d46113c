package logs

import (
	"bytes"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/valyala/fastjson"

	"logdeck/internal/app/errors"
	"logdeck/internal/config"
	"logdeck/internal/config/logger"
)

// Writer is the logging facade: a zerolog output that dispatches every event to the registered sink
type Writer interface {
	zerolog.LevelWriter
	Register(sink Sink) error
	Unregister() error
}

type sinkHolder struct {
	sink Sink
}

type writer struct {
	sink    atomic.Pointer[sinkHolder]
	parsers fastjson.ParserPool
	now     func() time.Time
}

// skippedFields are zerolog fields that are not part of the record message
var skippedFields = map[string]struct{}{
	zerolog.LevelFieldName:     {},
	zerolog.TimestampFieldName: {},
	zerolog.MessageFieldName:   {},
	logger.ComponentField:      {},
	"version":                  {},
}

// NewWriter creates a facade with no sink attached
func NewWriter() Writer {
	return &writer{now: time.Now}
}

// Register attaches the single process-wide sink
func (w *writer) Register(sink Sink) error {
	if !w.sink.CompareAndSwap(nil, &sinkHolder{sink: sink}) {
		return errors.ErrSinkAlreadyRegistered
	}

	return nil
}

// Unregister flushes and detaches the sink
func (w *writer) Unregister() error {
	holder := w.sink.Swap(nil)
	if holder == nil {
		return errors.ErrSinkNotRegistered
	}

	holder.sink.Flush()

	return nil
}

// Write handles events from writers that do not report a level
func (w *writer) Write(p []byte) (int, error) {
	return w.WriteLevel(zerolog.NoLevel, p)
}

// WriteLevel converts one zerolog JSON event into a sink call. Events are never rejected
func (w *writer) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	holder := w.sink.Load()
	if holder == nil || level == zerolog.Disabled {
		return len(p), nil
	}

	parser := w.parsers.Get()
	defer w.parsers.Put(parser)

	v, err := parser.ParseBytes(p)
	if err != nil {
		w.emitRaw(holder.sink, level, p)
		return len(p), nil
	}

	if level == zerolog.NoLevel {
		if parsed, err := zerolog.ParseLevel(string(v.GetStringBytes(zerolog.LevelFieldName))); err == nil {
			level = parsed
		}
	}

	recordLevel := FromZerolog(level)

	category := string(v.GetStringBytes(logger.ComponentField))
	if category == "" {
		category = config.DefaultCategory
	}

	if !holder.sink.Enabled(recordLevel, category) {
		return len(p), nil
	}

	holder.sink.Emit(recordLevel, category, formatMessage(v), w.timestamp(v))

	return len(p), nil
}

// emitRaw forwards a payload that is not JSON as a plain message
func (w *writer) emitRaw(sink Sink, level zerolog.Level, p []byte) {
	recordLevel := FromZerolog(level)
	if !sink.Enabled(recordLevel, config.DefaultCategory) {
		return
	}

	sink.Emit(recordLevel, config.DefaultCategory, string(bytes.TrimSpace(p)), w.now())
}

// timestamp reads the event time, falling back to the current time
func (w *writer) timestamp(v *fastjson.Value) time.Time {
	if raw := v.GetStringBytes(zerolog.TimestampFieldName); raw != nil {
		if ts, err := time.Parse(zerolog.TimeFieldFormat, string(raw)); err == nil {
			return ts
		}
	}

	return w.now()
}

// formatMessage joins the event message with its remaining fields as key=value pairs
func formatMessage(v *fastjson.Value) string {
	var sb strings.Builder

	sb.Write(v.GetStringBytes(zerolog.MessageFieldName))

	obj, err := v.Object()
	if err != nil {
		return sb.String()
	}

	obj.Visit(func(key []byte, field *fastjson.Value) {
		if _, skip := skippedFields[string(key)]; skip {
			return
		}

		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}

		sb.Write(key)
		sb.WriteByte('=')

		if field.Type() == fastjson.TypeString {
			sb.Write(field.GetStringBytes())
			return
		}

		sb.Write(field.MarshalTo(nil))
	})

	return sb.String()
}

// FromZerolog maps a zerolog level onto a record level
func FromZerolog(level zerolog.Level) Level {
	switch level {
	case zerolog.TraceLevel:
		return Trace
	case zerolog.DebugLevel:
		return Debug
	case zerolog.WarnLevel:
		return Warn
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return Error
	default:
		return Info
	}
}
