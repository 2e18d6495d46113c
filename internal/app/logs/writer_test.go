package logs

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"logdeck/internal/app/errors"
	"logdeck/internal/config"
)

func Test_Writer_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := NewMockSink(ctrl)
	second := NewMockSink(ctrl)

	w := NewWriter()

	require.NoError(t, w.Register(first))
	assert.ErrorIs(t, w.Register(second), errors.ErrSinkAlreadyRegistered)

	first.EXPECT().Flush()
	require.NoError(t, w.Unregister())
	assert.ErrorIs(t, w.Unregister(), errors.ErrSinkNotRegistered)

	require.NoError(t, w.Register(second))
}

func Test_Writer_WithoutSink(t *testing.T) {
	w := NewWriter()

	n, err := w.WriteLevel(zerolog.InfoLevel, []byte(`{"message":"lost"}`))
	assert.NoError(t, err)
	assert.Equal(t, 18, n)
}

func Test_Writer_WriteLevel(t *testing.T) {
	ts := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

	tests := []struct {
		name     string
		level    zerolog.Level
		payload  string
		category string
		message  string
		expected Level
	}{
		{
			name:     "Component becomes category",
			level:    zerolog.WarnLevel,
			payload:  `{"level":"warn","version":"0.3.0","component":"STORE","time":"2024-05-06T07:08:09Z","message":"busy"}`,
			category: "STORE",
			message:  "busy",
			expected: Warn,
		},
		{
			name:     "Default category and extra fields",
			level:    zerolog.DebugLevel,
			payload:  `{"level":"debug","count":3,"name":"x","ok":true,"time":"2024-05-06T07:08:09Z","message":"hello"}`,
			category: config.DefaultCategory,
			message:  "hello count=3 name=x ok=true",
			expected: Debug,
		},
		{
			name:     "Fields without message",
			level:    zerolog.InfoLevel,
			payload:  `{"level":"info","time":"2024-05-06T07:08:09Z","key":"v"}`,
			category: config.DefaultCategory,
			message:  "key=v",
			expected: Info,
		},
		{
			name:     "Fatal maps to error",
			level:    zerolog.FatalLevel,
			payload:  `{"time":"2024-05-06T07:08:09Z","message":"bye"}`,
			category: config.DefaultCategory,
			message:  "bye",
			expected: Error,
		},
		{
			name:     "No level reads level field",
			level:    zerolog.NoLevel,
			payload:  `{"level":"trace","time":"2024-05-06T07:08:09Z","message":"deep"}`,
			category: config.DefaultCategory,
			message:  "deep",
			expected: Trace,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sink := NewMockSink(ctrl)
			sink.EXPECT().Enabled(tt.expected, tt.category).Return(true)
			sink.EXPECT().Emit(tt.expected, tt.category, tt.message, ts)

			w := NewWriter()
			require.NoError(t, w.Register(sink))

			n, err := w.WriteLevel(tt.level, []byte(tt.payload))
			assert.NoError(t, err)
			assert.Equal(t, len(tt.payload), n)
		})
	}
}

func Test_Writer_SkipsDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sink := NewMockSink(ctrl)
	sink.EXPECT().Enabled(Debug, "tracing::span").Return(false)
	sink.EXPECT().Emit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := NewWriter()
	require.NoError(t, w.Register(sink))

	_, err := w.WriteLevel(zerolog.DebugLevel, []byte(`{"component":"tracing::span","message":"enter"}`))
	assert.NoError(t, err)

	_, err = w.WriteLevel(zerolog.Disabled, []byte(`{"message":"never"}`))
	assert.NoError(t, err)
}

func Test_Writer_RawPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sink := NewMockSink(ctrl)
	sink.EXPECT().Enabled(Info, config.DefaultCategory).Return(true)
	sink.EXPECT().Emit(Info, config.DefaultCategory, "plain text", gomock.Any())

	w := NewWriter()
	require.NoError(t, w.Register(sink))

	_, err := w.Write([]byte("plain text\n"))
	assert.NoError(t, err)
}

func Test_Writer_IntoStore(t *testing.T) {
	store := NewStore()

	sink, err := NewSink(config.DefaultConfig(), store)
	require.NoError(t, err)

	w := NewWriter()
	require.NoError(t, w.Register(sink))

	log := zerolog.New(w).With().Timestamp().Logger()
	log.Info().Str("component", "HTTP").Int("status", 200).Msg("served")
	log.Trace().Msg("filtered by level")

	records, err := store.Records(0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, Info, records[0].Level)
	assert.Equal(t, "HTTP", records[0].Category)
	assert.Equal(t, "served status=200", records[0].Message)
}

func Test_FromZerolog(t *testing.T) {
	tests := []struct {
		level    zerolog.Level
		expected Level
	}{
		{zerolog.TraceLevel, Trace},
		{zerolog.DebugLevel, Debug},
		{zerolog.InfoLevel, Info},
		{zerolog.WarnLevel, Warn},
		{zerolog.ErrorLevel, Error},
		{zerolog.FatalLevel, Error},
		{zerolog.PanicLevel, Error},
		{zerolog.NoLevel, Info},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, FromZerolog(tt.level))
		})
	}
}
