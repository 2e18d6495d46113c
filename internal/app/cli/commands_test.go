package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Parse(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected Options
	}{
		{
			name:     "No args runs the viewer",
			args:     []string{},
			expected: Options{Type: CommandRun, Frames: DefaultBenchFrames},
		},
		{
			name:     "No UI",
			args:     []string{"--no-ui"},
			expected: Options{Type: CommandRun, NoUI: true, Frames: DefaultBenchFrames},
		},
		{
			name:     "Config path",
			args:     []string{"-c", "dev.toml"},
			expected: Options{Type: CommandRun, ConfigPath: "dev.toml", Frames: DefaultBenchFrames},
		},
		{
			name:     "Init command",
			args:     []string{"init"},
			expected: Options{Type: CommandInit, Frames: DefaultBenchFrames},
		},
		{
			name:     "Init with flags",
			args:     []string{"init", "--force", "--dry-run", "--format", "toml"},
			expected: Options{Type: CommandInit, Force: true, DryRun: true, Format: "toml", Frames: DefaultBenchFrames},
		},
		{
			name:     "Init flag on root",
			args:     []string{"--init"},
			expected: Options{Type: CommandInit, Frames: DefaultBenchFrames},
		},
		{
			name:     "Bench command",
			args:     []string{"bench"},
			expected: Options{Type: CommandBench, Frames: DefaultBenchFrames},
		},
		{
			name:     "Bench with frames",
			args:     []string{"bench", "--frames", "90"},
			expected: Options{Type: CommandBench, Frames: 90},
		},
		{
			name:     "Version command",
			args:     []string{"version"},
			expected: Options{Type: CommandVersion, Frames: DefaultBenchFrames},
		},
		{
			name:     "Version flag",
			args:     []string{"-v"},
			expected: Options{Type: CommandVersion, Frames: DefaultBenchFrames},
		},
		{
			name:     "Help flag",
			args:     []string{"--help"},
			expected: Options{Type: CommandHelp, Frames: DefaultBenchFrames},
		},
		{
			name:     "Config path before subcommand",
			args:     []string{"--config", "custom.yaml", "init"},
			expected: Options{Type: CommandInit, ConfigPath: "custom.yaml", Frames: DefaultBenchFrames},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := Parse(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, *opts)
		})
	}
}

func Test_Parse_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "Unknown command", args: []string{"unknown"}},
		{name: "Unknown flag", args: []string{"--unknown"}},
		{name: "Init with args", args: []string{"init", "extra"}},
		{name: "Bench frames not a number", args: []string{"bench", "--frames", "many"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := Parse(tt.args)
			assert.Error(t, err)
			assert.Nil(t, opts)
		})
	}
}
