package cli

import (
	"github.com/spf13/cobra"

	"logdeck/internal/config"
)

// CommandType represents the type of CLI command
type CommandType int

// Command type values
const (
	CommandRun CommandType = iota
	CommandInit
	CommandBench
	CommandVersion
	CommandHelp
)

// DefaultBenchFrames is the number of frames measured by the bench command
const DefaultBenchFrames = 300

// Options contains the parsed command-line arguments
type Options struct {
	Type       CommandType
	ConfigPath string
	NoUI       bool
	Force      bool
	DryRun     bool
	Format     string
	Frames     int
}

// rootFlags holds flag values for the root command
type rootFlags struct {
	version bool
	init    bool
}

// Parse parses command-line args and returns an Options struct
func Parse(args []string) (*Options, error) {
	result := &Options{
		Type:   CommandRun,
		Frames: DefaultBenchFrames,
	}

	var flags rootFlags

	root := buildRootCommand(result, &flags)
	root.AddCommand(
		buildInitCommand(result),
		buildBenchCommand(result),
		buildVersionCommand(result),
	)

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, err
	}

	if flags.version {
		result.Type = CommandVersion
	}

	if flags.init {
		result.Type = CommandInit
	}

	return result, nil
}

// buildRootCommand creates the root cobra command
func buildRootCommand(result *Options, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:           config.AppName,
		Short:         "An in-process log viewer with live filtering and search",
		Long:          "logdeck keeps the most recent records of the running process in memory\nand renders them with level, category and search filters.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandRun
		},
	}

	cmd.PersistentFlags().BoolVar(&result.NoUI, "no-ui", false, "Log to the console instead of the TUI")
	cmd.PersistentFlags().StringVarP(&result.ConfigPath, "config", "c", "", "Path to the configuration file")
	cmd.Flags().BoolVarP(&flags.version, "version", "v", false, "Show version information")
	cmd.Flags().BoolVarP(&flags.init, "init", "i", false, "Generate logdeck.yaml")

	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		result.Type = CommandHelp
	})

	return cmd
}

// buildInitCommand creates the init subcommand
func buildInitCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Aliases: []string{"i"},
		Short:   "Generate a configuration file with the defaults",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandInit
		},
	}

	cmd.Flags().BoolVarP(&result.Force, "force", "f", false, "Overwrite an existing file")
	cmd.Flags().BoolVar(&result.DryRun, "dry-run", false, "Print the file instead of writing it")
	cmd.Flags().StringVar(&result.Format, "format", "", "Output format: yaml or toml (default from the file extension)")

	return cmd
}

// buildBenchCommand creates the bench subcommand
func buildBenchCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bench",
		Aliases: []string{"b"},
		Short:   "Measure the per-frame refresh cost",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandBench
		},
	}

	cmd.Flags().IntVar(&result.Frames, "frames", DefaultBenchFrames, "Number of frames to run")

	return cmd
}

// buildVersionCommand creates the version subcommand
func buildVersionCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandVersion
		},
	}

	return cmd
}
