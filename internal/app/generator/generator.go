package generator

//go:generate mockgen -source=generator.go -destination=generator_mock.go -package=generator

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v3"

	"logdeck/internal/app/errors"
	"logdeck/internal/config"
	"logdeck/internal/config/logger"
)

const header = "# logdeck configuration\n# Every key can be overridden with LOGDECK_<SECTION>_<KEY>, e.g. LOGDECK_VIEW_MAX_LOG_LENGTH\n\n"

// Supported output formats
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Options controls where and how the configuration file is written.
// An empty Format is derived from the Path extension
type Options struct {
	Path   string
	Format string
	Force  bool
	DryRun bool
}

// DefaultOptions returns options writing logdeck.yaml in the working directory
func DefaultOptions() Options {
	return Options{Path: config.FileName}
}

// Generator writes a configuration file populated with the defaults
type Generator interface {
	Generate(opts Options) error
}

type generator struct {
	out io.Writer
	log logger.Logger
}

// NewGenerator creates a new generator instance
func NewGenerator(log logger.Logger) Generator {
	return &generator{
		out: os.Stdout,
		log: log,
	}
}

// Generate renders the default configuration, printing it on a dry run
func (g *generator) Generate(opts Options) error {
	if opts.Path == "" {
		opts.Path = config.FileName
	}

	if opts.Format == "" {
		opts.Format = config.ConfigType(opts.Path)
	}

	if !opts.DryRun && !opts.Force {
		if _, err := os.Stat(opts.Path); err == nil {
			return fmt.Errorf("%w: %s, use --force to overwrite", errors.ErrConfigFileExists, opts.Path)
		}
	}

	content, err := Render(config.DefaultConfig(), opts.Format)
	if err != nil {
		return err
	}

	if opts.DryRun {
		_, err := g.out.Write(content)
		return err
	}

	if err := os.WriteFile(opts.Path, content, config.ConfigMode); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	g.log.Info().Msgf("Generated %s", opts.Path)

	return nil
}

// Render encodes cfg in the given format behind a comment header
func Render(cfg *config.Config, format string) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(header)

	switch format {
	case FormatYAML:
		if err := renderYAML(&buf, cfg); err != nil {
			return nil, err
		}
	case FormatTOML:
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)

		if err := enc.Encode(cfg); err != nil {
			return nil, fmt.Errorf("failed to encode config: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: '%s'", errors.ErrUnknownFormat, format)
	}

	return buf.Bytes(), nil
}

func renderYAML(buf *bytes.Buffer, cfg *config.Config) error {
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)

	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return enc.Close()
}
