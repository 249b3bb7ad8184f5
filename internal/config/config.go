package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/xll-gen/bin2c/internal/errs"
	"gopkg.in/yaml.v3"
)

// Config represents the optional configuration file passed with --config.
// Values given on the command line take precedence.
type Config struct {
	// Type is the content type used when the positional type is omitted ("bin" or "text").
	Type string `yaml:"type"`
	// Verify re-reads the generated source and checks that it decodes to the input.
	Verify bool `yaml:"verify"`
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty means stderr.
	Path string `yaml:"path"`
}

// ContentType selects how the embedded data is declared.
type ContentType int

const (
	// Binary declares the data as unsigned char with its exact size.
	Binary ContentType = iota
	// Text declares the data as char with room for a NUL terminator.
	Text
)

// String returns the command-line token for the content type.
func (c ContentType) String() string {
	if c == Text {
		return "text"
	}
	return "bin"
}

// ParseContentType converts a command-line token into a ContentType.
func ParseContentType(s string) (ContentType, error) {
	switch s {
	case "bin":
		return Binary, nil
	case "text":
		return Text, nil
	default:
		return Binary, fmt.Errorf("invalid type '%s' (allowed: text, bin): %w", s, errs.ErrArgument)
	}
}

// Target determines where the generated files go and which symbol they define.
type Target struct {
	// Dir is an existing directory that receives both files.
	Dir string
	// Name is the base file name and the array symbol.
	Name string
}

// HeaderPath returns the path of the declaration file.
func (t Target) HeaderPath() string {
	return filepath.Join(t.Dir, t.Name+".h")
}

// SourcePath returns the path of the definition file.
func (t Target) SourcePath() string {
	return filepath.Join(t.Dir, t.Name+".c")
}

// Options is the complete, immutable description of one run.
type Options struct {
	Target Target
	// Input is the path of the file to embed.
	Input string
	Type  ContentType
	// Verify enables the post-generation round-trip check.
	Verify bool
}

var identRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateName checks that name can be used as a C identifier.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("output name cannot be empty: %w", errs.ErrArgument)
	}
	if !identRegex.MatchString(name) {
		return fmt.Errorf("output name '%s' must be a C identifier (letters, digits and underscores, not starting with a digit): %w", name, errs.ErrArgument)
	}
	return nil
}

// Load reads the configuration file at path and applies defaults.
// An empty path yields the default configuration.
//
// Returns:
//   - *Config: The validated configuration.
//   - error: An error wrapping errs.ErrIO if the file cannot be read, or
//     errs.ErrArgument if it cannot be parsed or is invalid.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w: %w", path, errs.ErrIO, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w: %w", path, errs.ErrArgument, err)
		}
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults sets default values for configuration fields that are missing.
func ApplyDefaults(cfg *Config) {
	if cfg.Type == "" {
		cfg.Type = Binary.String()
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "warn"
	}
}

// Validate checks the configuration for unsupported values.
func Validate(cfg *Config) error {
	if _, err := ParseContentType(cfg.Type); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	switch strings.ToLower(cfg.Logging.Level) {
	case "debug", "info", "warn", "error":
		// ok
	default:
		return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error): %w", cfg.Logging.Level, errs.ErrArgument)
	}

	return nil
}

// NewOptions builds the run options from the positional arguments
// <dest-dir> <output-name> <file> [type] and the loaded configuration.
func NewOptions(args []string, cfg *Config) (Options, error) {
	if len(args) < 3 || len(args) > 4 {
		return Options{}, fmt.Errorf("expected 3 or 4 arguments, got %d: %w", len(args), errs.ErrArgument)
	}

	typeName := cfg.Type
	if len(args) == 4 {
		typeName = args[3]
	}
	ct, err := ParseContentType(typeName)
	if err != nil {
		return Options{}, err
	}

	if err := ValidateName(args[1]); err != nil {
		return Options{}, err
	}

	return Options{
		Target: Target{Dir: args[0], Name: args[1]},
		Input:  args[2],
		Type:   ct,
		Verify: cfg.Verify,
	}, nil
}
