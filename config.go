package scriptstep

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// ErrConfigValidation is returned when configuration validation fails
var ErrConfigValidation = errors.New("configuration validation failed")

// DefaultSentinel is the line emitted for a step that could not be decompiled
// when the sentinel failure policy is active.
const DefaultSentinel = "<unparsed step>"

// Config represents the scriptstep configuration
type Config struct {
	FormulaSource        FormulaSource `yaml:"formula_source"`
	OnError              FailurePolicy `yaml:"on_error"`
	Unsupported          FailurePolicy `yaml:"unsupported"`
	Sentinel             string        `yaml:"sentinel"`
	CommentDisabledSteps *bool         `yaml:"comment_disabled_steps"` // Pointer to distinguish between unset and false
	Parallel             int           `yaml:"parallel"`
	Filter               string        `yaml:"filter"`
	Output               OutputConfig  `yaml:"output"`
}

// OutputConfig represents report output settings
type OutputConfig struct {
	Format string `yaml:"format"`
	Color  *bool  `yaml:"color"`
}

// FormulaSource selects where calculation text is reconstructed from
type FormulaSource string

const (
	// FormulaSourceText uses the stored calculation text (CDATA)
	FormulaSourceText FormulaSource = "text"

	// FormulaSourceChunks joins the calculation chunk list, keeping CR line endings
	FormulaSourceChunks FormulaSource = "chunks"
)

// FailurePolicy decides what happens to a step that cannot be decompiled
type FailurePolicy string

const (
	// PolicyError aborts the whole run on the first failing step
	PolicyError FailurePolicy = "error"

	// PolicySkip records the failure and emits no line for the step
	PolicySkip FailurePolicy = "skip"

	// PolicySentinel emits the sentinel text in place of the step line
	PolicySentinel FailurePolicy = "sentinel"
)

// LoadConfig loads configuration from the specified file
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	err := loadEnvFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	// Check if config file exists
	_, err = os.Stat(configPath)
	if os.IsNotExist(err) {
		// Return default configuration if file doesn't exist
		config := getDefaultConfig()
		if err := finishConfig(config); err != nil {
			return nil, err
		}

		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML with strict mode to detect unknown fields
	var config Config

	err = yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := finishConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// finishConfig applies environment overrides, validation, defaults and
// variable expansion, in that order
func finishConfig(config *Config) error {
	if err := applyEnvOverrides(config); err != nil {
		return err
	}

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	applyDefaults(config)

	// Expand environment variables
	config.Sentinel = expandEnvVars(config.Sentinel)

	return nil
}

// validateConfig validates the configuration for common errors and inconsistencies
func validateConfig(config *Config) error {
	switch config.FormulaSource {
	case "", FormulaSourceText, FormulaSourceChunks:
	default:
		return fmt.Errorf("%w: invalid formula_source '%s': must be one of text, chunks", ErrConfigValidation, config.FormulaSource)
	}

	validPolicies := map[FailurePolicy]bool{
		PolicyError:    true,
		PolicySkip:     true,
		PolicySentinel: true,
	}
	if config.OnError != "" && !validPolicies[config.OnError] {
		return fmt.Errorf("%w: invalid on_error '%s': must be one of error, skip, sentinel", ErrConfigValidation, config.OnError)
	}

	if config.Unsupported != "" && !validPolicies[config.Unsupported] {
		return fmt.Errorf("%w: invalid unsupported '%s': must be one of error, skip, sentinel", ErrConfigValidation, config.Unsupported)
	}

	if config.Parallel < 0 {
		return fmt.Errorf("%w: parallel must be non-negative, got %d", ErrConfigValidation, config.Parallel)
	}

	if config.Output.Format != "" {
		validFormats := map[string]bool{
			"text": true,
			"json": true,
			"yaml": true,
		}
		if !validFormats[config.Output.Format] {
			return fmt.Errorf("%w: output.format '%s' is invalid: must be one of text, json, yaml", ErrConfigValidation, config.Output.Format)
		}
	}

	return nil
}

// Validate checks the configuration again, for callers that modify it after loading
func (c *Config) Validate() error {
	return validateConfig(c)
}

// boolPtr returns a pointer to a bool value
func boolPtr(b bool) *bool {
	return &b
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		FormulaSource:        FormulaSourceText,
		OnError:              PolicyError,
		Unsupported:          PolicySkip,
		Sentinel:             DefaultSentinel,
		CommentDisabledSteps: boolPtr(true),
		Parallel:             1,
		Output: OutputConfig{
			Format: "text",
			Color:  boolPtr(true),
		},
	}
}

// applyDefaults applies default values to missing configuration fields
func applyDefaults(config *Config) {
	defaults := getDefaultConfig()

	if config.FormulaSource == "" {
		config.FormulaSource = defaults.FormulaSource
	}

	if config.OnError == "" {
		config.OnError = defaults.OnError
	}

	if config.Unsupported == "" {
		config.Unsupported = defaults.Unsupported
	}

	if config.Sentinel == "" {
		config.Sentinel = defaults.Sentinel
	}

	if config.CommentDisabledSteps == nil {
		config.CommentDisabledSteps = defaults.CommentDisabledSteps
	}

	if config.Parallel == 0 {
		config.Parallel = defaults.Parallel
	}

	if config.Output.Format == "" {
		config.Output.Format = defaults.Output.Format
	}

	if config.Output.Color == nil {
		config.Output.Color = defaults.Output.Color
	}
}

// ShouldCommentDisabledSteps reports whether disabled steps are rendered with a "// " prefix
func (c *Config) ShouldCommentDisabledSteps() bool {
	return c.CommentDisabledSteps == nil || *c.CommentDisabledSteps
}

// UseColor reports whether CLI output may be colored
func (c *Config) UseColor() bool {
	return c.Output.Color == nil || *c.Output.Color
}

// loadEnvFiles loads .env files if they exist
func loadEnvFiles() error {
	// Try to load .env file from current directory
	if fileExists(".env") {
		err := godotenv.Load(".env")
		if err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

// applyEnvOverrides lets SCRIPTSTEP_* environment variables (including ones from .env)
// override values from the config file
func applyEnvOverrides(config *Config) error {
	if v := os.Getenv("SCRIPTSTEP_FORMULA_SOURCE"); v != "" {
		config.FormulaSource = FormulaSource(v)
	}

	if v := os.Getenv("SCRIPTSTEP_ON_ERROR"); v != "" {
		config.OnError = FailurePolicy(v)
	}

	if v := os.Getenv("SCRIPTSTEP_SENTINEL"); v != "" {
		config.Sentinel = v
	}

	if v := os.Getenv("SCRIPTSTEP_PARALLEL"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: SCRIPTSTEP_PARALLEL must be an integer, got '%s'", ErrConfigValidation, v)
		}

		config.Parallel = n
	}

	return nil
}

// expandEnvVars expands ${VAR} and $VAR references
func expandEnvVars(s string) string {
	// Pattern for ${VAR} format
	re1 := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re1.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1] // Remove ${ and }
		return os.Getenv(varName)
	})

	// Pattern for $VAR format (word boundaries)
	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:] // Remove $
		return os.Getenv(varName)
	})

	return s
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
