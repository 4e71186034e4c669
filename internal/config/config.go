// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/smileynet/addressbook/internal/storage"
)

// Config holds all addressbook configuration.
type Config struct {
	Storage Storage `yaml:"storage"`
	UI      UI      `yaml:"ui"`
	Log     Log     `yaml:"log"`
}

// Storage selects where the book is kept.
type Storage struct {
	Driver string `yaml:"driver" validate:"omitempty,oneof=yaml sqlite"` // empty infers from path
	Path   string `yaml:"path" validate:"required"`
}

// UI holds interactive shell settings.
type UI struct {
	Prompt      string `yaml:"prompt"`
	Plain       bool   `yaml:"plain"`        // Disable colors and line editing
	HistoryFile string `yaml:"history_file"` // Empty disables persisted history
}

// Log holds logging settings.
type Log struct {
	Level      string `yaml:"level" validate:"oneof=debug info warn error"`
	File       string `yaml:"file"` // Empty disables the file sink
	MaxSizeMB  int    `yaml:"max_size_mb" validate:"min=1"`
	MaxBackups int    `yaml:"max_backups" validate:"min=0"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Storage: Storage{
			Path: storage.DefaultPath,
		},
		UI: UI{
			Prompt: "Enter command: ",
		},
		Log: Log{
			Level:      "warn",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// DefaultPaths returns the config layers in increasing priority:
// the user file under home, then the project file in the working directory.
func DefaultPaths(home string) []string {
	var paths []string
	if home != "" {
		paths = append(paths, filepath.Join(home, ".config", "addressbook", "config.yaml"))
	}
	return append(paths, filepath.Join(".addressbook", "config.yaml"))
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
func Load(path string) (*Config, error) {
	return LoadLayered(path)
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// validate is the package-level validator instance.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their YAML keys.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationErrors(err)
	}
	if c.Storage.Driver != "" && storage.DriverFor(c.Storage.Path) != c.Storage.Driver {
		return fmt.Errorf("config: storage.path %q does not match driver %q", c.Storage.Path, c.Storage.Driver)
	}
	return nil
}

// formatValidationErrors converts validator errors to a readable format.
func formatValidationErrors(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("config: %w", err)
	}

	errs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		errs = append(errs, formatFieldError(e))
	}
	return fmt.Errorf("config: validation failed:\n  %s", strings.Join(errs, "\n  "))
}

func formatFieldError(e validator.FieldError) string {
	field := formatFieldPath(e.Namespace())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s, got %q", field, e.Param(), e.Value())
	default:
		return fmt.Sprintf("%s failed validation: %s", field, e.Tag())
	}
}

// formatFieldPath converts "Config.log.max_size_mb" to "log.max_size_mb".
func formatFieldPath(namespace string) string {
	_, rest, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}
	return rest
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: ADDRESSBOOK_STORAGE_DRIVER, ADDRESSBOOK_STORAGE_PATH,
// ADDRESSBOOK_LOG_LEVEL, ADDRESSBOOK_LOG_FILE.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("ADDRESSBOOK_STORAGE_DRIVER"); v != "" {
		c.Storage.Driver = v
	}
	if v := os.Getenv("ADDRESSBOOK_STORAGE_PATH"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("ADDRESSBOOK_LOG_LEVEL"); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv("ADDRESSBOOK_LOG_FILE"); v != "" {
		c.Log.File = v
	}
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Storage *rawStorage `yaml:"storage"`
	UI      *rawUI      `yaml:"ui"`
	Log     *rawLog     `yaml:"log"`
}

type rawStorage struct {
	Driver *string `yaml:"driver"`
	Path   *string `yaml:"path"`
}

type rawUI struct {
	Prompt      *string `yaml:"prompt"`
	Plain       *bool   `yaml:"plain"`
	HistoryFile *string `yaml:"history_file"`
}

type rawLog struct {
	Level      *string `yaml:"level"`
	File       *string `yaml:"file"`
	MaxSizeMB  *int    `yaml:"max_size_mb"`
	MaxBackups *int    `yaml:"max_backups"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if s := layer.Storage; s != nil {
		setIf(&c.Storage.Driver, s.Driver)
		setIf(&c.Storage.Path, s.Path)
	}
	if u := layer.UI; u != nil {
		setIf(&c.UI.Prompt, u.Prompt)
		setIf(&c.UI.Plain, u.Plain)
		setIf(&c.UI.HistoryFile, u.HistoryFile)
	}
	if l := layer.Log; l != nil {
		setIf(&c.Log.Level, l.Level)
		setIf(&c.Log.File, l.File)
		setIf(&c.Log.MaxSizeMB, l.MaxSizeMB)
		setIf(&c.Log.MaxBackups, l.MaxBackups)
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
