package netwatch

import (
	"errors"
	"time"

	"github.com/yusing/go-netwatch/internal/utils"
	"gopkg.in/yaml.v3"
)

type Config struct {
	InitialDelay time.Duration `json:"initial_delay" validate:"min=0"`
	Interval     time.Duration `json:"interval" validate:"required,gt=0"`
	Host         string        `json:"host" validate:"required"`
	Port         int           `json:"port" validate:"required,gt=0,lte=65535"`
	Timeout      time.Duration `json:"timeout" validate:"required,gt=0"`
	ErrorHandler ErrorHandler  `json:"-" validate:"required"`
}

const (
	DefaultInitialDelay time.Duration = 0
	DefaultInterval                   = 2 * time.Second
	DefaultPort                       = 80
	DefaultTimeout                    = 2 * time.Second
)

var (
	ErrNegativeInitialDelay = errors.New("initial delay must not be negative")
	ErrNonPositiveInterval  = errors.New("interval must be positive")
	ErrEmptyHost            = errors.New("host must not be empty")
	ErrInvalidPort          = errors.New("port must be between 1 and 65535")
	ErrNonPositiveTimeout   = errors.New("timeout must be positive")
	ErrNilErrorHandler      = errors.New("error handler must not be nil")
	ErrNilStrategy          = errors.New("strategy must not be nil")
)

var configFieldErrors = map[string]error{
	"InitialDelay": ErrNegativeInitialDelay,
	"Interval":     ErrNonPositiveInterval,
	"Host":         ErrEmptyHost,
	"Port":         ErrInvalidPort,
	"Timeout":      ErrNonPositiveTimeout,
	"ErrorHandler": ErrNilErrorHandler,
}

// DefaultConfig returns a config with the default probe settings.
//
// Host is left empty and filled in with the strategy default host
// by NewObserver.
func DefaultConfig() *Config {
	return &Config{
		InitialDelay: DefaultInitialDelay,
		Interval:     DefaultInterval,
		Port:         DefaultPort,
		Timeout:      DefaultTimeout,
		ErrorHandler: DefaultErrorHandler(),
	}
}

// Validate checks the config fields and returns an error matching
// errors.Is against the corresponding Err* sentinel for each invalid field.
func (cfg *Config) Validate() error {
	return utils.ValidateWithFieldTags(cfg, configFieldErrors)
}

// ConfigFromYAML parses a YAML document into a Config over the defaults.
//
// Durations are parsed from strings like "500ms" or "2s".
// The error handler is not settable from YAML.
func ConfigFromYAML(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) UnmarshalYAML(node *yaml.Node) error {
	type rawConfig struct {
		InitialDelay *string `yaml:"initial_delay"`
		Interval     *string `yaml:"interval"`
		Host         *string `yaml:"host"`
		Port         *int    `yaml:"port"`
		Timeout      *string `yaml:"timeout"`
	}
	var raw rawConfig
	if err := node.Decode(&raw); err != nil {
		return err
	}
	for dst, src := range map[*time.Duration]*string{
		&cfg.InitialDelay: raw.InitialDelay,
		&cfg.Interval:     raw.Interval,
		&cfg.Timeout:      raw.Timeout,
	} {
		if src == nil {
			continue
		}
		d, err := time.ParseDuration(*src)
		if err != nil {
			return err
		}
		*dst = d
	}
	if raw.Host != nil {
		cfg.Host = *raw.Host
	}
	if raw.Port != nil {
		cfg.Port = *raw.Port
	}
	return nil
}
