// Package config loads the YAML run configuration used by the santa CLI.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Transport kinds accepted in TransportConfig.Kind.
const (
	TransportLog  = "log"
	TransportNATS = "nats"
)

// Config is the root configuration structure.
type Config struct {
	// Algorithm names the pairing algorithm ("in-order", "random-closed-loop", "hamiltonian").
	Algorithm string `yaml:"algorithm" validate:"required,oneof=in-order random-closed-loop hamiltonian"`

	// Seed fixes the random source so a draw can be reproduced.
	Seed *uint64 `yaml:"seed" validate:"excluded_with=SeedPhrase"`

	// SeedPhrase derives the seed from a phrase instead of a number.
	SeedPhrase string `yaml:"seedPhrase"`

	// Concurrency is how many deliveries may run in parallel (1 = sequential).
	Concurrency int `yaml:"concurrency" validate:"gte=1,lte=64"`

	// Participants is the ordered participant list.
	Participants []ParticipantConfig `yaml:"participants" validate:"dive"`

	// Transport selects where notifications go.
	Transport TransportConfig `yaml:"transport"`
}

// ParticipantConfig describes one participant. Exactly one of Phone and Email is set.
type ParticipantConfig struct {
	Name  string `yaml:"name" validate:"required"`
	Phone string `yaml:"phone" validate:"required_without=Email,excluded_with=Email"`
	Email string `yaml:"email" validate:"required_without=Phone,excluded_with=Phone"`
}

// TransportConfig configures notification delivery.
type TransportConfig struct {
	// Kind is "log" (default) or "nats".
	Kind string `yaml:"kind" validate:"oneof=log nats"`

	// NATSURL is the server URL, required when Kind is "nats".
	NATSURL string `yaml:"natsUrl" validate:"required_if=Kind nats"`

	// SubjectPrefix is prepended to "<kind>" to build publish subjects.
	SubjectPrefix string `yaml:"subjectPrefix"`

	// MaxAttempts is how many times each message is tried (1 = no retry).
	MaxAttempts int `yaml:"maxAttempts" validate:"gte=1,lte=10"`
}

// LoadConfig reads, defaults and validates a YAML configuration file.
//
// Parameters:
//   - path: Path to the YAML file
//
// Returns:
//   - *Config: Validated configuration
//   - error: Read, parse or validation failure
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse defaults and validates configuration from YAML bytes.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	SetDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
