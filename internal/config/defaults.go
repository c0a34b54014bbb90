package config

import (
	"strings"

	"github.com/arloliu/santa/algorithm"
	"github.com/arloliu/santa/transport"
)

// DefaultConfig returns a Config with every optional field at its default.
//
// Returns:
//   - Config: Configuration with default values and no participants
func DefaultConfig() Config {
	return Config{
		Algorithm:   algorithm.RandomClosedLoopName,
		Concurrency: 1,
		Transport: TransportConfig{
			Kind:          TransportLog,
			SubjectPrefix: transport.DefaultSubjectPrefix,
			MaxAttempts:   1,
		},
	}
}

// SetDefaults fills in missing configuration values.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	cfg.Algorithm = strings.ToLower(strings.TrimSpace(cfg.Algorithm))
	if cfg.Algorithm == "" {
		cfg.Algorithm = defaults.Algorithm
	}
	if cfg.Concurrency == 0 {
		cfg.Concurrency = defaults.Concurrency
	}

	cfg.Transport.Kind = strings.ToLower(strings.TrimSpace(cfg.Transport.Kind))
	if cfg.Transport.Kind == "" {
		cfg.Transport.Kind = defaults.Transport.Kind
	}
	if cfg.Transport.SubjectPrefix == "" {
		cfg.Transport.SubjectPrefix = defaults.Transport.SubjectPrefix
	}
	if cfg.Transport.MaxAttempts == 0 {
		cfg.Transport.MaxAttempts = defaults.Transport.MaxAttempts
	}

	for i := range cfg.Participants {
		p := &cfg.Participants[i]
		p.Name = strings.TrimSpace(p.Name)
		p.Phone = strings.TrimSpace(p.Phone)
		p.Email = strings.TrimSpace(p.Email)
	}
}
