package config

import (
	"fmt"

	"github.com/arloliu/santa/algorithm"
	"github.com/arloliu/santa/contact"
	"github.com/arloliu/santa/types"
)

// BuildParticipants converts the participant list into people with validated contacts.
//
// Parameters:
//   - tr: Transport every contact delivers through (nil uses the contact default)
//   - logger: Logger for delivery failures (nil discards)
//
// Returns:
//   - []types.Person: Participants in configuration order
//   - error: types.ErrInvalidFormat wrapped with the participant name
func (cfg *Config) BuildParticipants(tr types.Transport, logger types.Logger) ([]types.Person, error) {
	var opts []contact.Option
	if tr != nil {
		opts = append(opts, contact.WithTransport(tr))
	}
	if logger != nil {
		opts = append(opts, contact.WithLogger(logger))
	}

	people := make([]types.Person, 0, len(cfg.Participants))
	for _, p := range cfg.Participants {
		var (
			method types.ContactMethod
			err    error
		)
		if p.Phone != "" {
			method, err = contact.NewPhoneNumber(p.Phone, opts...)
		} else {
			method, err = contact.NewEmail(p.Email, opts...)
		}
		if err != nil {
			return nil, fmt.Errorf("participant %q: %w", p.Name, err)
		}

		people = append(people, types.NewPerson(p.Name, method))
	}

	return people, nil
}

// Source returns the random source the configuration asks for.
//
// Returns:
//   - algorithm.RandSource: Seeded source, or nil for a system-seeded draw
func (cfg *Config) Source() algorithm.RandSource {
	switch {
	case cfg.Seed != nil:
		return algorithm.NewSeededSource(*cfg.Seed)
	case cfg.SeedPhrase != "":
		return algorithm.NewSeededSource(algorithm.SeedFromPhrase(cfg.SeedPhrase))
	default:
		return nil
	}
}

// BuildAlgorithm resolves the configured algorithm on the configured source.
//
// Returns:
//   - types.Algorithm: Resolved algorithm
//   - error: types.ErrUnknownAlgorithm for an unsupported name
func (cfg *Config) BuildAlgorithm() (types.Algorithm, error) {
	return algorithm.ByName(cfg.Algorithm, cfg.Source())
}
