package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/arloliu/santa/algorithm"
	"github.com/arloliu/santa/types"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the configuration for structural and logical consistency.
//
// Rules:
//   - Field constraints declared in the validate struct tags
//   - At least types.MinParticipants participants
//   - Participant names are unique
//
// Returns:
//   - error: Validation error naming the offending field, nil if valid
func (cfg *Config) Validate() error {
	if err := validate.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return describe(fieldErrs)
		}

		return err
	}

	if len(cfg.Participants) < types.MinParticipants {
		return fmt.Errorf("%w: need at least %d participants, got %d",
			types.ErrInsufficientParticipants, types.MinParticipants, len(cfg.Participants))
	}

	names := lo.Map(cfg.Participants, func(p ParticipantConfig, _ int) string { return p.Name })
	if dups := lo.FindDuplicates(names); len(dups) > 0 {
		return fmt.Errorf("duplicate participant names: %s", strings.Join(dups, ", "))
	}

	return nil
}

// ValidateWithWarnings logs non-fatal observations about the configuration.
//
// Parameters:
//   - logger: Logger instance for warning output
func (cfg *Config) ValidateWithWarnings(logger types.Logger) {
	if cfg.Algorithm == algorithm.InOrderName {
		logger.Warn("in-order algorithm is predictable; everyone can infer their Secret Santa from the list order")
	}
	if cfg.Seed != nil || cfg.SeedPhrase != "" {
		logger.Warn("random draw is seeded; anyone with the seed can reproduce the pairings")
	}
	if cfg.Concurrency > len(cfg.Participants) {
		logger.Warn("concurrency exceeds participant count",
			"concurrency", cfg.Concurrency,
			"participants", len(cfg.Participants),
		)
	}
}

func describe(errs validator.ValidationErrors) error {
	msgs := lo.Map(errs, func(fe validator.FieldError, _ int) string {
		if fe.Param() != "" {
			return fmt.Sprintf("%s failed %q (%s)", fe.Namespace(), fe.Tag(), fe.Param())
		}

		return fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag())
	})

	return errors.New(strings.Join(msgs, "; "))
}
