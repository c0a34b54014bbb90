package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/arloliu/santa/internal/logging"
)

func newValidateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate a configuration file and its contacts",
		Long: `Validate loads the configuration, checks every field and builds each
participant's contact method without drawing or delivering anything.

Examples:
  # Validate the default santa.yaml
  santa validate

  # Validate another file
  santa validate --config family.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			if _, err := cfg.BuildParticipants(nil, nil); err != nil {
				return err
			}
			if _, err := cfg.BuildAlgorithm(); err != nil {
				return err
			}

			cfg.ValidateWithWarnings(logging.NewText(cmd.ErrOrStderr(), slog.LevelWarn))
			cmd.Printf("%s: %d participants, algorithm %s, transport %s\n",
				*configPath, len(cfg.Participants), cfg.Algorithm, cfg.Transport.Kind)

			return nil
		},
	}
}
