package main

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/arloliu/santa"
	"github.com/arloliu/santa/internal/config"
	"github.com/arloliu/santa/internal/logging"
	"github.com/arloliu/santa/internal/metrics"
	"github.com/arloliu/santa/transport"
	"github.com/arloliu/santa/types"
)

type drawFlags struct {
	algorithm   string
	seed        uint64
	seedPhrase  string
	notify      bool
	greet       bool
	metricsFile string
	logLevel    string
}

func newDrawCmd(configPath *string) *cobra.Command {
	flags := &drawFlags{}

	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Draw pairings and print them",
		Long: `Draw loads the configuration, generates one set of pairings, checks
that they form a single closed loop and prints them as a table.

Examples:
  # Draw with the configured algorithm
  santa draw --config family.yaml

  # Reproduce a draw from a shared phrase and notify every giver
  santa draw --seed-phrase "north pole" --notify

  # Dump Prometheus metrics for the run
  santa draw --metrics-file santa.prom`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if err := applyDrawFlags(cmd, cfg, flags); err != nil {
				return err
			}

			return runDraw(cmd, cfg, flags)
		},
	}

	cmd.Flags().StringVar(&flags.algorithm, "algorithm", "", "override the configured algorithm (in-order, random-closed-loop, hamiltonian)")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "fixed random seed")
	cmd.Flags().StringVar(&flags.seedPhrase, "seed-phrase", "", "derive the random seed from a phrase")
	cmd.Flags().BoolVar(&flags.notify, "notify", false, "tell every giver who their recipient is")
	cmd.Flags().BoolVar(&flags.greet, "greet", false, "send every participant the greeting message first")
	cmd.Flags().StringVar(&flags.metricsFile, "metrics-file", "", "write Prometheus metrics in text format to this file")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	cmd.MarkFlagsMutuallyExclusive("seed", "seed-phrase")

	return cmd
}

// applyDrawFlags overrides configuration values with explicitly set flags and revalidates.
func applyDrawFlags(cmd *cobra.Command, cfg *config.Config, flags *drawFlags) error {
	if cmd.Flags().Changed("algorithm") {
		cfg.Algorithm = flags.algorithm
	}
	if cmd.Flags().Changed("seed") {
		seed := flags.seed
		cfg.Seed = &seed
		cfg.SeedPhrase = ""
	}
	if cmd.Flags().Changed("seed-phrase") {
		cfg.SeedPhrase = flags.seedPhrase
		cfg.Seed = nil
	}

	config.SetDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

func runDraw(cmd *cobra.Command, cfg *config.Config, flags *drawFlags) error {
	level, err := logging.ParseLevel(flags.logLevel)
	if err != nil {
		return err
	}
	logger := logging.NewText(cmd.ErrOrStderr(), level)

	runID := uuid.NewString()
	logger.Info("starting draw", "run", runID, "algorithm", cfg.Algorithm, "participants", len(cfg.Participants))
	cfg.ValidateWithWarnings(logger)

	tr, flush, closeTransport, err := openTransport(cfg, runID, logger)
	if err != nil {
		return err
	}
	defer closeTransport()

	people, err := cfg.BuildParticipants(tr, logger)
	if err != nil {
		return err
	}

	algo, err := cfg.BuildAlgorithm()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	s, err := santa.New(people, algo,
		santa.WithLogger(logger),
		santa.WithMetrics(metrics.NewPrometheus(reg, "")),
		santa.WithConcurrency(cfg.Concurrency),
	)
	if err != nil {
		return err
	}

	pairings := s.GeneratePairings()
	if err := s.Verify(pairings); err != nil {
		return err
	}

	assignments, err := s.Assignments(pairings)
	if err != nil {
		return err
	}
	renderAssignments(cmd.OutOrStdout(), assignments)

	if flags.greet {
		s.InformParticipants()
	}
	if flags.notify {
		if err := s.NotifyAssignments(pairings); err != nil {
			return err
		}
	}

	if err := flush(); err != nil {
		return fmt.Errorf("flush transport: %w", err)
	}

	if flags.metricsFile != "" {
		if err := prometheus.WriteToTextfile(flags.metricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	logger.Info("draw complete",
		"run", runID,
		"givers", lo.Map(assignments, func(a santa.Assignment, _ int) string { return a.Giver.Name() }),
	)

	return nil
}

// openTransport builds the configured transport.
//
// Returns:
//   - types.Transport: Transport every contact delivers through
//   - func() error: Flushes buffered deliveries
//   - func(): Releases the transport
//   - error: Connection failure
func openTransport(cfg *config.Config, runID string, logger types.Logger) (types.Transport, func() error, func(), error) {
	tr, flush, closeFn, err := dialTransport(cfg, runID, logger)
	if err != nil {
		return nil, nil, nil, err
	}

	if cfg.Transport.MaxAttempts > 1 {
		tr = transport.NewRetry(tr,
			transport.WithMaxAttempts(cfg.Transport.MaxAttempts),
			transport.WithRetryLogger(logger),
		)
	}

	return tr, flush, closeFn, nil
}

func dialTransport(cfg *config.Config, runID string, logger types.Logger) (types.Transport, func() error, func(), error) {
	if cfg.Transport.Kind != config.TransportNATS {
		return transport.NewLog(logger), func() error { return nil }, func() {}, nil
	}

	conn, err := nats.Connect(cfg.Transport.NATSURL, nats.Name("santa-"+runID))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connect to NATS: %w", err)
	}

	tr, err := transport.NewNATS(conn, transport.WithSubjectPrefix(cfg.Transport.SubjectPrefix))
	if err != nil {
		conn.Close()
		return nil, nil, nil, err
	}

	logger.Info("publishing notifications to NATS", "url", cfg.Transport.NATSURL, "prefix", cfg.Transport.SubjectPrefix)

	return tr, tr.Flush, conn.Close, nil
}

func renderAssignments(w io.Writer, assignments []santa.Assignment) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Giver", "Recipient", "Contact"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, a := range assignments {
		table.Append([]string{a.Giver.Name(), a.Recipient.Name(), a.Giver.Contact().Value()})
	}
	table.Render()
}
