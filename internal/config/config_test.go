package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/santa/algorithm"
	"github.com/arloliu/santa/internal/logger"
	santatest "github.com/arloliu/santa/testing"
	"github.com/arloliu/santa/types"
)

const validYAML = `
algorithm: Random-Closed-Loop
seedPhrase: north pole
concurrency: 2
participants:
  - name: Alice
    phone: "441122334455"
  - name: Bob
    email: bob@example.com
  - name: Charlie
    phone: "+441122334466"
`

func TestLoadConfig(t *testing.T) {
	t.Run("reads and defaults a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "santa.yaml")
		require.NoError(t, os.WriteFile(path, []byte(validYAML), 0o600))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		require.Equal(t, algorithm.RandomClosedLoopName, cfg.Algorithm)
		require.Equal(t, "north pole", cfg.SeedPhrase)
		require.Nil(t, cfg.Seed)
		require.Equal(t, 2, cfg.Concurrency)
		require.Len(t, cfg.Participants, 3)
		require.Equal(t, TransportLog, cfg.Transport.Kind)
		require.Equal(t, "santa.notify", cfg.Transport.SubjectPrefix)
		require.Equal(t, 1, cfg.Transport.MaxAttempts)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("participants: [::"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte(`
participants:
  - name: " Alice "
    phone: "441122334455"
  - name: Bob
    phone: "441122334456"
  - name: Charlie
    phone: "441122334457"
`))
	require.NoError(t, err)

	defaults := DefaultConfig()
	require.Equal(t, defaults.Algorithm, cfg.Algorithm)
	require.Equal(t, 1, cfg.Concurrency)
	require.Equal(t, defaults.Transport, cfg.Transport)
	require.Equal(t, "Alice", cfg.Participants[0].Name)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		cfg := DefaultConfig()
		cfg.Participants = []ParticipantConfig{
			{Name: "Alice", Phone: "441122334455"},
			{Name: "Bob", Email: "bob@example.com"},
			{Name: "Charlie", Phone: "441122334466"},
		}

		return cfg
	}

	t.Run("valid", func(t *testing.T) {
		cfg := base()
		require.NoError(t, cfg.Validate())
	})

	t.Run("too few participants", func(t *testing.T) {
		cfg := base()
		cfg.Participants = cfg.Participants[:2]
		require.ErrorIs(t, cfg.Validate(), types.ErrInsufficientParticipants)
	})

	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:    "unknown algorithm",
			mutate:  func(cfg *Config) { cfg.Algorithm = "bogo" },
			wantErr: "Config.Algorithm",
		},
		{
			name:    "seed and phrase together",
			mutate:  func(cfg *Config) { seed := uint64(1); cfg.Seed = &seed; cfg.SeedPhrase = "x" },
			wantErr: "Config.Seed",
		},
		{
			name:    "zero concurrency",
			mutate:  func(cfg *Config) { cfg.Concurrency = 0 },
			wantErr: "Config.Concurrency",
		},
		{
			name:    "participant without name",
			mutate:  func(cfg *Config) { cfg.Participants[1].Name = "" },
			wantErr: "Config.Participants[1].Name",
		},
		{
			name:    "participant without contact",
			mutate:  func(cfg *Config) { cfg.Participants[0].Phone = "" },
			wantErr: "Config.Participants[0].Phone",
		},
		{
			name:    "participant with both contacts",
			mutate:  func(cfg *Config) { cfg.Participants[0].Email = "alice@example.com" },
			wantErr: "Config.Participants[0].Phone",
		},
		{
			name:    "duplicate names",
			mutate:  func(cfg *Config) { cfg.Participants[2].Name = "Alice" },
			wantErr: "duplicate participant names: Alice",
		},
		{
			name:    "unknown transport",
			mutate:  func(cfg *Config) { cfg.Transport.Kind = "carrier-pigeon" },
			wantErr: "Config.Transport.Kind",
		},
		{
			name:    "too many attempts",
			mutate:  func(cfg *Config) { cfg.Transport.MaxAttempts = 50 },
			wantErr: "Config.Transport.MaxAttempts",
		},
		{
			name:    "nats without url",
			mutate:  func(cfg *Config) { cfg.Transport.Kind = TransportNATS },
			wantErr: "Config.Transport.NATSURL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateWithWarnings(t *testing.T) {
	seed := uint64(9)
	cfg := DefaultConfig()
	cfg.Algorithm = algorithm.InOrderName
	cfg.Seed = &seed
	cfg.Concurrency = 10

	// Exercises every warning branch; the test logger fails only on Fatal.
	cfg.ValidateWithWarnings(logger.NewTest(t))
}

func TestBuildParticipants(t *testing.T) {
	t.Run("builds contacts on the given transport", func(t *testing.T) {
		cfg, err := Parse([]byte(validYAML))
		require.NoError(t, err)

		rec := santatest.NewRecorder()
		people, err := cfg.BuildParticipants(rec, logger.NewTest(t))
		require.NoError(t, err)
		require.Len(t, people, 3)

		require.Equal(t, "Alice", people[0].Name())
		require.Equal(t, types.ContactPhone, people[0].Contact().Kind())
		require.Equal(t, "+441122334455", people[0].Contact().Value())
		require.Equal(t, types.ContactEmail, people[1].Contact().Kind())
		require.Equal(t, "+441122334466", people[2].Contact().Value())

		people[1].Contact().Deliver("hi")
		require.Equal(t, 1, rec.Count("bob@example.com"))
	})

	t.Run("wraps format errors with the participant name", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Participants = []ParticipantConfig{
			{Name: "Alice", Phone: "441122334455"},
			{Name: "Bob", Email: "bob.example.com"},
			{Name: "Charlie", Phone: "441122334466"},
		}

		_, err := cfg.BuildParticipants(nil, nil)
		require.ErrorIs(t, err, types.ErrInvalidFormat)
		require.Contains(t, err.Error(), `"Bob"`)
	})
}

func TestBuildAlgorithm(t *testing.T) {
	people := func(t *testing.T) []types.Person {
		t.Helper()

		cfg, err := Parse([]byte(validYAML))
		require.NoError(t, err)
		ps, err := cfg.BuildParticipants(nil, nil)
		require.NoError(t, err)

		return ps
	}(t)

	t.Run("seed phrase reproduces the draw", func(t *testing.T) {
		a := Config{Algorithm: algorithm.RandomClosedLoopName, SeedPhrase: "north pole"}
		b := Config{Algorithm: algorithm.HamiltonianName, SeedPhrase: "north pole"}

		algoA, err := a.BuildAlgorithm()
		require.NoError(t, err)
		algoB, err := b.BuildAlgorithm()
		require.NoError(t, err)

		require.Equal(t, algoA.GeneratePairings(people), algoB.GeneratePairings(people))
	})

	t.Run("numeric seed matches seeded source", func(t *testing.T) {
		seed := uint64(2026)
		cfg := Config{Algorithm: algorithm.RandomClosedLoopName, Seed: &seed}

		got, err := cfg.BuildAlgorithm()
		require.NoError(t, err)
		want := algorithm.NewRandomClosedLoop(algorithm.NewSeededSource(seed))

		require.Equal(t, want.GeneratePairings(people), got.GeneratePairings(people))
	})

	t.Run("unseeded uses a system source", func(t *testing.T) {
		cfg := Config{Algorithm: algorithm.RandomClosedLoopName}
		require.Nil(t, cfg.Source())

		got, err := cfg.BuildAlgorithm()
		require.NoError(t, err)
		require.NoError(t, types.VerifyPairings(got.GeneratePairings(people), len(people)))
	})

	t.Run("in-order", func(t *testing.T) {
		cfg := Config{Algorithm: algorithm.InOrderName}
		got, err := cfg.BuildAlgorithm()
		require.NoError(t, err)
		require.Equal(t, algorithm.InOrderName, got.Name())
	})

	t.Run("unknown", func(t *testing.T) {
		cfg := Config{Algorithm: "bogo"}
		_, err := cfg.BuildAlgorithm()
		require.ErrorIs(t, err, types.ErrUnknownAlgorithm)
	})
}
