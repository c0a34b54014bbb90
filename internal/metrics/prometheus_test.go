package metrics

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPrometheusCollector(t *testing.T) {
	t.Run("registers lazily", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		_ = NewPrometheus(reg, "test")

		families, err := reg.Gather()
		require.NoError(t, err)
		require.Empty(t, families)
	})

	t.Run("records pairing metrics", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		p := NewPrometheus(reg, "test")

		p.RecordParticipants(5)
		p.RecordPairingsGenerated("in-order", 5, 0.0001)
		p.RecordPairingsGenerated("in-order", 5, 0.0002)
		p.RecordInvalidPairings("custom")

		require.InDelta(t, 5, testutil.ToFloat64(p.participants), 0)
		require.InDelta(t, 2, testutil.ToFloat64(p.generations.WithLabelValues("in-order")), 0)
		require.InDelta(t, 10, testutil.ToFloat64(p.pairings.WithLabelValues("in-order")), 0)
		require.InDelta(t, 1, testutil.ToFloat64(p.invalidPairings.WithLabelValues("custom")), 0)
		require.Equal(t, 1, testutil.CollectAndCount(p.generationLatency))
	})

	t.Run("records deliveries concurrently", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		p := NewPrometheus(reg, "")

		var wg sync.WaitGroup
		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				p.RecordDelivery("email")
			}()
		}
		wg.Wait()

		require.InDelta(t, 20, testutil.ToFloat64(p.deliveries.WithLabelValues("email")), 0)

		families, err := reg.Gather()
		require.NoError(t, err)
		names := make([]string, 0, len(families))
		for _, f := range families {
			names = append(names, f.GetName())
		}
		require.Contains(t, names, "santa_notify_deliveries_total")
	})
}
