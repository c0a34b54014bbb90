// Package metrics provides types.MetricsCollector implementations.
package metrics

import "github.com/arloliu/santa/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. It is the default collector when none is supplied.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Example:
//
//	s, err := santa.New(people, algo, santa.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// PairingMetrics implementation

// RecordParticipants discards the participant count metric.
func (n *NopMetrics) RecordParticipants(_ /* count */ int) {
	// No-op
}

// RecordPairingsGenerated discards the pairing generation metric.
func (n *NopMetrics) RecordPairingsGenerated(_ /* algorithm */ string, _ /* count */ int, _ /* duration */ float64) {
	// No-op
}

// RecordInvalidPairings discards the invalid pairings metric.
func (n *NopMetrics) RecordInvalidPairings(_ /* algorithm */ string) {
	// No-op
}

// DeliveryMetrics implementation

// RecordDelivery discards the delivery metric.
func (n *NopMetrics) RecordDelivery(_ /* kind */ string) {
	// No-op
}
