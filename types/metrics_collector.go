package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and must be thread-safe, since
// deliveries may be recorded from parallel goroutines.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	PairingMetrics
	DeliveryMetrics
}

// PairingMetrics defines metrics for pairing generation.
type PairingMetrics interface {
	// RecordParticipants sets the participant count of the current group (gauge metric).
	RecordParticipants(count int)

	// RecordPairingsGenerated records one pairing generation run.
	//
	// Parameters:
	//   - algorithm: Algorithm name ("in-order", "random-closed-loop", ...)
	//   - count: Number of pairings produced
	//   - duration: Time taken in seconds
	RecordPairingsGenerated(algorithm string, count int, duration float64)

	// RecordInvalidPairings records an algorithm output that failed cycle verification.
	RecordInvalidPairings(algorithm string)
}

// DeliveryMetrics defines metrics for participant notification.
type DeliveryMetrics interface {
	// RecordDelivery records one message handed to a contact method.
	//
	// Parameters:
	//   - kind: Contact kind ("phone", "email", ...)
	RecordDelivery(kind string)
}
