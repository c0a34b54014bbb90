// Package transport provides built-in delivery transports for contact methods.
//
// A transport is the external collaborator a ContactMethod hands its message to.
// The package includes:
//
//   - Log: Writes each delivery to a types.Logger (default for contacts)
//   - NATS: Publishes each delivery as a JSON message on a NATS subject
//   - Retry: Wraps another transport and retries failed sends with jittered backoff
//
// Custom transports (SMS gateways, SMTP relays) can be implemented by
// satisfying the types.Transport interface.
package transport
