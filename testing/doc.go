// Package testing provides test utilities for the santa library.
//
// It follows Go's convention of providing testing utilities in a dedicated
// package (similar to net/http/httptest).
//
// Key utilities:
//   - Recorder: types.Transport that records every delivery in memory
//   - StartEmbeddedNATS: In-process NATS server for transport tests
//   - NewTestLogger: types.Logger writing through testing.T
//
// Example usage:
//
//	import (
//	    "testing"
//	    santatest "github.com/arloliu/santa/testing"
//	)
//
//	func TestNotify(t *testing.T) {
//	    rec := santatest.NewRecorder()
//	    phone, _ := contact.NewPhoneNumber("441122334455", contact.WithTransport(rec))
//	    phone.Deliver("hi")
//	    require.Equal(t, 1, rec.Count("+441122334455"))
//	}
package testing
