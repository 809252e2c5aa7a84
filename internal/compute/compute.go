// Package compute provides the parallel transition backends that advance
// a Game of Life grid by one generation. All backends compute from a
// snapshot of the current buffer into a separate next buffer, never in
// place, so the result is independent of evaluation order.
package compute

import "fmt"

// Stepper advances a grid by one generation. Implementations read cur and
// write next; the two must be distinct slices of length w*h. Workers write
// disjoint indices of next, so callers need no locking around Step.
type Stepper interface {
	// Name identifies the backend, e.g. for log output.
	Name() string
	// Step computes the next generation of cur into next.
	Step(cur, next []uint8, w, h int) error
	// Close releases any device resources held by the backend.
	Close() error
}

// New constructs the named backend for a w*h grid. Backend construction
// failures (no OpenCL platform, binary built without the cl tag) are
// returned to the caller and are fatal at startup.
func New(backend string, w, h int) (Stepper, error) {
	switch backend {
	case "cpu":
		return newCPUStepper(), nil
	case "opencl":
		return newOpenCLStepper(w, h)
	default:
		return nil, fmt.Errorf("unknown compute backend %q", backend)
	}
}
