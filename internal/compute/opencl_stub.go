//go:build !cl

package compute

import "errors"

// newOpenCLStepper reports that OpenCL support was not compiled in.
func newOpenCLStepper(int, int) (Stepper, error) {
	return nil, errors.New("opencl backend requires building with the 'cl' tag")
}
