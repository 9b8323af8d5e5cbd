// SPDX-License-Identifier: MIT

package posespace

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/posespace/regression"
)

var (
	// ErrInconsistentSample indicates a sample whose dimensions differ from the first sample.
	ErrInconsistentSample = errors.New("posespace: sample dimensions differ from the sample set")

	// ErrNoFeatures is regression.ErrNoFeatures: samples with neither scalar
	// nor rotation inputs.
	ErrNoFeatures = regression.ErrNoFeatures

	// ErrUnknownOutputMode indicates an OutputMode other than Absolute or Relative.
	ErrUnknownOutputMode = errors.New("posespace: unknown output mode")

	// ErrUnknownSpace is regression.ErrUnknownSpace, re-exported for callers.
	ErrUnknownSpace = regression.ErrUnknownSpace

	// ErrInputDimension is regression.ErrInputDimension, re-exported for callers.
	ErrInputDimension = regression.ErrInputDimension
)

// Operation tags used in error wrapping.
const (
	opSetSamples = "SetSamples"
	opSetParams  = "SetParams"
	opFit        = "Fit"
	opEvaluate   = "Evaluate"
)

func interpolatorErrorf(op string, err error) error {
	return fmt.Errorf("posespace.%s: %w", op, err)
}

func sampleErrorf(i int, err error) error {
	return fmt.Errorf("sample %d: %w", i, err)
}
