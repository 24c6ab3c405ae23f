package quant

import (
	"errors"
	"fmt"
)

// Sentinel error kinds, per the error handling design: exported wrapped
// values rather than panics, so callers can errors.Is against a stable kind.
var (
	// ErrUnsupportedConfiguration covers an nbits value outside the
	// supported set, an axis outside {0,1}, a group_size that doesn't
	// divide numel(W), or a packing id with no registered codec.
	ErrUnsupportedConfiguration = errors.New("quant: unsupported configuration")

	// ErrShapeMismatch covers a packed tensor whose length does not match
	// the shape its meta declares.
	ErrShapeMismatch = errors.New("quant: shape mismatch")
)

func errUnsupported(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrUnsupportedConfiguration)
}

func errShape(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrShapeMismatch)
}
