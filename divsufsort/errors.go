package divsufsort

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the exported entry points for invalid
// arguments, before any buffer is touched. Internal invariant violations are
// raised separately with errs.Assert (errStackOverflow in stack.go) and
// turned into a returned error by errs.Recover at the boundary.
var (
	errNegativeLength = errors.New("divsufsort: length must be non-negative")
	errBadRange       = errors.New("divsufsort: start/length out of range of input")
	errShortSA        = errors.New("divsufsort: sa slice shorter than length")
	errTooShort       = errors.New("divsufsort: length must be at least 2")
	errBadIndexCount  = errors.New("divsufsort: idxCount must be at least 1")
	errShortIndexes   = errors.New("divsufsort: indexes slice shorter than idxCount")
)

// checkRange validates the (start, length) window against input and sa, the
// same bounds every exported entry point requires before touching a buffer.
func checkRange(input []byte, sa []int32, start, length int32) error {
	if length < 0 {
		return errNegativeLength
	}

	// The algorithm inspects buffer[n-1] and buffer[n-2] unconditionally
	// while bootstrapping type B* suffixes, so it needs at least two symbols.
	// Callers that must handle 0- or 1-byte inputs (like the BWT codec) special-case
	// them before reaching this engine.
	if length < 2 {
		return errTooShort
	}

	if start < 0 || int64(start)+int64(length) > int64(len(input)) {
		return fmt.Errorf("%w: start=%d length=%d inputLen=%d", errBadRange, start, length, len(input))
	}

	if int32(len(sa)) < length {
		return fmt.Errorf("%w: saLen=%d length=%d", errShortSA, len(sa), length)
	}

	return nil
}
