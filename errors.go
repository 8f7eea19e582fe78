package cubesolver

import "errors"

// Sentinel errors for the cubesolver package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("cubesolver: invalid move notation")

	// State errors
	ErrInvalidState = errors.New("cubesolver: state is not reachable from the solved cube")

	// Solver faults. Both indicate an inconsistency between the stage
	// chain and the generator algebra rather than a bad input; a solve
	// that hits one is aborted with no partial result.
	ErrStageExhausted = errors.New("cubesolver: stage search exhausted its bound")
	ErrChainDefect    = errors.New("cubesolver: stage tables failed verification")
)
