package cubevision

import "errors"

// Sentinel errors for the cubevision package.
var (
	// Scan reconstruction errors
	ErrMalformedScan   = errors.New("cubevision: face scan does not form a 3x3 grid")
	ErrDuplicateCenter = errors.New("cubevision: duplicate center color across faces")
	ErrUnmappedColor   = errors.New("cubevision: square color matches no center color")
	ErrNotOnFace       = errors.New("cubevision: cubie is not on the requested face")

	// Parsing errors
	ErrInvalidNotation = errors.New("cubevision: invalid move notation")
	ErrInvalidState    = errors.New("cubevision: invalid cube state")

	// Engine errors
	ErrRotationInProgress = errors.New("cubevision: rotation already in progress")

	// Solver errors
	ErrUnsolvable = errors.New("cubevision: cube state is not solvable")
)
