package terrain

import "errors"

// Sentinel error kinds for the four error categories of spec §7. Wrap with
// fmt.Errorf("...: %w", ErrX) at the call site so errors.Is keeps working
// after context is added.
var (
	// ErrInvalidInput means the map size is not a positive multiple of
	// BlocksPerAxis, or the compression threshold does not divide BlockSize.
	// Fatal: Generate aborts without touching the previous mesh.
	ErrInvalidInput = errors.New("navmesh: invalid input")

	// ErrOracleFault means the heightmap oracle returned NaN. The rasteriser
	// treats the affected cell as impassable on every layer but Air; this
	// error is never returned from Generate and nothing logs it.
	ErrOracleFault = errors.New("navmesh: oracle fault")

	// ErrInternalInconsistency means a labelled neighbour already carries a
	// different positive label than the one being assigned during DFS. It
	// indicates a bug in neighbour symmetry; Generate logs it as a warning
	// and continues without overwriting the existing label.
	ErrInternalInconsistency = errors.New("navmesh: internal inconsistency")

	// ErrMissingMarkerLeaf means a marker position falls outside the map or
	// on an impassable leaf. The marker is left unbound; nothing in this
	// module returns this error.
	ErrMissingMarkerLeaf = errors.New("navmesh: marker has no leaf")
)
