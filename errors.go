package clipper

import "errors"

var (
	// ErrOpenClipPath is returned by AddPath when an open path is tagged
	// as a clip path. Only subject paths may be open.
	ErrOpenClipPath = errors.New("clipper: only subject paths may be open")

	// ErrOutOfRange is returned when an input coordinate exceeds the
	// supported coordinate range, or when a PolyPath child index is
	// invalid.
	ErrOutOfRange = errors.New("clipper: value out of range")

	// ErrExecuteLocked is returned by a re-entrant Execute call.
	ErrExecuteLocked = errors.New("clipper: execution already in progress")
)

// ClippingError reports an internal inconsistency detected while
// assembling output polygons. The run is aborted; results are discarded.
type ClippingError struct {
	Op string
}

func (e *ClippingError) Error() string {
	return "clipper: internal error in " + e.Op
}
