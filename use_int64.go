//go:build !use_int32

package clipper

// CInt is the coordinate type used throughout the package.
type CInt = int64

// rangeLimit bounds input coordinates so that slope and intersection
// arithmetic stays exact enough for topological decisions.
const rangeLimit CInt = 0x3FFFFFFFFFFFFFFF
