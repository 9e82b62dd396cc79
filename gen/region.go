package gen

import "github.com/go-gl/mathgl/mgl64"

// Scale is the sampling granularity of a query or region.
type Scale int32

const (
	// ScaleBlock samples one biome per block.
	ScaleBlock Scale = 1
	// ScaleQuarter samples one biome per 4x4x4 block cell, the engine's
	// native biome resolution.
	ScaleQuarter Scale = 4
)

// Region describes a rectangular volume of sample points for which biomes
// may be bulk-computed. Origin and sizes are measured in units of Scale,
// so a ScaleQuarter region covers four blocks per unit along each axis.
type Region struct {
	// Scale is the sampling granularity of the region.
	Scale Scale
	// X, Y and Z form the origin of the region.
	X, Y, Z int32
	// SizeX, SizeY and SizeZ are the extents of the region along each
	// axis, in sample points. All three must be positive.
	SizeX, SizeY, SizeZ int32
}

// Validate checks the Region invariants: positive extents and a
// recognised scale.
func (r Region) Validate() error {
	if r.SizeX <= 0 || r.SizeY <= 0 || r.SizeZ <= 0 {
		return ErrInvalidRegion
	}
	switch r.Scale {
	case ScaleBlock, ScaleQuarter:
		return nil
	}
	return ErrInvalidRegion
}

// Volume returns the number of sample points the region contains.
func (r Region) Volume() int {
	return int(r.SizeX) * int(r.SizeY) * int(r.SizeZ)
}

// Contains reports if the sample point (x, y, z), relative to the region
// origin, falls inside the region.
func (r Region) Contains(x, y, z int32) bool {
	return x >= 0 && y >= 0 && z >= 0 && x < r.SizeX && y < r.SizeY && z < r.SizeZ
}

// CentreOf returns the block-space centre of the sample cell at (x, y, z)
// relative to the region origin. Useful when rendering a region: the
// centre of a ScaleQuarter cell sits two blocks into the cell.
func (r Region) CentreOf(x, y, z int32) mgl64.Vec3 {
	s := float64(r.Scale)
	return mgl64.Vec3{
		(float64(r.X+x) + 0.5) * s,
		(float64(r.Y+y) + 0.5) * s,
		(float64(r.Z+z) + 0.5) * s,
	}
}
