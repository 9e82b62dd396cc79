package gen

import (
	"github.com/chunkworks/biomegen/gen/biome"
)

// fillState tracks whether the buffer of a Cache holds valid data. It is
// kept explicitly: buffer length or contents alone cannot distinguish a
// successful fill from a failed one that still wrote bytes.
type fillState uint8

const (
	unfilled fillState = iota
	filled
	failed
)

// Cache holds bulk-computed biome codes for one Region of a Generator.
// Lookups against a Cache are plain slice reads, which makes it the way
// to query many points of a region cheaply after a single engine call.
//
// A Cache reads from the Generator it was bound to and must not be filled
// concurrently with ApplySeed on that Generator.
type Cache struct {
	gen    *Generator
	region Region
	buf    []int32
	state  fillState
}

// Fill bulk-computes the biomes of the cache's region into its buffer.
// The generator must have a seed applied; without one the engine reports
// a non-zero status and Fill returns a *FillError carrying it. On any
// failure the cache stays logically unfilled and every At call keeps
// failing with ErrIndexOutOfBounds, even though the engine may have
// written into the buffer.
//
// Re-seeding the generator does not invalidate a filled cache; the cache
// keeps the previous seed's data until Fill is called again.
func (c *Cache) Fill() error {
	c.state = unfilled

	// The capacity is a function of the generator's version, so it is
	// re-read right before the engine writes and again after, as the
	// engine reports the final length of what it produced.
	c.resize(c.gen.h.MinCacheSize(c.region))
	status := c.gen.h.GenBiomes(c.buf, c.region)
	c.resize(c.gen.h.MinCacheSize(c.region))

	if status != 0 {
		c.state = failed
		return &FillError{Status: status}
	}
	c.state = filled
	return nil
}

func (c *Cache) resize(n int) {
	if n <= cap(c.buf) {
		c.buf = c.buf[:n]
		return
	}
	buf := make([]int32, n)
	copy(buf, c.buf)
	c.buf = buf
}

// At returns the biome stored for the point (x, y, z) relative to the
// region origin. It returns ErrIndexOutOfBounds for any coordinate
// outside the region's extents, negative coordinates included, and for
// every lookup against a cache that is not filled. A stored code with no
// known mapping yields a *biome.UnknownCodeError.
func (c *Cache) At(x, y, z int32) (biome.Biome, error) {
	if c.state != filled || !c.region.Contains(x, y, z) {
		return 0, ErrIndexOutOfBounds
	}
	i := int(y)*int(c.region.SizeX)*int(c.region.SizeZ) + int(z)*int(c.region.SizeX) + int(x)
	if i >= len(c.buf) {
		return 0, ErrIndexOutOfBounds
	}
	return biome.ByCode(c.buf[i])
}

// Biomes returns the raw code buffer of a filled cache for bulk
// consumption, laid out as index = y*sizeX*sizeZ + z*sizeX + x. It
// returns nil while the cache is not filled. The slice is shared with the
// cache and must not be modified.
func (c *Cache) Biomes() []int32 {
	if c.state != filled {
		return nil
	}
	return c.buf
}

// Region returns the region the cache was bound to.
func (c *Cache) Region() Region {
	return c.region
}

// Filled reports if the last Fill call succeeded.
func (c *Cache) Filled() bool {
	return c.state == filled
}
