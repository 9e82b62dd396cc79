package gen

import (
	"github.com/segmentio/fasthash/fnv1a"
)

// hashEngine is a deterministic stand-in for the native engine. It hashes
// seed, dimension and block coordinates into codes drawn from a fixed
// palette, so different seeds produce different layouts while repeated
// queries stay stable.
type hashEngine struct {
	// emit, when non-zero, is returned for every sample instead of a
	// palette code.
	emit int32
	// fillStatus, when non-zero, is reported as the status of every bulk
	// fill.
	fillStatus int32
}

func (e *hashEngine) Init(version Version, flags Flags) Handle {
	return &hashHandle{eng: e, version: version, flags: flags}
}

type hashHandle struct {
	eng     *hashEngine
	version Version
	flags   Flags

	seeded bool
	seed   int64
	dim    Dimension
}

// palette holds known biome codes the fake engine emits.
var palette = []int32{0, 1, 2, 3, 4, 5, 6, 7, 21, 35, 37}

func (h *hashHandle) ApplySeed(dim Dimension, seed int64) {
	h.seeded, h.dim, h.seed = true, dim, seed
}

func (h *hashHandle) code(x, y, z int32) int32 {
	if h.eng.emit != 0 {
		return h.eng.emit
	}
	hv := fnv1a.Init64
	hv = fnv1a.AddUint64(hv, uint64(h.seed))
	hv = fnv1a.AddUint64(hv, uint64(int64(h.dim)))
	hv = fnv1a.AddUint64(hv, uint64(uint32(x)))
	hv = fnv1a.AddUint64(hv, uint64(uint32(y)))
	hv = fnv1a.AddUint64(hv, uint64(uint32(z)))
	return palette[hv%uint64(len(palette))]
}

func (h *hashHandle) BiomeAt(scale Scale, x, y, z int32) int32 {
	if !h.seeded {
		return QueryFailed
	}
	return h.code(x*int32(scale), y*int32(scale), z*int32(scale))
}

func (h *hashHandle) MinCacheSize(r Region) int {
	return r.Volume()
}

func (h *hashHandle) GenBiomes(buf []int32, r Region) int32 {
	if h.eng.fillStatus != 0 {
		return h.eng.fillStatus
	}
	if !h.seeded {
		return 1
	}
	for y := int32(0); y < r.SizeY; y++ {
		for z := int32(0); z < r.SizeZ; z++ {
			for x := int32(0); x < r.SizeX; x++ {
				i := int(y)*int(r.SizeX)*int(r.SizeZ) + int(z)*int(r.SizeX) + int(x)
				buf[i] = h.code((r.X+x)*int32(r.Scale), (r.Y+y)*int32(r.Scale), (r.Z+z)*int32(r.Scale))
			}
		}
	}
	return 0
}
