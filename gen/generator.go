package gen

import (
	"github.com/chunkworks/biomegen/gen/biome"
)

// Generator owns the opaque state of one engine generator. The zero value
// is not usable; create a Generator through New. A Generator is safe for
// concurrent point queries and cache fills, but ApplySeed must not run
// concurrently with anything else reading the same Generator.
type Generator struct {
	h Handle
}

// New initialises a generator on the engine for the given version and
// flags. Construction never fails at this layer: an out-of-range version
// value is forwarded to, and handled by, the engine.
func New(e Engine, version Version, flags Flags) *Generator {
	return &Generator{h: e.Init(version, flags)}
}

// ApplySeed points the generator at a seed and dimension. Generation
// without a seed applied first fails, so this must be called before
// BiomeAt or Cache.Fill. ApplySeed may be called again at any time to
// re-seed the generator; caches filled under the previous seed keep their
// data until they are re-filled.
func (g *Generator) ApplySeed(dim Dimension, seed int64) {
	g.h.ApplySeed(dim, seed)
}

// BiomeAt returns the biome at the given point and scale. It returns
// ErrQueryFailed when the engine signals failure, typically on a
// generator without a seed, and a *biome.UnknownCodeError when the engine
// emits a code this package has no mapping for.
//
// For consistent surface biomes, query with y at the build limit.
func (g *Generator) BiomeAt(scale Scale, x, y, z int32) (biome.Biome, error) {
	code := g.h.BiomeAt(scale, x, y, z)
	if code == QueryFailed {
		return 0, ErrQueryFailed
	}
	return biome.ByCode(code)
}

// MinCacheSize returns the minimum buffer length, in points, that a bulk
// fill of the region requires. The result depends on the generator's
// version, not only on the region, so it is recomputed on every call and
// must never be reused across generators.
func (g *Generator) MinCacheSize(r Region) int {
	return g.h.MinCacheSize(r)
}

// NewCache binds a Cache to the generator for the given region. The
// buffer is allocated at exactly the capacity the engine reports for this
// generator and region; no biome data is computed until Fill is called.
// NewCache returns ErrInvalidRegion if the region fails Validate.
func (g *Generator) NewCache(r Region) (*Cache, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &Cache{
		gen:    g,
		region: r,
		buf:    make([]int32, g.h.MinCacheSize(r)),
	}, nil
}
