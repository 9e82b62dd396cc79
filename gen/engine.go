// Package gen wraps an external, native biome generation engine behind a
// safe, checked API. The engine itself is an opaque black box reached
// through the Engine and Handle interfaces; gen owns the lifecycle of the
// generator state, sizes and fills region caches, and converts the
// engine's raw integer codes and failure sentinels into typed values the
// caller can handle.
//
// A Generator must not have ApplySeed called concurrently with any query
// or fill that reads it. Independent Generators are fully isolated and may
// be used from separate goroutines, which is the intended way to scale out
// generation work.
package gen

// Engine is the boundary to the native generation engine. It is consumed,
// never implemented, by this package: bindings to the real engine live
// outside the module, next to whatever build glue links the native
// library. NopEngine is available for wiring code paths without it.
type Engine interface {
	// Init allocates and initialises engine state for the given version
	// and flags, returning the opaque handle all other operations act on.
	// Initialisation cannot fail at this layer; an invalid version value
	// is the engine's responsibility.
	Init(version Version, flags Flags) Handle
}

// Handle is opaque, engine-owned generator state. All methods mirror the
// native call interface one to one and perform no checking of their own;
// Generator and Cache add the checks on top.
type Handle interface {
	// ApplySeed points the generator state at a seed and dimension. Each
	// call fully supersedes the previous seed and dimension.
	ApplySeed(dim Dimension, seed int64)
	// BiomeAt computes the raw biome code at a single point, returning
	// QueryFailed when the engine cannot answer, most commonly because no
	// seed was applied yet.
	BiomeAt(scale Scale, x, y, z int32) int32
	// MinCacheSize reports the minimum buffer length, in points, that a
	// bulk fill of the region requires for the handle's current version.
	MinCacheSize(r Region) int
	// GenBiomes bulk-computes the biome codes of every point in the
	// region into buf and returns the engine's status code, zero on
	// success. buf must be at least MinCacheSize(r) long.
	GenBiomes(buf []int32, r Region) int32
}

// QueryFailed is the sentinel code BiomeAt returns when the engine signals
// failure on a point query.
const QueryFailed int32 = -1
