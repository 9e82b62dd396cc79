package gen

// NopEngine is an Engine that never produces biome data: point queries
// report failure and bulk fills return a non-zero status. It may be used
// to wire code paths that need a Generator without linking the native
// engine.
type NopEngine struct{}

// Init ...
func (NopEngine) Init(Version, Flags) Handle {
	return nopHandle{}
}

type nopHandle struct{}

func (nopHandle) ApplySeed(Dimension, int64) {}

func (nopHandle) BiomeAt(Scale, int32, int32, int32) int32 {
	return QueryFailed
}

func (nopHandle) MinCacheSize(r Region) int {
	return r.Volume()
}

func (nopHandle) GenBiomes([]int32, Region) int32 {
	return 1
}
