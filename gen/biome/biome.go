// Package biome enumerates the biome classifications the generation
// engine can emit and converts the engine's raw integer codes into them.
// The set of codes is closed per engine version but grows between
// versions, so conversion is always fallible: a code this package does
// not know yields an *UnknownCodeError carrying the raw value instead of
// being cast through unchecked.
package biome

import (
	"fmt"

	"github.com/brentp/intintmap"
)

// Biome is one biome classification. Its numeric value is the engine's
// raw code for the biome.
type Biome int32

const (
	Ocean                   Biome = 0
	Plains                  Biome = 1
	Desert                  Biome = 2
	WindsweptHills          Biome = 3
	Forest                  Biome = 4
	Taiga                   Biome = 5
	Swamp                   Biome = 6
	River                   Biome = 7
	NetherWastes            Biome = 8
	TheEnd                  Biome = 9
	FrozenOcean             Biome = 10
	FrozenRiver             Biome = 11
	SnowyPlains             Biome = 12
	SnowyMountains          Biome = 13
	MushroomFields          Biome = 14
	MushroomFieldShore      Biome = 15
	Beach                   Biome = 16
	DesertHills             Biome = 17
	WoodedHills             Biome = 18
	TaigaHills              Biome = 19
	MountainEdge            Biome = 20
	Jungle                  Biome = 21
	JungleHills             Biome = 22
	SparseJungle            Biome = 23
	DeepOcean               Biome = 24
	StonyShore              Biome = 25
	SnowyBeach              Biome = 26
	BirchForest             Biome = 27
	BirchForestHills        Biome = 28
	DarkForest              Biome = 29
	SnowyTaiga              Biome = 30
	SnowyTaigaHills         Biome = 31
	OldGrowthPineTaiga      Biome = 32
	GiantTreeTaigaHills     Biome = 33
	WindsweptForest         Biome = 34
	Savanna                 Biome = 35
	SavannaPlateau          Biome = 36
	Badlands                Biome = 37
	WoodedBadlands          Biome = 38
	BadlandsPlateau         Biome = 39
	SmallEndIslands         Biome = 40
	EndMidlands             Biome = 41
	EndHighlands            Biome = 42
	EndBarrens              Biome = 43
	WarmOcean               Biome = 44
	LukewarmOcean           Biome = 45
	ColdOcean               Biome = 46
	DeepWarmOcean           Biome = 47
	DeepLukewarmOcean       Biome = 48
	DeepColdOcean           Biome = 49
	DeepFrozenOcean         Biome = 50
	TheVoid                 Biome = 127
	SunflowerPlains         Biome = 129
	DesertLakes             Biome = 130
	WindsweptGravelHills    Biome = 131
	FlowerForest            Biome = 132
	TaigaMountains          Biome = 133
	SwampHills              Biome = 134
	IceSpikes               Biome = 140
	ModifiedJungle          Biome = 149
	ModifiedJungleEdge      Biome = 151
	OldGrowthBirchForest    Biome = 155
	TallBirchHills          Biome = 156
	DarkForestHills         Biome = 157
	SnowyTaigaMountains     Biome = 158
	GiantSpruceTaiga        Biome = 160
	GiantSpruceTaigaHills   Biome = 161
	ModifiedGravellyHills   Biome = 162
	WindsweptSavanna        Biome = 163
	ShatteredSavannaPlateau Biome = 164
	ErodedBadlands          Biome = 165
	ModifiedWoodedBadlands  Biome = 166
	ModifiedBadlandsPlateau Biome = 167
	BambooJungle            Biome = 168
	BambooJungleHills       Biome = 169
	SoulSandValley          Biome = 170
	CrimsonForest           Biome = 171
	WarpedForest            Biome = 172
	BasaltDeltas            Biome = 173
	DripstoneCaves          Biome = 174
	LushCaves               Biome = 175
	Meadow                  Biome = 177
	Grove                   Biome = 178
	SnowySlopes             Biome = 179
	JaggedPeaks             Biome = 180
	FrozenPeaks             Biome = 181
	StonyPeaks              Biome = 182
	DeepDark                Biome = 183
	MangroveSwamp           Biome = 184
	CherryGrove             Biome = 185
	PaleGarden              Biome = 186
)

// UnknownCodeError is returned when a raw code has no known biome
// mapping, a data-integrity signal that usually means the engine version
// is newer than this package. The raw code is preserved for diagnostics.
type UnknownCodeError struct {
	// Code is the raw code the engine emitted.
	Code int32
}

// Error ...
func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("biome code %v has no known mapping", e.Code)
}

// ByCode converts a raw engine code to the Biome it identifies. Codes
// without a known mapping return a *UnknownCodeError; converting a known
// Biome back through int32 yields the original code.
func ByCode(code int32) (Biome, error) {
	if _, ok := registry.Get(int64(code)); !ok {
		return 0, &UnknownCodeError{Code: code}
	}
	return Biome(code), nil
}

// Known reports if the code maps to a known Biome.
func Known(code int32) bool {
	_, ok := registry.Get(int64(code))
	return ok
}

// All returns every known Biome, ordered by code.
func All() []Biome {
	b := make([]Biome, len(all))
	for i, e := range all {
		b[i] = e.biome
	}
	return b
}

// String returns the biome's resource name, without namespace.
func (b Biome) String() string {
	if i, ok := registry.Get(int64(b)); ok {
		return all[i].name
	}
	return fmt.Sprintf("unknown(%v)", int32(b))
}

// registry maps raw codes to indices into all. An int-to-int map keeps
// the conversion path free of boxing on lookups.
var registry = intintmap.New(256, 0.6)

var all = []struct {
	biome Biome
	name  string
}{
	{Ocean, "ocean"},
	{Plains, "plains"},
	{Desert, "desert"},
	{WindsweptHills, "windswept_hills"},
	{Forest, "forest"},
	{Taiga, "taiga"},
	{Swamp, "swamp"},
	{River, "river"},
	{NetherWastes, "nether_wastes"},
	{TheEnd, "the_end"},
	{FrozenOcean, "frozen_ocean"},
	{FrozenRiver, "frozen_river"},
	{SnowyPlains, "snowy_plains"},
	{SnowyMountains, "snowy_mountains"},
	{MushroomFields, "mushroom_fields"},
	{MushroomFieldShore, "mushroom_field_shore"},
	{Beach, "beach"},
	{DesertHills, "desert_hills"},
	{WoodedHills, "wooded_hills"},
	{TaigaHills, "taiga_hills"},
	{MountainEdge, "mountain_edge"},
	{Jungle, "jungle"},
	{JungleHills, "jungle_hills"},
	{SparseJungle, "sparse_jungle"},
	{DeepOcean, "deep_ocean"},
	{StonyShore, "stony_shore"},
	{SnowyBeach, "snowy_beach"},
	{BirchForest, "birch_forest"},
	{BirchForestHills, "birch_forest_hills"},
	{DarkForest, "dark_forest"},
	{SnowyTaiga, "snowy_taiga"},
	{SnowyTaigaHills, "snowy_taiga_hills"},
	{OldGrowthPineTaiga, "old_growth_pine_taiga"},
	{GiantTreeTaigaHills, "giant_tree_taiga_hills"},
	{WindsweptForest, "windswept_forest"},
	{Savanna, "savanna"},
	{SavannaPlateau, "savanna_plateau"},
	{Badlands, "badlands"},
	{WoodedBadlands, "wooded_badlands"},
	{BadlandsPlateau, "badlands_plateau"},
	{SmallEndIslands, "small_end_islands"},
	{EndMidlands, "end_midlands"},
	{EndHighlands, "end_highlands"},
	{EndBarrens, "end_barrens"},
	{WarmOcean, "warm_ocean"},
	{LukewarmOcean, "lukewarm_ocean"},
	{ColdOcean, "cold_ocean"},
	{DeepWarmOcean, "deep_warm_ocean"},
	{DeepLukewarmOcean, "deep_lukewarm_ocean"},
	{DeepColdOcean, "deep_cold_ocean"},
	{DeepFrozenOcean, "deep_frozen_ocean"},
	{TheVoid, "the_void"},
	{SunflowerPlains, "sunflower_plains"},
	{DesertLakes, "desert_lakes"},
	{WindsweptGravelHills, "windswept_gravelly_hills"},
	{FlowerForest, "flower_forest"},
	{TaigaMountains, "taiga_mountains"},
	{SwampHills, "swamp_hills"},
	{IceSpikes, "ice_spikes"},
	{ModifiedJungle, "modified_jungle"},
	{ModifiedJungleEdge, "modified_jungle_edge"},
	{OldGrowthBirchForest, "old_growth_birch_forest"},
	{TallBirchHills, "tall_birch_hills"},
	{DarkForestHills, "dark_forest_hills"},
	{SnowyTaigaMountains, "snowy_taiga_mountains"},
	{GiantSpruceTaiga, "old_growth_spruce_taiga"},
	{GiantSpruceTaigaHills, "giant_spruce_taiga_hills"},
	{ModifiedGravellyHills, "modified_gravelly_mountains"},
	{WindsweptSavanna, "windswept_savanna"},
	{ShatteredSavannaPlateau, "shattered_savanna_plateau"},
	{ErodedBadlands, "eroded_badlands"},
	{ModifiedWoodedBadlands, "modified_wooded_badlands_plateau"},
	{ModifiedBadlandsPlateau, "modified_badlands_plateau"},
	{BambooJungle, "bamboo_jungle"},
	{BambooJungleHills, "bamboo_jungle_hills"},
	{SoulSandValley, "soul_sand_valley"},
	{CrimsonForest, "crimson_forest"},
	{WarpedForest, "warped_forest"},
	{BasaltDeltas, "basalt_deltas"},
	{DripstoneCaves, "dripstone_caves"},
	{LushCaves, "lush_caves"},
	{Meadow, "meadow"},
	{Grove, "grove"},
	{SnowySlopes, "snowy_slopes"},
	{JaggedPeaks, "jagged_peaks"},
	{FrozenPeaks, "frozen_peaks"},
	{StonyPeaks, "stony_peaks"},
	{DeepDark, "deep_dark"},
	{MangroveSwamp, "mangrove_swamp"},
	{CherryGrove, "cherry_grove"},
	{PaleGarden, "pale_garden"},
}

func init() {
	for i, e := range all {
		registry.Put(int64(e.biome), int64(i))
	}
}
