package biome

// Overworld returns the biomes that generate in the overworld in current
// versions. Informational: the engine, not this list, decides what a
// query returns.
func Overworld() []Biome {
	return []Biome{
		Ocean, Plains, Desert, WindsweptHills, Forest, Taiga, Swamp, River,
		FrozenOcean, FrozenRiver, SnowyPlains, MushroomFields, Beach, Jungle,
		SparseJungle, DeepOcean, StonyShore, SnowyBeach, BirchForest,
		DarkForest, SnowyTaiga, OldGrowthPineTaiga, WindsweptForest, Savanna,
		SavannaPlateau, Badlands, WoodedBadlands, WarmOcean, LukewarmOcean,
		ColdOcean, DeepLukewarmOcean, DeepColdOcean, DeepFrozenOcean,
		SunflowerPlains, WindsweptGravelHills, FlowerForest, IceSpikes,
		OldGrowthBirchForest, GiantSpruceTaiga, WindsweptSavanna,
		ErodedBadlands, BambooJungle, DripstoneCaves, LushCaves, Meadow,
		Grove, SnowySlopes, JaggedPeaks, FrozenPeaks, StonyPeaks, DeepDark,
		MangroveSwamp, CherryGrove, PaleGarden,
	}
}

// Nether returns the biomes that generate in the nether.
func Nether() []Biome {
	return []Biome{NetherWastes, SoulSandValley, CrimsonForest, WarpedForest, BasaltDeltas}
}

// End returns the biomes that generate in the end.
func End() []Biome {
	return []Biome{TheEnd, SmallEndIslands, EndMidlands, EndHighlands, EndBarrens}
}
