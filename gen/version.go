package gen

// Version identifies the generation data version the engine should
// emulate. The values are ordered: a later release compares greater than
// an earlier one. Engine bindings translate these to the engine's own
// version enumeration.
type Version int32

const (
	VersionUndefined Version = iota
	VersionBeta1_7
	VersionBeta1_8
	Version1_0
	Version1_1
	Version1_2
	Version1_3
	Version1_4
	Version1_5
	Version1_6
	Version1_7
	Version1_8
	Version1_9
	Version1_10
	Version1_11
	Version1_12
	Version1_13
	Version1_14
	Version1_15
	Version1_16
	Version1_17
	Version1_18
	Version1_19
	Version1_20
	Version1_21

	// VersionNewest aliases the most recent version this package knows.
	VersionNewest = Version1_21
)
