package gen

// Flags alter the behaviour of generation for a Generator. The set is
// open: the engine may define bits this package does not name yet, and
// unrecognised bits are forwarded to it untouched rather than rejected.
type Flags uint32

const (
	// LargeBiomes quadruples the horizontal size of every biome.
	LargeBiomes Flags = 1 << iota
	// NoBetaOcean disables the beta-era ocean generation variant.
	NoBetaOcean
	// ForceOceanVariants always computes ocean variants, even where the
	// engine would otherwise skip them for speed.
	ForceOceanVariants
)

// Has reports if all bits of o are set in f.
func (f Flags) Has(o Flags) bool {
	return f&o == o
}
