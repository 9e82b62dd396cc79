package gen

// Dimension is the world layer generation runs for. The numbering is the
// engine's own.
type Dimension int32

const (
	Nether    Dimension = -1
	Overworld Dimension = 0
	End       Dimension = 1
)

// String returns the dimension's name.
func (d Dimension) String() string {
	switch d {
	case Nether:
		return "nether"
	case Overworld:
		return "overworld"
	case End:
		return "end"
	}
	return "unknown"
}
