package snapshot

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/chunkworks/biomegen/gen"
	"github.com/chunkworks/biomegen/gen/biome"
)

// Meta describes one stored snapshot.
type Meta struct {
	// ID uniquely identifies the snapshot within its store. It is
	// assigned on Save.
	ID string `toml:"id"`
	// Seed, Dimension, Version and Flags record the generator state the
	// cache was filled under. A generator does not expose them, so the
	// caller provides them on Save.
	Seed      int64         `toml:"seed"`
	Dimension gen.Dimension `toml:"dimension"`
	Version   gen.Version   `toml:"version"`
	Flags     gen.Flags     `toml:"flags"`
	// Region is the region the cache was bound to, filled in on Save.
	Region gen.Region `toml:"region"`
	// Points is the number of biome codes in the payload.
	Points int `toml:"points"`
	// Fingerprint keys the payload record in the database, as a hex
	// digest derived from the generator state and region. Snapshots of
	// identical parameters share a record. Kept as a string: TOML
	// integers cap out at int64 and would truncate a 64-bit hash.
	Fingerprint string `toml:"fingerprint"`
	// Created is the time the snapshot was saved, in UTC.
	Created time.Time `toml:"created"`
}

func (m Meta) fingerprint() string {
	h := xxhash.New()
	b := make([]byte, 8)
	for _, v := range []uint64{
		uint64(m.Seed),
		uint64(int64(m.Dimension)),
		uint64(m.Version),
		uint64(m.Flags),
		uint64(m.Region.Scale),
		uint64(int64(m.Region.X)),
		uint64(int64(m.Region.Y)),
		uint64(int64(m.Region.Z)),
		uint64(m.Region.SizeX),
		uint64(m.Region.SizeY),
		uint64(m.Region.SizeZ),
	} {
		binary.LittleEndian.PutUint64(b, v)
		_, _ = h.Write(b)
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

func recordKey(fingerprint string) []byte {
	return []byte(fingerprint)
}

// Snapshot is a loaded snapshot: the region a cache covered and the biome
// codes it held when it was saved.
type Snapshot struct {
	meta  Meta
	codes []int32
}

// Meta returns the snapshot's metadata.
func (s *Snapshot) Meta() Meta {
	return s.meta
}

// Region returns the region the snapshot covers.
func (s *Snapshot) Region() gen.Region {
	return s.meta.Region
}

// Codes returns the raw biome codes, laid out as
// index = y*sizeX*sizeZ + z*sizeX + x, the same convention gen.Cache
// uses. The slice is shared with the snapshot and must not be modified.
func (s *Snapshot) Codes() []int32 {
	return s.codes
}

// At returns the biome stored for the point (x, y, z) relative to the
// region origin, with the same bounds and conversion semantics as
// gen.Cache.At.
func (s *Snapshot) At(x, y, z int32) (biome.Biome, error) {
	r := s.meta.Region
	if !r.Contains(x, y, z) {
		return 0, gen.ErrIndexOutOfBounds
	}
	i := int(y)*int(r.SizeX)*int(r.SizeZ) + int(z)*int(r.SizeX) + int(x)
	if i >= len(s.codes) {
		return 0, gen.ErrIndexOutOfBounds
	}
	return biome.ByCode(s.codes[i])
}

func encodeCodes(codes []int32) []byte {
	b := make([]byte, 0, len(codes)*4)
	for _, c := range codes {
		b = binary.LittleEndian.AppendUint32(b, uint32(c))
	}
	return b
}

func decodeCodes(b []byte) ([]int32, error) {
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("snapshot record length %v is not a whole number of codes", len(b))
	}
	codes := make([]int32, len(b)/4)
	for i := range codes {
		codes[i] = int32(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return codes, nil
}
