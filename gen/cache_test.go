package gen

import (
	"errors"
	"testing"

	"github.com/chunkworks/biomegen/gen/biome"
)

func seededCache(t *testing.T, e Engine, r Region, seed int64) (*Generator, *Cache) {
	t.Helper()
	g := New(e, VersionNewest, 0)
	g.ApplySeed(Overworld, seed)
	c, err := g.NewCache(r)
	if err != nil {
		t.Fatalf("binding cache for %+v: %v", r, err)
	}
	return g, c
}

func TestCacheUnfilledLookups(t *testing.T) {
	_, c := seededCache(t, &hashEngine{}, Region{Scale: ScaleQuarter, SizeX: 4, SizeY: 2, SizeZ: 4}, 1)

	for _, p := range [][3]int32{{0, 0, 0}, {1, 1, 1}, {3, 1, 3}} {
		if _, err := c.At(p[0], p[1], p[2]); !errors.Is(err, ErrIndexOutOfBounds) {
			t.Fatalf("expected lookups on an unfilled cache to fail, At(%v) returned %v", p, err)
		}
	}
	if c.Biomes() != nil {
		t.Fatalf("expected nil raw buffer before fill")
	}
	if c.Filled() {
		t.Fatalf("expected cache to report unfilled before fill")
	}
}

func TestCacheFillAndLookup(t *testing.T) {
	r := Region{Scale: ScaleQuarter, X: -2, Y: 0, Z: 7, SizeX: 5, SizeY: 3, SizeZ: 4}
	_, c := seededCache(t, &hashEngine{}, r, 9001)

	if err := c.Fill(); err != nil {
		t.Fatalf("fill failed: %v", err)
	}
	if !c.Filled() {
		t.Fatalf("expected cache to report filled")
	}

	raw := c.Biomes()
	if len(raw) != r.Volume() {
		t.Fatalf("expected %d codes in the raw buffer, got %d", r.Volume(), len(raw))
	}
	for y := int32(0); y < r.SizeY; y++ {
		for z := int32(0); z < r.SizeZ; z++ {
			for x := int32(0); x < r.SizeX; x++ {
				b, err := c.At(x, y, z)
				if err != nil {
					t.Fatalf("At(%d, %d, %d) failed: %v", x, y, z, err)
				}
				i := int(y)*int(r.SizeX)*int(r.SizeZ) + int(z)*int(r.SizeX) + int(x)
				if int32(b) != raw[i] {
					t.Fatalf("At(%d, %d, %d) = %v, raw buffer holds %v at index %d", x, y, z, b, raw[i], i)
				}
			}
		}
	}
}

func TestCacheLookupOutOfBounds(t *testing.T) {
	_, c := seededCache(t, &hashEngine{}, Region{Scale: ScaleBlock, SizeX: 1, SizeY: 1, SizeZ: 1}, 5)
	if err := c.Fill(); err != nil {
		t.Fatalf("fill failed: %v", err)
	}

	if _, err := c.At(0, 0, 0); err != nil {
		t.Fatalf("expected the only in-range lookup to succeed, got %v", err)
	}
	for _, p := range [][3]int32{
		{1, 0, 0}, {0, 1, 0}, {0, 0, 1},
		{-1, 0, 0}, {0, -1, 0}, {0, 0, -1},
		{100, 100, 100},
	} {
		if _, err := c.At(p[0], p[1], p[2]); !errors.Is(err, ErrIndexOutOfBounds) {
			t.Fatalf("expected At(%v) to fail with ErrIndexOutOfBounds, got %v", p, err)
		}
	}
}

func TestCacheFillWithoutSeed(t *testing.T) {
	g := New(&hashEngine{}, VersionNewest, 0)
	c, err := g.NewCache(Region{Scale: ScaleBlock, SizeX: 2, SizeY: 2, SizeZ: 2})
	if err != nil {
		t.Fatalf("binding cache: %v", err)
	}

	var fill *FillError
	if err := c.Fill(); !errors.As(err, &fill) {
		t.Fatalf("expected *FillError when filling without a seed, got %v", err)
	}
	if fill.Status == 0 {
		t.Fatalf("expected a non-zero status code in the fill error")
	}
	if _, err := c.At(0, 0, 0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected lookups after a failed fill to be rejected, got %v", err)
	}
}

func TestCacheFailedRefillInvalidatesData(t *testing.T) {
	e := &hashEngine{}
	_, c := seededCache(t, e, Region{Scale: ScaleQuarter, SizeX: 3, SizeY: 1, SizeZ: 3}, 77)
	if err := c.Fill(); err != nil {
		t.Fatalf("first fill failed: %v", err)
	}

	// A failed re-fill leaves engine-written bytes in the buffer, but the
	// cache must not serve them as valid data.
	e.fillStatus = 3
	var fill *FillError
	if err := c.Fill(); !errors.As(err, &fill) {
		t.Fatalf("expected *FillError from the failed re-fill, got %v", err)
	}
	if fill.Status != 3 {
		t.Fatalf("expected the engine status 3 to be preserved, got %v", fill.Status)
	}
	if _, err := c.At(0, 0, 0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected lookups after a failed re-fill to be rejected, got %v", err)
	}
	if c.Biomes() != nil {
		t.Fatalf("expected nil raw buffer after a failed re-fill")
	}
}

func TestCacheReseedTakesEffectOnRefill(t *testing.T) {
	r := Region{Scale: ScaleQuarter, SizeX: 16, SizeY: 2, SizeZ: 16}
	g, c := seededCache(t, &hashEngine{}, r, 1)
	if err := c.Fill(); err != nil {
		t.Fatalf("fill failed: %v", err)
	}

	before := make([]int32, len(c.Biomes()))
	copy(before, c.Biomes())

	// Re-seeding alone must not invalidate the cache: it still serves the
	// previous seed's data until the next fill.
	g.ApplySeed(Overworld, 2)
	for i, want := range before {
		if got := c.Biomes()[i]; got != want {
			t.Fatalf("cache changed at index %d after re-seed without re-fill: %v != %v", i, got, want)
		}
	}

	if err := c.Fill(); err != nil {
		t.Fatalf("re-fill failed: %v", err)
	}
	changed := 0
	for i, prev := range before {
		if c.Biomes()[i] != prev {
			changed++
		}
	}
	if changed == 0 {
		t.Fatalf("expected at least one lookup to differ between seeds over %d points", len(before))
	}
}

func TestCacheUnknownCode(t *testing.T) {
	_, c := seededCache(t, &hashEngine{emit: 24242}, Region{Scale: ScaleBlock, SizeX: 2, SizeY: 1, SizeZ: 2}, 8)
	if err := c.Fill(); err != nil {
		t.Fatalf("fill failed: %v", err)
	}

	_, err := c.At(1, 0, 1)
	var unknown *biome.UnknownCodeError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected *biome.UnknownCodeError, got %v", err)
	}
	if unknown.Code != 24242 {
		t.Fatalf("expected raw code 24242 to be preserved, got %v", unknown.Code)
	}
}

func TestNewCacheInvalidRegion(t *testing.T) {
	g := New(&hashEngine{}, VersionNewest, 0)

	for _, r := range []Region{
		{Scale: ScaleBlock, SizeX: 0, SizeY: 1, SizeZ: 1},
		{Scale: ScaleBlock, SizeX: 1, SizeY: -1, SizeZ: 1},
		{Scale: ScaleBlock, SizeX: 1, SizeY: 1, SizeZ: 0},
		{Scale: Scale(3), SizeX: 1, SizeY: 1, SizeZ: 1},
	} {
		if _, err := g.NewCache(r); !errors.Is(err, ErrInvalidRegion) {
			t.Fatalf("expected ErrInvalidRegion for %+v, got %v", r, err)
		}
	}
}
