// Package snapshot persists filled region caches so generated biome data
// can be inspected later without linking the generation engine. Payloads
// are kept in a LevelDB database keyed by a fingerprint of the generator
// state and region; a TOML manifest next to it indexes the snapshots.
package snapshot

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/chunkworks/biomegen/gen"
	"github.com/df-mc/goleveldb/leveldb"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"github.com/pelletier/go-toml"
)

var (
	// ErrUnfilled is returned when a cache is saved before a successful
	// fill. Only filled caches hold data worth persisting.
	ErrUnfilled = errors.New("cache has not been filled")
	// ErrNotFound is returned when no snapshot with the given ID exists,
	// or when its payload record is missing from the database.
	ErrNotFound = errors.New("snapshot not found")
)

const (
	manifestName = "manifest.toml"
	recordsName  = "records"
)

// Config holds the options of a snapshot Store.
type Config struct {
	// Dir is the directory the store keeps its database and manifest in.
	// It is created if it does not exist.
	Dir string
	// Log is the Logger the store reports to. If nil, Log is set to
	// slog.Default().
	Log *slog.Logger
}

func (c Config) withDefaults() Config {
	if c.Dir == "" {
		c.Dir = "snapshots"
	}
	if c.Log == nil {
		c.Log = slog.Default()
	}
	return c
}

// Open opens the snapshot store in the configured directory, creating it
// if needed, and reads its manifest.
func (c Config) Open() (*Store, error) {
	c = c.withDefaults()
	if err := os.MkdirAll(c.Dir, 0777); err != nil {
		return nil, fmt.Errorf("create snapshot directory: %w", err)
	}
	db, err := leveldb.OpenFile(filepath.Join(c.Dir, recordsName), nil)
	if err != nil {
		return nil, fmt.Errorf("open snapshot records: %w", err)
	}
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create compressor: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		enc.Close()
		_ = db.Close()
		return nil, fmt.Errorf("create decompressor: %w", err)
	}
	s := &Store{conf: c, db: db, enc: enc, dec: dec}
	if err := s.reloadManifest(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// Store is an open snapshot store. It is safe for concurrent use.
type Store struct {
	conf Config
	db   *leveldb.DB
	enc  *zstd.Encoder
	dec  *zstd.Decoder

	mu    sync.RWMutex
	metas []Meta
}

type manifestFile struct {
	Snapshots []Meta `toml:"snapshots"`
}

// Save persists the data of a filled cache. The caller supplies the
// generator state the cache was filled under in meta; the store fills in
// the ID, region, point count, fingerprint and creation time of the
// returned Meta. Saving an unfilled cache fails with ErrUnfilled.
//
// Snapshots with an identical fingerprint share one payload record:
// generation is a pure function of the recorded state, so their data is
// identical by construction.
func (s *Store) Save(c *gen.Cache, meta Meta) (Meta, error) {
	codes := c.Biomes()
	if codes == nil {
		return Meta{}, ErrUnfilled
	}
	meta.ID = uuid.NewString()
	meta.Region = c.Region()
	meta.Points = len(codes)
	meta.Fingerprint = meta.fingerprint()
	meta.Created = time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.Put(recordKey(meta.Fingerprint), s.enc.EncodeAll(encodeCodes(codes), nil), nil); err != nil {
		return Meta{}, fmt.Errorf("write snapshot record: %w", err)
	}
	s.metas = append(s.metas, meta)
	if err := s.writeManifestLocked(); err != nil {
		s.metas = s.metas[:len(s.metas)-1]
		return Meta{}, err
	}
	s.conf.Log.Debug("saved snapshot", "id", meta.ID, "points", meta.Points, "fingerprint", meta.Fingerprint)
	return meta, nil
}

// Load reads the snapshot with the given ID back from the store. It
// returns ErrNotFound if no such snapshot exists.
func (s *Store) Load(id string) (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := slices.IndexFunc(s.metas, func(m Meta) bool { return m.ID == id })
	if i < 0 {
		return nil, ErrNotFound
	}
	meta := s.metas[i]

	compressed, err := s.db.Get(recordKey(meta.Fingerprint), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read snapshot record: %w", err)
	}
	raw, err := s.dec.DecodeAll(compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("decompress snapshot record: %w", err)
	}
	codes, err := decodeCodes(raw)
	if err != nil {
		return nil, err
	}
	if len(codes) != meta.Points {
		return nil, fmt.Errorf("snapshot record holds %v points, manifest expects %v", len(codes), meta.Points)
	}
	return &Snapshot{meta: meta, codes: codes}, nil
}

// List returns the metadata of every stored snapshot in insertion order.
func (s *Store) List() []Meta {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.metas)
}

// Remove deletes the snapshot with the given ID. The payload record is
// deleted only once no remaining snapshot shares its fingerprint. The
// returned bool indicates if the snapshot was present before the call.
func (s *Store) Remove(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.metas, func(m Meta) bool { return m.ID == id })
	if i < 0 {
		return false, nil
	}
	removed := s.metas[i]
	s.metas = slices.Delete(s.metas, i, i+1)
	if err := s.writeManifestLocked(); err != nil {
		s.metas = slices.Insert(s.metas, i, removed)
		return false, err
	}
	if !slices.ContainsFunc(s.metas, func(m Meta) bool { return m.Fingerprint == removed.Fingerprint }) {
		if err := s.db.Delete(recordKey(removed.Fingerprint), nil); err != nil {
			return false, fmt.Errorf("delete snapshot record: %w", err)
		}
	}
	return true, nil
}

// Close releases the store's database and compressors. The manifest is
// already on disk; Close never loses data.
func (s *Store) Close() {
	s.enc.Close()
	s.dec.Close()
	if err := s.db.Close(); err != nil {
		s.conf.Log.Error("close snapshot records", "error", err)
	}
}

func (s *Store) reloadManifest() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	contents, err := os.ReadFile(filepath.Join(s.conf.Dir, manifestName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.metas = nil
			return s.writeManifestLocked()
		}
		return fmt.Errorf("read snapshot manifest: %w", err)
	}
	data := manifestFile{}
	if len(contents) != 0 {
		if err := toml.Unmarshal(contents, &data); err != nil {
			return fmt.Errorf("decode snapshot manifest: %w", err)
		}
	}
	s.metas = data.Snapshots
	return nil
}

func (s *Store) writeManifestLocked() error {
	encoded, err := toml.Marshal(manifestFile{Snapshots: s.metas})
	if err != nil {
		return fmt.Errorf("encode snapshot manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.conf.Dir, manifestName), encoded, 0666); err != nil {
		return fmt.Errorf("write snapshot manifest: %w", err)
	}
	return nil
}
