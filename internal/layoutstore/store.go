// Package layoutstore persists panel layout (position, size, pin flag)
// between runs. One JSON value per panel id, stored with diskv under the
// state directory. Saves are fire-and-forget: gesture handling never
// waits on disk, and a failed write is logged rather than surfaced.
package layoutstore

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/peterbourgon/diskv/v3"
	"go.opentelemetry.io/otel"

	"filedeck/internal/jsonutil"
	"filedeck/internal/panel"
)

const (
	// StateDirEnv overrides the state directory (for tests).
	StateDirEnv = "FILEDECK_STATE_DIR"
	// DefaultStateBase is the default state directory under $HOME.
	DefaultStateBase = ".filedeck/layout"
)

// Store is the layout persistence adapter. Load/Save are idempotent and
// last-write-wins; the engine assumes nothing stronger.
//
// Saves run on their own goroutines, so the mutex alone cannot order
// them. Each save takes a per-id sequence number at call time; a write
// that reaches the disk after a newer one is dropped instead of
// clobbering it.
type Store struct {
	d       *diskv.Diskv
	mu      sync.Mutex
	wg      sync.WaitGroup
	seq     map[string]uint64 // last sequence issued per id, under mu
	written map[string]uint64 // last sequence applied per id, under mu
}

// NewStore creates a store rooted at basePath, or at StateDirEnv if set,
// or at $HOME/DefaultStateBase when basePath is empty.
func NewStore(basePath string) (*Store, error) {
	if env := os.Getenv(StateDirEnv); env != "" {
		basePath = env
	}
	if basePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		basePath = filepath.Join(home, DefaultStateBase)
	}
	return &Store{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		seq:     make(map[string]uint64),
		written: make(map[string]uint64),
	}, nil
}

// Load reads the persisted layout for every panel id found in the store.
// Any failure degrades to an empty (or partial) map; callers fall back
// to default geometry per panel, never to an error.
func (s *Store) Load() map[string]panel.Snapshot {
	_, span := otel.Tracer("filedeck/layoutstore").Start(context.Background(), "layout.load")
	defer span.End()

	layout := make(map[string]panel.Snapshot)
	for key := range s.d.Keys(nil) {
		val, err := s.d.Read(key)
		if err != nil {
			log.Printf("layout: read %s: %v", key, err)
			continue
		}
		var snap panel.Snapshot
		if err := jsonutil.UnmarshalWithContext(val, &snap, "layout: decode "+key); err != nil {
			log.Printf("%v", err)
			continue
		}
		layout[key] = snap
	}
	return layout
}

// Save persists one panel's snapshot without blocking the caller. The
// call order, not goroutine scheduling, decides which snapshot ends up
// on disk. It implements panel.Saver.
func (s *Store) Save(id string, snap panel.Snapshot) {
	n := s.nextSeq(id)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.write(id, snap, n)
	}()
}

// SaveLayout persists a full layout mapping, also fire-and-forget.
func (s *Store) SaveLayout(layout map[string]panel.Snapshot) {
	for id, snap := range layout {
		s.Save(id, snap)
	}
}

// Delete removes a panel's persisted entry (panel closed for good).
func (s *Store) Delete(id string) {
	n := s.nextSeq(id)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.mu.Lock()
		defer s.mu.Unlock()
		if n <= s.written[id] {
			return
		}
		s.written[id] = n
		if err := s.d.Erase(id); err != nil {
			log.Printf("layout: erase %s: %v", id, err)
		}
	}()
}

// Flush waits for in-flight writes. Called on shutdown and in tests.
func (s *Store) Flush() {
	s.wg.Wait()
}

// nextSeq issues the sequence number for a pending write against id.
func (s *Store) nextSeq(id string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq[id]++
	return s.seq[id]
}

func (s *Store) write(id string, snap panel.Snapshot, n uint64) {
	_, span := otel.Tracer("filedeck/layoutstore").Start(context.Background(), "layout.save")
	defer span.End()

	data, err := jsonutil.MarshalWithContext(snap, "layout: encode "+id)
	if err != nil {
		log.Printf("%v", err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if n <= s.written[id] {
		// A newer save for this id already landed; this one is stale.
		return
	}
	s.written[id] = n
	if err := s.d.Write(id, data); err != nil {
		log.Printf("layout: write %s: %v", id, err)
	}
}
