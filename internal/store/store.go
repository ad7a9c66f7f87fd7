package store

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/mmcdole/projlib/internal/library"
	bolt "go.etcd.io/bbolt"
)

// ErrSnapshotNotFound indicates the requested snapshot does not exist
var ErrSnapshotNotFound = errors.New("snapshot not found")

// Bucket names
var bucketSnapshots = []byte("snapshots")

// Snapshot is one saved copy of a library document.
type Snapshot struct {
	ID       uint64    `json:"id"`
	Path     string    `json:"path"`
	SavedAt  time.Time `json:"saved_at"`
	Projects int       `json:"projects"`
	Document []byte    `json:"document"`
}

// HistoryStore keeps the most recent saved documents per library path
// in BoltDB. Snapshots live in a sub-bucket named after a hash of the
// document path, keyed by a big-endian sequence number.
type HistoryStore struct {
	db     *bolt.DB
	keep   int
	logger *slog.Logger
	now    func() time.Time

	// Memory-only mode (no db file)
	mu     sync.Mutex
	memory map[string][]Snapshot
	seq    uint64
}

// NewHistoryStore opens (or creates) the history database at file.
// An empty file keeps snapshots in memory only. keep <= 0 disables
// recording.
func NewHistoryStore(file string, keep int, logger *slog.Logger) (*HistoryStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &HistoryStore{
		keep:   keep,
		logger: logger,
		now:    time.Now,
		memory: make(map[string][]Snapshot),
	}
	if file == "" {
		return s, nil
	}

	if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
		return nil, err
	}

	db, err := bolt.Open(file, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSnapshots)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	s.db = db
	return s, nil
}

func (s *HistoryStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// OnSave records a snapshot after a successful library save. Failures
// are logged and never surface to the save itself.
func (s *HistoryStore) OnSave(path string, document []byte) {
	if _, err := s.Record(path, document); err != nil {
		s.logger.Error("failed to record snapshot", "error", err, "path", path)
	}
}

// Record stores document as the newest snapshot for path and prunes
// older snapshots beyond the keep limit.
func (s *HistoryStore) Record(path string, document []byte) (Snapshot, error) {
	if s.keep <= 0 {
		return Snapshot{}, nil
	}

	projects, err := library.Decode(document)
	if err != nil {
		return Snapshot{}, fmt.Errorf("refusing to record invalid document: %w", err)
	}

	snap := Snapshot{
		Path:     path,
		SavedAt:  s.now().UTC(),
		Projects: len(projects),
		Document: append([]byte(nil), document...),
	}

	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.seq++
		snap.ID = s.seq
		key := hashPath(path)
		list := append(s.memory[key], snap)
		if len(list) > s.keep {
			list = list[len(list)-s.keep:]
		}
		s.memory[key] = list
		return snap, nil
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.Bucket(bucketSnapshots).CreateBucketIfNotExists([]byte(hashPath(path)))
		if err != nil {
			return err
		}
		id, err := b.NextSequence()
		if err != nil {
			return err
		}
		snap.ID = id

		data, err := json.Marshal(snap)
		if err != nil {
			return err
		}
		if err := b.Put(itob(id), data); err != nil {
			return err
		}
		return prune(b, s.keep)
	})
	if err != nil {
		return Snapshot{}, err
	}

	s.logger.Debug("recorded snapshot", "path", path, "id", snap.ID, "projects", snap.Projects)
	return snap, nil
}

// prune deletes the oldest entries so at most keep remain.
func prune(b *bolt.Bucket, keep int) error {
	var keys [][]byte
	c := b.Cursor()
	for k, _ := c.First(); k != nil; k, _ = c.Next() {
		keys = append(keys, append([]byte(nil), k...))
	}
	if len(keys) <= keep {
		return nil
	}
	for _, k := range keys[:len(keys)-keep] {
		if err := b.Delete(k); err != nil {
			return err
		}
	}
	return nil
}

// List returns the snapshots for path, newest first.
func (s *HistoryStore) List(path string) ([]Snapshot, error) {
	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		list := append([]Snapshot(nil), s.memory[hashPath(path)]...)
		sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
		return list, nil
	}

	var list []Snapshot
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSnapshots).Bucket([]byte(hashPath(path)))
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			var snap Snapshot
			if err := json.Unmarshal(v, &snap); err != nil {
				return fmt.Errorf("decoding snapshot %d: %w", binary.BigEndian.Uint64(k), err)
			}
			list = append(list, snap)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Get returns a single snapshot for path.
func (s *HistoryStore) Get(path string, id uint64) (Snapshot, error) {
	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, snap := range s.memory[hashPath(path)] {
			if snap.ID == id {
				return snap, nil
			}
		}
		return Snapshot{}, fmt.Errorf("%w: %d", ErrSnapshotNotFound, id)
	}

	var snap Snapshot
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSnapshots).Bucket([]byte(hashPath(path)))
		if b == nil {
			return fmt.Errorf("%w: %d", ErrSnapshotNotFound, id)
		}
		v := b.Get(itob(id))
		if v == nil {
			return fmt.Errorf("%w: %d", ErrSnapshotNotFound, id)
		}
		return json.Unmarshal(v, &snap)
	})
	return snap, err
}

func hashPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	hash := sha256.Sum256([]byte(filepath.Clean(path)))
	return hex.EncodeToString(hash[:6])
}

func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
