// Package localstore persists named collections as JSON blobs on a
// billy.Filesystem. Every mutation is a whole-collection replace: read the
// blob, transform the decoded value, write the blob back. The store is the
// single writer in the process; a store-wide mutex serializes mutations so
// concurrent handlers cannot interleave read-modify-write cycles.
package localstore

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"

	"feriavirtual/pkg/errors"
	"feriavirtual/pkg/logger"
)

type Store struct {
	fs billy.Filesystem
	mu sync.Mutex
}

func New(fs billy.Filesystem) *Store {
	return &Store{fs: fs}
}

// NewOSStore roots the store at dataDir on the host filesystem, creating the
// directory if needed.
func NewOSStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, errors.Internal("Failed to create data directory", err)
	}
	return New(osfs.New(dataDir)), nil
}

// NewMemStore returns a store backed by an in-memory filesystem, used in tests.
func NewMemStore() *Store {
	return New(memfs.New())
}

func blobName(key string) string {
	return key + ".json"
}

// ReadAll decodes the collection stored under key into v. A missing blob
// leaves v at its zero value. A blob that fails to decode returns a
// STORAGE_CORRUPT error; v is left zeroed so callers can fall back to an
// empty collection if they choose to recover.
func (s *Store) ReadAll(key string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readLocked(key, v)
}

func (s *Store) readLocked(key string, v interface{}) error {
	f, err := s.fs.Open(blobName(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Internal("Failed to open stored collection", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return errors.Internal("Failed to read stored collection", err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.StorageCorrupt(key, err)
	}
	return nil
}

// WriteAll replaces the collection stored under key. The blob is written to a
// temp file and renamed so readers never observe a half-written collection.
func (s *Store) WriteAll(key string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeLocked(key, v)
}

func (s *Store) writeLocked(key string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Internal("Failed to encode collection", err)
	}

	tmp := blobName(key) + ".tmp"
	f, err := s.fs.Create(tmp)
	if err != nil {
		return errors.Internal("Failed to create blob file", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return errors.Internal("Failed to write blob file", err)
	}
	if err := f.Close(); err != nil {
		return errors.Internal("Failed to close blob file", err)
	}
	if err := s.fs.Rename(tmp, blobName(key)); err != nil {
		return errors.Internal("Failed to replace blob file", err)
	}
	return nil
}

// Delete removes the blob for key. Deleting a key that was never written is
// not an error.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fs.Remove(blobName(key)); err != nil && !os.IsNotExist(err) {
		return errors.Internal("Failed to delete blob file", err)
	}
	return nil
}

// Path returns where a key would live, mostly useful in logs.
func (s *Store) Path(key string) string {
	return filepath.Join(s.fs.Root(), blobName(key))
}

// Read decodes the collection under key into a fresh C. Missing blobs yield
// the zero value of C.
func Read[C any](s *Store, key string) (C, error) {
	var c C
	err := s.ReadAll(key, &c)
	return c, err
}

// ReadOrEmpty is the resilient variant: a corrupt blob is logged and an empty
// collection returned so read paths stay usable while the corruption is
// investigated.
func ReadOrEmpty[C any](s *Store, key string) C {
	c, err := Read[C](s, key)
	if err != nil {
		logger.LogStoreError(key, "read", err)
		var zero C
		return zero
	}
	return c
}

// Mutate runs a read-modify-write cycle under the store lock. fn receives the
// decoded collection (zero value if never written) and returns the full
// replacement value. Corrupt blobs abort the mutation.
func Mutate[C any](s *Store, key string, fn func(C) (C, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var c C
	if err := s.readLocked(key, &c); err != nil {
		return err
	}
	next, err := fn(c)
	if err != nil {
		return err
	}
	return s.writeLocked(key, next)
}
