// Package blobstore provides durable storage of binary file payloads keyed
// by the owning record's id, with metadata and optional derived thumbnails.
//
// Each entry lives in its own directory: <root>/<id>/meta.json describes the
// payload, <root>/<id>/data holds the raw bytes, and <root>/<id>/thumb.jpg
// holds the thumbnail when one was derived. Entries are staged in a tmp
// directory and swapped into place so a crash mid-upload never leaves a
// half-written entry visible.
package blobstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// ErrNotFound is returned by Get when no entry exists for the id.
var ErrNotFound = errors.New("stored file not found")

const (
	metaFile  = "meta.json"
	dataFile  = "data"
	thumbFile = "thumb.jpg"
	tmpDir    = "tmp"
)

// StoredFile is one stored payload plus its metadata. The metadata portion
// is what meta.json holds; Data and Thumbnail are loaded from their own
// files.
type StoredFile struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	MimeType     string    `json:"mimeType"`
	Size         int64     `json:"size"`
	Created      time.Time `json:"created"`
	HasThumbnail bool      `json:"hasThumbnail"`

	Data      []byte `json:"-"`
	Thumbnail []byte `json:"-"`
}

// Store manages file entries under a root directory. Safe for concurrent
// use across distinct ids; the owning record id is the unit of isolation.
type Store struct {
	dir string
}

// New creates the on-disk structure and returns a ready Store. All
// operations are valid immediately after New returns.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(dir, tmpDir), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create blob directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Put stores the payload under id, overwriting any prior entry. thumbnail
// may be nil for payloads without one. Returns the stored record.
func (s *Store) Put(id int64, name, mimeType string, data, thumbnail []byte) (*StoredFile, error) {
	sf := &StoredFile{
		ID:           id,
		Name:         name,
		MimeType:     mimeType,
		Size:         int64(len(data)),
		Created:      time.Now().UTC(),
		HasThumbnail: len(thumbnail) > 0,
		Data:         data,
		Thumbnail:    thumbnail,
	}

	// Stage the whole entry, then swap it into place.
	stage, err := os.MkdirTemp(filepath.Join(s.dir, tmpDir), "put-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer func() { _ = os.RemoveAll(stage) }()

	meta, err := json.Marshal(sf)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata: %w", err)
	}
	if err := os.WriteFile(filepath.Join(stage, dataFile), data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write payload: %w", err)
	}
	if sf.HasThumbnail {
		if err := os.WriteFile(filepath.Join(stage, thumbFile), thumbnail, 0o644); err != nil {
			return nil, fmt.Errorf("failed to write thumbnail: %w", err)
		}
	}
	if err := os.WriteFile(filepath.Join(stage, metaFile), meta, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write metadata: %w", err)
	}

	final := s.entryDir(id)
	if err := os.RemoveAll(final); err != nil {
		return nil, fmt.Errorf("failed to remove prior entry: %w", err)
	}
	if err := os.Rename(stage, final); err != nil {
		return nil, fmt.Errorf("failed to finalize entry: %w", err)
	}
	return sf, nil
}

// Get retrieves the full stored record for id, or ErrNotFound.
func (s *Store) Get(id int64) (*StoredFile, error) {
	sf, err := s.meta(id)
	if err != nil {
		return nil, err
	}
	sf.Data, err = os.ReadFile(filepath.Join(s.entryDir(id), dataFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read payload for %d: %w", id, err)
	}
	if sf.HasThumbnail {
		sf.Thumbnail, err = os.ReadFile(filepath.Join(s.entryDir(id), thumbFile))
		if err != nil {
			return nil, fmt.Errorf("failed to read thumbnail for %d: %w", id, err)
		}
	}
	return sf, nil
}

// Stat retrieves only the metadata for id, or ErrNotFound. Cheaper than Get
// when the payload bytes are not needed.
func (s *Store) Stat(id int64) (*StoredFile, error) {
	return s.meta(id)
}

// Delete removes the entry for id. No-op if absent.
func (s *Store) Delete(id int64) error {
	if err := os.RemoveAll(s.entryDir(id)); err != nil {
		return fmt.Errorf("failed to delete entry %d: %w", id, err)
	}
	return nil
}

// Sweep removes entries whose owning id is not in live, along with staging
// leftovers and unknown files. This is the reconciliation pass for the
// non-atomic record/blob linkage: a record deletion that crashed before
// deleting its blob is cleaned up here. Returns all errors joined.
func (s *Store) Sweep(live map[int64]bool) (removed int, err error) {
	entries, readErr := os.ReadDir(s.dir)
	if readErr != nil {
		return 0, fmt.Errorf("failed to read blob directory: %w", readErr)
	}
	var errs []error
	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(s.dir, name)
		if name == tmpDir {
			if err := cleanStaging(path); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		id, parseErr := strconv.ParseInt(name, 10, 64)
		if parseErr != nil || !entry.IsDir() {
			// Not one of ours.
			if err := os.RemoveAll(path); err != nil {
				errs = append(errs, fmt.Errorf("failed to remove unknown entry %s: %w", name, err))
			}
			continue
		}
		if live[id] {
			continue
		}
		if err := os.RemoveAll(path); err != nil {
			errs = append(errs, fmt.Errorf("failed to remove orphan entry %d: %w", id, err))
			continue
		}
		removed++
	}
	return removed, errors.Join(errs...)
}

func (s *Store) entryDir(id int64) string {
	return filepath.Join(s.dir, strconv.FormatInt(id, 10))
}

func (s *Store) meta(id int64) (*StoredFile, error) {
	data, err := os.ReadFile(filepath.Join(s.entryDir(id), metaFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to read metadata for %d: %w", id, err)
	}
	sf := &StoredFile{}
	if err := json.Unmarshal(data, sf); err != nil {
		return nil, fmt.Errorf("failed to parse metadata for %d: %w", id, err)
	}
	return sf, nil
}

// cleanStaging removes abandoned staging directories from interrupted Puts.
func cleanStaging(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read staging directory: %w", err)
	}
	var errs []error
	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(dir, entry.Name())); err != nil {
			errs = append(errs, fmt.Errorf("failed to remove staging leftover %s: %w", entry.Name(), err))
		}
	}
	return errors.Join(errs...)
}
