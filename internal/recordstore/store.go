// Package recordstore provides durable, namespace-scoped CRUD over ordered
// collections of open-schema records.
//
// Each namespace is persisted as a single JSON array file under the store's
// data directory. Every mutation is read-modify-write over the whole
// collection, serialized through a per-namespace lock, so mutations on one
// namespace are linearized while namespaces stay independent. Writes go
// through a temp file and rename so a crash never leaves a half-written
// collection behind.
package recordstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
)

var (
	// ErrUnknownNamespace is returned when a namespace is not in the
	// registry the store was constructed with.
	ErrUnknownNamespace = errors.New("unknown namespace")

	// ErrNotFound is returned by Update when no record matches the id.
	ErrNotFound = errors.New("record not found")

	// ErrCorruptData is returned by read operations when a namespace file
	// exists but cannot be parsed. Callers can distinguish this from an
	// empty, never-written namespace.
	ErrCorruptData = errors.New("corrupt stored data")

	// ErrMalformedSnapshot is returned by ImportAll for documents that are
	// not a JSON object of namespace arrays. Nothing is imported.
	ErrMalformedSnapshot = errors.New("malformed snapshot document")
)

// Seed produces a namespace's default collection.
type Seed func() []Record

// Namespace declares one named collection: its storage name, its default
// seed data, and its insertion ordering. Builds-style namespaces set Prepend
// so the most recent record lists first.
type Namespace struct {
	Name    string
	Seed    Seed
	Prepend bool
}

// Snapshot is the full export of every namespace's current collection.
type Snapshot map[string][]Record

// Store is a registry of namespaces backed by one JSON file each.
// Safe for concurrent use.
type Store struct {
	dir   string
	order []string
	cols  map[string]*collection
}

type collection struct {
	mu   sync.Mutex
	path string
	ns   Namespace
}

// New creates a Store rooted at dir for the given namespaces. The directory
// is created if needed. No namespace data is read or seeded; call
// InitializeIfEmpty for first-run seeding.
func New(dir string, namespaces []Namespace) (*Store, error) {
	if len(namespaces) == 0 {
		return nil, errors.New("at least one namespace is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	s := &Store{
		dir:  dir,
		cols: make(map[string]*collection, len(namespaces)),
	}
	for _, ns := range namespaces {
		if _, dup := s.cols[ns.Name]; dup {
			return nil, fmt.Errorf("duplicate namespace %q", ns.Name)
		}
		s.cols[ns.Name] = &collection{
			path: filepath.Join(dir, ns.Name+".json"),
			ns:   ns,
		}
		s.order = append(s.order, ns.Name)
	}
	return s, nil
}

// Namespaces returns the registered namespace names in registration order.
func (s *Store) Namespaces() []string {
	return slices.Clone(s.order)
}

func (s *Store) col(name string) (*collection, error) {
	c, ok := s.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNamespace, name)
	}
	return c, nil
}

// List returns the full collection for the namespace in stored order.
// A namespace that has never been written yields an empty slice with no
// error; a namespace whose file cannot be parsed yields ErrCorruptData.
func (s *Store) List(namespace string) ([]Record, error) {
	c, err := s.col(namespace)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	recs, err := c.load()
	if err != nil {
		return nil, err
	}
	return cloneAll(recs), nil
}

// ReplaceAll overwrites the namespace's entire collection in one write.
func (s *Store) ReplaceAll(namespace string, records []Record) error {
	c, err := s.col(namespace)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.persist(records)
}

// Add assigns the next id to record, inserts it (append, or prepend for
// namespaces declared with Prepend), persists the collection, and returns
// the stored record. Ids are max(existing ids)+1 with missing or zero ids
// counting as 0, so they are never reused even after deleting the max.
func (s *Store) Add(namespace string, record Record) (Record, error) {
	c, err := s.col(namespace)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	recs, err := c.load()
	if err != nil {
		return nil, err
	}
	var maxID int64
	for _, r := range recs {
		maxID = max(maxID, r.ID())
	}
	stored := record.Clone()
	if stored == nil {
		stored = Record{}
	}
	stored.setID(maxID + 1)
	if c.ns.Prepend {
		recs = append([]Record{stored}, recs...)
	} else {
		recs = append(recs, stored)
	}
	if err := c.persist(recs); err != nil {
		return nil, err
	}
	return stored.Clone(), nil
}

// Update shallow-merges patch over the record with the given id and persists
// the collection. Fields absent from the patch are preserved; the patch
// cannot change the id. Returns ErrNotFound, persisting nothing, when no
// record matches.
func (s *Store) Update(namespace string, id int64, patch Record) (Record, error) {
	c, err := s.col(namespace)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	recs, err := c.load()
	if err != nil {
		return nil, err
	}
	for i, r := range recs {
		if r.ID() != id {
			continue
		}
		updated := r.Clone()
		updated.merge(patch)
		recs[i] = updated
		if err := c.persist(recs); err != nil {
			return nil, err
		}
		return updated.Clone(), nil
	}
	return nil, fmt.Errorf("%w: %s/%d", ErrNotFound, namespace, id)
}

// Delete removes the record with the given id, if any, and persists the
// filtered collection. Deleting an absent id is a no-op, not an error.
func (s *Store) Delete(namespace string, id int64) error {
	c, err := s.col(namespace)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	recs, err := c.load()
	if err != nil {
		return err
	}
	filtered := slices.DeleteFunc(recs, func(r Record) bool { return r.ID() == id })
	return c.persist(filtered)
}

// ExportAll snapshots every namespace's current collection. The result
// marshals to the portable export document: a JSON object keyed by
// namespace name, each value the full ordered record array.
func (s *Store) ExportAll() (Snapshot, error) {
	snap := make(Snapshot, len(s.order))
	for _, name := range s.order {
		recs, err := s.List(name)
		if err != nil {
			return nil, err
		}
		if recs == nil {
			recs = []Record{}
		}
		snap[name] = recs
	}
	return snap, nil
}

// ImportAll overwrites each namespace present in the snapshot document with
// the document's value. Unknown keys are ignored; namespaces absent from the
// document keep their stored data. A document that is not a JSON object of
// record arrays fails with ErrMalformedSnapshot before anything is written.
func (s *Store) ImportAll(data []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
	}
	// The literal document "null" unmarshals into a nil map without error;
	// it is not an object and must not report a successful import.
	if doc == nil {
		return fmt.Errorf("%w: document is not a JSON object", ErrMalformedSnapshot)
	}
	// Decode everything up front so a bad namespace aborts the whole import.
	staged := make(map[string][]Record)
	for _, name := range s.order {
		raw, ok := doc[name]
		if !ok {
			continue
		}
		var recs []Record
		if err := json.Unmarshal(raw, &recs); err != nil {
			return fmt.Errorf("%w: namespace %q: %w", ErrMalformedSnapshot, name, err)
		}
		for _, r := range recs {
			r.normalize()
		}
		staged[name] = recs
	}
	for _, name := range s.order {
		recs, ok := staged[name]
		if !ok {
			continue
		}
		if err := s.ReplaceAll(name, recs); err != nil {
			return err
		}
	}
	return nil
}

// ResetToDefaults overwrites every namespace with its seed collection.
func (s *Store) ResetToDefaults() error {
	for _, name := range s.order {
		c := s.cols[name]
		if err := s.ReplaceAll(name, c.seed()); err != nil {
			return err
		}
	}
	return nil
}

// InitializeIfEmpty seeds each namespace whose file does not exist yet.
// Idempotent; intended to run once at startup. Namespaces with existing
// data, including corrupt data, are left untouched.
func (s *Store) InitializeIfEmpty() error {
	for _, name := range s.order {
		c := s.cols[name]
		c.mu.Lock()
		_, err := os.Stat(c.path)
		switch {
		case err == nil:
			c.mu.Unlock()
			continue
		case !os.IsNotExist(err):
			c.mu.Unlock()
			return fmt.Errorf("failed to stat %s: %w", c.path, err)
		}
		err = c.persist(c.seed())
		c.mu.Unlock()
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *collection) seed() []Record {
	if c.ns.Seed == nil {
		return nil
	}
	return c.ns.Seed()
}

// load reads the collection from disk. Caller holds c.mu.
func (c *collection) load() ([]Record, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", c.path, err)
	}
	var recs []Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorruptData, c.path, err)
	}
	for _, r := range recs {
		r.normalize()
	}
	return recs, nil
}

// persist writes the full collection through a temp file and rename.
// Caller holds c.mu.
func (c *collection) persist(recs []Record) error {
	if recs == nil {
		recs = []Record{}
	}
	data, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("failed to marshal collection: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(c.path), ".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Join(fmt.Errorf("failed to write collection: %w", err), os.Remove(tmp.Name()))
	}
	if err := tmp.Close(); err != nil {
		return errors.Join(fmt.Errorf("failed to close temp file: %w", err), os.Remove(tmp.Name()))
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		return errors.Join(fmt.Errorf("failed to rename collection file: %w", err), os.Remove(tmp.Name()))
	}
	return nil
}
