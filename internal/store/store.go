// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists the paper collection to a single JSON file.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/nro337/docparse/pkg/types"
)

// ErrNotFound is returned when no paper has the requested ID.
var ErrNotFound = errors.New("paper not found")

// DefaultPath is the storage file used when none is configured.
const DefaultPath = "papers_data.json"

// Store is a file-backed paper collection. All state lives in memory
// and every mutation is written back to the storage file. A mutex
// guards the state so the web layer can call concurrently.
type Store struct {
	mu     sync.Mutex
	path   string
	papers []types.Paper
	nextID int
}

// fileFormat is the on-disk JSON shape of the collection.
type fileFormat struct {
	Papers []types.Paper `json:"papers"`
	NextID int           `json:"next_id"`
}

// Open loads the collection from cfg.Path, creating an empty collection
// when the file does not exist. A file that exists but cannot be parsed
// is an error rather than silent data loss.
func Open(cfg types.StoreConfig) (*Store, error) {
	path := cfg.Path
	if path == "" {
		path = DefaultPath
	}

	s := &Store{path: path, nextID: 1}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading storage file %s: %w", path, err)
	}

	var f fileFormat
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing storage file %s: %w", path, err)
	}

	s.papers = f.Papers
	if f.NextID > 0 {
		s.nextID = f.NextID
	}
	return s, nil
}

// Path returns the storage file location.
func (s *Store) Path() string {
	return s.path
}

// Add assigns the next ID to paper, stamps AddedDate when unset, appends
// it to the collection, and persists. The stored paper is returned.
func (s *Store) Add(paper types.Paper) (types.Paper, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	paper.ID = s.nextID
	if paper.AddedDate.IsZero() {
		paper.AddedDate = time.Now()
	}

	s.papers = append(s.papers, paper)
	s.nextID++

	if err := s.save(); err != nil {
		// Roll back the in-memory append so memory and disk agree.
		s.papers = s.papers[:len(s.papers)-1]
		s.nextID--
		return types.Paper{}, err
	}
	return paper, nil
}

// List returns summaries of all papers in insertion order. The slice is
// never nil so JSON encoding yields [] for an empty collection.
func (s *Store) List() []types.PaperSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	summaries := make([]types.PaperSummary, 0, len(s.papers))
	for _, p := range s.papers {
		summaries = append(summaries, p.Summary())
	}
	return summaries
}

// Papers returns copies of the full records, markdown bodies included.
func (s *Store) Papers() []types.Paper {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.Paper, len(s.papers))
	copy(out, s.papers)
	return out
}

// Get returns the paper with the given ID.
func (s *Store) Get(id int) (types.Paper, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.papers {
		if p.ID == id {
			return p, nil
		}
	}
	return types.Paper{}, ErrNotFound
}

// Remove deletes the paper with the given ID and persists. It returns
// ErrNotFound without touching the file when no paper matches.
func (s *Store) Remove(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.papers {
		if p.ID == id {
			s.papers = append(s.papers[:i], s.papers[i+1:]...)
			return s.save()
		}
	}
	return ErrNotFound
}

// Len reports the number of stored papers.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.papers)
}

// save writes the collection to a temp file in the storage directory
// and renames it over the storage file. Callers hold s.mu.
func (s *Store) save() error {
	data, err := json.MarshalIndent(fileFormat{Papers: s.papers, NextID: s.nextID}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding collection: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing storage file %s: %w", s.path, err)
	}
	return nil
}
