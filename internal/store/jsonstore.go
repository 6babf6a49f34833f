package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"

	"github.com/akhilvb87/community-kitchen-app/internal/logger"
	"github.com/akhilvb87/community-kitchen-app/internal/models"
)

// FileStore persists the document as one indented JSON file. Every View/Update
// re-reads the file, so concurrent processes see each other's writes; the
// in-process RWMutex plus an advisory flock serialize the read-modify-write
// cycle so a losing writer can no longer silently discard another's update.
// Each call takes a fresh flock handle: a shared handle tracks one locked
// flag, so one concurrent reader's unlock would drop the OS lock out from
// under another.
type FileStore struct {
	path     string
	lockPath string
	mu       sync.RWMutex
	log      logger.Logger
}

// Open opens the document at path, creating it with an empty document when it
// does not exist yet. Initialization happens under the exclusive file lock so
// two processes starting together cannot clobber each other's first write.
func Open(path string, log logger.Logger) (*FileStore, error) {
	s := &FileStore{
		path:     path,
		lockPath: path + ".lock",
		log:      log,
	}

	flk := flock.New(s.lockPath)
	if err := flk.Lock(); err != nil {
		return nil, fmt.Errorf("failed to lock data file: %w", err)
	}
	defer flk.Unlock()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.write(NewDocument()); err != nil {
			return nil, fmt.Errorf("failed to initialize data file: %w", err)
		}
		log.Info("initialized data file", "path", path)
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat data file: %w", err)
	}

	return s, nil
}

// View runs fn on a read-only snapshot of the document.
func (s *FileStore) View(fn func(d *Document) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	flk := flock.New(s.lockPath)
	if err := flk.RLock(); err != nil {
		return fmt.Errorf("failed to lock data file: %w", err)
	}
	defer flk.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	return fn(doc)
}

// Update runs fn on a snapshot and persists the result. The whole
// read-modify-write happens under the exclusive lock.
func (s *FileStore) Update(fn func(d *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	flk := flock.New(s.lockPath)
	if err := flk.Lock(); err != nil {
		return fmt.Errorf("failed to lock data file: %w", err)
	}
	defer flk.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.write(doc)
}

func (s *FileStore) read() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	doc := NewDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to parse data file: %w", err)
	}

	migrate(doc)
	return doc, nil
}

// write marshals the document to a temp file in the same directory and
// renames it over the target, so readers never see a half-written file.
func (s *FileStore) write(doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".kitchen-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace data file: %w", err)
	}
	return nil
}

// migrate normalizes legacy shapes in place: scalar phone fields become a
// phones slice, and the role aliases "admin" and "user" seen in old seed data
// become their canonical equivalents.
func migrate(doc *Document) {
	for i := range doc.Users {
		u := &doc.Users[i]
		if u.Phone != "" {
			if !u.HasPhone(u.Phone) {
				u.Phones = append(u.Phones, u.Phone)
			}
			u.Phone = ""
		}
		switch u.Role {
		case "admin":
			u.Role = models.RoleSuperAdmin
		case "user":
			u.Role = models.RoleMember
		}
	}
}
