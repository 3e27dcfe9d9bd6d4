package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/vlctrack/vlctrack/filesystem"
	"github.com/vlctrack/vlctrack/log"
)

// JSONStore keeps the history as a single JSON array, rewritten in full on every change.
type JSONStore struct {
	path string
	mu   sync.Mutex
}

// NewJSONStore returns a store backed by the file at path. The file is created lazily.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Path is the location of the history file.
func (s *JSONStore) Path() string {
	return s.path
}

func (s *JSONStore) Load() ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.read()
}

// read loads the file, resetting it to an empty array when it is missing or corrupt.
// Any other read error is returned and the file is left alone.
func (s *JSONStore) read() ([]Entry, error) {
	data, err := filesystem.API().ReadFile(s.path)
	if os.IsNotExist(err) {
		return []Entry{}, s.write([]Entry{})
	}
	if err != nil {
		return nil, fmt.Errorf("read history %s: %w", s.path, err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Warnf("history %s is corrupt, starting empty: %v", s.path, err)
		return []Entry{}, s.write([]Entry{})
	}

	if entries == nil {
		entries = []Entry{}
	}

	return entries, nil
}

func (s *JSONStore) write(entries []Entry) error {
	if err := filesystem.API().MkdirAll(filepath.Dir(s.path), os.ModePerm); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return err
	}

	return filesystem.API().WriteFile(s.path, data, 0o644)
}

func (s *JSONStore) Upsert(path, timestamp string, watched bool, length int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return err
	}

	entry := Entry{
		File:      path,
		Timestamp: timestampFor(timestamp, watched),
		Watched:   watched,
		Length:    length,
	}

	identity := entry.Identity()
	if i := slices.IndexFunc(entries, func(e Entry) bool { return e.Identity() == identity }); i >= 0 {
		entries[i] = entry
	} else {
		entries = append(entries, entry)
	}

	return s.write(entries)
}

func (s *JSONStore) Delete(path string, removeFile bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return err
	}

	matches := func(e Entry) bool { return e.File == path }
	if !slices.ContainsFunc(entries, matches) {
		return nil
	}

	if removeFile {
		if err := removeMedia(path); err != nil {
			return err
		}
	}

	return s.write(slices.DeleteFunc(entries, matches))
}

func (s *JSONStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write([]Entry{})
}

func (s *JSONStore) Close() error {
	return nil
}
