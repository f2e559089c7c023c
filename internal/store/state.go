// Package store provides origin-scoped key-value stores for theme preferences.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// SchemaVersion is the current version of the preferences file.
const SchemaVersion = 1

var (
	// ErrEmptyOrigin is returned when a file store is opened without an origin.
	ErrEmptyOrigin = errors.New("origin must not be empty")

	// ErrUnsupportedSchema is returned when the file was written by a newer version.
	ErrUnsupportedSchema = errors.New("unsupported schema version")
)

// DataDir returns the path to the themectl data directory.
// Uses XDG_DATA_HOME or defaults to ~/.local/share/themectl.
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "themectl"), nil
}

// DefaultPath returns the path to the preferences file.
func DefaultPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "preferences.json"), nil
}

// bucket holds the values of a single origin.
type bucket struct {
	Values    map[string]string `json:"values"`
	UpdatedAt int64             `json:"updated_at,omitempty"` // Unix timestamp of the last Set
}

// state is the on-disk layout of the preferences file.
type state struct {
	SchemaVersion int                `json:"schema_version"`
	Origins       map[string]*bucket `json:"origins"`
}

// pathLocks serialises access to each preferences file within the process,
// across every File opened on the same path.
var pathLocks sync.Map // cleaned path -> *sync.Mutex

func lockFor(path string) *sync.Mutex {
	mu, _ := pathLocks.LoadOrStore(filepath.Clean(path), &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// File is a Store persisted to a JSON file, holding one bucket per origin.
type File struct {
	mu     *sync.Mutex
	path   string
	origin string
}

// OpenFile returns a store for origin backed by the file at path.
// The file is created on the first Set.
func OpenFile(path, origin string) (*File, error) {
	if origin == "" {
		return nil, ErrEmptyOrigin
	}
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return &File{mu: lockFor(path), path: path, origin: origin}, nil
}

// Path returns the backing file path.
func (f *File) Path() string {
	return f.path
}

// Origin returns the origin the store is scoped to.
func (f *File) Origin() string {
	return f.origin
}

// Get returns the value under key for the store's origin.
func (f *File) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	st, err := f.load()
	if err != nil {
		return "", false, err
	}
	b, ok := st.Origins[f.origin]
	if !ok {
		return "", false, nil
	}
	v, ok := b.Values[key]
	return v, ok, nil
}

// Set stores value under key for the store's origin.
func (f *File) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	st, err := f.load()
	if err != nil {
		return err
	}
	b, ok := st.Origins[f.origin]
	if !ok {
		b = &bucket{}
		st.Origins[f.origin] = b
	}
	if b.Values == nil {
		b.Values = make(map[string]string)
	}
	b.Values[key] = value
	b.UpdatedAt = time.Now().Unix()

	return f.save(st)
}

// UpdatedAt returns when the origin was last written.
// The zero time means it never was.
func (f *File) UpdatedAt() (time.Time, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	st, err := f.load()
	if err != nil {
		return time.Time{}, err
	}
	b, ok := st.Origins[f.origin]
	if !ok || b.UpdatedAt == 0 {
		return time.Time{}, nil
	}
	return time.Unix(b.UpdatedAt, 0), nil
}

// load reads the file. A missing or corrupted file reads as empty.
func (f *File) load() (*state, error) {
	empty := &state{SchemaVersion: SchemaVersion, Origins: make(map[string]*bucket)}

	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return empty, nil
		}
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}

	var st state
	if err := json.Unmarshal(data, &st); err != nil {
		slog.Warn("preferences file is corrupted, starting empty", "path", f.path, "error", err)
		return empty, nil
	}
	if st.SchemaVersion > SchemaVersion {
		return nil, fmt.Errorf("%w %d (max: %d)", ErrUnsupportedSchema, st.SchemaVersion, SchemaVersion)
	}
	if st.Origins == nil {
		st.Origins = make(map[string]*bucket)
	}
	for origin, b := range st.Origins {
		if b == nil {
			slog.Warn("dropping empty origin entry", "path", f.path, "origin", origin)
			delete(st.Origins, origin)
		}
	}
	st.SchemaVersion = SchemaVersion
	return &st, nil
}

// save writes the file atomically via a temp file.
func (f *File) save(st *state) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, f.path)
}
