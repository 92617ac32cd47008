// Package storage resolves data file names against a set of search roots.
//
// The renderer only uses storage to check that a file exists before handing
// the resolved path to an image codec, so the interface is deliberately
// narrow: open a name, get back a handle and the path it resolved to.
package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// Sentinel errors.
var (
	ErrNotFound = errors.New("storage: file not found")
	ErrReadOnly = errors.New("storage: read-only storage")
	ErrBadName  = errors.New("storage: invalid file name")
	ErrBadType  = errors.New("storage: unknown storage type")
)

// Flag selects the open mode.
type Flag uint8

const (
	// FlagRead opens an existing file for reading.
	FlagRead Flag = 1 << iota

	// FlagWrite creates or truncates a file for writing.
	FlagWrite
)

// Type selects which search root to use. Non-negative values index a single
// root; TypeAll searches every root in order.
type Type int

const (
	// TypeAll searches all roots, first match wins.
	TypeAll Type = -1

	// TypeSave is the writable root.
	TypeSave Type = 0
)

// File is an open storage handle.
type File interface {
	io.ReadWriteCloser
}

// Storage opens data files. The returned string is the resolved path, which
// an image codec can open on its own.
type Storage interface {
	OpenFile(name string, flags Flag, typ Type) (File, string, error)
}

// Dirs is a Storage over operating system directories. Paths[0] is the save
// root and the only one written to.
type Dirs struct {
	Paths []string
}

// NewDirs returns a Dirs searching paths in order.
func NewDirs(paths ...string) *Dirs {
	return &Dirs{Paths: paths}
}

// OpenFile implements Storage.
func (d *Dirs) OpenFile(name string, flags Flag, typ Type) (File, string, error) {
	if !filepath.IsLocal(name) {
		return nil, "", fmt.Errorf("%w: %q", ErrBadName, name)
	}
	if len(d.Paths) == 0 {
		return nil, "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	if flags&FlagWrite != 0 {
		full := filepath.Join(d.Paths[TypeSave], name)
		f, err := os.Create(full)
		if err != nil {
			return nil, "", fmt.Errorf("storage: create %s: %w", full, err)
		}
		return f, full, nil
	}

	roots := d.Paths
	if typ != TypeAll {
		if typ < 0 || int(typ) >= len(d.Paths) {
			return nil, "", fmt.Errorf("%w: %d", ErrBadType, typ)
		}
		roots = d.Paths[typ : typ+1]
	}

	for _, root := range roots {
		full := filepath.Join(root, name)
		f, err := os.Open(full)
		if err == nil {
			return f, full, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("storage: open %s: %w", full, err)
		}
	}
	return nil, "", fmt.Errorf("%w: %s", ErrNotFound, name)
}

// FS is a read-only Storage over an fs.FS. It has a single root, so every
// type other than TypeAll and TypeSave is rejected.
type FS struct {
	FS fs.FS
}

// OpenFile implements Storage. The resolved path is the cleaned name, valid
// for the same fs.FS.
func (s FS) OpenFile(name string, flags Flag, typ Type) (File, string, error) {
	if flags&FlagWrite != 0 {
		return nil, "", ErrReadOnly
	}
	if typ != TypeAll && typ != TypeSave {
		return nil, "", fmt.Errorf("%w: %d", ErrBadType, typ)
	}
	name = path.Clean(name)
	if !fs.ValidPath(name) {
		return nil, "", fmt.Errorf("%w: %q", ErrBadName, name)
	}

	f, err := s.FS.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, "", fmt.Errorf("storage: open %s: %w", name, err)
	}
	return readOnlyFile{f}, name, nil
}

type readOnlyFile struct {
	fs.File
}

func (readOnlyFile) Write([]byte) (int, error) { return 0, ErrReadOnly }

// Ensure the storages implement Storage.
var (
	_ Storage = (*Dirs)(nil)
	_ Storage = FS{}
)
