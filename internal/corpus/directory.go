package corpus

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"docsearch/internal/domain"
)

// Directory lists and opens documents with a given extension inside one folder.
type Directory struct {
	location  string
	extension string
}

// NewDirectory creates a Directory rooted at location accepting files ending in extension.
func NewDirectory(location, extension string) *Directory {
	return &Directory{location: location, extension: strings.ToLower(extension)}
}

// Location returns the folder path.
func (d *Directory) Location() string { return d.location }

// List returns the eligible file names in lexical order.
func (d *Directory) List() ([]string, error) {
	entries, err := os.ReadDir(d.location)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", domain.ErrInvalidLocation, d.location, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !d.accepts(e.Name()) || !d.isFile(e) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// Path returns the full path of a document name.
func (d *Directory) Path(name string) string {
	return filepath.Join(d.location, name)
}

// Open returns the file for name. Names must be plain file names inside the folder.
func (d *Directory) Open(name string) (*os.File, error) {
	if name == "" || name != filepath.Base(name) || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidName, name)
	}
	if !d.accepts(name) {
		return nil, fmt.Errorf("%w: %q", domain.ErrDocumentNotFound, name)
	}
	f, err := os.Open(d.Path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", domain.ErrDocumentNotFound, name)
		}
		return nil, fmt.Errorf("open %q: %w", name, err)
	}
	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %q", domain.ErrDocumentNotFound, name)
	}
	return f, nil
}

// isFile reports whether e is a regular file, following symlinks the same way Open does.
func (d *Directory) isFile(e fs.DirEntry) bool {
	if e.Type()&fs.ModeSymlink == 0 {
		return e.Type().IsRegular()
	}
	info, err := os.Stat(d.Path(e.Name()))
	return err == nil && info.Mode().IsRegular()
}

func (d *Directory) accepts(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), d.extension)
}
