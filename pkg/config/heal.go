package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Merge returns a new document holding every section of doc plus, for each
// section of set that doc lacks, the corresponding section of defaults.
// Sections already present in doc are never replaced. The second return
// value lists the sections taken from defaults, in declared order.
//
// Merge does no I/O and does not modify its arguments.
func Merge(doc, defaults *Document, set RequiredSet) (*Document, []Section) {
	healed := doc.Clone()
	if healed == nil {
		healed = &Document{}
	}

	var added []Section
	for _, s := range set {
		if healed.Has(s) || !defaults.Has(s) {
			continue
		}
		healed.copySection(s, defaults)
		added = append(added, s)
	}
	return healed, added
}

// Persist writes doc to path in the format implied by the path's extension.
// The content goes to a temporary file in the same directory which is then
// renamed over path, so readers see either the old or the new resource.
// The resource ends up with mode 0600.
func Persist(doc *Document, path string) error {
	data, err := Encode(doc, FormatForPath(path))
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrPersist, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create directory %q: %w", ErrPersist, dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: create temp file in %q: %w", ErrPersist, dir, err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("%w: write %q: %w", ErrPersist, tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("%w: sync %q: %w", ErrPersist, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("%w: close %q: %w", ErrPersist, tmpName, err)
	}
	err = os.Rename(tmpName, path)
	if err != nil && runtime.GOOS == "windows" {
		// Windows may refuse to rename over an existing file.
		if rmErr := os.Remove(path); rmErr == nil {
			err = os.Rename(tmpName, path)
		}
	}
	if err != nil {
		cleanup()
		return fmt.Errorf("%w: rename %q -> %q: %w", ErrPersist, tmpName, path, err)
	}
	return nil
}

// Heal fills the sections of set missing from doc with the canonical
// defaults and writes the result to path. It returns the sections it added.
// Healing a complete document rewrites the same content.
func Heal(doc *Document, path string, set RequiredSet) ([]Section, error) {
	healed, added := Merge(doc, Defaults(), set)
	if err := Persist(healed, path); err != nil {
		return nil, err
	}
	return added, nil
}

// CreateDefault writes a brand-new resource holding the default for every
// section. Unlike Heal it does not read or merge anything.
func CreateDefault(path string) error {
	return Persist(Defaults(), path)
}
