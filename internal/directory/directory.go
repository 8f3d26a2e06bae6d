// SPDX-License-Identifier: MPL-2.0

package directory

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var (
	// ErrNotFound is the sentinel error wrapped by NotFoundError.
	ErrNotFound = errors.New("name not found")
	// ErrEmptyName is returned when a lookup is attempted with an empty or
	// whitespace-only name.
	ErrEmptyName = errors.New("empty name")
	// ErrDuplicateName is the sentinel error wrapped by DuplicateNameError.
	ErrDuplicateName = errors.New("duplicate name")
)

type (
	// Record holds the per-person directory data. OfficeNumber may be empty;
	// the roster has never recorded an office for everyone.
	Record struct {
		Name            string
		FavouriteObject string
		OfficeNumber    string
	}

	// Directory is a read-only mapping from normalized staff name to Record.
	// Construct it with New or Load; the zero value is an empty directory.
	Directory struct {
		records map[string]Record
	}

	// NotFoundError is returned when a queried name has no matching record.
	// It wraps ErrNotFound for errors.Is() compatibility.
	NotFoundError struct {
		Name string
	}

	// DuplicateNameError is returned by New when two records normalize to the
	// same name. It wraps ErrDuplicateName for errors.Is() compatibility.
	DuplicateNameError struct {
		Name string
	}
)

// Error returns the error message for NotFoundError.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no staff member named %q in the directory", e.Name)
}

// Unwrap returns ErrNotFound.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// Error returns the error message for DuplicateNameError.
func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate directory entry for %q", e.Name)
}

// Unwrap returns ErrDuplicateName.
func (e *DuplicateNameError) Unwrap() error {
	return ErrDuplicateName
}

// normalizeName maps a name to its lookup key: interior runs of whitespace
// collapse to single spaces, surrounding whitespace is dropped, and letters
// are lower-cased.
func normalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// New builds a Directory from records. Each record's name must be non-empty
// and unique under normalization.
func New(records []Record) (*Directory, error) {
	byName := make(map[string]Record, len(records))

	for _, rec := range records {
		key := normalizeName(rec.Name)
		if key == "" {
			return nil, fmt.Errorf("record with favourite object %q: %w", rec.FavouriteObject, ErrEmptyName)
		}
		if _, exists := byName[key]; exists {
			return nil, &DuplicateNameError{Name: rec.Name}
		}
		byName[key] = rec
	}

	return &Directory{records: byName}, nil
}

// Lookup resolves a name to its record. Matching is case-insensitive and
// ignores redundant whitespace. It returns ErrEmptyName (wrapped) for empty
// input and a *NotFoundError when no entry matches.
func (d *Directory) Lookup(name string) (Record, error) {
	key := normalizeName(name)
	if key == "" {
		return Record{}, fmt.Errorf("look up name: %w", ErrEmptyName)
	}

	rec, ok := d.records[key]
	if !ok {
		return Record{}, &NotFoundError{Name: name}
	}

	return rec, nil
}

// Names returns the display names of all records, sorted.
func (d *Directory) Names() []string {
	records := maps.Values(d.records)
	names := make([]string, 0, len(records))
	for _, rec := range records {
		names = append(names, rec.Name)
	}
	slices.Sort(names)
	return names
}

// Records returns all records sorted by display name.
func (d *Directory) Records() []Record {
	records := maps.Values(d.records)
	slices.SortFunc(records, func(a, b Record) int {
		return strings.Compare(a.Name, b.Name)
	})
	return records
}

// Len returns the number of records in the directory.
func (d *Directory) Len() int {
	return len(d.records)
}
