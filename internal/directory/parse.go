// SPDX-License-Identifier: MPL-2.0

package directory

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"skydir/internal/issue"
)

// ErrMalformedLine is the sentinel error wrapped by ParseError.
var ErrMalformedLine = errors.New("malformed roster line")

// ParseError is returned when a roster line does not match the expected
// "Name: favourite object[: office]" format. It wraps ErrMalformedLine for
// errors.Is() compatibility.
type ParseError struct {
	Source string // file path or resource name
	Line   int    // 1-based line number
	Reason string
}

// Error returns the error message for ParseError.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Source, e.Line, e.Reason)
}

// Unwrap returns ErrMalformedLine.
func (e *ParseError) Unwrap() error {
	return ErrMalformedLine
}

// ParseRoster reads a line-oriented roster from r. Each non-blank line that
// does not start with '#' must have the form
//
//	Name: favourite object[: office]
//
// Fields are colon-separated and trimmed. The office field is optional.
// The source argument names the input in errors.
func ParseRoster(r io.Reader, source string) ([]Record, error) {
	var records []Record

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, ":")
		if len(fields) < 2 || len(fields) > 3 {
			return nil, &ParseError{
				Source: source,
				Line:   lineNo,
				Reason: fmt.Sprintf("expected 'Name: favourite object[: office]', got %d field(s)", len(fields)),
			}
		}

		rec := Record{
			Name:            strings.TrimSpace(fields[0]),
			FavouriteObject: strings.TrimSpace(fields[1]),
		}
		if len(fields) == 3 {
			rec.OfficeNumber = strings.TrimSpace(fields[2])
		}

		if rec.Name == "" {
			return nil, &ParseError{Source: source, Line: lineNo, Reason: "entry has an empty name"}
		}
		if rec.FavouriteObject == "" {
			return nil, &ParseError{Source: source, Line: lineNo, Reason: "entry has an empty favourite object"}
		}

		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, issue.WrapWithOperation(err, "read roster "+source)
	}

	return records, nil
}

// Load reads a roster file from path and builds a Directory from it.
func Load(path string) (*Directory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	records, err := ParseRoster(f, path)
	if err != nil {
		return nil, err
	}

	dir, err := New(records)
	if err != nil {
		return nil, fmt.Errorf("build directory from %s: %w", path, err)
	}

	return dir, nil
}
