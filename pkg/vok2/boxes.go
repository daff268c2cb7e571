package vok2

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultBox is the review box assigned to every word when no sidecar exists.
const DefaultBox = 5

// Boxes holds the per-word review boxes of one vok2 file.
// A nil Values slice means Default applies to every record.
type Boxes struct {
	Default int
	Values  []int
}

// Broadcast reports whether the boxes came from the default rather than a sidecar.
func (b Boxes) Broadcast() bool { return b.Values == nil }

// Expand returns one box per record. A sidecar whose token count differs
// from n is an ErrFormat.
func (b Boxes) Expand(n int) ([]int, error) {
	out := make([]int, n)
	if b.Broadcast() {
		for i := range out {
			out[i] = b.Default
		}
		return out, nil
	}
	if len(b.Values) != n {
		return nil, fmt.Errorf("%w: %d box numbers for %d records", ErrFormat, len(b.Values), n)
	}
	copy(out, b.Values)
	return out, nil
}

// ReplaceExt swaps the final extension of path for ext.
func ReplaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// LoadBoxes reads the box sidecar belonging to the source file, found by
// replacing the source extension with ext. A missing sidecar yields
// broadcast boxes with value def.
func LoadBoxes(source, ext string, def int) (Boxes, error) {
	path := ReplaceExt(source, ext)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Boxes{Default: def}, nil
		}
		return Boxes{}, fmt.Errorf("read %s: %w", path, err)
	}

	boxes, err := ParseBoxes(string(data), def)
	if err != nil {
		return Boxes{}, fmt.Errorf("%s: %w", path, err)
	}
	return boxes, nil
}

// ParseBoxes splits content on whitespace and parses each token as an integer.
func ParseBoxes(content string, def int) (Boxes, error) {
	tokens := strings.Fields(content)
	values := make([]int, 0, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return Boxes{}, fmt.Errorf("%w: token %d %q is not an integer", ErrFormat, i+1, tok)
		}
		values = append(values, v)
	}
	return Boxes{Default: def, Values: values}, nil
}
