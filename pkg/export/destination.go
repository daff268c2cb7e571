// Package export writes converted vok2 files as csv or vok5.
package export

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrDestinationExists is returned when an output exists and overwriting
// was not requested. Callers treat it as a skip.
var ErrDestinationExists = errors.New("destination exists")

// Decision is what to do with an output path.
type Decision int

const (
	Write Decision = iota
	Replace
	Skip
)

func (d Decision) String() string {
	switch d {
	case Write:
		return "write"
	case Replace:
		return "replace"
	case Skip:
		return "skip"
	}
	return fmt.Sprintf("Decision(%d)", int(d))
}

// Decide maps destination state and the overwrite flag to a decision.
func Decide(exists, overwrite bool) Decision {
	switch {
	case !exists:
		return Write
	case overwrite:
		return Replace
	default:
		return Skip
	}
}

// Check stats path and returns the decision for it. A Skip decision comes
// with ErrDestinationExists.
func Check(path string, overwrite bool) (Decision, error) {
	exists := true
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Skip, fmt.Errorf("stat %s: %w", path, err)
		}
		exists = false
	}
	d := Decide(exists, overwrite)
	if d == Skip {
		return d, fmt.Errorf("%s: %w", path, ErrDestinationExists)
	}
	return d, nil
}

// Prepare applies the decision for path, deleting an existing file when it
// is to be replaced. Outputs are never appended to or merged.
func Prepare(path string, overwrite bool) error {
	d, err := Check(path, overwrite)
	if err != nil {
		return err
	}
	if d == Replace {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove %s: %w", path, err)
		}
	}
	return nil
}
