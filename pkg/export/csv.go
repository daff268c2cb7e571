package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/japaniel/vok2vok/pkg/vok2"
)

// Delimiter separates csv columns.
const Delimiter = ';'

// EncodeCSV writes one line per record in vok2 column order, without a header.
func EncodeCSV(w io.Writer, records []vok2.RawRecord) error {
	cw := csv.NewWriter(w)
	cw.Comma = Delimiter
	for i, r := range records {
		if err := cw.Write(r.Fields()); err != nil {
			return fmt.Errorf("write record %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSV writes records to path following the destination policy.
func WriteCSV(path string, records []vok2.RawRecord, overwrite bool) (err error) {
	if err := Prepare(path, overwrite); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	if err := EncodeCSV(f, records); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// CSV converts vok2 files to headerless semicolon-separated text. Records
// are written as read, without renaming or synonym normalization.
type CSV struct {
	Ext string
}

// Output returns the csv path for source.
func (c CSV) Output(source string) string {
	return vok2.ReplaceExt(source, c.Ext)
}

// Convert reads source and writes it to output.
func (c CSV) Convert(_ context.Context, source, output string, overwrite bool) error {
	doc, err := vok2.ReadFile(source)
	if err != nil {
		return err
	}
	return WriteCSV(output, doc.Records, overwrite)
}
