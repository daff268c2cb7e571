package vok2

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"golang.org/x/net/html/charset"
)

// document mirrors the vok2 layout. The root element name is not checked;
// only direct children named header and vokabelsatz are read.
type document struct {
	Header  Header      `xml:"header"`
	Records []RawRecord `xml:"vokabelsatz"`
}

// ReadFile parses the vok2 file at path.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse reads a vok2 document from r. Encodings declared in the XML prolog
// (ISO-8859-1 and friends, as written by the legacy trainer) are decoded to UTF-8.
func Parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var raw document
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrParse)
		}
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if err := checkTrailing(dec); err != nil {
		return nil, err
	}

	return &Document{Header: raw.Header, Records: raw.Records}, nil
}

// checkTrailing rejects anything but whitespace, comments and processing
// instructions after the root element.
func checkTrailing(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrParse, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return fmt.Errorf("%w: unexpected element <%s> after document root", ErrParse, t.Name.Local)
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return fmt.Errorf("%w: unexpected text after document root", ErrParse)
			}
		}
	}
}
