package vok2

import "errors"

var (
	// ErrNotFound is returned when the source file does not exist.
	// A missing box sidecar is not an error.
	ErrNotFound = errors.New("not found")
	// ErrParse is returned for documents that are not well-formed XML.
	ErrParse = errors.New("parse error")
	// ErrFormat is returned for malformed box sidecars and box/record count mismatches.
	ErrFormat = errors.New("format error")
)
