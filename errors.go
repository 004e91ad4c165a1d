package sbd

import "github.com/jamesainslie/go-sbd/document"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrDocumentNotFound indicates the document file does not exist.
	ErrDocumentNotFound = document.ErrNotFound

	// ErrUnsupportedFormat indicates the document format cannot be read.
	ErrUnsupportedFormat = document.ErrUnsupportedFormat
)
