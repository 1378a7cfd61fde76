// Package htmldom builds DOM documents from HTML byte streams.
//
// The package is a thin front-end over an external tokenizer/tree-builder
// (golang.org/x/net/html): it owns the parser handle for the duration of
// a single ingestion, feeds it input in bounded-size chunks, and hands the
// finished document to the caller. Input may come from an in-memory
// buffer, a file, or any io.Reader. On failure the caller receives a nil
// document and an *IngestError describing which phase failed; no partially
// constructed document is ever returned.
package htmldom

import (
	"context"
	"io"
)

const Version = "0.9.0"

// Parse parses the given []byte buffer and creates a Document object.
func Parse(ctx context.Context, data []byte, options ...ParseOption) (*Document, error) {
	return NewParser().Parse(ctx, data, options...)
}

// ParseFile opens the file at path for reading, and parses its contents
// in fixed-size chunks. The file is closed before ParseFile returns,
// whether parsing succeeded or not.
func ParseFile(ctx context.Context, path string, options ...ParseOption) (*Document, error) {
	return NewParser().ParseFile(ctx, path, options...)
}

// ParseReader parses HTML read from r, in fixed-size chunks. The reader
// is not closed.
func ParseReader(ctx context.Context, r io.Reader, options ...ParseOption) (*Document, error) {
	return NewParser().ParseReader(ctx, r, options...)
}
