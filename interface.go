package htmldom

import (
	"errors"

	"golang.org/x/net/html"
)

var (
	ErrNilDocument     = errors.New("nil document")
	errEngineAbandoned = errors.New("engine abandoned")
)

// ErrorKind identifies the ingestion phase that failed.
type ErrorKind int

const (
	// CreateFailed means the parser engine refused to initialize.
	CreateFailed ErrorKind = iota + 1
	// OpenFailed means the input file could not be opened.
	OpenFailed
	// FeedFailed means the engine rejected a chunk, or a read from the
	// input failed mid-stream.
	FeedFailed
	// CompleteFailed means the engine could not finalize the tree.
	CompleteFailed
	// CloseFailed means the input file could not be closed after an
	// otherwise successful parse. The document is discarded.
	CloseFailed
)

// IngestError is the error type returned by every entry point. Kind tells
// the caller which phase of ingestion failed; the wrapped cause is
// available through errors.Unwrap.
type IngestError struct {
	Kind ErrorKind
	err  error
}

// MessageHandler receives diagnostic notices from the engine, such as an
// encoding fallback. Notices are informational only; every failure is
// also reflected in the returned error.
type MessageHandler func(msg string)

// ScriptHandler is offered each script element of the finished tree when
// scripting is enabled. Returning an error aborts completion.
type ScriptHandler func(sctx interface{}, script *html.Node) error

// DocumentFactory builds the Document handed to the caller from the
// finished tree. When unset, the default factory is used.
type DocumentFactory func(root *html.Node) (*Document, error)
