package htmldom

import (
	"errors"
	"fmt"
)

func (k ErrorKind) String() string {
	switch k {
	case CreateFailed:
		return "create failed"
	case OpenFailed:
		return "open failed"
	case FeedFailed:
		return "feed failed"
	case CompleteFailed:
		return "complete failed"
	case CloseFailed:
		return "close failed"
	default:
		return "unknown"
	}
}

func (e *IngestError) Error() string {
	if e.err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.err)
}

func (e *IngestError) Unwrap() error {
	return e.err
}

func ingestError(kind ErrorKind, err error) *IngestError {
	return &IngestError{Kind: kind, err: err}
}

// Kind returns the ErrorKind carried by err, or 0 if err was not
// produced by this package.
func Kind(err error) ErrorKind {
	var ie *IngestError
	if errors.As(err, &ie) {
		return ie.Kind
	}
	return 0
}
