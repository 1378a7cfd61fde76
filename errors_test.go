package htmldom

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestIngestError(t *testing.T) {
	cause := errors.New("engine said no")
	err := ingestError(FeedFailed, cause)

	require.Equal(t, "feed failed: engine said no", err.Error(), "message includes kind and cause")
	require.ErrorIs(t, err, cause, "the cause is reachable through Unwrap")
	require.Equal(t, FeedFailed, Kind(err), "Kind recovers the error kind")

	wrapped := errors.Wrap(err, "while parsing")
	require.Equal(t, FeedFailed, Kind(wrapped), "Kind sees through wrapping")
}

func TestKindUnknown(t *testing.T) {
	require.Zero(t, Kind(errors.New("not ours")), "foreign errors have no kind")
	require.Zero(t, Kind(nil), "nil has no kind")
}

func TestErrorKindStrings(t *testing.T) {
	kinds := map[ErrorKind]string{
		CreateFailed:   "create failed",
		OpenFailed:     "open failed",
		FeedFailed:     "feed failed",
		CompleteFailed: "complete failed",
		CloseFailed:    "close failed",
		ErrorKind(99):  "unknown",
	}
	for k, expected := range kinds {
		require.Equal(t, expected, k.String())
	}
}
