package htmldom

import (
	"context"
	"io"
	"log/slog"

	"github.com/lestrrat-go/pdebug/v3"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/lightpanda-io/htmldom/internal/pool"
)

// DefaultChunkSize is the read buffer size used when feeding from a file
// or reader. The tokenizer buffers internally, so chunks do not need to
// align with token or character boundaries.
const DefaultChunkSize = 1024

// feedMemory hands the entire buffer to the engine in a single feed call.
func feedMemory(ctx context.Context, sess *session, data []byte) error {
	if err := ctx.Err(); err != nil {
		return ingestError(FeedFailed, err)
	}
	if err := sess.eng.feed(data); err != nil {
		return ingestError(FeedFailed, err)
	}
	return nil
}

// feedStream drives the engine with chunks read from r. A short read
// (including a zero-byte read) is treated as end of input and terminates
// the loop cleanly; the final short chunk, possibly empty, is still fed.
// Read errors other than EOF surface as FeedFailed.
func feedStream(ctx context.Context, sess *session, r io.Reader, chunkSize int) error {
	buf := pool.ByteSlice().GetCapacity(chunkSize)[0:chunkSize]
	defer pool.ByteSlice().Put(buf)
	for {
		if err := ctx.Err(); err != nil {
			return ingestError(FeedFailed, err)
		}

		n, rerr := io.ReadFull(r, buf)
		if rerr != nil && rerr != io.EOF && rerr != io.ErrUnexpectedEOF {
			return ingestError(FeedFailed, rerr)
		}
		if pdebug.Enabled {
			pdebug.Printf("feeder: read %d bytes", n)
		}

		if err := sess.eng.feed(buf[:n]); err != nil {
			return ingestError(FeedFailed, err)
		}

		if rerr != nil || n < chunkSize {
			return nil
		}
	}
}

// complete signals end of input to the engine, collects the finished
// tree, and materializes the Document through the configured factory.
func complete(ctx context.Context, sess *session) error {
	root, err := sess.eng.complete()
	if err != nil {
		return ingestError(CompleteFailed, err)
	}

	prm := sess.params
	if prm.scripting && prm.script != nil {
		if err := offerScripts(root, prm); err != nil {
			return ingestError(CompleteFailed, err)
		}
	}

	factory := prm.daf
	if factory == nil {
		factory = newDocument
	}
	doc, err := factory(root)
	if err != nil {
		return ingestError(CompleteFailed, err)
	}
	if doc == nil {
		return ingestError(CompleteFailed, ErrNilDocument)
	}

	TraceEvent(ctx, "ingestion complete", slog.Int64("active_sessions", activeSessions.Load()))

	sess.doc = doc
	sess.completed = true
	return nil
}

// offerScripts walks the finished tree and hands each script element to
// the script handler, in document order.
func offerScripts(root *html.Node, prm *params) error {
	for n := range root.Descendants() {
		if n.Type == html.ElementNode && n.DataAtom == atom.Script {
			if err := prm.script(prm.scriptCtx, n); err != nil {
				return err
			}
		}
	}
	return nil
}
