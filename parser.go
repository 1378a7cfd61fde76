package htmldom

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Parser is the ingestion façade. The zero value is not usable; obtain
// one through NewParser. A Parser carries no per-ingestion state and may
// be reused for any number of sequential or concurrent parses; each call
// owns a disjoint session.
type Parser struct {
	options []ParseOption
	factory engineFactory
}

// NewParser creates a Parser with a baseline set of options. Options
// passed to the individual parse methods are applied on top.
func NewParser(options ...ParseOption) *Parser {
	return &Parser{options: options}
}

func (p *Parser) resolve(options []ParseOption) *params {
	prm := defaultParams()
	prm.apply(p.options...)
	prm.apply(options...)
	if p.factory != nil {
		prm.factory = p.factory
	}
	return prm
}

// Parse parses the given []byte buffer and creates a Document object.
// The buffer is borrowed for the duration of the call.
func (p *Parser) Parse(ctx context.Context, data []byte, options ...ParseOption) (*Document, error) {
	ctx, span := StartSpan(ctx, "htmldom.Parse")
	defer span.End()

	prm := p.resolve(options)
	sess, err := openSession(prm)
	if err != nil {
		return nil, ingestError(CreateFailed, err)
	}
	defer sess.close(false)

	if err := feedMemory(ctx, sess, data); err != nil {
		return nil, err
	}
	if err := complete(ctx, sess); err != nil {
		return nil, err
	}
	return sess.close(true), nil
}

// ParseReader parses HTML read from r in chunks of the configured size.
// The reader is not closed.
func (p *Parser) ParseReader(ctx context.Context, r io.Reader, options ...ParseOption) (*Document, error) {
	ctx, span := StartSpan(ctx, "htmldom.ParseReader")
	defer span.End()

	prm := p.resolve(options)
	sess, err := openSession(prm)
	if err != nil {
		return nil, ingestError(CreateFailed, err)
	}
	defer sess.close(false)

	return p.ingest(ctx, sess, r, prm)
}

// ParseFile opens the file at path for binary read and parses its
// contents in chunks of the configured size. The file is closed exactly
// once before ParseFile returns. If the close itself fails after an
// otherwise successful parse, the document is discarded and the caller
// receives CloseFailed.
func (p *Parser) ParseFile(ctx context.Context, path string, options ...ParseOption) (*Document, error) {
	ctx, span := StartSpan(ctx, "htmldom.ParseFile")
	defer span.End()

	prm := p.resolve(options)
	sess, err := openSession(prm)
	if err != nil {
		return nil, ingestError(CreateFailed, err)
	}
	defer sess.close(false)

	f, err := os.Open(path)
	if err != nil {
		return nil, ingestError(OpenFailed, err)
	}

	doc, perr := p.ingest(ctx, sess, f, prm)
	cerr := f.Close()
	if perr != nil {
		return nil, perr
	}
	if cerr != nil {
		TraceError(ctx, cerr, "discarding document: input close failed", slog.String("path", path))
		return nil, ingestError(CloseFailed, cerr)
	}
	return doc, nil
}

// ingest runs the feed/complete/detach sequence for stream inputs. The
// deferred close in the caller handles engine teardown on error paths.
func (p *Parser) ingest(ctx context.Context, sess *session, r io.Reader, prm *params) (*Document, error) {
	if err := feedStream(ctx, sess, r, prm.chunkSize); err != nil {
		return nil, err
	}
	if err := complete(ctx, sess); err != nil {
		return nil, err
	}
	return sess.close(true), nil
}
