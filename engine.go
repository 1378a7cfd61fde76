package htmldom

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/lestrrat-go/pdebug/v3"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	"github.com/lightpanda-io/htmldom/encoding"
)

// engine is the contract with the external tokenizer/tree-builder: feed
// accepts one chunk of raw bytes, complete flushes buffered state and
// hands back the finished tree, destroy releases the engine. destroy must
// be called exactly once per engine, regardless of prior feed/complete
// results, and is safe to call after complete.
type engine interface {
	feed(chunk []byte) error
	complete() (*html.Node, error)
	destroy()
}

type engineFactory func(p *params) (engine, error)

// readerWrapper decorates the raw byte stream with encoding handling
// before it reaches the tokenizer.
type readerWrapper func(io.Reader) (io.Reader, error)

// pipeEngine adapts the pull-style golang.org/x/net/html parser to the
// push-style feed/complete/destroy contract. Chunks are written into an
// io.Pipe drained by a dedicated parse goroutine, so at most one chunk
// is in flight and memory stays bounded regardless of input size.
type pipeEngine struct {
	pr   *io.PipeReader
	pw   *io.PipeWriter
	done chan struct{}
	root *html.Node
	err  error

	destroyOnce sync.Once
}

func newPipeEngine(p *params) (engine, error) {
	wrap, err := inputReader(p)
	if err != nil {
		return nil, err
	}

	pr, pw := io.Pipe()
	e := &pipeEngine{
		pr:   pr,
		pw:   pw,
		done: make(chan struct{}),
	}
	go e.run(wrap, p.scripting)
	return e, nil
}

// inputReader resolves the declared encoding up front so that a bad
// label surfaces at create time, not mid-feed.
func inputReader(p *params) (readerWrapper, error) {
	autodetect := func(r io.Reader) (io.Reader, error) {
		cr, err := charset.NewReader(r, "")
		if err == io.EOF {
			// charset sniffing rejects a fully empty stream, but
			// zero-length input is legal and yields an empty document
			return bytes.NewReader(nil), nil
		}
		return cr, err
	}

	if p.encoding == "" {
		return autodetect, nil
	}

	enc := encoding.Load(p.encoding)
	if enc == nil {
		if !p.fixEncoding {
			return nil, errors.Errorf(`unrecognized encoding label %q`, p.encoding)
		}
		p.notify(fmt.Sprintf("unrecognized encoding label %q, falling back to auto-detection", p.encoding))
		return autodetect, nil
	}

	return func(r io.Reader) (io.Reader, error) {
		return enc.NewDecoder().Reader(r), nil
	}, nil
}

func (e *pipeEngine) run(wrap readerWrapper, scripting bool) {
	var root *html.Node
	r, err := wrap(e.pr)
	if err == nil {
		root, err = html.ParseWithOptions(r,
			html.ParseOptionEnableScripting(scripting),
		)
	}

	// Fail any in-flight or later feed; harmless if the stream was
	// already consumed to EOF.
	e.pr.CloseWithError(err)

	e.root = root
	e.err = err
	close(e.done)
}

func (e *pipeEngine) feed(chunk []byte) error {
	if pdebug.Enabled {
		pdebug.Printf("engine: feed %d bytes", len(chunk))
	}
	if _, err := e.pw.Write(chunk); err != nil {
		return err
	}
	return nil
}

func (e *pipeEngine) complete() (*html.Node, error) {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}
	e.pw.Close()
	<-e.done
	if e.err != nil {
		return nil, e.err
	}
	return e.root, nil
}

func (e *pipeEngine) destroy() {
	e.destroyOnce.Do(func() {
		e.pw.CloseWithError(errEngineAbandoned)
		e.pr.CloseWithError(errEngineAbandoned)
		// reap the parse goroutine
		<-e.done
		e.root = nil
	})
}
