package htmldom

import (
	"sync/atomic"

	"github.com/lestrrat-go/pdebug/v3"
)

// activeSessions counts engines that have been created but not yet
// destroyed. It must read zero whenever no ingestion is in progress.
var activeSessions atomic.Int64

// session bundles the engine handle, the document it is building, and
// the completion state for one end-to-end ingestion. A session is owned
// exclusively by the entry-point call frame that opened it, and is
// closed exactly once before that frame returns.
type session struct {
	eng       engine
	params    *params
	doc       *Document
	completed bool
}

func openSession(p *params) (*session, error) {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	eng, err := p.factory(p)
	if err != nil {
		return nil, err
	}
	activeSessions.Add(1)
	return &session{eng: eng, params: p}, nil
}

// close destroys the engine. On the success path (success = true and the
// session completed) the document is detached first and returned;
// otherwise the in-progress document is abandoned with the engine.
// Calling close again is a no-op returning nil.
func (s *session) close(success bool) *Document {
	if s.eng == nil {
		return nil
	}

	s.eng.destroy()
	s.eng = nil
	activeSessions.Add(-1)

	var doc *Document
	if success && s.completed {
		doc = s.doc
	}
	s.doc = nil
	return doc
}
