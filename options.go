package htmldom

import "github.com/lestrrat-go/option"

type Option = option.Interface

type identEncoding struct{}
type identFixEncoding struct{}
type identScripting struct{}
type identMessageHandler struct{}
type identScriptHandler struct{}
type identScriptContext struct{}
type identDocumentFactory struct{}
type identChunkSize struct{}

type ParseOption interface {
	Option
	parseOption()
}

type parseOption struct{ Option }

func (*parseOption) parseOption() {}

// WithEncoding declares the text encoding of the input, bypassing
// auto-detection. The name is a WHATWG encoding label such as "utf-8" or
// "iso-8859-1".
func WithEncoding(v string) ParseOption {
	return &parseOption{option.New(identEncoding{}, v)}
}

// WithFixEncoding controls what happens when the declared encoding label
// is not recognized: fall back to auto-detection (true, the default), or
// refuse to create the parser (false).
func WithFixEncoding(v bool) ParseOption {
	return &parseOption{option.New(identFixEncoding{}, v)}
}

// WithScripting tells the engine to parse as if scripting were enabled
// in the host. No script is ever executed; the flag only affects how the
// tree is built (noscript handling), and whether the script handler is
// invoked at completion.
func WithScripting(v bool) ParseOption {
	return &parseOption{option.New(identScripting{}, v)}
}

// WithMessageHandler registers a sink for diagnostic notices.
func WithMessageHandler(v MessageHandler) ParseOption {
	return &parseOption{option.New(identMessageHandler{}, v)}
}

// WithScriptHandler registers a callback offered each script element of
// the finished tree. Only consulted when scripting is enabled.
func WithScriptHandler(v ScriptHandler) ParseOption {
	return &parseOption{option.New(identScriptHandler{}, v)}
}

// WithScriptContext sets the opaque value passed to the script handler.
func WithScriptContext(v interface{}) ParseOption {
	return &parseOption{option.New(identScriptContext{}, v)}
}

// WithDocumentFactory overrides how the finished tree is wrapped into a
// Document.
func WithDocumentFactory(v DocumentFactory) ParseOption {
	return &parseOption{option.New(identDocumentFactory{}, v)}
}

// WithChunkSize sets the read buffer size used when feeding from a file
// or reader. Values below 1 are ignored.
func WithChunkSize(v int) ParseOption {
	return &parseOption{option.New(identChunkSize{}, v)}
}

// params is the resolved form of ParserParameters: every option fixed at
// session construction.
type params struct {
	encoding    string
	fixEncoding bool
	scripting   bool
	msg         MessageHandler
	script      ScriptHandler
	scriptCtx   interface{}
	daf         DocumentFactory
	chunkSize   int
	factory     engineFactory
}

func defaultParams() *params {
	return &params{
		fixEncoding: true,
		chunkSize:   DefaultChunkSize,
		factory:     newPipeEngine,
	}
}

func (p *params) apply(options ...ParseOption) {
	for _, o := range options {
		switch o.Ident().(type) {
		case identEncoding:
			p.encoding = o.Value().(string)
		case identFixEncoding:
			p.fixEncoding = o.Value().(bool)
		case identScripting:
			p.scripting = o.Value().(bool)
		case identMessageHandler:
			p.msg = o.Value().(MessageHandler)
		case identScriptHandler:
			p.script = o.Value().(ScriptHandler)
		case identScriptContext:
			p.scriptCtx = o.Value()
		case identDocumentFactory:
			p.daf = o.Value().(DocumentFactory)
		case identChunkSize:
			if v := o.Value().(int); v > 0 {
				p.chunkSize = v
			}
		}
	}
}

func (p *params) notify(msg string) {
	if p.msg != nil {
		p.msg(msg)
	}
}
