package htmldom_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lightpanda-io/htmldom"
)

func TestHTMLToDOMToHTMLString(t *testing.T) {
	const input = `<html><head></head><body>Hello, World!</body></html>`
	doc, err := htmldom.Parse(context.Background(), []byte(input))
	if !assert.NoError(t, err, `Parse(...) succeeds`) {
		return
	}

	str, err := doc.HTMLString()
	if !assert.NoError(t, err, "HTMLString(doc) succeeds") {
		return
	}

	if !assert.Equal(t, input, str, "roundtrip works") {
		return
	}
}

func TestDocumentText(t *testing.T) {
	const input = `<html><body><h1>Title</h1><p>one</p><p>two</p>` +
		`<script>ignored()</script><style>.x{}</style></body></html>`
	doc, err := htmldom.Parse(context.Background(), []byte(input))
	if !assert.NoError(t, err, `Parse(...) succeeds`) {
		return
	}

	text := doc.Text()
	assert.Contains(t, text, "Title", "headline text is extracted")
	assert.Contains(t, text, "one\n", "block elements break lines")
	assert.NotContains(t, text, "ignored", "script content is skipped")
	assert.NotContains(t, text, ".x{}", "style content is skipped")
}

func TestDocumentQuery(t *testing.T) {
	const input = `<html><body><ul><li class="a">1</li><li>2</li></ul></body></html>`
	doc, err := htmldom.Parse(context.Background(), []byte(input))
	if !assert.NoError(t, err, `Parse(...) succeeds`) {
		return
	}

	assert.Equal(t, 2, doc.Query("ul li").Length(), "both items match")
	assert.Equal(t, "1", doc.Query("li.a").Text(), "class selector matches")
}

func TestDumpDoc(t *testing.T) {
	const input = `<html><body><p id="x">hi</p></body></html>`
	doc, err := htmldom.Parse(context.Background(), []byte(input))
	if !assert.NoError(t, err, `Parse(...) succeeds`) {
		return
	}

	var buf bytes.Buffer
	d := htmldom.Dumper{}
	if !assert.NoError(t, d.DumpDoc(&buf, doc), "DumpDoc succeeds") {
		return
	}

	out := buf.String()
	assert.Contains(t, out, "document\n", "the root line is present")
	assert.Contains(t, out, `element p id="x"`, "elements carry their attributes")
	assert.Contains(t, out, `text "hi"`, "text nodes are quoted")

	assert.Error(t, d.DumpDoc(&buf, nil), "DumpDoc rejects a nil document")
}
