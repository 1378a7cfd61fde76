package htmldom

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is the finished DOM tree produced by a successful ingestion.
// Ownership transfers to the caller on return; the session that built it
// holds no further reference.
type Document struct {
	root *html.Node
}

func newDocument(root *html.Node) (*Document, error) {
	if root == nil {
		return nil, ErrNilDocument
	}
	return &Document{root: root}, nil
}

// Root returns the document node of the underlying tree.
func (d *Document) Root() *html.Node {
	return d.root
}

// Query evaluates a CSS selector against the document.
func (d *Document) Query(selector string) *goquery.Selection {
	return goquery.NewDocumentFromNode(d.root).Find(selector)
}

// HTML serializes the document to w.
func (d *Document) HTML(w io.Writer) error {
	return html.Render(w, d.root)
}

// HTMLString serializes the document and returns it as a string.
func (d *Document) HTMLString() (string, error) {
	var sb strings.Builder
	if err := d.HTML(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// blockTags is the set of elements that contribute a line break during
// text extraction.
var blockTags = map[atom.Atom]bool{
	atom.P:          true,
	atom.Br:         true,
	atom.Div:        true,
	atom.H1:         true,
	atom.H2:         true,
	atom.H3:         true,
	atom.H4:         true,
	atom.H5:         true,
	atom.H6:         true,
	atom.Li:         true,
	atom.Tr:         true,
	atom.Blockquote: true,
	atom.Hr:         true,
}

// skipTags is the set of elements whose content is omitted from text
// extraction.
var skipTags = map[atom.Atom]bool{
	atom.Script: true,
	atom.Style:  true,
}

// Text extracts the plain text content of the document. Block-level
// elements produce line breaks; script and style content is skipped.
func (d *Document) Text() string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			sb.WriteString(n.Data)
			return
		case html.ElementNode:
			if skipTags[n.DataAtom] {
				return
			}
			if blockTags[n.DataAtom] {
				sb.WriteByte('\n')
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
	return strings.TrimSpace(sb.String())
}
