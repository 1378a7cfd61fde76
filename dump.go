package htmldom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Dumper writes a human-readable outline of a document tree, one node
// per line, indented by depth. It is meant for debugging and for the
// htmldom-dump command line tool, not for serialization; use
// Document.HTML for that.
type Dumper struct{}

func (d *Dumper) writeString(out io.Writer, content string) error {
	_, err := io.WriteString(out, content)
	return err
}

func (d *Dumper) DumpDoc(out io.Writer, doc *Document) error {
	if doc == nil {
		return ErrNilDocument
	}
	return d.dumpNode(out, doc.Root(), 0)
}

func (d *Dumper) DumpNode(out io.Writer, n *html.Node) error {
	return d.dumpNode(out, n, 0)
}

func (d *Dumper) dumpNode(out io.Writer, n *html.Node, depth int) error {
	if err := d.writeString(out, strings.Repeat("  ", depth)); err != nil {
		return err
	}

	var err error
	switch n.Type {
	case html.DocumentNode:
		err = d.writeString(out, "document\n")
	case html.DoctypeNode:
		err = d.writeString(out, "doctype "+n.Data+"\n")
	case html.ElementNode:
		line := "element " + n.Data
		for _, a := range n.Attr {
			line += fmt.Sprintf(" %s=%q", a.Key, a.Val)
		}
		err = d.writeString(out, line+"\n")
	case html.TextNode:
		err = d.writeString(out, fmt.Sprintf("text %q\n", n.Data))
	case html.CommentNode:
		err = d.writeString(out, fmt.Sprintf("comment %q\n", n.Data))
	default:
		err = d.writeString(out, "node\n")
	}
	if err != nil {
		return err
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := d.dumpNode(out, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}
