package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/lightpanda-io/htmldom"
	"github.com/lightpanda-io/htmldom/internal/cliutil"
)

type cmdopts struct {
	Text     bool   `long:"text"`
	Select   string `long:"select"`
	Encoding string `long:"encoding"`
	Version  bool   `long:"version"`
}

func main() {
	os.Exit(_main())
}

func showVersion() {
	fmt.Printf("htmldom-dump: using htmldom version %s\n", htmldom.Version)
}

func showUsage() {
	fmt.Printf(`Usage : htmldom-dump [options] HTMLfiles ...
	Parse the HTML files and dump the resulting document tree
	--text     : dump the extracted text content instead of the tree
	--select   : dump only the nodes matching the given CSS selector
	--encoding : declare the input encoding instead of auto-detecting
	--version  : display the version of the HTML library used
`)
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	if opts.Version {
		showVersion()
		return 0
	}

	var options []htmldom.ParseOption
	if opts.Encoding != "" {
		options = append(options, htmldom.WithEncoding(opts.Encoding))
	}

	ctx := context.Background()
	p := htmldom.NewParser(options...)

	var docs []*htmldom.Document
	switch {
	case len(args) > 0: // filename present
		for _, f := range args {
			doc, err := p.ParseFile(ctx, f)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %s\n", f, err)
				return 1
			}
			docs = append(docs, doc)
		}
	case !cliutil.IsTty(os.Stdin.Fd()):
		doc, err := p.ParseReader(ctx, os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}
		docs = append(docs, doc)
	default:
		showUsage()
		return 1
	}

	for _, doc := range docs {
		if err := dump(os.Stdout, doc, &opts); err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}
	}
	return 0
}

func dump(out io.Writer, doc *htmldom.Document, opts *cmdopts) error {
	switch {
	case opts.Text:
		_, err := fmt.Fprintln(out, doc.Text())
		return err
	case opts.Select != "":
		d := htmldom.Dumper{}
		for _, n := range doc.Query(opts.Select).Nodes {
			if err := d.DumpNode(out, n); err != nil {
				return err
			}
		}
		return nil
	default:
		d := htmldom.Dumper{}
		return d.DumpDoc(out, doc)
	}
}
