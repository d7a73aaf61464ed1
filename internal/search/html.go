package search

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/sync/errgroup"
)

const indexConcurrency = 4

// FromHTML extracts every <section> of an HTML document. The title of a section is the text
// of its first h2 or h3.
func FromHTML(r io.Reader) ([]Section, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "parsing html")
	}
	var sections []Section
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Section {
			sections = append(sections, Section{
				ID:    attr(n, "id"),
				Title: strings.TrimSpace(textContent(firstHeading(n))),
				Text:  textContent(n),
			})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return sections, nil
}

// IndexDir extracts the sections of every .html file in dir, in file name order.
func IndexDir(ctx context.Context, dir string) ([]Section, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, errors.Wrapf(err, "listing %s", dir)
	}
	sort.Strings(paths)

	pages := make([][]Section, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(indexConcurrency)
	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := os.Open(p)
			if err != nil {
				return errors.Wrapf(err, "opening %s", p)
			}
			defer f.Close()
			sections, err := FromHTML(f)
			if err != nil {
				return errors.Wrapf(err, "indexing %s", p)
			}
			for j := range sections {
				sections[j].Page = filepath.Base(p)
			}
			pages[i] = sections
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Section
	for _, s := range pages {
		all = append(all, s...)
	}
	return all, nil
}

/* Private Helper Functions
------------------------------------------------------------------------------------------------- */

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func firstHeading(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.DataAtom == atom.H2 || c.DataAtom == atom.H3) {
			return c
		}
		if h := firstHeading(c); h != nil {
			return h
		}
	}
	return nil
}

func textContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		if n.Type == html.ElementNode && (n.DataAtom == atom.Script || n.DataAtom == atom.Style) {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
