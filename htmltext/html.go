/*
Package htmltext applies sequence algorithms to the textual content of HTML.

Only text nodes are subject to searching and replacing; markup, attributes
and comments are left alone. Matches never span more than one text node.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package htmltext

import (
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/seqalgo"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer writes to trace with key 'seqalgo'
func tracer() tracing.Trace {
	return tracing.Select("seqalgo")
}

// InnerText returns the textual content of an HTML element and all its
// descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that InnerText cannot respect CSS styling suppressing
// the visibility of the node's descendents).
func InnerText(n *html.Node) (string, error) {
	if n == nil {
		return "", seqalgo.ErrIllegalArguments
	}
	var b strings.Builder
	collectText(n, &b)
	return b.String(), nil
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// TextFromHTML extracts the textual content of an HTML fragment.
// It does no interpretation of layout and styling, but extracts the pure text.
func TextFromHTML(input io.Reader) (string, error) {
	nodes, err := parseFragment(input)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, n := range nodes {
		collectText(n, &b)
	}
	return b.String(), nil
}

// ReplaceText parses an HTML fragment from input, replaces every match of
// finder within its text nodes by the output of formatter and writes the
// resulting fragment to output.
func ReplaceText(input io.Reader, output io.Writer,
	finder seqalgo.Finder[rune], formatter seqalgo.Formatter[rune]) error {
	//
	if output == nil || formatter == nil {
		return seqalgo.ErrIllegalArguments
	}
	nodes, err := parseFragment(input)
	if err != nil {
		return err
	}
	count := 0
	for _, n := range nodes {
		count += replaceInText(n, finder, formatter)
	}
	tracer().Debugf("htmltext: replaced text in %d text nodes", count)
	for _, n := range nodes {
		if err := html.Render(output, n); err != nil {
			return err
		}
	}
	return nil
}

// replaceInText rewrites the text nodes of the tree rooted at n. It returns the
// number of text nodes changed.
func replaceInText(n *html.Node, finder seqalgo.Finder[rune], formatter seqalgo.Formatter[rune]) int {
	count := 0
	if n.Type == html.TextNode {
		text := []rune(n.Data)
		repl := seqalgo.FindFormatAllCopy(text, finder, formatter)
		if !seqalgo.Equals(text, repl) {
			n.Data = string(repl)
			count++
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count += replaceInText(c, finder, formatter)
	}
	return count
}

// parseFragment parses input in the context of an HTML body element.
func parseFragment(input io.Reader) ([]*html.Node, error) {
	if input == nil {
		return nil, seqalgo.ErrIllegalArguments
	}
	body := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	return html.ParseFragment(input, body)
}
