// Package rsmd parses Markdown into a document tree and renders it to HTML.
//
// Parsing happens in four stages: a grapheme-cluster tokenizer turns each
// line into tokens, a grouper merges related lines into block groups, the
// block parser classifies each group into a Block, and the inline parser
// resolves emphasis, links, images and code spans inside block content
// using a CommonMark-style delimiter stack.
//
// Parsing is total: malformed syntax degrades to literal text and never
// returns an error.
//
// Example:
//
//	p := rsmd.NewParser(rsmd.DefaultConfig())
//	blocks := p.Parse("# Hello\n\nMarkdown in, HTML out.\n")
//	r := rsmd.NewRenderer(rsmd.DefaultConfig())
//	fmt.Println(r.RenderBlocks(blocks))
//
// The site subpackage turns a directory of Markdown files into a static
// site using this package.
package rsmd
