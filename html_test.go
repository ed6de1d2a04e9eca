package rsmd

import (
	"strings"
	"testing"
)

func TestRenderInlineElements(t *testing.T) {
	r := NewRenderer(DefaultConfig())
	tests := []struct {
		name string
		in   Inline
		want string
	}{
		{"text", &Text{Content: "hi"}, "hi"},
		{"bold", &Bold{Content: []Inline{&Text{Content: "b"}}}, "<b>b</b>"},
		{"italic", &Italic{Content: []Inline{&Text{Content: "i"}}}, "<i>i</i>"},
		{"code", &Code{Content: "x < y"}, "<code>x &lt; y</code>"},
		{
			"link",
			&Link{Text: []Inline{&Text{Content: "t"}}, URL: "https://example.com"},
			`<a href="https://example.com" target="_blank">t</a>`,
		},
		{
			"titled link",
			&Link{Text: []Inline{&Text{Content: "t"}}, Title: "T", URL: "u"},
			`<a href="u" title="T" target="_blank">t</a>`,
		},
		{
			"image",
			&Image{Alt: "a", URL: "i.png"},
			`<img src="i.png" alt="a"/>`,
		},
		{
			"titled image",
			&Image{Alt: "a", Title: "Some title", URL: "i.png"},
			`<img src="i.png" alt="a" title="Some title"/>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.renderInline(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderHeadingAndParagraph(t *testing.T) {
	r := NewRenderer(DefaultConfig())
	h := &Heading{Level: 2, Content: []Inline{&Text{Content: "Title"}}}
	if got, want := r.RenderBlock(h), "\n<h2>Title</h2>\n"; got != want {
		t.Errorf("heading: got %q, want %q", got, want)
	}
	p := &Paragraph{Content: []Inline{&Text{Content: "body"}}}
	if got, want := r.RenderBlock(p), "<p>body</p>"; got != want {
		t.Errorf("paragraph: got %q, want %q", got, want)
	}
	if got, want := r.RenderBlock(&ThematicBreak{}), "<hr/>"; got != want {
		t.Errorf("break: got %q, want %q", got, want)
	}
}

func TestRenderCodeBlock(t *testing.T) {
	cb := &CodeBlock{Language: "go", Lines: []string{"a < b", "c"}}

	r := NewRenderer(DefaultConfig())
	want := `<pre class="non_prism">` +
		`<code class="non_prism">a &lt; b</code>` +
		`<code class="non_prism">c</code>` +
		`</pre>`
	if got := r.RenderBlock(cb); got != want {
		t.Errorf("non-prism: got %q, want %q", got, want)
	}

	cfg := DefaultConfig()
	cfg.HTML.UsePrism = true
	r = NewRenderer(cfg)
	want = `<pre class="language-go">` +
		`<code class="language-go">a &lt; b</code>` +
		`<code class="language-go">c</code>` +
		`</pre>`
	if got := r.RenderBlock(cb); got != want {
		t.Errorf("prism: got %q, want %q", got, want)
	}

	// No language maps to language-none for the autoloader.
	if got := r.RenderBlock(&CodeBlock{Lines: []string{"x"}}); !strings.Contains(got, "language-none") {
		t.Errorf("missing language-none in %q", got)
	}
}

func TestRenderLists(t *testing.T) {
	r := NewRenderer(DefaultConfig())
	list := &UnorderedList{Items: []*ListItem{
		{Content: &Paragraph{Content: []Inline{&Text{Content: "a"}}}},
	}}
	want := "<ul>\n\t<li>\n\t\t<p>a</p>\n\t</li>\n</ul>"
	if got := r.RenderBlock(list); got != want {
		t.Errorf("flat: got %q, want %q", got, want)
	}

	nested := &UnorderedList{Items: []*ListItem{
		{Content: &Paragraph{Content: []Inline{&Text{Content: "a"}}}},
		{Content: &OrderedList{Items: []*ListItem{
			{Content: &Paragraph{Content: []Inline{&Text{Content: "b"}}}},
		}}},
	}}
	want = "<ul>\n" +
		"\t<li>\n\t\t<p>a</p>\n\t</li>\n" +
		"\t<li>\n" +
		"\t\t<ol>\n\t\t\t<li>\n\t\t\t\t<p>b</p>\n\t\t\t</li>\n\t\t</ol>\n" +
		"\t</li>\n" +
		"</ul>"
	if got := r.RenderBlock(nested); got != want {
		t.Errorf("nested: got %q, want %q", got, want)
	}
}

func TestRenderBlockQuote(t *testing.T) {
	r := NewRenderer(DefaultConfig())
	q := &BlockQuote{Content: []Block{
		&Paragraph{Content: []Inline{&Text{Content: "quoted"}}},
	}}
	want := "<blockquote>\n<p>quoted</p>\n</blockquote>"
	if got := r.RenderBlock(q); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderTable(t *testing.T) {
	r := NewRenderer(DefaultConfig())
	table := &Table{
		Headers: []*TableCell{
			{Content: []Inline{&Text{Content: " Header 1 "}}, Alignment: AlignNone, IsHeader: true},
			{Content: []Inline{&Text{Content: " Header 2 "}}, Alignment: AlignCenter, IsHeader: true},
		},
		Body: [][]*TableCell{{
			{Content: []Inline{&Text{Content: " a "}}, Alignment: AlignNone},
			{Content: []Inline{&Text{Content: " b "}}, Alignment: AlignCenter},
		}},
	}
	want := "<table>\n" +
		"\t<thead>\n\t\t<tr>\n" +
		"\t\t\t<th style=\"text-align:left;\"> Header 1 </th>\n" +
		"\t\t\t<th style=\"text-align:center;\"> Header 2 </th>\n" +
		"\t\t</tr>\n\t</thead>\n" +
		"\t<tbody>\n" +
		"\t\t<tr>\n" +
		"\t\t\t<td style=\"text-align:left;\"> a </td>\n" +
		"\t\t\t<td style=\"text-align:center;\"> b </td>\n" +
		"\t\t</tr>\n" +
		"\t</tbody>\n</table>"
	if got := r.RenderBlock(table); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderRawHTMLSanitize(t *testing.T) {
	raw := &RawHTML{Content: "<script>bad()</script>"}

	r := NewRenderer(DefaultConfig())
	if got, want := r.RenderBlock(raw), "<script>bad()</script>\n"; got != want {
		t.Errorf("passthrough: got %q, want %q", got, want)
	}

	cfg := DefaultConfig()
	cfg.HTML.SanitizeHTML = true
	r = NewRenderer(cfg)
	if got, want := r.RenderBlock(raw), "&lt;script&gt;bad()&lt;/script&gt;\n"; got != want {
		t.Errorf("sanitized: got %q, want %q", got, want)
	}

	// Sanitizing also escapes plain text content.
	if got, want := r.renderInline(&Text{Content: "a < b"}), "a &lt; b"; got != want {
		t.Errorf("text: got %q, want %q", got, want)
	}
}

func TestRenderPage(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HTML.FaviconFile = "assets/icon.png"
	r := NewRenderer(cfg)
	blocks := []Block{&Heading{Level: 1, Content: []Inline{&Text{Content: "Hi"}}}}

	page := r.RenderPage("my_test_page.html", blocks)
	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>My Test Page</title>",
		`<link rel="stylesheet" href="styles.css">`,
		`<link rel="icon" href="media/icon.png">`,
		`<a href="index.html">Home</a>`,
		`<div id="content">`,
		"<h1>Hi</h1>",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q:\n%s", want, page)
		}
	}

	// Nested pages climb back to the output root.
	nested := r.RenderPage("guides/intro.html", blocks)
	for _, want := range []string{
		`<link rel="stylesheet" href="../styles.css">`,
		`<a href="../index.html">Home</a>`,
	} {
		if !strings.Contains(nested, want) {
			t.Errorf("nested page missing %q", want)
		}
	}
}

func TestRenderPagePrism(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HTML.UsePrism = true
	r := NewRenderer(cfg)
	page := r.RenderPage("p.html", nil)
	for _, want := range []string{
		"prism-vsc-dark-plus.css",
		"prism-core.min.js",
		"prism-autoloader.min.js",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestRenderIndex(t *testing.T) {
	r := NewRenderer(DefaultConfig())
	index := r.RenderIndex([]string{"first_page.md", "guides/intro.md"})
	for _, want := range []string{
		"<h1>All Pages</h1>",
		`<a href="./first_page.html">First Page</a><br>`,
		`<a href="./guides/intro.html">Intro</a><br>`,
	} {
		if !strings.Contains(index, want) {
			t.Errorf("index missing %q:\n%s", want, index)
		}
	}
}

func TestPageTitle(t *testing.T) {
	tests := []struct{ in, want string }{
		{"my_test_page.md", "My Test Page"},
		{"guides/intro.html", "Intro"},
		{"README.md", "README"},
	}
	for _, tt := range tests {
		if got := pageTitle(tt.in); got != tt.want {
			t.Errorf("pageTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseAndRenderDocument(t *testing.T) {
	src := "# Welcome\n\nSome **bold** text with a [link](https://example.com).\n\n- one\n- two"
	p := NewParser(DefaultConfig())
	r := NewRenderer(DefaultConfig())
	got := r.RenderBlocks(p.Parse(src))
	want := "\n<h1>Welcome</h1>\n" +
		"\n" +
		`<p>Some <b>bold</b> text with a <a href="https://example.com" target="_blank">link</a>.</p>` +
		"\n" +
		"<ul>\n\t<li>\n\t\t<p>one</p>\n\t</li>\n\t<li>\n\t\t<p>two</p>\n\t</li>\n</ul>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
