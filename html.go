package rsmd

import (
	"fmt"
	"html"
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Renderer turns a document tree into HTML. Like Parser it holds only
// configuration and is safe for concurrent use.
type Renderer struct {
	cfg Config
}

// NewRenderer returns a Renderer configured by cfg.
func NewRenderer(cfg Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// RenderBlocks renders a document tree, blocks joined by newlines.
func (r *Renderer) RenderBlocks(blocks []Block) string {
	parts := make([]string, len(blocks))
	for i, b := range blocks {
		parts[i] = r.RenderBlock(b)
	}
	return strings.Join(parts, "\n")
}

// RenderBlock renders one block element.
func (r *Renderer) RenderBlock(b Block) string {
	switch v := b.(type) {
	case *Paragraph:
		return "<p>" + r.RenderInlines(v.Content) + "</p>"
	case *Heading:
		return fmt.Sprintf("\n<h%d>%s</h%d>\n", v.Level, r.RenderInlines(v.Content), v.Level)
	case *CodeBlock:
		return r.renderCodeBlock(v)
	case *ThematicBreak:
		return "<hr/>"
	case *UnorderedList:
		return r.renderList("ul", v.Items, "")
	case *OrderedList:
		return r.renderList("ol", v.Items, "")
	case *BlockQuote:
		var inner strings.Builder
		for _, child := range v.Content {
			inner.WriteString(r.RenderBlock(child))
		}
		return "<blockquote>\n" + inner.String() + "\n</blockquote>"
	case *Table:
		return r.renderTable(v)
	case *RawHTML:
		if r.cfg.HTML.SanitizeHTML {
			return html.EscapeString(v.Content) + "\n"
		}
		return v.Content + "\n"
	}
	return ""
}

func (r *Renderer) renderCodeBlock(cb *CodeBlock) string {
	class := "non_prism"
	if r.cfg.HTML.UsePrism {
		lang := cb.Language
		if lang == "" {
			lang = "none"
		}
		class = "language-" + lang
	}
	var b strings.Builder
	fmt.Fprintf(&b, "<pre class=%q>", class)
	for _, line := range cb.Lines {
		fmt.Fprintf(&b, "<code class=%q>%s</code>", class, html.EscapeString(line))
	}
	b.WriteString("</pre>")
	return b.String()
}

// renderList indents nested lists one tab level per depth; an item
// whose content is itself a list renders as a sublist inside its own
// list item.
func (r *Renderer) renderList(tag string, items []*ListItem, indent string) string {
	var b strings.Builder
	b.WriteString(indent + "<" + tag + ">\n")
	for _, item := range items {
		switch c := item.Content.(type) {
		case *UnorderedList:
			b.WriteString(indent + "\t<li>\n")
			b.WriteString(r.renderList("ul", c.Items, indent+"\t\t"))
			b.WriteString("\n" + indent + "\t</li>\n")
		case *OrderedList:
			b.WriteString(indent + "\t<li>\n")
			b.WriteString(r.renderList("ol", c.Items, indent+"\t\t"))
			b.WriteString("\n" + indent + "\t</li>\n")
		case nil:
			b.WriteString(indent + "\t<li></li>\n")
		default:
			b.WriteString(indent + "\t<li>\n" + indent + "\t\t")
			b.WriteString(r.RenderBlock(c))
			b.WriteString("\n" + indent + "\t</li>\n")
		}
	}
	b.WriteString(indent + "</" + tag + ">")
	return b.String()
}

func (r *Renderer) renderTable(t *Table) string {
	var b strings.Builder
	b.WriteString("<table>\n\t<thead>\n\t\t<tr>\n")
	for _, cell := range t.Headers {
		fmt.Fprintf(&b, "\t\t\t<th style=\"text-align:%s;\">%s</th>\n",
			alignmentCSS(cell.Alignment), r.RenderInlines(cell.Content))
	}
	b.WriteString("\t\t</tr>\n\t</thead>\n\t<tbody>\n")
	for _, row := range t.Body {
		b.WriteString("\t\t<tr>\n")
		for _, cell := range row {
			fmt.Fprintf(&b, "\t\t\t<td style=\"text-align:%s;\">%s</td>\n",
				alignmentCSS(cell.Alignment), r.RenderInlines(cell.Content))
		}
		b.WriteString("\t\t</tr>\n")
	}
	b.WriteString("\t</tbody>\n</table>")
	return b.String()
}

func alignmentCSS(a Alignment) string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	// Unspecified columns read better left-aligned.
	return "left"
}

// RenderInlines renders a slice of inline elements.
func (r *Renderer) RenderInlines(inlines []Inline) string {
	var b strings.Builder
	for _, el := range inlines {
		b.WriteString(r.renderInline(el))
	}
	return b.String()
}

func (r *Renderer) renderInline(el Inline) string {
	switch v := el.(type) {
	case *Text:
		if r.cfg.HTML.SanitizeHTML {
			return html.EscapeString(v.Content)
		}
		return v.Content
	case *Bold:
		return "<b>" + r.RenderInlines(v.Content) + "</b>"
	case *Italic:
		return "<i>" + r.RenderInlines(v.Content) + "</i>"
	case *Code:
		return "<code>" + html.EscapeString(v.Content) + "</code>"
	case *Link:
		if v.Title != "" {
			return fmt.Sprintf("<a href=%q title=%q target=\"_blank\">%s</a>",
				v.URL, v.Title, r.RenderInlines(v.Text))
		}
		return fmt.Sprintf("<a href=%q target=\"_blank\">%s</a>", v.URL, r.RenderInlines(v.Text))
	case *Image:
		if v.Title != "" {
			return fmt.Sprintf("<img src=%q alt=%q title=%q/>", v.URL, v.Alt, v.Title)
		}
		return fmt.Sprintf("<img src=%q alt=%q/>", v.URL, v.Alt)
	case *placeholder:
		panic("rsmd: placeholder leaked into renderer input")
	}
	return ""
}

// RenderPage wraps rendered blocks in the full page scaffold: head,
// sticky navbar and content container. relPath is the page's path
// relative to the output root, used to build ../ prefixes for shared
// assets.
func (r *Renderer) RenderPage(relPath string, blocks []Block) string {
	var b strings.Builder
	b.WriteString(r.renderHead(pageTitle(relPath), relPath))
	b.WriteString("<body>\n")
	b.WriteString(r.renderNavbar(relPath))
	b.WriteString("<div id=\"content\">\n")
	b.WriteString(r.RenderBlocks(blocks))
	b.WriteString("\n</div>\n")
	if r.cfg.HTML.UsePrism {
		b.WriteString(prismScripts)
	}
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// RenderIndex builds the index page linking every generated page.
func (r *Renderer) RenderIndex(pagePaths []string) string {
	var b strings.Builder
	b.WriteString(r.renderHead("Index", "index.html"))
	b.WriteString("<body>\n")
	b.WriteString(r.renderNavbar("index.html"))
	b.WriteString("<div id=\"content\">\n")
	b.WriteString("<h1>All Pages</h1>\n")
	for _, p := range pagePaths {
		name := strings.TrimSuffix(p, ".md")
		fmt.Fprintf(&b, "<a href=\"./%s.html\">%s</a><br>\n", name, pageTitle(p))
	}
	b.WriteString("\n</div>\n</body>\n</html>\n")
	return b.String()
}

const prismScripts = "<script src=\"https://cdn.jsdelivr.net/npm/prismjs@1.29.0/components/prism-core.min.js\"></script>\n" +
	"<script src=\"https://cdn.jsdelivr.net/npm/prismjs@1.29.0/plugins/autoloader/prism-autoloader.min.js\"></script>\n"

func (r *Renderer) renderHead(title, relPath string) string {
	prefix := relPrefix(relPath)
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"UTF-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", title)
	if fav := r.cfg.HTML.FaviconFile; fav != "" {
		fmt.Fprintf(&b, "<link rel=\"icon\" href=\"%smedia/%s\">\n", prefix, path.Base(fav))
	}
	if css := r.cfg.HTML.CSSFile; css == "default" || css == "" {
		fmt.Fprintf(&b, "<link rel=\"stylesheet\" href=\"%sstyles.css\">\n", prefix)
	} else {
		fmt.Fprintf(&b, "<link rel=\"stylesheet\" href=\"%s%s\">\n", prefix, path.Base(css))
	}
	if r.cfg.HTML.UsePrism {
		fmt.Fprintf(&b, "<link rel=\"stylesheet\" href=\"https://cdn.jsdelivr.net/npm/prism-themes@1.9.0/themes/prism-%s.css\">\n",
			r.cfg.HTML.PrismTheme)
	}
	b.WriteString("</head>\n")
	return b.String()
}

func (r *Renderer) renderNavbar(relPath string) string {
	return "<header><nav>\n<ul>\n" +
		fmt.Sprintf("<li><a href=\"%sindex.html\">Home</a></li>\n", relPrefix(relPath)) +
		"</ul>\n</nav>\n</header>\n"
}

// relPrefix returns the "../" run that climbs from a page back to the
// output root.
func relPrefix(relPath string) string {
	return strings.Repeat("../", strings.Count(relPath, "/"))
}

var titleCaser = cases.Title(language.English, cases.NoLower)

// pageTitle derives a display title from a file name:
// "my_test_page.md" becomes "My Test Page".
func pageTitle(fileName string) string {
	name := path.Base(fileName)
	name = strings.TrimSuffix(name, ".md")
	name = strings.TrimSuffix(name, ".html")
	name = strings.ReplaceAll(name, "_", " ")
	return titleCaser.String(name)
}
