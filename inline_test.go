package rsmd

import (
	"reflect"
	"testing"
)

func parseInlineLine(t *testing.T, p *Parser, line string) []Inline {
	t.Helper()
	out := p.ParseInline(p.Tokenize(line))
	assertNoPlaceholders(t, out)
	return out
}

// assertNoPlaceholders walks the tree; delimiter placeholders must
// never survive inline parsing.
func assertNoPlaceholders(t *testing.T, inlines []Inline) {
	t.Helper()
	for _, el := range inlines {
		switch v := el.(type) {
		case *placeholder:
			t.Fatalf("placeholder leaked: %#v", v)
		case *Bold:
			assertNoPlaceholders(t, v.Content)
		case *Italic:
			assertNoPlaceholders(t, v.Content)
		case *Link:
			assertNoPlaceholders(t, v.Text)
		}
	}
}

func TestParseInlineEmphasis(t *testing.T) {
	p := NewParser(DefaultConfig())
	tests := []struct {
		name string
		in   string
		want []Inline
	}{
		{
			name: "bold",
			in:   "**bold**",
			want: []Inline{&Bold{Content: []Inline{&Text{Content: "bold"}}}},
		},
		{
			name: "italic asterisk",
			in:   "*italic*",
			want: []Inline{&Italic{Content: []Inline{&Text{Content: "italic"}}}},
		},
		{
			name: "italic underscore",
			in:   "_italic_",
			want: []Inline{&Italic{Content: []Inline{&Text{Content: "italic"}}}},
		},
		{
			name: "italic inside bold",
			in:   "**_Bold and italic._**",
			want: []Inline{&Bold{Content: []Inline{
				&Italic{Content: []Inline{&Text{Content: "Bold and italic."}}},
			}}},
		},
		{
			name: "bold inside italic",
			in:   "_Italic **and bold**_",
			want: []Inline{&Italic{Content: []Inline{
				&Text{Content: "Italic "},
				&Bold{Content: []Inline{&Text{Content: "and bold"}}},
			}}},
		},
		{
			name: "triple run pairs once",
			in:   "***both***",
			want: []Inline{
				&Text{Content: "*"},
				&Bold{Content: []Inline{&Text{Content: "both"}}},
				&Text{Content: "*"},
			},
		},
		{
			name: "unmatched opener degrades",
			in:   "*lonely",
			want: []Inline{&Text{Content: "*"}, &Text{Content: "lonely"}},
		},
		{
			name: "intraword underscore is inert",
			in:   "foo_bar_",
			want: []Inline{
				&Text{Content: "foo"}, &Text{Content: "_"},
				&Text{Content: "bar"}, &Text{Content: "_"},
			},
		},
		{
			name: "intraword asterisk still works",
			in:   "foo*bar*",
			want: []Inline{
				&Text{Content: "foo"},
				&Italic{Content: []Inline{&Text{Content: "bar"}}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseInlineLine(t, p, tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseInline(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRuleOfThreeRejects(t *testing.T) {
	// Run lengths summing to a multiple of three cannot pair when one
	// side can both open and close, unless a length is itself divisible
	// by three.
	opener := &delimiter{length: 1, canOpen: true}
	closer := &delimiter{length: 2, canOpen: true, canClose: true}
	if !ruleOfThreeRejects(opener, closer) {
		t.Error("1+2 with dual-role closer should be rejected")
	}

	closer = &delimiter{length: 2, canClose: true}
	if ruleOfThreeRejects(opener, closer) {
		t.Error("close-only closer should not be rejected")
	}

	opener = &delimiter{length: 3, canOpen: true, canClose: true}
	closer = &delimiter{length: 3, canClose: true}
	if ruleOfThreeRejects(opener, closer) {
		t.Error("lengths divisible by three should pair")
	}
}

func TestParseInlineLinks(t *testing.T) {
	p := NewParser(DefaultConfig())

	got := parseInlineLine(t, p, "[text](https://example.com)")
	want := []Inline{&Link{
		Text: []Inline{&Text{Content: "text"}},
		URL:  "https://example.com",
	}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("plain link: got %#v, want %#v", got, want)
	}

	// Titles are literal text, markup included.
	got = parseInlineLine(t, p, `[t](url "Title with **bold**")`)
	want = []Inline{&Link{
		Text:  []Inline{&Text{Content: "t"}},
		Title: "Title with **bold**",
		URL:   "url",
	}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("titled link: got %#v, want %#v", got, want)
	}

	// Emphasis inside the label is parsed.
	got = parseInlineLine(t, p, "[**bold** label](u)")
	want = []Inline{&Link{
		Text: []Inline{
			&Bold{Content: []Inline{&Text{Content: "bold"}}},
			&Text{Content: " label"},
		},
		URL: "u",
	}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("markup label: got %#v, want %#v", got, want)
	}
}

func TestParseInlineMalformedLinkDegrades(t *testing.T) {
	p := NewParser(DefaultConfig())
	tests := []struct {
		in   string
		want []Inline
	}{
		{"[text](url", []Inline{&Text{Content: "[text](url"}}},
		{"[text]", []Inline{&Text{Content: "[text]"}}},
		{"[text", []Inline{&Text{Content: "[text"}}},
	}
	for _, tt := range tests {
		got := parseInlineLine(t, p, tt.in)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseInline(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}

func TestParseInlineImages(t *testing.T) {
	p := NewParser(DefaultConfig())

	got := parseInlineLine(t, p, `![alt text](img.png "Some title")`)
	want := []Inline{&Image{Alt: "alt text", Title: "Some title", URL: "img.png"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}

	// Markup inside the alt label flattens to plain text.
	got = parseInlineLine(t, p, "![**bold** alt](i.png)")
	want = []Inline{&Image{Alt: "bold alt", URL: "i.png"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("flattened alt: got %#v, want %#v", got, want)
	}

	// A bang without a bracket is plain text.
	got = parseInlineLine(t, p, "just! text")
	want = []Inline{&Text{Content: "just! text"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("lone bang: got %#v, want %#v", got, want)
	}
}

func TestParseInlineCodeSpans(t *testing.T) {
	p := NewParser(DefaultConfig())

	got := parseInlineLine(t, p, "`let x = 5`")
	want := []Inline{&Code{Content: "let x = 5"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}

	// Markup inside a span stays literal.
	got = parseInlineLine(t, p, "`**not bold**`")
	want = []Inline{&Code{Content: "**not bold**"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("literal span: got %#v, want %#v", got, want)
	}

	got = parseInlineLine(t, p, "`unclosed")
	want = []Inline{&Text{Content: "`unclosed"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("unclosed: got %#v, want %#v", got, want)
	}
}

func TestParseInlineEscapes(t *testing.T) {
	p := NewParser(DefaultConfig())
	got := parseInlineLine(t, p, `\*not emphasis\*`)
	want := []Inline{&Text{Content: `\*not emphasis\*`}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestParseInlineEmptyInput(t *testing.T) {
	p := NewParser(DefaultConfig())
	if got := p.ParseInline(p.Tokenize("")); got != nil {
		t.Errorf("got %#v, want nil", got)
	}
}

func TestFlatten(t *testing.T) {
	got := Flatten([]Inline{
		&Bold{Content: []Inline{&Text{Content: "a"}}},
		&Text{Content: "b"},
		&Link{Text: []Inline{&Text{Content: "c"}}, URL: "u"},
		&Code{Content: "d"},
		&Image{Alt: "e", URL: "u"},
	})
	if want := "abcde"; got != want {
		t.Errorf("Flatten = %q, want %q", got, want)
	}
}
