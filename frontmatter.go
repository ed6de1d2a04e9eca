package rsmd

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// FrontMatter holds the metadata fields the generator cares about. Only
// YAML blocks are decoded; TOML and JSON blocks are stripped from the
// body but not interpreted.
type FrontMatter struct {
	Title string `yaml:"title"`
}

// SplitFrontMatter separates a leading front matter block from the
// document body. A block opens with "---", "+++" or ";;;" on the first
// line, its second line must look like metadata, and it closes with the
// same delimiter. Anything else, including an unterminated block,
// leaves the source untouched.
func SplitFrontMatter(src string) (FrontMatter, string) {
	var meta FrontMatter
	lines := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")
	if len(lines) < 2 {
		return meta, src
	}
	delim, ok := openingDelimiter(lines[0])
	if !ok || !metadataLikely(lines[1]) {
		return meta, src
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != delim {
			continue
		}
		if delim == "---" {
			block := strings.Join(lines[1:i], "\n")
			// Malformed YAML degrades to empty metadata.
			_ = yaml.Unmarshal([]byte(block), &meta)
		}
		return meta, strings.Join(lines[i+1:], "\n")
	}
	return meta, src
}

// StripFrontMatter returns the document body with any front matter
// block removed.
func StripFrontMatter(src string) string {
	_, body := SplitFrontMatter(src)
	return body
}

func openingDelimiter(line string) (string, bool) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(line, "\uFEFF"))
	switch trimmed {
	case "---", "+++", ";;;":
		return trimmed, true
	}
	return "", false
}

// metadataLikely reports whether a line plausibly starts a metadata
// body, which keeps a "---" thematic break from eating the document.
func metadataLikely(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return true
	}
	return strings.ContainsAny(trimmed, ":=")
}
