package measure

import (
	"regexp"
	"strings"
)

// Text is a normalized description.
type Text struct {
	Lines []string // lower-cased lines, horizontal whitespace collapsed
	Raw   []string // lower-cased lines with their original spacing
}

// Flat returns the normalized lines joined by line breaks.
func (t *Text) Flat() string {
	return strings.Join(t.Lines, "\n")
}

var (
	blockTagRx = regexp.MustCompile(`<\s*(?:br\s*/?|/\s*(?:p|li|div|tr|h[1-6]|ul|ol|table))\s*>`)
	tagRx      = regexp.MustCompile(`<[^>]*>`)
	hspaceRx   = regexp.MustCompile(`[ \t\f\v\r\x{00a0}]+`)
	entities   = strings.NewReplacer("&nbsp;", " ", "&amp;", "&", "：", ":")
)

// Normalize lower-cases a description, replaces the full-width colon and the
// entities &nbsp; and &amp;, turns block-level HTML tags into line breaks and
// drops all other tags. Runs of horizontal whitespace are collapsed per line;
// line breaks are kept.
func Normalize(description string) *Text {
	s := strings.ToLower(description)
	s = entities.Replace(s)
	s = blockTagRx.ReplaceAllString(s, "\n")
	s = tagRx.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	raw := strings.Split(s, "\n")
	t := &Text{Raw: raw, Lines: make([]string, len(raw))}
	for i, line := range raw {
		t.Lines[i] = strings.TrimSpace(hspaceRx.ReplaceAllString(line, " "))
	}
	return t
}

// HasGateKeyword reports whether the text contains any of GateKeywords.
func (t *Text) HasGateKeyword() bool {
	for _, line := range t.Lines {
		for _, kw := range GateKeywords {
			if strings.Contains(line, kw) {
				return true
			}
		}
	}
	return false
}
