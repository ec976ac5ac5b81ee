package chart

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Detail is a product fact shown as a bullet below the size table,
// e.g. {"Material:", "Cotton blend"}.
type Detail struct {
	Label   string
	Content string
}

type factRule struct {
	label    string
	rx       *regexp.Regexp
	notAfter *regexp.Regexp // skip matches preceded by this
}

func rule(label, pattern string) factRule {
	return factRule{label: label, rx: regexp.MustCompile(pattern + `:\s*([^\n]*)`)}
}

// factRules are tried in order. Each one contributes at most one Detail.
var factRules = []factRule{
	rule("Features:", `features`),
	rule("Sheer:", `sheer`),
	rule("Stretch:", `stretch`),
	rule("Material:", `(?:material composition|material|fabric)`),
	rule("Pattern:", `(?:pattern type|pattern)`),
	rule("Style:", `style`),
	rule("Neckline:", `neckline`),
	{
		label:    "Length:",
		rx:       regexp.MustCompile(`length:\s*([^\n]*)`),
		notAfter: regexp.MustCompile(`(?:top|sleeve)\s$`),
	},
	rule("Sleeve Length:", `sleeve length`),
	rule("Sleeve Type:", `sleeve type`),
	rule("Care:", `(?:care instructions|care)`),
	rule("Fit:", `fit`),
	rule("Color:", `color`),
	rule("Season:", `(?:season|occasion)`),
}

var (
	factBlockTagRx = regexp.MustCompile(`(?i)<\s*(?:br\s*/?|/\s*(?:p|li|div|tr|h[1-6]|ul|ol|table))\s*>`)
	factTagRx      = regexp.MustCompile(`<[^>]*>`)
	entityReplacer = strings.NewReplacer("&nbsp;", " ", "&amp;", "&")
)

// stripHTML removes tags and decodes &nbsp; and &amp;. Block-level tags end
// a line.
func stripHTML(html string) string {
	s := factBlockTagRx.ReplaceAllString(html, "\n")
	s = factTagRx.ReplaceAllString(s, "")
	return entityReplacer.Replace(s)
}

// ProductDetails extracts labeled product facts from an HTML description.
// Facts appear in a fixed order (features, sheer, stretch, material,
// pattern, style, neckline, length, sleeve length, sleeve type, care, fit,
// color, season). The first letter of every content is capitalized.
func ProductDetails(descriptionHTML string) []Detail {
	text := strings.ToLower(stripHTML(descriptionHTML))
	var details []Detail
	for _, r := range factRules {
		content, ok := r.find(text)
		if !ok {
			continue
		}
		if content = strings.TrimSpace(content); content != "" {
			details = append(details, Detail{Label: r.label, Content: capitalize(content)})
		}
	}
	return details
}

func (r factRule) find(text string) (string, bool) {
	for _, loc := range r.rx.FindAllStringSubmatchIndex(text, -1) {
		if r.notAfter != nil && r.notAfter.MatchString(text[:loc[0]]) {
			continue
		}
		return text[loc[2]:loc[3]], true
	}
	return "", false
}

// capitalize upper-cases the first letter of s, skipping leading digits and
// symbols.
func capitalize(s string) string {
	for i, r := range s {
		if unicode.IsLetter(r) {
			return s[:i] + string(unicode.ToUpper(r)) + s[i+utf8.RuneLen(r):]
		}
	}
	return s
}

// truncate shortens s to n characters plus an ellipsis.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "..."
}
