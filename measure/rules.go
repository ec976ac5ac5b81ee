package measure

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// GateKeywords must occur somewhere in a description, otherwise extraction
// stops right away.
var GateKeywords = []string{
	"size", "measurement", "bust", "waist", "chest", "length", "hip", "shoulder",
	"sizing", "guide", "dimensions", "insole", "shaft",
}

// MeasurementTerms is the whitelist of measurement names. A captured name is
// accepted if it contains one of these terms.
var MeasurementTerms = []string{
	"bust", "chest", "waist", "hip", "length", "shoulder", "sleeve", "neck", "inseam",
	"rise", "thigh", "knee", "ankle", "front length", "back length", "sleeve length",
	"shoulder width", "chest width", "waist width", "hip width", "bust width",
	"top length", "outseam", "insole length", "shaft height", "heel height", "calf",
}

// BlockKeywords introduce a block of measurements. They are tried in order;
// the block pass only looks at text after the first one found.
var BlockKeywords = []string{
	"product measurements:", "measurements:", "size guide:", "sizing:", "dimensions:",
}

// TableHeaderKeywords identify the header line of a column-aligned table.
// A header line has to contain at least two of them.
var TableHeaderKeywords = []string{"size", "bust", "waist", "length", "hip"}

// DefaultUnit is used for values written without a unit.
const DefaultUnit = "in"

const (
	sizeToken = `one size|x{0,3}[sml]|[0-9]{1,2}xl|[2-6]xl|[0-9]{1,2}x|[0-9]{1,2}`
	unitWord  = `inches|inch|in|centimeters|centimeter|cm`
	unitToken = `(?:(` + unitWord + `)\b|("))`
	number    = `(\d*\.?\d+)`
)

var (
	// start of line: size token, optional separator, remainder
	lineRx = regexp.MustCompile(`^\s*(` + sizeToken + `)\b\s*[:\-]?\s*(.*)$`)
	// name, optional separator, number, unit
	measureRx = regexp.MustCompile(`([a-z\s/]+?)\s*[:\-]?\s*` + number + `\s*` + unitToken)
	// a size token anywhere in a text
	sizeRx = regexp.MustCompile(`\b(?:` + sizeToken + `)\b`)
	// a measure right at the start of the text following a size token
	blockHeadRx = regexp.MustCompile(`^\s*[:\-]?\s*[a-z\s/]+?[:\-]?\s*\d*\.?\d+\s*` + unitToken)
	// the rest of a decimal or fractional number, e.g. ".5" of "34.5"
	numberTailRx = regexp.MustCompile(`^[./]\d`)
	// a unit right at the start of a string
	leadingUnitRx = regexp.MustCompile(`^\s*(?:(?:` + unitWord + `)\b|")`)
	// a whole string which is a unit
	unitOnlyRx = regexp.MustCompile(`^(?:` + unitWord + `|")$`)
	// a whole string which is a size token
	sizeOnlyRx = regexp.MustCompile(`^(?:` + sizeToken + `)$`)
	// number with optional unit, at the start of a table cell
	cellValueRx = regexp.MustCompile(`^` + number + `\s*` + unitToken + `?`)
	// number with optional unit, anywhere in a line
	valueRx = regexp.MustCompile(number + `\s*` + unitToken + `?`)
	// unit given in a table header, e.g. "bust (cm)"
	headerUnitRx = regexp.MustCompile(`[(\[]\s*(` + unitWord + `|")\s*[)\]]`)
	// separators of column-aligned text tables
	columnSepRx = regexp.MustCompile(`\s{2,}|\||\t`)
	// separators between size tokens in a size header line
	sizeSepRx = regexp.MustCompile(`[\s,/|]+`)
	// optional lead-in of a size header line
	sizeLeadRx = regexp.MustCompile(`^sizes?\s*[:\-]?\s*`)
)

// isMeasurementName reports whether name contains a whitelisted term.
func isMeasurementName(name string) bool {
	name = strings.ToLower(name)
	for _, term := range MeasurementTerms {
		if strings.Contains(name, term) {
			return true
		}
	}
	return false
}

// longestTerm returns the longest whitelisted term contained in s.
func longestTerm(s string) string {
	var best string
	for _, term := range MeasurementTerms {
		if len(term) > len(best) && strings.Contains(s, term) {
			best = term
		}
	}
	return best
}

// cleanName collapses whitespace and drops leading words which are size
// tokens or units, as these belong to the text before the name.
func cleanName(name string) string {
	words := strings.Fields(name)
	for len(words) > 1 && (sizeOnlyRx.MatchString(words[0]) || unitOnlyRx.MatchString(words[0])) {
		words = words[1:]
	}
	return strings.Join(words, " ")
}

// titleCase capitalizes the first letter of every word and lower-cases the rest.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// formatValue returns "<number> <unit>", with DefaultUnit for an empty unit.
func formatValue(num, unit string) string {
	if unit == "" {
		unit = DefaultUnit
	}
	return num + " " + unit
}

// unitOf picks the unit from the submatches of a unitToken group pair.
func unitOf(word, quote string) string {
	if word != "" {
		return word
	}
	return quote
}
