package match

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var numberWords = [...]string{
	"zero", "one", "two", "three", "four",
	"five", "six", "seven", "eight", "nine",
}

// Tokenize splits a label into tokens. A token is either a run of decimal
// digits (any script) or a run of word characters (letters, digits, underscore) that
// starts with a non-digit. Everything else separates tokens.
// Examples:
//   - "Child one" -> ["Child", "one"]
//   - "2nd place" -> ["2", "nd", "place"]
//   - "Price (USD)" -> ["Price", "USD"]
//   - "Item2Name" -> ["Item2Name"]
func Tokenize(label string) []string {
	var tokens []string

	runes := []rune(label)

	for i := 0; i < len(runes); {
		r := runes[i]

		switch {
		case isDigit(r):
			j := i
			for j < len(runes) && isDigit(runes[j]) {
				j++
			}

			tokens = append(tokens, string(runes[i:j]))
			i = j

		case isWord(r):
			j := i
			for j < len(runes) && isWord(runes[j]) {
				j++
			}

			tokens = append(tokens, string(runes[i:j]))
			i = j

		default:
			i++
		}
	}

	return tokens
}

// ClassName derives a CamelCase identifier from a header label.
// The first digit of a leading numeric token is spelled out, so the result
// never starts with a digit ("2024 total" -> "Two024Total", "٣ items" ->
// "ThreeItems").
// It returns an empty string when the label has no tokens.
func ClassName(label string) string {
	tokens := Tokenize(label)
	if len(tokens) == 0 {
		return ""
	}

	if first, size := utf8.DecodeRuneInString(tokens[0]); isDigit(first) {
		tokens[0] = numberWords[digitValue(first)] + tokens[0][size:]
	}

	var sb strings.Builder

	for _, tok := range tokens {
		sb.WriteString(capFirst(tok))
	}

	return sb.String()
}

// SnakeCase converts a CamelCase identifier into snake_case.
// An underscore is inserted before an uppercase letter that follows a
// lowercase letter or a digit, and before an uppercase letter that starts a
// capitalized word after an acronym.
// Examples:
//   - "ChildOne" -> "child_one"
//   - "HTTPServer" -> "http_server"
//   - "Item2Name" -> "item2_name"
func SnakeCase(s string) string {
	runes := []rune(s)

	var sb strings.Builder

	sb.Grow(len(s) + 4)

	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && startsWord(runes, i) {
			sb.WriteByte('_')
		}

		sb.WriteRune(unicode.ToLower(r))
	}

	return sb.String()
}

// NormalizeLabel folds a label for fuzzy comparison: lowercase, separators
// and punctuation removed.
func NormalizeLabel(s string) string {
	return strings.ToLower(strings.Join(Tokenize(s), ""))
}

// startsWord determines if the uppercase rune at position i begins a new word.
func startsWord(runes []rune, i int) bool {
	prev := runes[i-1]

	// Transition from lowercase or digit to uppercase
	// e.g., "childOne" -> split before 'O'
	if unicode.IsLower(prev) || isDigit(prev) {
		return true
	}

	// Start of a capitalized word, e.g. "HTTPServer" -> split before 'S'
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

func capFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}

func isDigit(r rune) bool {
	return unicode.IsDigit(r)
}

// digitValue returns the value of a decimal digit. Decimal digits of every
// script are encoded as contiguous runs starting at zero.
func digitValue(r rune) int {
	n := 0
	for unicode.IsDigit(r - rune(n) - 1) {
		n++
	}

	return n % 10
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}
