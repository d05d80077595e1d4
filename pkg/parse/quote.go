package parse

import "strings"

// The escape codec for single-quoted string literals. Quote and the decoding
// done by the tokenizer are exact inverses: for any string s,
// unquoting Quote(s) gives back s, and re-quoting the decoded value of a
// canonical literal gives back the literal.

// Characters that decode recognizes after a backslash, and their decoded
// values.
var unescapes = map[rune]rune{
	'\\': '\\',
	'\'': '\'',
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
}

// Characters that Quote escapes, and their escape codes.
var escapes = map[rune]rune{
	'\\': '\\',
	'\'': '\'',
	'\n': 'n',
	'\t': 't',
	'\r': 'r',
}

// Quote returns the canonical NScript string literal that evaluates to s:
// the value re-encoded with escapes and wrapped in single quotes.
func Quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('\'')
	for _, r := range s {
		if code, ok := escapes[r]; ok {
			sb.WriteByte('\\')
			sb.WriteRune(code)
		} else {
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('\'')
	return sb.String()
}
