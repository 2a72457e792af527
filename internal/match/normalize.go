package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent normalizes an identifier for similarity scoring:
// CamelCase is split, the result is case-folded and the separators
// '_', '-', ' ' and '.' are dropped. "Config_ID" and "configId" both
// become "configid".
func NormalizeIdent(s string) string {
	return strings.ToLower(strings.Join(TokenizeIdent(s), ""))
}

// TokenizeIdent splits an identifier into tokens at separators and at
// CamelCase boundaries, keeping acronyms together:
//   - "OrderID" -> ["Order", "ID"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "entity_ref" -> ["entity", "ref"]
func TokenizeIdent(s string) []string {
	var (
		tokens  []string
		current []rune
	)

	flush := func() {
		if len(current) > 0 {
			tokens = append(tokens, string(current))
			current = current[:0]
		}
	}

	runes := []rune(strings.TrimSpace(s))
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current = append(current, r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// startsToken reports a lower->upper transition or the last capital of an
// acronym followed by a lowercase letter.
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
