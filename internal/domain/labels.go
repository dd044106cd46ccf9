package domain

import (
	"strings"
	"unicode"

	"github.com/fatih/camelcase"
)

// HumanizeKey turns a field key such as "cbc_reviewedAt" into "Cbc reviewed at".
func HumanizeKey(key string) string {
	var words []string
	for _, part := range strings.FieldsFunc(key, func(r rune) bool { return r == '_' || r == '-' || r == '.' }) {
		for _, w := range camelcase.Split(part) {
			if w = strings.TrimSpace(w); w != "" {
				words = append(words, strings.ToLower(w))
			}
		}
	}
	if len(words) == 0 {
		return key
	}
	first := []rune(words[0])
	first[0] = unicode.ToUpper(first[0])
	words[0] = string(first)
	return strings.Join(words, " ")
}
