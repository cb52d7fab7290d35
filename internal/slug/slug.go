// Package slug derives normalized identifiers from display names.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// strippedSet is removed outright from the input.
const strippedSet = `*+~.()'"!:@`

// foldMarks decomposes runes and drops combining marks, so accented
// letters fold to their ASCII base.
var foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make lowercases the name, folds diacritics, strips the punctuation set
// and removes whitespace without inserting a separator. Non-strict: runes
// outside the stripped set survive, so two names may produce the same
// slug. Collisions are left to the store's uniqueness constraint.
func Make(name string) string {
	folded, _, err := transform.String(foldMarks, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range strings.ToLower(folded) {
		if strings.ContainsRune(strippedSet, r) || unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
