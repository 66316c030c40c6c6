package cover

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Decorative characters that show up around cover typography but carry no
// text content.
const decorations = "“”‘’«»•·◆★☆*_~|"

const wordPunct = ".,;:!?'\"()[]“”‘’-–—&"

// cleanLine normalizes a recognized line for comparison: NFKC fold, strip
// decorations, collapse whitespace.
func cleanLine(line string) string {
	line = norm.NFKC.String(line)
	line = strings.Map(func(r rune) rune {
		if strings.ContainsRune(decorations, r) {
			return -1
		}
		return r
	}, line)
	return strings.Join(strings.Fields(line), " ")
}

// trimWord strips surrounding punctuation from a single word.
func trimWord(word string) string {
	return strings.Trim(word, wordPunct)
}

func isLetters(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func isAllCaps(word string) bool {
	hasLetter := false
	for _, r := range word {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

func isTitleCase(word string) bool {
	runes := []rune(word)
	if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if !unicode.IsLower(r) {
			return false
		}
	}
	return true
}

func isNumeric(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func nonLetterCount(word string) int {
	count := 0
	for _, r := range word {
		if !unicode.IsLetter(r) {
			count++
		}
	}
	return count
}
