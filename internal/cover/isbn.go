package cover

import (
	"regexp"
	"strings"
)

// The patterns are tried in priority order: explicitly labeled forms first,
// then bare 13-digit bookland numbers, then bare 10-character forms.  Each
// candidate is stripped of separators and gated on length, so a partial match
// never produces a malformed ISBN.
var isbnPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bISBN[-\s]?1[03]\b\s*:?\s*([0-9][0-9Xx\- ]*[0-9Xx])`),
	regexp.MustCompile(`(?i)\bISBN\b\s*:?\s*([0-9][0-9Xx\- ]*[0-9Xx])`),
	regexp.MustCompile(`\b97[89](?:[- ]?[0-9]){10}\b`),
	regexp.MustCompile(`\b(?:[0-9][- ]?){9}[0-9Xx]\b`),
}

var isbnSeparators = strings.NewReplacer("-", "", " ", "")

// ExtractISBN scans text for an embedded ISBN-10 or ISBN-13 and returns it
// normalized to digits plus an optional trailing X.  Returns "" when nothing
// in the text qualifies.
func ExtractISBN(text string) string {
	for _, re := range isbnPatterns {
		for _, match := range re.FindAllStringSubmatch(text, -1) {
			candidate := match[0]
			if len(match) > 1 {
				candidate = match[1]
			}
			isbn := strings.ToUpper(isbnSeparators.Replace(candidate))
			if len(isbn) == 10 || len(isbn) == 13 {
				return isbn
			}
		}
	}
	return ""
}
