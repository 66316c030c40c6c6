// Package catalog searches a book-metadata index for the guesses produced by
// the cover pipeline.
package catalog

import (
	"context"
	"regexp"
	"strings"

	"github.com/agnivade/levenshtein"
)

// How good a fuzzy match needs to be before we trust it.
const Confidence = 75

// Book is one metadata record returned by a search.
type Book struct {
	Title  string
	Author string
	ISBN   string
}

// Searcher is the metadata lookup consumed by the scan orchestrator.
type Searcher interface {
	// LookupISBN returns the book for an exact ISBN, or nil when unknown.
	LookupISBN(ctx context.Context, isbn string) (*Book, error)
	// Search runs a title search, optionally constrained by author.  May
	// return an empty list.
	Search(ctx context.Context, title, author string) ([]Book, error)
}

var (
	digitsRE       = regexp.MustCompile(`[0-9]`)
	drRE           = regexp.MustCompile(`Dr\.`)
	bracketedRE    = regexp.MustCompile(`(.*)\(.*\)(.*)`)
	nonAlphaRE     = regexp.MustCompile(`(?i)[^a-z ]+`)
	subtitleRE     = regexp.MustCompile(`(.*?):`)
	nonAlphaNumRE  = regexp.MustCompile(`(?i)[^a-z0-9 ]+`)
)

// NormalizeAuthor reduces an author guess to the form stored in the index.
func NormalizeAuthor(author string) string {
	// Any numbers in an author are junk, and honorifics aren't always
	// present in catalogues.
	author = digitsRE.ReplaceAllString(author, "")
	author = drRE.ReplaceAllString(author, "")

	// Anything in brackets is not part of the name, could be
	// "(writing as ...)".
	author = bracketedRE.ReplaceAllString(author, "$1$2")
	author = nonAlphaRE.ReplaceAllString(author, "")

	author = strings.TrimSpace(strings.ToLower(author))
	return removeShortWords(author)
}

// NormalizeTitle reduces a title guess the same way, additionally dropping
// subtitles since catalogues are inconsistent about including them.
func NormalizeTitle(title string) string {
	title = subtitleRE.ReplaceAllString(title, "$1")
	title = bracketedRE.ReplaceAllString(title, "$1$2")
	title = nonAlphaNumRE.ReplaceAllString(title, "")

	title = strings.TrimSpace(strings.ToLower(title))
	return removeShortWords(title)
}

func removeShortWords(str string) string {
	words := strings.Split(strings.TrimSpace(str), " ")
	ret := []string{}
	for _, word := range words {
		word = strings.TrimSpace(word)
		if len(word) > 3 {
			ret = append(ret, word)
		}
	}
	return strings.Join(ret, " ")
}

// compare scores how alike two normalized strings are, as a percentage.
func compare(str1, str2 string) int {
	len1 := len(str1)
	len2 := len(str2)
	if len1 == 0 || len2 == 0 {
		return 0
	}

	lenratio := float32(len1) / float32(len2)

	if (strings.Contains(str1, str2) || strings.Contains(str2, str1)) &&
		lenratio >= 0.5 && lenratio <= 2 {
		// One inside the other is pretty good as long as they're not too
		// different in length.
		return Confidence
	}

	dist := levenshtein.ComputeDistance(str1, str2)
	max := len1
	if len2 > max {
		max = len2
	}
	return 100 - 100*dist/max
}

// sanityCheck rejects hits where author and title are basically the same.
// Might be true for autobiographies but more likely junk.
func sanityCheck(author, title string) bool {
	if author == "" || title == "" {
		return true
	}
	return !strings.Contains(author, title) && !strings.Contains(title, author)
}
