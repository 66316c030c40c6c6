package cover

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	nameBaseScore     = 10
	nameAllCapsBonus  = 5
	nameTwoWordsBonus = 3
)

// NameFinder is the lower-confidence fallback pass: when segmentation yields
// nothing usable, it hunts for the most name-shaped line on the cover, or
// failing that, isolated capitalized words.
type NameFinder struct {
	lex       *Lexicon
	corrector *Corrector
	caser     cases.Caser
	excluded  map[string]struct{}
}

func NewNameFinder(lex *Lexicon, corrector *Corrector) *NameFinder {
	// Extended stoplist: anything the other heuristics consider
	// non-name vocabulary.
	excluded := make(map[string]struct{})
	for w := range lex.NameExclusions {
		excluded[w] = struct{}{}
	}
	for w := range lex.NotAuthorWords {
		excluded[w] = struct{}{}
	}
	return &NameFinder{
		lex:       lex,
		corrector: corrector,
		caser:     cases.Title(language.English),
		excluded:  excluded,
	}
}

type nameCandidate struct {
	score int
	index int
	words []string
}

// Find returns up to two corrected, title-cased name words, or an empty list
// when nothing on the cover qualifies.
func (f *NameFinder) Find(text string) []string {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		if cleaned := cleanLine(strings.TrimSpace(raw)); cleaned != "" {
			lines = append(lines, cleaned)
		}
	}

	if names := f.bestLine(lines); names != nil {
		return names
	}
	return f.scanWords(lines)
}

// bestLine scores every 2-3 word all-letter line and takes the winner; ties
// go to the line encountered first.
func (f *NameFinder) bestLine(lines []string) []string {
	var candidates []nameCandidate
	for i, line := range lines {
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 3 {
			continue
		}
		qualified := true
		for _, w := range words {
			if utf8.RuneCountInString(w) < 3 || !isLetters(w) {
				qualified = false
				break
			}
			if _, ok := f.excluded[strings.ToLower(w)]; ok {
				qualified = false
				break
			}
		}
		if !qualified {
			continue
		}
		score := nameBaseScore
		if isAllCaps(line) {
			score += nameAllCapsBonus
		}
		if len(words) == 2 {
			score += nameTwoWordsBonus
		}
		candidates = append(candidates, nameCandidate{score: score, index: i, words: words})
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].index < candidates[j].index
	})

	names := make([]string, 0, len(candidates[0].words))
	for _, w := range candidates[0].words {
		names = append(names, f.normalize(w))
	}
	return names
}

// scanWords falls back to individual capitalized words when no whole line
// qualifies.
func (f *NameFinder) scanWords(lines []string) []string {
	seen := make(map[string]struct{})
	names := []string{}
	for _, line := range lines {
		for _, w := range strings.Fields(line) {
			lower := strings.ToLower(trimWord(w))
			if _, stop := f.lex.Stopwords[lower]; stop {
				continue
			}
			if _, stop := f.excluded[lower]; stop {
				continue
			}
			if utf8.RuneCountInString(w) < 4 || isNumeric(w) || nonLetterCount(w) > 1 {
				continue
			}
			if r, _ := utf8.DecodeRuneInString(w); !unicode.IsUpper(r) {
				continue
			}
			name := f.normalize(w)
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
			if len(names) == 2 {
				return names
			}
		}
	}
	return names
}

func (f *NameFinder) normalize(word string) string {
	corrected := f.corrector.Correct(trimWord(word))
	return f.caser.String(strings.ToLower(corrected))
}
