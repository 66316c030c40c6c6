package cover

import (
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

const (
	queryWordCap    = 8
	rawWordFallback = 6
)

// Extraction is the pipeline's best-effort guess for one cover photo.  Empty
// fields mean the corresponding value could not be determined; at most one of
// ISBN or Title/Author is meaningfully populated per pass.
type Extraction struct {
	ISBN   string
	Title  string
	Author string
}

// Segmenter splits corrected cover text into an author guess and a search
// title built from the remaining words.
type Segmenter struct {
	lex   *Lexicon
	sugar *zap.SugaredLogger
}

func NewSegmenter(lex *Lexicon, sugar *zap.SugaredLogger) *Segmenter {
	return &Segmenter{lex: lex, sugar: sugar}
}

type coverLine struct {
	text     string
	words    []string
	consumed bool
}

// Segment takes corrected text, newline-delimited in reading order, and
// returns a title and author guess.  Title is empty only when nothing on the
// cover survived exclusion; author is empty when no detection strategy hit.
func (s *Segmenter) Segment(text string) (title, author string) {
	lines := s.cleanLines(text)

	// Author detection strategies, strongest first.  The first one that
	// succeeds wins and marks its lines consumed.
	strategies := []func([]coverLine) (string, bool){
		s.authorFromLonePair,
		s.authorFromAdjacentParts,
		s.authorFromNameLine,
	}
	for _, strategy := range strategies {
		if a, ok := strategy(lines); ok {
			author = a
			break
		}
	}

	title = s.buildQuery(lines)

	if s.sugar != nil {
		s.sugar.Debugf("Segmented %d lines into title %q author %q", len(lines), title, author)
	}
	return title, author
}

func (s *Segmenter) cleanLines(text string) []coverLine {
	var lines []coverLine
	for _, raw := range strings.Split(text, "\n") {
		cleaned := cleanLine(strings.TrimSpace(raw))
		if utf8.RuneCountInString(cleaned) < 2 {
			continue
		}
		if s.excluded(strings.ToLower(cleaned)) {
			continue
		}
		lines = append(lines, coverLine{text: cleaned, words: strings.Fields(cleaned)})
	}
	return lines
}

func (s *Segmenter) excluded(lower string) bool {
	if _, ok := s.lex.ExactExclusions[lower]; ok {
		return true
	}
	for _, pattern := range s.lex.ContainsExclusions {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}

// isSingleNamePart reports whether a line is one capitalized word that could
// be half of a split author name, as when GABRIELLE and ZEVIN land in
// separate blocks.
func (s *Segmenter) isSingleNamePart(l coverLine) bool {
	if len(l.words) != 1 {
		return false
	}
	word := l.words[0]
	if utf8.RuneCountInString(word) < 3 || !isLetters(word) {
		return false
	}
	if !isAllCaps(word) && !isTitleCase(word) {
		return false
	}
	_, excluded := s.lex.NameExclusions[strings.ToLower(word)]
	return !excluded
}

func (s *Segmenter) singlePartIndices(lines []coverLine) []int {
	var idx []int
	for i, l := range lines {
		if s.isSingleNamePart(l) {
			idx = append(idx, i)
		}
	}
	return idx
}

// Exactly two name-shaped words anywhere on the cover are joined as the
// author, wherever they sit.
func (s *Segmenter) authorFromLonePair(lines []coverLine) (string, bool) {
	idx := s.singlePartIndices(lines)
	if len(idx) != 2 {
		return "", false
	}
	lines[idx[0]].consumed = true
	lines[idx[1]].consumed = true
	return lines[idx[0]].text + " " + lines[idx[1]].text, true
}

// With more than two candidates, only a vertically adjacent pair is trusted.
func (s *Segmenter) authorFromAdjacentParts(lines []coverLine) (string, bool) {
	idx := s.singlePartIndices(lines)
	if len(idx) <= 2 {
		return "", false
	}
	for k := 0; k+1 < len(idx); k++ {
		if idx[k+1] == idx[k]+1 {
			lines[idx[k]].consumed = true
			lines[idx[k+1]].consumed = true
			return lines[idx[k]].text + " " + lines[idx[k+1]].text, true
		}
	}
	return "", false
}

// authorFromNameLine looks for a whole line shaped like a printed author
// name: a few words, none of them marketing vocabulary, either fully
// capitalized or short and purely alphabetic.
func (s *Segmenter) authorFromNameLine(lines []coverLine) (string, bool) {
	for i := range lines {
		l := &lines[i]
		n := len(l.words)
		if n < 2 || n > 4 {
			continue
		}
		lower := strings.ToLower(l.text)
		if containsAny(lower, s.lex.NotAuthorPhrases) {
			continue
		}
		excluded := false
		allCaps := true
		allLetters := true
		for _, w := range l.words {
			if _, ok := s.lex.NotAuthorWords[strings.ToLower(trimWord(w))]; ok {
				excluded = true
				break
			}
			if !isAllCaps(w) {
				allCaps = false
			}
			if !isLetters(w) {
				allLetters = false
			}
		}
		if excluded {
			continue
		}
		if allCaps || (allLetters && n <= 3) {
			l.consumed = true
			return l.text, true
		}
	}
	return "", false
}

// buildQuery assembles the search title from every word not consumed by
// author detection.
func (s *Segmenter) buildQuery(lines []coverLine) string {
	var raw []string
	for _, l := range lines {
		if l.consumed {
			continue
		}
		for _, w := range l.words {
			w = trimWord(w)
			if utf8.RuneCountInString(w) < 2 {
				continue
			}
			if _, ok := s.lex.ExactExclusions[strings.ToLower(w)]; ok {
				continue
			}
			raw = append(raw, w)
		}
	}

	// "and" is normally filler, but a repeated "and" is almost always part
	// of the title itself.
	andCount := 0
	for _, w := range raw {
		if strings.EqualFold(w, "and") {
			andCount++
		}
	}

	var filtered []string
	for _, w := range raw {
		lower := strings.ToLower(w)
		if lower == "and" {
			if andCount >= 2 {
				filtered = append(filtered, w)
			}
			continue
		}
		if _, stop := s.lex.Stopwords[lower]; stop {
			continue
		}
		filtered = append(filtered, w)
	}

	if len(filtered) > 0 {
		if len(filtered) > queryWordCap {
			filtered = filtered[:queryWordCap]
		}
		return strings.Join(filtered, " ")
	}
	if len(raw) > 0 {
		if len(raw) > rawWordFallback {
			raw = raw[:rawWordFallback]
		}
		return strings.Join(raw, " ")
	}
	return ""
}

func containsAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
