package cover

import "regexp"

// ConfusionPair maps a known OCR misreading to its likely intended text.
type ConfusionPair struct {
	Wrong string
	Right string
}

// DefaultConfusions is the curated table of misreadings seen on real covers.
// Word-level fixes come first so they win before the single-character digit
// confusions rewrite them.  No Right value contains any Wrong value, which is
// what keeps correction idempotent.
var DefaultConfusions = []ConfusionPair{
	{"cabrielle", "GABRIELLE"},
	{"vv", "W"},
	{"|", "I"},
	{"0", "O"},
	{"1", "I"},
	{"2", "Z"},
	{"5", "S"},
	{"8", "B"},
}

// Corrector applies a fixed ordered substitution table over whole strings,
// case-insensitively.  Unmatched text passes through unchanged.
type Corrector struct {
	res    []*regexp.Regexp
	rights []string
}

func NewCorrector(pairs []ConfusionPair) *Corrector {
	c := &Corrector{}
	for _, p := range pairs {
		c.res = append(c.res, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(p.Wrong)))
		c.rights = append(c.rights, p.Right)
	}
	return c
}

func (c *Corrector) Correct(text string) string {
	for i, re := range c.res {
		text = re.ReplaceAllString(text, c.rights[i])
	}
	return text
}
