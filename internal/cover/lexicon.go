package cover

// Lexicon holds the curated exclusion and stopword tables the heuristics run
// against.  Loaded once at startup and injected; nothing mutates it.
type Lexicon struct {
	// Lines equal to one of these, and title/author words matching one,
	// are marketing copy rather than book text.
	ExactExclusions map[string]struct{}
	// Lines containing one of these are dropped outright.
	ContainsExclusions []string
	// Single capitalized words that look name-shaped but never are.
	NameExclusions map[string]struct{}
	// Words that disqualify a line from being an author name.
	NotAuthorWords map[string]struct{}
	// Phrases that disqualify a line from being an author name.
	NotAuthorPhrases []string
	// Articles, prepositions and marketing adjectives dropped from the
	// search query.
	Stopwords map[string]struct{}
}

func set(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

// DefaultLexicon is tuned against real cover photos; entries are compared
// lowercase.
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		ExactExclusions: set(
			"a novel", "novel", "a memoir", "stories", "poems",
			"bestseller", "national bestseller", "international bestseller",
			"new york times bestseller", "the new york times bestseller",
			"now a major motion picture", "soon to be a major motion picture",
			"includes reading group guide", "winner",
		),
		ContainsExclusions: []string{
			"million copies", "copies sold", "published by", "isbn",
			"bestselling author", "winner of", "finalist for",
			"translated from", "foreword by", "introduction by",
			"www.", ".com",
		},
		NameExclusions: set(
			"the", "and", "new", "york", "times", "best", "seller",
			"bestseller", "novel", "book", "books", "author", "winner",
			"prize", "award", "edition", "press", "classics", "anniversary",
			"national", "international",
		),
		NotAuthorWords: set(
			"the", "a", "an", "of", "and", "novel", "memoir", "book",
			"bestseller", "bestselling", "author", "million", "copies",
			"winner", "prize", "award", "national", "international",
			"new", "york", "times", "story", "stories", "press", "edition",
			"phenomenon", "acclaimed",
		),
		NotAuthorPhrases: []string{
			"a novel", "author of", "new york times", "pulitzer prize",
			"national book", "now a", "soon to be", "in the world",
		},
		Stopwords: set(
			"the", "a", "an", "of", "in", "on", "at", "to", "for", "with",
			"from", "by", "and", "or", "is", "its", "his", "her", "their",
			"new", "now", "major", "international", "bestselling",
			"acclaimed", "classic", "complete", "unabridged", "edition",
		),
	}
}
