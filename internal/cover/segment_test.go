package cover

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestSegmenter() *Segmenter {
	return NewSegmenter(DefaultLexicon(), nop)
}

func TestSegmentSplitAuthorName(t *testing.T) {
	text := strings.Join([]string{
		"GABRIELLE",
		"ZEVIN",
		"Tomorrow, and Tomorrow, and Tomorrow",
		"A NOVEL",
	}, "\n")

	title, author := newTestSegmenter().Segment(text)

	assert.Equal(t, "GABRIELLE ZEVIN", author)
	// "and" appears twice, so it survives the stopword filter.
	assert.Equal(t, "Tomorrow and Tomorrow and Tomorrow", title)
}

func TestSegmentAdjacentNameParts(t *testing.T) {
	text := strings.Join([]string{
		"JAMES",
		"PATTERSON",
		"ALEX",
		"CROSS",
	}, "\n")

	title, author := newTestSegmenter().Segment(text)

	// More than two candidates: only the first adjacent pair is trusted.
	assert.Equal(t, "JAMES PATTERSON", author)
	assert.Equal(t, "ALEX CROSS", title)
}

func TestSegmentAuthorLine(t *testing.T) {
	text := "The Great Gatsby\nF Scott Fitzgerald"

	title, author := newTestSegmenter().Segment(text)

	assert.Equal(t, "F Scott Fitzgerald", author)
	assert.Equal(t, "Great Gatsby", title)
}

func TestSegmentAllCapsAuthorLine(t *testing.T) {
	text := "The Silent Patient\nALEX MICHAELIDES JR II"

	title, author := newTestSegmenter().Segment(text)

	assert.Equal(t, "ALEX MICHAELIDES JR II", author)
	assert.Equal(t, "Silent Patient", title)
}

func TestSegmentMarketingOnly(t *testing.T) {
	text := strings.Join([]string{
		"NATIONAL BESTSELLER",
		"A NOVEL",
		"OVER 5 MILLION COPIES SOLD",
	}, "\n")

	title, author := newTestSegmenter().Segment(text)

	assert.Empty(t, title)
	assert.Empty(t, author)
}

func TestSegmentExclusionSafety(t *testing.T) {
	text := strings.Join([]string{
		"national bestseller",
		"KAZUO",
		"ISHIGURO",
		"Never Let Me Go",
	}, "\n")

	title, author := newTestSegmenter().Segment(text)

	for _, phrase := range []string{"bestseller", "national"} {
		assert.NotContains(t, strings.ToLower(title), phrase)
		assert.NotContains(t, strings.ToLower(author), phrase)
	}
	assert.Equal(t, "KAZUO ISHIGURO", author)
	assert.Equal(t, "Never Let Me Go", title)
}

func TestSegmentQueryWordCap(t *testing.T) {
	text := "One Two Three Four Five Six Seven Eight Nine Ten"

	title, _ := newTestSegmenter().Segment(text)

	assert.Equal(t, "One Two Three Four Five Six Seven Eight", title)
}

func TestSegmentRawWordFallback(t *testing.T) {
	// Everything is a stopword; the raw pool is used instead.
	text := "of the in to for with from"

	title, author := newTestSegmenter().Segment(text)

	assert.Equal(t, "of the in to for with", title)
	assert.Empty(t, author)
}

func TestSegmentEmptyInput(t *testing.T) {
	title, author := newTestSegmenter().Segment("")

	assert.Empty(t, title)
	assert.Empty(t, author)
}

func TestSegmentDropsDecoratedShortLines(t *testing.T) {
	text := "•\n“”\nx\ndune\nFRANK\nHERBERT"

	title, author := newTestSegmenter().Segment(text)

	assert.Equal(t, "FRANK HERBERT", author)
	assert.Equal(t, "dune", title)
}
