package cover

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrectKnownConfusions(t *testing.T) {
	c := NewCorrector(DefaultConfusions)

	assert.Equal(t, "GABRIELLE ZEVIN", c.Correct("CABRIELLE ZEV1N"))
	assert.Equal(t, "JOHN GRISHAM", c.Correct("J0HN GRI5HAM"))
	assert.Equal(t, "Tomorrow", c.Correct("Tomorrow"))
	assert.Equal(t, "", c.Correct(""))
}

func TestCorrectIsIdempotent(t *testing.T) {
	c := NewCorrector(DefaultConfusions)

	for _, text := range []string{
		"CABRIELLE ZEV1N",
		"HARUKI MURAKAMI",
		"A 2AGGED 5WORD",
		"already clean text",
	} {
		once := c.Correct(text)
		assert.Equal(t, once, c.Correct(once), "correcting %q twice changed it", text)
	}
}

func TestCorrectAppliesPairsInOrder(t *testing.T) {
	c := NewCorrector([]ConfusionPair{{"ab", "X"}, {"Xc", "Y"}})

	// Sequential application: the second pair sees the first pair's output.
	assert.Equal(t, "Y", c.Correct("abc"))
}
