package cover

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestFinder() *NameFinder {
	return NewNameFinder(DefaultLexicon(), NewCorrector(DefaultConfusions))
}

func TestFindScoredNameLine(t *testing.T) {
	names := newTestFinder().Find("PRAISE FOR THE AUTHOR\nHARUKI MURAKAMI")

	assert.Equal(t, []string{"Haruki", "Murakami"}, names)
}

func TestFindPrefersAllCapsLine(t *testing.T) {
	// Both lines are two-word candidates; the all-caps bonus decides.
	names := newTestFinder().Find("Stephen King\nDEAN KOONTZ")

	assert.Equal(t, []string{"Dean", "Koontz"}, names)
}

func TestFindTieGoesToFirstLine(t *testing.T) {
	names := newTestFinder().Find("JOHN SMITH\nJANE DOE")

	assert.Equal(t, []string{"John", "Smith"}, names)
}

func TestFindCorrectsWinningWords(t *testing.T) {
	names := newTestFinder().Find("CABRIELLE ZEV1N")

	assert.Equal(t, []string{"Gabrielle", "Zevin"}, names)
}

func TestFindFallsBackToWordScan(t *testing.T) {
	// No 2-3 word line qualifies, so isolated capitalized words are used.
	names := newTestFinder().Find("A Storm of Swords is long")

	assert.Equal(t, []string{"Storm", "Swords"}, names)
}

func TestFindWordScanDeduplicates(t *testing.T) {
	names := newTestFinder().Find("Dune forever Dune always Arrakis rising")

	assert.Equal(t, []string{"Dune", "Arrakis"}, names)
}

func TestFindNothingQualifies(t *testing.T) {
	assert.Empty(t, newTestFinder().Find("NATIONAL BESTSELLER"))
	assert.Empty(t, newTestFinder().Find("over 2 million copies sold"))
	assert.Empty(t, newTestFinder().Find(""))
}
