package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAuthor(t *testing.T) {
	assert.Equal(t, "seuss", NormalizeAuthor("Dr. Seuss 2"))
	assert.Equal(t, "gabrielle zevin", NormalizeAuthor("GABRIELLE ZEVIN"))
	assert.Equal(t, "richard bachman", NormalizeAuthor("Richard Bachman (writing as Stephen King)"))
	assert.Equal(t, "", NormalizeAuthor("123"))
}

func TestNormalizeTitle(t *testing.T) {
	assert.Equal(t, "tomorrow tomorrow novel",
		NormalizeTitle("Tomorrow, and Tomorrow: A Novel (large print)"))
	assert.Equal(t, "never", NormalizeTitle("Never Let Me Go"))
}

func TestCompare(t *testing.T) {
	assert.Equal(t, Confidence, compare("gabrielle zevin", "gabrielle zevin"))
	assert.GreaterOrEqual(t, compare("gabriele zevin", "gabrielle zevin"), Confidence)
	assert.Less(t, compare("abcd", "wxyz"), Confidence)
	assert.Equal(t, 0, compare("", "anything"))

	// Substring matches only count when the lengths are comparable.
	assert.Less(t, compare("ab", "abcdefghijkl"), Confidence)
}

func TestSanityCheck(t *testing.T) {
	assert.True(t, sanityCheck("zevin", "tomorrow"))
	assert.False(t, sanityCheck("king", "the king"))
	assert.False(t, sanityCheck("the king story", "king"))
	assert.True(t, sanityCheck("", "anything"))
}
