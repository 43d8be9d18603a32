package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffLines(t *testing.T) {
	t.Parallel()

	t.Run("single-line replacement", func(t *testing.T) {
		assert.Equal(t, "+ (int) 5\n- (int) 6", diffLines("(int) 5", "(int) 6"))
	})

	t.Run("identical texts render as common lines only", func(t *testing.T) {
		got := diffLines("same", "same")
		assert.Equal(t, "  same", got)
	})

	t.Run("interleaves additions and removals with common lines", func(t *testing.T) {
		actual := "a\nb\nc"
		expected := "a\nx\nc\nd"

		assert.Equal(t,
			"  a\n"+
				"+ b\n"+
				"- x\n"+
				"  c\n"+
				"- d",
			diffLines(actual, expected))
	})

	t.Run("actual-only trailing lines", func(t *testing.T) {
		assert.Equal(t,
			"  a\n"+
				"+ b",
			diffLines("a\nb", "a"))
	})
}

func TestBullet(t *testing.T) {
	t.Parallel()

	t.Run("single line", func(t *testing.T) {
		assert.Equal(t, "* (int) 1", bullet(plainBullet, "(int) 1"))
	})

	t.Run("continuation lines align under the marker", func(t *testing.T) {
		assert.Equal(t, "> head\n  tail", bullet(matchMarker, "head\ntail"))
	})
}
