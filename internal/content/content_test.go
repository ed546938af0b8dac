package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSections_NumberedInOrder(t *testing.T) {
	secs := Sections()
	require.Len(t, secs, 4)
	for i, s := range secs {
		assert.Equal(t, i+1, s.Number, s.ID)
		assert.NotEmpty(t, s.Title, s.ID)
		assert.NotEmpty(t, s.Body, s.ID)
	}
}

func TestSections_EmbedsEachComponentOnce(t *testing.T) {
	counts := map[Embed]int{}
	for _, s := range Sections() {
		counts[s.Embed]++
	}
	assert.Equal(t, 1, counts[EmbedFunnel])
	assert.Equal(t, 1, counts[EmbedComparison])
}

func TestSectionByID(t *testing.T) {
	s, ok := SectionByID("methods")
	require.True(t, ok)
	assert.Equal(t, "Systematic Literature Search", s.Title)

	_, ok = SectionByID("nope")
	assert.False(t, ok)
}

func TestReferences(t *testing.T) {
	refs := References()
	assert.Len(t, refs, 10)
	refs[0] = "mutated"
	assert.NotEqual(t, "mutated", References()[0])
}
