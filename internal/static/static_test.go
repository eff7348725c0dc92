package static

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInformation_Sections(t *testing.T) {
	sections := Information()
	require.Len(t, sections, 5)

	ids := make([]string, len(sections))
	for i, s := range sections {
		ids[i] = s.ID
		assert.NotEmpty(t, s.Label, "section %s has no label", s.ID)
		assert.NotEmpty(t, s.Blocks, "section %s has no content", s.ID)
	}
	assert.Equal(t, []string{"rulebook", "aau", "facility-rules", "inclement-weather", "previous-winners"}, ids)
}

func TestFindSection(t *testing.T) {
	assert.Equal(t, "aau", FindSection("aau").ID)
	assert.Equal(t, SectionRulebook, FindSection("").ID)
	assert.Equal(t, SectionRulebook, FindSection("nope").ID)
}

func TestParseInformation_Errors(t *testing.T) {
	_, err := parseInformation([]byte("sections:\n  - label: x\n"))
	assert.ErrorContains(t, err, "no id")

	_, err = parseInformation([]byte("sections:\n  - id: a\n  - id: a\n"))
	assert.ErrorContains(t, err, "duplicate")

	_, err = parseInformation([]byte("sections: ["))
	assert.Error(t, err)
}

func TestPreviousWinners(t *testing.T) {
	winners := PreviousWinners()
	require.Len(t, winners, 10)
	assert.Equal(t, "2025", winners[0].Year)
	assert.Equal(t, "2016", winners[len(winners)-1].Year)
	assert.Equal(t, "Far Out 18 Purple", winners[len(winners)-1].Results[0].RunnerUp)

	// callers cannot alter the table
	winners[0].Results[0].Team = "changed"
	assert.Equal(t, "Impact 18U Carrie", PreviousWinners()[0].Results[0].Team)
}
