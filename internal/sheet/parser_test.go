package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GuildRaffle_Go/internal/domain"
)

func testCategories() []domain.Category {
	return []domain.Category{
		{Name: "Insignias [Red]", Limit: 28},
		{Name: "Stones", Subcategories: []domain.Subcategory{
			{Name: "T2 Stone", Limit: 4},
			{Name: "T1 Stone", Limit: 3},
		}},
	}
}

func header() []string {
	return []string{"Tidsstempel", "username", "Insignias [Red]", "Stones"}
}

func TestParse(t *testing.T) {
	parser := NewParser(testCategories())

	rows := [][]string{
		header(),
		{"01/02/2025 18.30.00", "alpha", "2", "T2 Stone, T1 Stone"},
		{"01/02/2025 19.00.00", "bravo", "1", ""},
	}

	requests, err := parser.Parse(rows)
	require.NoError(t, err)
	require.Len(t, requests, 2)

	assert.Equal(t, 2, requests["alpha"]["Insignias [Red]"].Count)
	assert.Equal(t, []string{"T2 Stone", "T1 Stone"}, requests["alpha"]["Stones"].Picks)
	assert.Equal(t, 1, requests["bravo"]["Insignias [Red]"].Count)
	_, hasStones := requests["bravo"]["Stones"]
	assert.False(t, hasStones, "empty cell should not create a request")
}

func TestParseLatestSubmissionWins(t *testing.T) {
	parser := NewParser(testCategories())

	rows := [][]string{
		header(),
		{"01/02/2025 10.00.00", "alpha", "2", "T2 Stone"},
		{"03/02/2025 09.15.30", "alpha", "1", "T1 Stone"},
		{"02/02/2025 12.00.00", "alpha", "2", ""},
	}

	requests, err := parser.Parse(rows)
	require.NoError(t, err)
	require.Len(t, requests, 1)

	// Only the 03/02 submission counts.
	assert.Equal(t, 1, requests["alpha"]["Insignias [Red]"].Count)
	assert.Equal(t, []string{"T1 Stone"}, requests["alpha"]["Stones"].Picks)
}

func TestParseFoldsHandleCase(t *testing.T) {
	parser := NewParser(testCategories())

	rows := [][]string{
		header(),
		{"01/02/2025 10.00.00", "guildmate", "2", ""},
		{"02/02/2025 10.00.00", "GuildMate", "1", ""},
	}

	requests, err := parser.Parse(rows)
	require.NoError(t, err)
	require.Len(t, requests, 1)

	// Same participant; the display handle follows the latest submission.
	assert.Equal(t, 1, requests["GuildMate"]["Insignias [Red]"].Count)
}

func TestParseDecimalCount(t *testing.T) {
	parser := NewParser(testCategories())

	rows := [][]string{
		header(),
		{"01/02/2025 10.00.00", "alpha", "2.0", ""},
	}

	requests, err := parser.Parse(rows)
	require.NoError(t, err)
	assert.Equal(t, 2, requests["alpha"]["Insignias [Red]"].Count)
}

func TestParsePickListTrimming(t *testing.T) {
	parser := NewParser(testCategories())

	rows := [][]string{
		header(),
		{"01/02/2025 10.00.00", "alpha", "", " T2 Stone ,, T2 Stone "},
	}

	requests, err := parser.Parse(rows)
	require.NoError(t, err)
	assert.Equal(t, []string{"T2 Stone", "T2 Stone"}, requests["alpha"]["Stones"].Picks)
}

func TestParseErrors(t *testing.T) {
	parser := NewParser(testCategories())

	tests := []struct {
		name     string
		rows     [][]string
		expected error
	}{
		{
			"empty sheet",
			nil,
			domain.ErrEmptyResponseSheet,
		},
		{
			"missing category column",
			[][]string{{"Tidsstempel", "username", "Insignias [Red]"}},
			domain.ErrMissingColumn,
		},
		{
			"missing timestamp column",
			[][]string{{"username", "Insignias [Red]", "Stones"}},
			domain.ErrMissingColumn,
		},
		{
			"malformed timestamp",
			[][]string{header(), {"yesterday", "alpha", "1", ""}},
			domain.ErrMalformedResponse,
		},
		{
			"blank username",
			[][]string{header(), {"01/02/2025 10.00.00", "  ", "1", ""}},
			domain.ErrMalformedResponse,
		},
		{
			"short row",
			[][]string{header(), {"01/02/2025 10.00.00", "alpha"}},
			domain.ErrMalformedResponse,
		},
		{
			"unparseable count",
			[][]string{header(), {"01/02/2025 10.00.00", "alpha", "two", ""}},
			domain.ErrMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(tt.rows)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}
