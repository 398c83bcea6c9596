package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GuildRaffle_Go/internal/domain"
)

func TestFromRows(t *testing.T) {
	rows := []domain.WinningRow{
		{Bucket: "Insignias [Red]", Member: "alpha", Total: 3},
		{Bucket: "Insignias [Red]", Member: "bravo", Total: 1},
		{Bucket: "T2 Stone", Member: "alpha", Total: 2},
	}

	tracker, err := FromRows(rows)
	require.NoError(t, err)

	assert.Equal(t, 3, tracker.Count("Insignias [Red]", "alpha"))
	assert.Equal(t, 1, tracker.Count("Insignias [Red]", "bravo"))
	assert.Equal(t, 2, tracker.Count("T2 Stone", "alpha"))
	assert.Equal(t, 0, tracker.Count("T2 Stone", "bravo"))
	assert.Equal(t, 0, tracker.Count("unknown bucket", "alpha"))
}

func TestFromRowsRejectsMalformedRows(t *testing.T) {
	tests := []struct {
		name string
		row  domain.WinningRow
	}{
		{"empty bucket", domain.WinningRow{Bucket: "", Member: "alpha", Total: 1}},
		{"empty member", domain.WinningRow{Bucket: "Stones", Member: "", Total: 1}},
		{"negative total", domain.WinningRow{Bucket: "Stones", Member: "alpha", Total: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromRows([]domain.WinningRow{tt.row})
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrMalformedLedgerRow)
		})
	}
}

func TestRecordIncrements(t *testing.T) {
	tracker := NewTracker()

	tracker.Record("Hero Selection card", "alpha")
	tracker.Record("Hero Selection card", "alpha")
	tracker.Record("Hero Selection card", "bravo")

	assert.Equal(t, 2, tracker.Count("Hero Selection card", "alpha"))
	assert.Equal(t, 1, tracker.Count("Hero Selection card", "bravo"))
}

func TestAverage(t *testing.T) {
	tracker, err := FromRows([]domain.WinningRow{
		{Bucket: "Stones", Member: "alpha", Total: 4},
		{Bucket: "Stones", Member: "bravo", Total: 0},
	})
	require.NoError(t, err)

	assert.InDelta(t, 2.0, tracker.Average("Stones"), 1e-9)
	assert.Zero(t, tracker.Average("empty bucket"))
}

func TestRowsSortedSnapshot(t *testing.T) {
	tracker := NewTracker()
	tracker.Record("b-bucket", "zed")
	tracker.Record("a-bucket", "mid")
	tracker.Record("b-bucket", "ann")

	rows := tracker.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, domain.WinningRow{Bucket: "a-bucket", Member: "mid", Total: 1}, rows[0])
	assert.Equal(t, domain.WinningRow{Bucket: "b-bucket", Member: "ann", Total: 1}, rows[1])
	assert.Equal(t, domain.WinningRow{Bucket: "b-bucket", Member: "zed", Total: 1}, rows[2])
}

func TestCountsAreMonotonic(t *testing.T) {
	// The tracker only exposes Record; a full run of draws can never
	// decrease a count relative to the loaded snapshot.
	tracker, err := FromRows([]domain.WinningRow{
		{Bucket: "Stones", Member: "alpha", Total: 5},
	})
	require.NoError(t, err)

	before := tracker.Count("Stones", "alpha")
	for i := 0; i < 10; i++ {
		tracker.Record("Stones", "alpha")
		after := tracker.Count("Stones", "alpha")
		assert.Greater(t, after, before)
		before = after
	}
}
