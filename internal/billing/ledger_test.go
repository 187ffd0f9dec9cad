package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func TestSumByTrack(t *testing.T) {
	entries := []Entry{
		{ID: 1, Track: TrackRegular, Amount: dec(500)},
		{ID: 2, Track: TrackPT, Amount: dec(200)},
		{ID: 3, Track: TrackRegular, Amount: dec(300)},
	}

	assert.True(t, dec(800).Equal(SumByTrack(entries, TrackRegular)))
	assert.True(t, dec(200).Equal(SumByTrack(entries, TrackPT)))
}

func TestSumByTrack_UntaggedDefaultsToRegular(t *testing.T) {
	entries := []Entry{
		{ID: 1, Track: "", Amount: dec(400)},
		{ID: 2, Track: TrackRegular, Amount: dec(100)},
		{ID: 3, Track: TrackPT, Amount: dec(50)},
	}

	assert.True(t, dec(500).Equal(SumByTrack(entries, TrackRegular)))
	assert.True(t, dec(50).Equal(SumByTrack(entries, TrackPT)))
}

func TestPendingForTrack(t *testing.T) {
	fees := []FeeTotal{
		{Track: TrackRegular, FinalFees: dec(1000)},
		{Track: TrackPT, FinalFees: dec(500)},
	}
	entries := []Entry{
		{ID: 1, Track: TrackRegular, Amount: dec(800)},
		{ID: 2, Track: TrackPT, Amount: dec(600)},
	}

	assert.True(t, dec(200).Equal(PendingForTrack(fees, entries, TrackRegular)))
	// Overpaid PT track stays signed, no clamping.
	assert.True(t, dec(-100).Equal(PendingForTrack(fees, entries, TrackPT)))
}

func TestTotalAcrossTracks(t *testing.T) {
	fees := []FeeTotal{
		{Track: TrackRegular, FinalFees: dec(1000)},
		{Track: TrackPT, FinalFees: dec(500)},
	}
	entries := []Entry{
		{ID: 1, Track: TrackRegular, Amount: dec(700)},
		{ID: 2, Track: TrackPT, Amount: dec(500)},
	}

	totals := TotalAcrossTracks(fees, entries)
	assert.True(t, dec(1500).Equal(totals.TotalFees))
	assert.True(t, dec(1200).Equal(totals.TotalPaid))
	assert.True(t, dec(300).Equal(totals.TotalPending))
}

func TestValidatePayment_OverpaymentGuard(t *testing.T) {
	fees := []FeeTotal{{Track: TrackRegular, FinalFees: dec(1000)}}
	entries := []Entry{
		{ID: 1, Track: TrackRegular, Amount: dec(600)},
		{ID: 2, Track: TrackRegular, Amount: dec(200)},
	}

	err := ValidatePayment(dec(300), TrackRegular, fees, entries, nil)
	require.Error(t, err)

	var overErr *OverpaymentError
	require.ErrorAs(t, err, &overErr)
	assert.Equal(t, TrackRegular, overErr.Track)
	assert.True(t, dec(300).Equal(overErr.Attempted))
	assert.True(t, dec(200).Equal(overErr.RemainingBalance))

	assert.NoError(t, ValidatePayment(dec(200), TrackRegular, fees, entries, nil))
}

func TestValidatePayment_EditExcludesOwnContribution(t *testing.T) {
	fees := []FeeTotal{{Track: TrackRegular, FinalFees: dec(1000)}}
	entries := []Entry{
		{ID: 1, Track: TrackRegular, Amount: dec(600)},
		{ID: 2, Track: TrackRegular, Amount: dec(200)},
	}

	// Re-saving payment 2 at its current amount must pass: the baseline
	// without it is 600, leaving 400 of headroom.
	editID := 2
	assert.NoError(t, ValidatePayment(dec(200), TrackRegular, fees, entries, &editID))
	assert.NoError(t, ValidatePayment(dec(400), TrackRegular, fees, entries, &editID))

	err := ValidatePayment(dec(401), TrackRegular, fees, entries, &editID)
	var overErr *OverpaymentError
	require.ErrorAs(t, err, &overErr)
	assert.True(t, dec(400).Equal(overErr.RemainingBalance))
}

func TestValidatePayment_TracksAreIndependent(t *testing.T) {
	fees := []FeeTotal{
		{Track: TrackRegular, FinalFees: dec(1000)},
		{Track: TrackPT, FinalFees: dec(500)},
	}
	entries := []Entry{
		{ID: 1, Track: TrackRegular, Amount: dec(1000)},
	}

	// Regular track is maxed out but PT still has headroom.
	assert.Error(t, ValidatePayment(dec(1), TrackRegular, fees, entries, nil))
	assert.NoError(t, ValidatePayment(dec(500), TrackPT, fees, entries, nil))
}

func TestOverpaymentError_Message(t *testing.T) {
	err := &OverpaymentError{
		Track:            TrackPT,
		Attempted:        dec(300),
		RemainingBalance: dec(150),
	}
	assert.Equal(t, "payment of 300.00 exceeds remaining PT balance of 150.00", err.Error())
}
