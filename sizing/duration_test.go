package sizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_EqualSplit(t *testing.T) {
	// GIVEN 10,000 daily visitors, half of them entering a two-variant test
	traffic := Traffic{DailyVisitors: 10000, FlowPct: 50}

	// WHEN 31,231 users per variant are needed
	days := Duration(31231, 2, traffic)

	// THEN each variant gets 2,500 users per day: ceil(31231/2500) = 13
	assert.Equal(t, int64(13), days)
}

func TestDuration_UnequalAllocation_SmallestShareGoverns(t *testing.T) {
	traffic := Traffic{DailyVisitors: 1000, FlowPct: 100, Allocation: []float64{0.5, 0.3, 0.2}}

	assert.InDelta(t, 200.0, traffic.PerVariantDaily(3), 1e-9)
	assert.Equal(t, int64(5), Duration(1000, 3, traffic))
}

func TestDuration_EqualAllocationListed_SameAsEvenSplit(t *testing.T) {
	listed := Traffic{DailyVisitors: 900, FlowPct: 100, Allocation: []float64{0.5, 0.5}}
	even := Traffic{DailyVisitors: 900, FlowPct: 100}
	assert.Equal(t, even.PerVariantDaily(2), listed.PerVariantDaily(2))
}

func TestDuration_AllocationLengthMismatch_FallsBackToEvenSplit(t *testing.T) {
	traffic := Traffic{DailyVisitors: 900, FlowPct: 100, Allocation: []float64{0.7, 0.3}}
	assert.InDelta(t, 300.0, traffic.PerVariantDaily(3), 1e-9)
}

func TestDuration_NoTraffic_IsZero(t *testing.T) {
	assert.Equal(t, int64(0), Duration(5000, 2, Traffic{FlowPct: 100}))
	assert.Equal(t, int64(0), Duration(5000, 2, Traffic{DailyVisitors: 100}))
}

func TestSampleSizeForDays_InvertsDuration(t *testing.T) {
	traffic := Traffic{DailyVisitors: 12000, FlowPct: 80}
	n := SampleSizeForDays(14, 3, traffic)
	assert.InDelta(t, 44800.0, n, 1e-9)
	assert.Equal(t, int64(14), Duration(n, 3, traffic))
}

func TestTraffic_Validate(t *testing.T) {
	require.NoError(t, Traffic{DailyVisitors: 100, FlowPct: 100}.Validate(2))
	require.NoError(t, Traffic{DailyVisitors: 100, FlowPct: 100, Allocation: []float64{0.6, 0.4}}.Validate(2))

	tests := []struct {
		name    string
		traffic Traffic
		wantMsg string
	}{
		{"negative visitors", Traffic{DailyVisitors: -1, FlowPct: 100}, "visitors"},
		{"flow above 100", Traffic{DailyVisitors: 1, FlowPct: 120}, "trafficFlow"},
		{"zero flow", Traffic{DailyVisitors: 1}, "trafficFlow"},
		{"share count", Traffic{DailyVisitors: 1, FlowPct: 100, Allocation: []float64{1}}, "1 shares for 2 variants"},
		{"shares do not sum to 1", Traffic{DailyVisitors: 1, FlowPct: 100, Allocation: []float64{0.5, 0.4}}, "sum to"},
		{"zero share", Traffic{DailyVisitors: 1, FlowPct: 100, Allocation: []float64{1, 0}}, "allocation"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.traffic.Validate(2)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		days int64
		want string
	}{
		{0, "0 days"},
		{1, "1 day"},
		{6, "6 days"},
		{7, "1 week"},
		{8, "1 week and 1 day"},
		{16, "2 weeks and 2 days"},
		{30, "1 month"},
		{31, "1 month and 1 day"},
		{44, "1 month and 2 weeks"},
		{75, "2 months and 2 weeks"},
		{365, "12 months and 5 days"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatDuration(tc.days), "FormatDuration(%d)", tc.days)
	}
}
