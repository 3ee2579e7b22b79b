package inspect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edgard/forwardinfo/internal/inspect"
)

func TestEstimateAge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id   int64
		want string
	}{
		{0, inspect.BeforeEarliestLabel},
		{1, "before 2015"},
		{100_000_000, "before 2015"},
		{100_000_001, "2015"},
		{500_000_000, "2015"},
		{500_000_001, "2017"},
		{999_999_999, "2017"},
		{1_000_000_001, "2019"},
		{2_000_000_001, "2021"},
		{5_500_000_000, "2022"},
		{6_000_000_001, "2023"},
		{7_000_000_000, "2023"},
		{7_000_000_001, "2024"},
		{9_000_000_000, "2024"},
	}

	for _, tc := range tests {
		got := inspect.EstimateAge(tc.id)
		assert.Equal(t, tc.want, got.Label, "id %d", tc.id)
		assert.Equal(t, tc.want, got.String(), "id %d", tc.id)
	}
}

func TestEstimateAgeEarliest(t *testing.T) {
	t.Parallel()

	assert.True(t, inspect.EstimateAge(1).Earliest())
	assert.False(t, inspect.EstimateAge(100_000_001).Earliest())
}

func TestEstimateAgeMonotonic(t *testing.T) {
	t.Parallel()

	var ids []int64
	for _, threshold := range []int64{
		100_000_000, 500_000_000, 1_000_000_000, 2_000_000_000,
		5_000_000_000, 6_000_000_000, 7_000_000_000,
	} {
		ids = append(ids, threshold-1, threshold, threshold+1)
	}
	for id := int64(0); id < 8_000_000_000; id += 123_456_789 {
		ids = append(ids, id)
	}

	for _, a := range ids {
		for _, b := range ids {
			if a >= b {
				continue
			}
			assert.LessOrEqual(t, inspect.EstimateAge(a).Bucket, inspect.EstimateAge(b).Bucket,
				"ids %d < %d", a, b)
		}
	}
}

func TestEstimateAgeDeterministic(t *testing.T) {
	t.Parallel()

	for _, id := range []int64{1, 999_999_999, 7_000_000_001} {
		assert.Equal(t, inspect.EstimateAge(id), inspect.EstimateAge(id))
	}
}
