package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffsetsIncreaseWithMastery(t *testing.T) {
	prev := -1 * time.Hour
	for _, level := range Levels {
		offset, err := Offset(level)
		require.NoError(t, err)
		assert.Greater(t, offset, prev, "offset for %q must exceed the previous level's", level)
		prev = offset
	}

	_, err := Offset("expert")
	assert.Error(t, err)
}

func TestNextReview(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		mastery  string
		wantDays int
	}{
		{MasteryUntouched, 0},
		{MasteryAttempted, 1},
		{MasterySolved, 3},
		{MasteryUnderstood, 7},
		{MasteryMastered, 30},
	}

	for _, tt := range tests {
		t.Run(tt.mastery, func(t *testing.T) {
			next, err := NextReview(now, tt.mastery)
			require.NoError(t, err)
			assert.Equal(t, now.AddDate(0, 0, tt.wantDays), next)
		})
	}

	_, err := NextReview(now, "bogus")
	assert.Error(t, err)
}

func TestDue(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	// A question understood at T is due at T+7d: not yet at T+6d, due at T+8d.
	reviewAt, err := NextReview(now, MasteryUnderstood)
	require.NoError(t, err)

	assert.False(t, Due(MasteryUnderstood, &reviewAt, now.AddDate(0, 0, 6)))
	assert.True(t, Due(MasteryUnderstood, &reviewAt, now.AddDate(0, 0, 7)))
	assert.True(t, Due(MasteryUnderstood, &reviewAt, now.AddDate(0, 0, 8)))

	// Untouched questions never enter the queue, even with a stale date.
	past := now.AddDate(0, 0, -1)
	assert.False(t, Due(MasteryUntouched, &past, now))

	// No schedule, nothing due.
	assert.False(t, Due(MasterySolved, nil, now))
}

func TestRankAndSolved(t *testing.T) {
	assert.Equal(t, 0, Rank(MasteryUntouched))
	assert.Equal(t, 4, Rank(MasteryMastered))
	assert.Equal(t, -1, Rank("bogus"))

	assert.False(t, Solved(MasteryUntouched))
	assert.False(t, Solved(MasteryAttempted))
	assert.True(t, Solved(MasterySolved))
	assert.True(t, Solved(MasteryUnderstood))
	assert.True(t, Solved(MasteryMastered))
}

func TestValid(t *testing.T) {
	for _, level := range Levels {
		assert.True(t, Valid(level))
	}
	assert.False(t, Valid(""))
	assert.False(t, Valid("Mastered")) // levels are case sensitive
}
