// Package scheduler maps a user-asserted mastery level to a spaced-repetition
// review date using a fixed offset table.
package scheduler

import (
	"fmt"
	"time"
)

const (
	MasteryUntouched  = "untouched"
	MasteryAttempted  = "attempted"
	MasterySolved     = "solved"
	MasteryUnderstood = "understood"
	MasteryMastered   = "mastered"
)

// Levels in increasing order of confidence.
var Levels = []string{
	MasteryUntouched,
	MasteryAttempted,
	MasterySolved,
	MasteryUnderstood,
	MasteryMastered,
}

var offsetDays = map[string]int{
	MasteryUntouched:  0,
	MasteryAttempted:  1,
	MasterySolved:     3,
	MasteryUnderstood: 7,
	MasteryMastered:   30,
}

func Valid(mastery string) bool {
	_, ok := offsetDays[mastery]
	return ok
}

// Rank returns the position of mastery in Levels, -1 for unknown levels.
func Rank(mastery string) int {
	for i, level := range Levels {
		if level == mastery {
			return i
		}
	}
	return -1
}

// Offset returns the review delay for a mastery level.
func Offset(mastery string) (time.Duration, error) {
	days, ok := offsetDays[mastery]
	if !ok {
		return 0, fmt.Errorf("unknown mastery level %q", mastery)
	}
	return time.Duration(days) * 24 * time.Hour, nil
}

// NextReview computes now + the level's offset.
func NextReview(now time.Time, mastery string) (time.Time, error) {
	offset, err := Offset(mastery)
	if err != nil {
		return time.Time{}, err
	}
	return now.Add(offset), nil
}

// Due reports whether a question with the given mastery and next-review time
// belongs in the review queue. An untouched question is never due; it has to
// be attempted first to enter the schedule.
func Due(mastery string, nextReview *time.Time, now time.Time) bool {
	if mastery == MasteryUntouched || nextReview == nil {
		return false
	}
	return !nextReview.After(now)
}

// Solved reports whether a mastery level counts as solved for the legacy
// IsSolved convenience flag.
func Solved(mastery string) bool {
	return Rank(mastery) >= Rank(MasterySolved)
}
