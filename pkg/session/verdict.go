package session

import "github.com/jwebster45206/detective-quest/pkg/evidence"

// AccusationThreshold is the number of implicating clues required to sustain
// an accusation. Fixed contract, not configuration.
const AccusationThreshold = 2

// Verdict is the outcome of judging an accusation.
type Verdict struct {
	Accused   string `json:"accused"`
	Count     int    `json:"count"`
	Sustained bool   `json:"sustained"`
}

// Evaluate counts the collected clues whose indexed suspect equals accused.
// Comparison is exact and case-sensitive. An empty accused counts nothing.
func Evaluate(clues *evidence.ClueSet, suspects *evidence.SuspectIndex, accused string) int {
	if accused == "" {
		return 0
	}
	count := 0
	for clue := range clues.InOrder() {
		if suspect, ok := suspects.Lookup(clue); ok && suspect == accused {
			count++
		}
	}
	return count
}

// Judge evaluates an accusation and applies the threshold.
func Judge(clues *evidence.ClueSet, suspects *evidence.SuspectIndex, accused string) Verdict {
	count := Evaluate(clues, suspects, accused)
	return Verdict{
		Accused:   accused,
		Count:     count,
		Sustained: count >= AccusationThreshold,
	}
}
