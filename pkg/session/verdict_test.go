package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jwebster45206/detective-quest/pkg/evidence"
)

func TestJudge(t *testing.T) {
	suspects := evidence.NewSuspectIndex()
	suspects.Upsert("pegada molhada", "X")
	suspects.Upsert("fio de cabelo", "X")
	suspects.Upsert("bilhete rasgado", "Clara")

	tests := []struct {
		name      string
		collected []string
		accused   string
		count     int
		sustained bool
	}{
		{
			name:      "two implicating clues sustain",
			collected: []string{"pegada molhada", "fio de cabelo"},
			accused:   "X",
			count:     2,
			sustained: true,
		},
		{
			name:      "one implicating clue is insufficient",
			collected: []string{"pegada molhada", "bilhete rasgado"},
			accused:   "X",
			count:     1,
			sustained: false,
		},
		{
			name:      "unindexed clues count for nobody",
			collected: []string{"pegada molhada", "vela apagada"},
			accused:   "X",
			count:     1,
			sustained: false,
		},
		{
			name:      "unknown suspect",
			collected: []string{"pegada molhada", "fio de cabelo"},
			accused:   "Ninguém",
			count:     0,
			sustained: false,
		},
		{
			name:      "empty accusation never sustains",
			collected: []string{"pegada molhada", "fio de cabelo"},
			accused:   "",
			count:     0,
			sustained: false,
		},
		{
			name:      "no evidence",
			collected: nil,
			accused:   "X",
			count:     0,
			sustained: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clues := evidence.NewClueSet()
			for _, id := range tt.collected {
				clues.Insert(id)
			}

			v := Judge(clues, suspects, tt.accused)
			assert.Equal(t, tt.count, v.Count)
			assert.Equal(t, tt.sustained, v.Sustained)
			assert.Equal(t, tt.accused, v.Accused)
		})
	}
}
