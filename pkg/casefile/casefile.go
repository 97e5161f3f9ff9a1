// Package casefile defines the on-disk format of a case: the room table, the
// room→clue catalog, and the clue→suspect catalog a session is played against.
package casefile

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jwebster45206/detective-quest/pkg/mansion"
)

// Case is the template for one investigation. It is pure configuration:
// the session engine builds its map and suspect index from it at startup and
// never writes back.
type Case struct {
	Title    string            `json:"title"`               // Display name of the case
	FileName string            `json:"file_name,omitempty"` // Name of the file the case was loaded from
	Intro    string            `json:"intro,omitempty"`     // Text shown before the first room
	Root     string            `json:"root"`                // ID of the entrance room
	Rooms    []mansion.Spec    `json:"rooms"`               // Room table, one entry per room
	Clues    map[string]string `json:"clues,omitempty"`     // Room ID → clue found there
	Suspects map[string]string `json:"suspects,omitempty"`  // Clue ID → implicated suspect
}

// Parse decodes a case from JSON and validates it. Unknown fields are
// rejected so that typos in hand-written case files fail loudly.
func Parse(data []byte) (*Case, error) {
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.DisallowUnknownFields()

	var c Case
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to decode case: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks structural soundness: the room table must form exactly one
// tree rooted at Root, every cataloged clue must belong to a defined room,
// and every suspect association must be complete.
func (c *Case) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("case has no title")
	}

	if _, err := mansion.Build(c.Root, c.Rooms); err != nil {
		return fmt.Errorf("invalid room table: %w", err)
	}

	known := make(map[string]bool, len(c.Rooms))
	for _, r := range c.Rooms {
		known[r.ID] = true
	}
	for room, clue := range c.Clues {
		if !known[room] {
			return fmt.Errorf("clue catalog references undefined room %q", room)
		}
		if clue == "" {
			return fmt.Errorf("room %q maps to an empty clue", room)
		}
	}

	for clue, suspect := range c.Suspects {
		if clue == "" {
			return fmt.Errorf("suspect catalog has an entry with an empty clue")
		}
		if suspect == "" {
			return fmt.Errorf("clue %q implicates an empty suspect", clue)
		}
	}

	return nil
}

// ClueFor returns the clue found in the given room, if the catalog has one.
// The mapping is a pure function of room identity.
func (c *Case) ClueFor(roomID string) (string, bool) {
	clue, ok := c.Clues[roomID]
	return clue, ok
}
