// Package session drives one interactive investigation: walking the mansion,
// collecting clues along the way, and judging the final accusation.
package session

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jwebster45206/detective-quest/pkg/casefile"
	"github.com/jwebster45206/detective-quest/pkg/evidence"
	"github.com/jwebster45206/detective-quest/pkg/mansion"
)

var (
	// ErrUnknownCommand is returned for input that is not a navigation command.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrNoExit is returned when the chosen direction has no room behind it.
	ErrNoExit = errors.New("no room in that direction")
	// ErrOver is returned by Step once the exploration has ended.
	ErrOver = errors.New("exploration is over")
)

// Command is a navigation input.
type Command int

const (
	GoLeft Command = iota
	GoRight
	Quit
)

// ParseCommand interprets one line of player input, case-insensitively.
// The single-letter forms e/d/s from the original Portuguese prompts are
// accepted alongside left/right/quit.
func ParseCommand(input string) (Command, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "left", "l", "e", "esquerda":
		return GoLeft, nil
	case "right", "r", "d", "direita":
		return GoRight, nil
	case "quit", "q", "s", "sair":
		return Quit, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, strings.TrimSpace(input))
	}
}

// Visit reports what happened on entering a room.
type Visit struct {
	Room             *mansion.Room
	Clue             string // clue found in the room, "" if the room holds none
	AlreadyCollected bool   // the clue was in the set before this visit
	Suspect          string // suspect implicated by a newly collected clue, "" if unindexed
}

// Session is the state machine of one investigation. It owns the map, the
// clue set, and the suspect index for its whole lifetime; the map and index
// are read-only after construction, and only the clue set mutates during
// traversal. A session is single-player and not safe for concurrent use.
type Session struct {
	id       uuid.UUID
	c        *casefile.Case
	graph    *mansion.Graph
	clues    *evidence.ClueSet
	suspects *evidence.SuspectIndex
	current  *mansion.Room
	over     bool
	logger   *slog.Logger
}

// New starts a session for the given case. It builds the room graph, loads
// the suspect catalog into the index, and enters the entrance room; the
// returned Visit covers that first room. If the entrance is already a dead
// end the session starts over().
func New(c *casefile.Case, logger *slog.Logger) (*Session, *Visit, error) {
	if logger == nil {
		logger = slog.Default()
	}

	graph, err := mansion.Build(c.Root, c.Rooms)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build map: %w", err)
	}

	suspects := evidence.NewSuspectIndex()
	for clue, suspect := range c.Suspects {
		suspects.Upsert(clue, suspect)
	}

	s := &Session{
		id:       uuid.New(),
		c:        c,
		graph:    graph,
		clues:    evidence.NewClueSet(),
		suspects: suspects,
		current:  graph.Root(),
		logger:   logger,
	}

	s.logger.Debug("session started",
		"session_id", s.id,
		"case", c.Title,
		"rooms", graph.Len(),
		"indexed_clues", suspects.Len())

	visit := s.enter(s.current)
	return s, visit, nil
}

// enter records the side effects of visiting a room: at most one clue
// collected, and the implicated suspect reported but not acted on.
func (s *Session) enter(room *mansion.Room) *Visit {
	if room.IsLeaf() {
		s.over = true
	}

	visit := &Visit{Room: room}
	clue, ok := s.c.ClueFor(room.ID())
	if !ok {
		return visit
	}

	visit.Clue = clue
	if s.clues.Contains(clue) {
		visit.AlreadyCollected = true
		return visit
	}

	s.clues.Insert(clue)
	if suspect, ok := s.suspects.Lookup(clue); ok {
		visit.Suspect = suspect
	}
	s.logger.Debug("clue collected",
		"session_id", s.id,
		"room", room.ID(),
		"clue", clue,
		"suspect", visit.Suspect)
	return visit
}

// Step applies one navigation command. GoLeft and GoRight move to the child
// room and return the resulting Visit; when the chosen door does not exist
// the state is unchanged and ErrNoExit is returned. Quit ends the session
// with a nil Visit. After the session is over every command returns ErrOver.
func (s *Session) Step(cmd Command) (*Visit, error) {
	if s.over {
		return nil, ErrOver
	}

	switch cmd {
	case Quit:
		s.over = true
		s.logger.Debug("session quit", "session_id", s.id, "room", s.current.ID())
		return nil, nil
	case GoLeft, GoRight:
		next := s.current.Left()
		if cmd == GoRight {
			next = s.current.Right()
		}
		if next == nil {
			return nil, ErrNoExit
		}
		s.current = next
		return s.enter(next), nil
	default:
		return nil, ErrUnknownCommand
	}
}

// Current returns the room the player is in.
func (s *Session) Current() *mansion.Room { return s.current }

// Over reports whether the exploration has ended, either by reaching a dead
// end or by quitting.
func (s *Session) Over() bool { return s.over }

// ID returns the session's correlation id.
func (s *Session) ID() uuid.UUID { return s.id }

// Case returns the case being played.
func (s *Session) Case() *casefile.Case { return s.c }

// Clues lists the collected clues in ascending lexicographic order.
func (s *Session) Clues() iter.Seq[string] { return s.clues.InOrder() }

// ClueCount returns how many distinct clues have been collected.
func (s *Session) ClueCount() int { return s.clues.Len() }

// Accuse judges an accusation against the evidence collected so far.
func (s *Session) Accuse(accused string) Verdict {
	v := Judge(s.clues, s.suspects, accused)
	s.logger.Debug("accusation judged",
		"session_id", s.id,
		"accused", v.Accused,
		"count", v.Count,
		"sustained", v.Sustained)
	return v
}
