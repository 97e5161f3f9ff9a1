// Package mansion models the navigable map of a case: a binary tree of rooms,
// built once from a declarative room table and immutable afterwards.
package mansion

import "fmt"

// Room is a node in the map. Either child may be nil; a room with no children
// is a dead end that terminates exploration.
type Room struct {
	id    string
	left  *Room
	right *Room
}

// ID returns the room's unique label.
func (r *Room) ID() string { return r.id }

// Left returns the room behind the left door, or nil.
func (r *Room) Left() *Room { return r.left }

// Right returns the room behind the right door, or nil.
func (r *Room) Right() *Room { return r.right }

// IsLeaf reports whether the room has no exits.
func (r *Room) IsLeaf() bool { return r.left == nil && r.right == nil }

// Spec declares one room of the map: its label and the labels of the rooms
// behind its doors ("" for no door).
type Spec struct {
	ID    string `json:"id"`
	Left  string `json:"left,omitempty"`
	Right string `json:"right,omitempty"`
}

// Graph is the assembled map. It owns every room; rooms are created during
// Build and never mutated afterwards.
type Graph struct {
	root  *Room
	rooms map[string]*Room
}

// Build assembles a Graph from a room table and the label of its entrance.
// The table must describe exactly one well-formed tree: every referenced room
// defined, no room defined twice, no room behind two doors, and the entrance
// itself behind none.
func Build(rootID string, specs []Spec) (*Graph, error) {
	if rootID == "" {
		return nil, fmt.Errorf("map has no designated entrance")
	}

	rooms := make(map[string]*Room, len(specs))
	for _, s := range specs {
		if s.ID == "" {
			return nil, fmt.Errorf("room with empty id in map table")
		}
		if _, dup := rooms[s.ID]; dup {
			return nil, fmt.Errorf("room %q defined more than once", s.ID)
		}
		rooms[s.ID] = &Room{id: s.ID}
	}

	root, ok := rooms[rootID]
	if !ok {
		return nil, fmt.Errorf("entrance %q is not a defined room", rootID)
	}

	parents := make(map[string]string, len(specs))
	link := func(parent *Room, childID string) (*Room, error) {
		if childID == "" {
			return nil, nil
		}
		child, ok := rooms[childID]
		if !ok {
			return nil, fmt.Errorf("room %q references undefined room %q", parent.id, childID)
		}
		if prev, claimed := parents[childID]; claimed {
			return nil, fmt.Errorf("room %q is behind doors of both %q and %q", childID, prev, parent.id)
		}
		parents[childID] = parent.id
		return child, nil
	}

	for _, s := range specs {
		parent := rooms[s.ID]
		var err error
		if parent.left, err = link(parent, s.Left); err != nil {
			return nil, err
		}
		if parent.right, err = link(parent, s.Right); err != nil {
			return nil, err
		}
	}

	if _, claimed := parents[rootID]; claimed {
		return nil, fmt.Errorf("entrance %q is behind a door of %q", rootID, parents[rootID])
	}

	// Single-parent plus an unparented root rules out cycles; what is left to
	// check is that every room hangs off the entrance.
	reached := countReachable(root)
	if reached != len(rooms) {
		return nil, fmt.Errorf("map is disconnected: %d of %d rooms reachable from %q", reached, len(rooms), rootID)
	}

	return &Graph{root: root, rooms: rooms}, nil
}

func countReachable(r *Room) int {
	if r == nil {
		return 0
	}
	return 1 + countReachable(r.left) + countReachable(r.right)
}

// Root returns the entrance room.
func (g *Graph) Root() *Room { return g.root }

// Len returns the number of rooms in the map.
func (g *Graph) Len() int { return len(g.rooms) }

// Lookup returns the room with the given label, or nil.
func (g *Graph) Lookup(id string) *Room { return g.rooms[id] }

// Height returns the number of rooms on the longest path from the entrance to
// a dead end. Any sequence of valid door choices reaches a dead end within
// Height visits.
func (g *Graph) Height() int {
	return height(g.root)
}

func height(r *Room) int {
	if r == nil {
		return 0
	}
	return 1 + max(height(r.left), height(r.right))
}
