package mansion

import (
	"strings"
	"testing"
)

func classicMansion() []Spec {
	return []Spec{
		{ID: "Hall de Entrada", Left: "Sala de Estar", Right: "Cozinha"},
		{ID: "Sala de Estar", Left: "Biblioteca", Right: "Jardim de Inverno"},
		{ID: "Cozinha", Left: "Despensa", Right: "Porão"},
		{ID: "Biblioteca"},
		{ID: "Jardim de Inverno"},
		{ID: "Despensa"},
		{ID: "Porão"},
	}
}

func TestBuild_ClassicMansion(t *testing.T) {
	g, err := Build("Hall de Entrada", classicMansion())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if g.Len() != 7 {
		t.Errorf("expected 7 rooms, got %d", g.Len())
	}

	root := g.Root()
	if root.ID() != "Hall de Entrada" {
		t.Errorf("unexpected entrance: %q", root.ID())
	}
	if root.IsLeaf() {
		t.Error("entrance should have exits")
	}
	if root.Left().ID() != "Sala de Estar" || root.Right().ID() != "Cozinha" {
		t.Errorf("unexpected children of entrance: %q / %q", root.Left().ID(), root.Right().ID())
	}

	porao := g.Lookup("Porão")
	if porao == nil {
		t.Fatal("Porão not found")
	}
	if !porao.IsLeaf() {
		t.Error("Porão should be a dead end")
	}
}

func TestBuild_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		root    string
		specs   []Spec
		wantErr string
	}{
		{
			name:    "no entrance",
			root:    "",
			specs:   []Spec{{ID: "Hall"}},
			wantErr: "no designated entrance",
		},
		{
			name:    "entrance undefined",
			root:    "Hall",
			specs:   []Spec{{ID: "Cozinha"}},
			wantErr: "not a defined room",
		},
		{
			name:    "undefined child",
			root:    "Hall",
			specs:   []Spec{{ID: "Hall", Left: "Sótão"}},
			wantErr: "undefined room",
		},
		{
			name: "duplicate definition",
			root: "Hall",
			specs: []Spec{
				{ID: "Hall", Left: "Cozinha"},
				{ID: "Cozinha"},
				{ID: "Cozinha"},
			},
			wantErr: "defined more than once",
		},
		{
			name: "two parents",
			root: "Hall",
			specs: []Spec{
				{ID: "Hall", Left: "Cozinha", Right: "Sala"},
				{ID: "Sala", Left: "Cozinha"},
				{ID: "Cozinha"},
			},
			wantErr: "behind doors of both",
		},
		{
			name: "cycle through entrance",
			root: "Hall",
			specs: []Spec{
				{ID: "Hall", Left: "Sala"},
				{ID: "Sala", Left: "Hall"},
			},
			wantErr: "entrance",
		},
		{
			name: "detached cycle",
			root: "Hall",
			specs: []Spec{
				{ID: "Hall"},
				{ID: "Sala", Left: "Cozinha"},
				{ID: "Cozinha", Left: "Sala"},
			},
			wantErr: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.root, tt.specs)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.wantErr != "" && !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestGraph_TraversalTerminatesWithinHeight(t *testing.T) {
	g, err := Build("Hall de Entrada", classicMansion())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	h := g.Height()
	if h != 3 {
		t.Errorf("expected height 3, got %d", h)
	}

	// Exhaust every left/right choice sequence up to the height; each must
	// land on a leaf with no remaining choices.
	var walk func(r *Room, steps int)
	walk = func(r *Room, steps int) {
		if r.IsLeaf() {
			if r.Left() != nil || r.Right() != nil {
				t.Errorf("leaf %q still offers exits", r.ID())
			}
			return
		}
		if steps >= h {
			t.Errorf("still at non-leaf %q after %d visits", r.ID(), steps)
			return
		}
		if next := r.Left(); next != nil {
			walk(next, steps+1)
		}
		if next := r.Right(); next != nil {
			walk(next, steps+1)
		}
	}
	walk(g.Root(), 1)
}
