package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jwebster45206/detective-quest/pkg/casefile"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <case.json> [case.json ...]\n", os.Args[0])
		os.Exit(1)
	}

	failed := false
	for _, filename := range os.Args[1:] {
		validator := &CaseValidator{}
		if err := validator.validateFile(filename); err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			failed = true
			continue
		}
		fmt.Printf("%s is valid!\n", filename)
	}
	if failed {
		os.Exit(1)
	}
}

type CaseValidator struct {
	warnings []string
}

func (v *CaseValidator) validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	// Validate filename format
	baseName := filepath.Base(filename)
	if !strings.HasSuffix(baseName, ".json") {
		return fmt.Errorf("case file must have .json extension: %s", baseName)
	}

	nameWithoutExt := strings.TrimSuffix(baseName, ".json")
	if !isValidCaseFilename(nameWithoutExt) {
		return fmt.Errorf("case filename '%s' must be lowercase snake_case (e.g., meu_caso.json, not meu-caso.json or MeuCaso.json)", baseName)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	if !json.Valid(data) {
		return fmt.Errorf("file %s contains invalid JSON", filename)
	}

	// Parse runs strict decoding and the structural checks: one tree, one
	// root, no shared children, catalogs referencing known rooms.
	c, err := casefile.Parse(data)
	if err != nil {
		return fmt.Errorf("file %s: %w", filename, err)
	}

	v.lint(c)
	for _, w := range v.warnings {
		fmt.Printf("  warning: %s\n", w)
	}

	return nil
}

// lint flags things that are legal but probably mistakes in a hand-written
// case file.
func (v *CaseValidator) lint(c *casefile.Case) {
	clueRooms := make(map[string]string, len(c.Clues))
	for room, clue := range c.Clues {
		if prev, ok := clueRooms[clue]; ok {
			v.warnings = append(v.warnings, fmt.Sprintf("clue %q appears in both %q and %q; it can only be collected once", clue, prev, room))
		}
		clueRooms[clue] = room
		if _, ok := c.Suspects[clue]; !ok {
			v.warnings = append(v.warnings, fmt.Sprintf("clue %q implicates nobody", clue))
		}
	}

	for clue := range c.Suspects {
		if _, ok := clueRooms[clue]; !ok {
			v.warnings = append(v.warnings, fmt.Sprintf("suspect catalog entry for %q is unreachable: no room holds that clue", clue))
		}
	}

	// An accusation needs two implicating clues to stand; a case where no
	// suspect reaches that bar cannot be solved.
	perSuspect := make(map[string]int)
	for clue, suspect := range c.Suspects {
		if _, reachable := clueRooms[clue]; reachable {
			perSuspect[suspect]++
		}
	}
	solvable := false
	for _, n := range perSuspect {
		if n >= 2 {
			solvable = true
			break
		}
	}
	if !solvable {
		v.warnings = append(v.warnings, "no suspect is implicated by two collectible clues; no accusation can ever be sustained")
	}
}

func isValidCaseFilename(name string) bool {
	matched, _ := regexp.MatchString(`^[a-z0-9]+(_[a-z0-9]+)*$`, name)
	return matched
}
