package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jwebster45206/detective-quest/internal/config"
	"github.com/jwebster45206/detective-quest/internal/logger"
	"github.com/jwebster45206/detective-quest/internal/store"
	"github.com/jwebster45206/detective-quest/pkg/casefile"
	"github.com/jwebster45206/detective-quest/pkg/session"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg)

	var cs store.CaseStore
	switch cfg.CaseStore {
	case config.StoreRedis:
		rs, err := store.NewRedisStore(cfg.RedisURL, log)
		if err != nil {
			log.Error("Failed to create case store", "error", err)
			os.Exit(1)
		}
		cs = rs
	case config.StoreFS:
		cs = store.NewFSStore(cfg.DataDir, log)
	default:
		log.Error("Invalid case store specified", "store", cfg.CaseStore, "supported", []string{config.StoreFS, config.StoreRedis})
		os.Exit(1)
	}
	defer func() {
		_ = cs.Close() // Ignore error in defer
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := cs.Ping(ctx); err != nil {
		log.Error("Case store unavailable", "error", err)
		os.Exit(1)
	}

	reader := bufio.NewReader(os.Stdin)

	c, err := chooseCase(ctx, cs, reader)
	if err != nil {
		log.Error("Failed to load a case", "error", err)
		os.Exit(1)
	}

	sess, visit, err := session.New(c, log)
	if err != nil {
		log.Error("Failed to start session", "error", err)
		os.Exit(1)
	}

	fmt.Printf("\n=== Detective Quest: %s ===\n", c.Title)
	if c.Intro != "" {
		fmt.Println(c.Intro)
	}

	explore(sess, visit, reader)
	epilogue(sess, reader)
}

// chooseCase lists the available cases and reads a selection. A single case
// is chosen without prompting.
func chooseCase(ctx context.Context, cs store.CaseStore, reader *bufio.Reader) (*casefile.Case, error) {
	cases, err := cs.ListCases(ctx)
	if err != nil {
		return nil, err
	}
	if len(cases) == 0 {
		return nil, fmt.Errorf("no cases available")
	}

	var names []string
	for name := range cases {
		names = append(names, name)
	}
	sort.Strings(names)

	if len(names) == 1 {
		return cs.GetCase(ctx, names[0])
	}

	fmt.Println("Available Cases:")
	for i, name := range names {
		fmt.Printf("  %d - %s (%s)\n", i+1, cases[name], name)
	}

	for {
		fmt.Print("\nSelect a case by number: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("input ended before a case was selected")
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || choice < 1 || choice > len(names) {
			fmt.Println("Invalid selection.")
			continue
		}
		return cs.GetCase(ctx, names[choice-1])
	}
}

// explore runs the navigation loop until a dead end, a quit, or end of input.
func explore(sess *session.Session, visit *session.Visit, reader *bufio.Reader) {
	reportVisit(visit)

	for !sess.Over() {
		room := sess.Current()
		fmt.Println("\nWhere to?")
		if next := room.Left(); next != nil {
			fmt.Printf("  left  - %s\n", next.ID())
		}
		if next := room.Right(); next != nil {
			fmt.Printf("  right - %s\n", next.ID())
		}
		fmt.Println("  quit  - end the exploration")
		fmt.Print("Choice: ")

		line, err := reader.ReadString('\n')
		if err != nil {
			// End of input is an implicit quit.
			fmt.Println()
			_, _ = sess.Step(session.Quit)
			return
		}

		cmd, err := session.ParseCommand(line)
		if err != nil {
			fmt.Println("Invalid option.")
			continue
		}

		visit, err = sess.Step(cmd)
		switch {
		case errors.Is(err, session.ErrNoExit):
			fmt.Println("There is no room in that direction.")
		case err != nil:
			fmt.Println("Invalid option.")
		case visit == nil:
			fmt.Println("Leaving the exploration...")
		default:
			reportVisit(visit)
		}
	}
}

func reportVisit(v *session.Visit) {
	fmt.Printf("\nYou are in: %s\n", v.Room.ID())
	switch {
	case v.Clue == "":
		// Nothing to find here.
	case v.AlreadyCollected:
		fmt.Printf("The clue %q is here, but you have already collected it.\n", v.Clue)
	default:
		fmt.Printf("You found a clue: %q\n", v.Clue)
		if v.Suspect != "" {
			fmt.Printf("It implicates %s.\n", v.Suspect)
		}
	}
	if v.Room.IsLeaf() {
		fmt.Println("No more paths to follow. The exploration is over.")
	}
}

// epilogue lists the evidence and judges the final accusation.
func epilogue(sess *session.Session, reader *bufio.Reader) {
	fmt.Println("\n--- Collected Evidence ---")
	if sess.ClueCount() == 0 {
		fmt.Println("You collected no clues.")
	} else {
		for clue := range sess.Clues() {
			fmt.Printf("  - %s\n", clue)
		}
	}

	fmt.Print("\nWhom do you accuse? (leave empty for no accusation): ")
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		fmt.Println("\nNo accusation made. The case remains open.")
		return
	}

	accused := strings.TrimSpace(line)
	if accused == "" {
		fmt.Println("No accusation made. The case remains open.")
		return
	}

	v := sess.Accuse(accused)
	fmt.Printf("\n%d collected clue(s) implicate %s.\n", v.Count, v.Accused)
	if v.Sustained {
		fmt.Printf("The accusation is sustained: %s is the culprit!\n", v.Accused)
	} else {
		fmt.Printf("Insufficient evidence against %s. The accusation does not stand.\n", v.Accused)
	}
}
