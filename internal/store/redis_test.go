package store

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/jwebster45206/detective-quest/pkg/casefile"
	"github.com/jwebster45206/detective-quest/pkg/mansion"
)

func setupTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	// Start miniredis
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	s, err := NewRedisStore("redis://"+mr.Addr(), testLogger())
	if err != nil {
		mr.Close()
		t.Fatalf("Failed to create redis store: %v", err)
	}

	return s, mr
}

func testCase() *casefile.Case {
	return &casefile.Case{
		Title: "O Caso do Porão",
		Root:  "Hall",
		Rooms: []mansion.Spec{
			{ID: "Hall", Left: "Porão"},
			{ID: "Porão"},
		},
		Clues:    map[string]string{"Porão": "chave enferrujada"},
		Suspects: map[string]string{"chave enferrujada": "Avelar"},
	}
}

func TestRedisStore_SeedAndGet(t *testing.T) {
	s, mr := setupTestRedis(t)
	defer mr.Close()
	defer func() {
		if err := s.Close(); err != nil {
			t.Errorf("Failed to close store: %v", err)
		}
	}()

	ctx := context.Background()
	if err := s.Ping(ctx); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}

	if err := s.Seed(ctx, "porao", testCase()); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	c, err := s.GetCase(ctx, "porao")
	if err != nil {
		t.Fatalf("GetCase failed: %v", err)
	}
	if c.Title != "O Caso do Porão" {
		t.Errorf("unexpected title %q", c.Title)
	}
	if clue, ok := c.ClueFor("Porão"); !ok || clue != "chave enferrujada" {
		t.Errorf("ClueFor(Porão) = %q, %v", clue, ok)
	}

	cases, err := s.ListCases(ctx)
	if err != nil {
		t.Fatalf("ListCases failed: %v", err)
	}
	if len(cases) != 1 || cases["porao"] != "O Caso do Porão" {
		t.Errorf("unexpected listing: %v", cases)
	}
}

func TestRedisStore_GetMissing(t *testing.T) {
	s, mr := setupTestRedis(t)
	defer mr.Close()
	defer func() { _ = s.Close() }()

	_, err := s.GetCase(context.Background(), "inexistente")
	if !errors.Is(err, ErrCaseNotFound) {
		t.Errorf("expected ErrCaseNotFound, got %v", err)
	}
}

func TestRedisStore_SeedRejectsInvalidCase(t *testing.T) {
	s, mr := setupTestRedis(t)
	defer mr.Close()
	defer func() { _ = s.Close() }()

	c := testCase()
	c.Rooms = nil // room table no longer forms a tree rooted at Hall

	if err := s.Seed(context.Background(), "porao", c); err == nil {
		t.Fatal("expected seeding an invalid case to fail")
	}

	if _, err := s.GetCase(context.Background(), "porao"); !errors.Is(err, ErrCaseNotFound) {
		t.Errorf("invalid case must not be written, got %v", err)
	}
}
