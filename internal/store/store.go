// Package store loads case files for the session engine. Cases are static
// configuration: a store is read-only at runtime, whichever backend serves it.
package store

import (
	"context"
	"errors"

	"github.com/jwebster45206/detective-quest/pkg/casefile"
)

// ErrCaseNotFound is returned when the requested case does not exist.
var ErrCaseNotFound = errors.New("case not found")

// HealthChecker defines basic health check capabilities
type HealthChecker interface {
	// Ping tests the store connection
	Ping(ctx context.Context) error
}

// Closer defines cleanup capabilities
type Closer interface {
	// Close closes the store connection
	Close() error
}

// CaseStore serves the case catalog.
type CaseStore interface {
	HealthChecker
	Closer

	// ListCases returns case titles keyed by case name. The name is the
	// handle GetCase accepts.
	ListCases(ctx context.Context) (map[string]string, error)

	// GetCase retrieves a validated case by name.
	// Returns ErrCaseNotFound if no such case exists.
	GetCase(ctx context.Context, name string) (*casefile.Case, error)
}
