package store

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jwebster45206/detective-quest/pkg/casefile"
)

// FSStore serves cases from JSON files in a data directory. The case name is
// the filename without its .json extension.
type FSStore struct {
	dataDir string
	logger  *slog.Logger
}

// Ensure FSStore implements CaseStore interface
var _ CaseStore = (*FSStore)(nil)

// NewFSStore creates a filesystem-backed case store.
func NewFSStore(dataDir string, logger *slog.Logger) *FSStore {
	if dataDir == "" {
		dataDir = "./data"
	}
	return &FSStore{
		dataDir: dataDir,
		logger:  logger,
	}
}

func (s *FSStore) Ping(ctx context.Context) error {
	info, err := os.Stat(s.dataDir)
	if err != nil {
		return fmt.Errorf("case directory unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("case path %s is not a directory", s.dataDir)
	}
	return nil
}

// Close is a no-op; the filesystem holds no connection.
func (s *FSStore) Close() error {
	return nil
}

func (s *FSStore) ListCases(ctx context.Context) (map[string]string, error) {
	cases := make(map[string]string)

	err := filepath.WalkDir(s.dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			s.logger.Warn("Failed to read case file", "path", path, "error", err)
			return nil
		}

		c, err := casefile.Parse(data)
		if err != nil {
			s.logger.Warn("Skipping invalid case file", "path", path, "error", err)
			return nil
		}

		name := strings.TrimSuffix(filepath.Base(path), ".json")
		cases[name] = c.Title
		return nil
	})

	if err != nil {
		s.logger.Error("Failed to walk case directory", "error", err)
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}

	return cases, nil
}

func (s *FSStore) GetCase(ctx context.Context, name string) (*casefile.Case, error) {
	path := filepath.Join(s.dataDir, name+".json")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrCaseNotFound, name)
		}
		return nil, fmt.Errorf("failed to read case file: %w", err)
	}

	c, err := casefile.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("case %s: %w", name, err)
	}
	c.FileName = filepath.Base(path)
	return c, nil
}
