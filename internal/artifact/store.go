// Package artifact stores generated job outputs (export workbooks, digests)
// and serves uploaded inputs (import files) by opaque location reference.
package artifact

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store reads and writes artifacts by location reference. Write picks the
// final reference itself (suggestedName is a hint, not a path), so callers
// cannot collide or escape the backing location.
type Store interface {
	Write(ctx context.Context, data []byte, suggestedName string) (string, error)
	Read(ctx context.Context, ref string) ([]byte, error)
}

// FSStore keeps artifacts in a local directory. References are filenames
// relative to the directory root.
type FSStore struct {
	dir    string
	logger *slog.Logger
}

func NewFSStore(dir string, logger *slog.Logger) (*FSStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if dir == "" {
		return nil, fmt.Errorf("artifact dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create artifact dir: %w", err)
	}
	return &FSStore{dir: dir, logger: logger}, nil
}

func (s *FSStore) Write(_ context.Context, data []byte, suggestedName string) (string, error) {
	name := uuid.NewString() + "-" + sanitizeName(suggestedName)
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write artifact: %w", err)
	}
	s.logger.Debug("artifact.write.ok", "ref", name, "bytes", len(data))
	return name, nil
}

func (s *FSStore) Read(_ context.Context, ref string) ([]byte, error) {
	clean := filepath.Base(ref) // refs are flat names, reject traversal
	data, err := os.ReadFile(filepath.Join(s.dir, clean))
	if err != nil {
		return nil, fmt.Errorf("read artifact %q: %w", ref, err)
	}
	return data, nil
}

// sanitizeName keeps the suggested name safe for a filesystem path.
func sanitizeName(name string) string {
	name = filepath.Base(name)
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		}
		return '_'
	}, name)
	if name == "" || name == "." {
		name = "artifact"
	}
	return name
}
