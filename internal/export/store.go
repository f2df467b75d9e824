package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// DefaultBase is the export directory relative to the user's home.
const DefaultBase = ".atrisure/exports"

var tracer = otel.Tracer("atrisure/export")

// Store writes downloadable files (CSV exports) into one directory.
// Layout: <base>/<filename>
type Store struct {
	baseDir string
}

// NewStore creates a store rooted at dir. An empty dir means
// ~/.atrisure/exports.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir = filepath.Join(home, DefaultBase)
	}
	return &Store{baseDir: ExpandHome(dir)}, nil
}

// BaseDir returns the directory files are written to.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// Path returns the absolute path a file would be written to.
// Directory components in name are dropped.
func (s *Store) Path(name string) string {
	return filepath.Join(s.baseDir, filepath.Base(name))
}

// Write creates or replaces name with whatever write produces. The file is
// written to a temp file first and renamed into place, so a failed write never
// leaves a partial export behind.
func (s *Store) Write(ctx context.Context, name string, write func(io.Writer) error) (string, error) {
	ctx, span := tracer.Start(ctx, "export.Write")
	defer span.End()

	path := s.Path(name)
	span.SetAttributes(attribute.String("export.file", filepath.Base(path)))

	fail := func(err error) (string, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return fail(err)
	}
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return fail(fmt.Errorf("create export dir: %w", err))
	}
	tmp, err := os.CreateTemp(s.baseDir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fail(fmt.Errorf("create temp file: %w", err))
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := write(tmp); err != nil {
		tmp.Close()
		return fail(fmt.Errorf("write %s: %w", name, err))
	}
	if err := tmp.Close(); err != nil {
		return fail(fmt.Errorf("close %s: %w", name, err))
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fail(fmt.Errorf("rename %s: %w", name, err))
	}
	return path, nil
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
