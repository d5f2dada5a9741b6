package fs

import (
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"
)

// Root is the top-level directory of a backend. Roots backed by a host
// directory can also be watched for changes.
type Root struct {
	*directory
	kind   string
	host   string // empty for in-memory roots
	logger *slog.Logger
}

// NewHostRoot returns a root confined to the host directory at path.
func NewHostRoot(path string, kind string, logger *slog.Logger) *Root {
	return &Root{
		directory: &directory{
			fsys: afero.NewBasePathFs(afero.NewOsFs(), path),
			path: string(filepath.Separator),
			name: filepath.Base(path),
		},
		kind:   kind,
		host:   path,
		logger: orDiscard(logger),
	}
}

// NewMemRoot returns a root over an in-memory filesystem.
func NewMemRoot(fsys afero.Fs, kind string, logger *slog.Logger) *Root {
	return &Root{
		directory: &directory{
			fsys: fsys,
			path: string(filepath.Separator),
		},
		kind:   kind,
		logger: orDiscard(logger),
	}
}

// HostPath returns the host directory backing the root, if any.
func (r *Root) HostPath() (string, bool) {
	return r.host, r.host != ""
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return logger
}
