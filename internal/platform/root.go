package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/notestore/pkg/core"
)

// FindRoot looks upwards from startDir for a notes root, that is a directory
// holding notes/ or templates/. It returns the absolute path of the first
// match.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if isDir(dir, core.NotesDir) || isDir(dir, core.TemplatesDir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%w: no notes root above %s", core.ErrNotFound, abs)
}

func isDir(dir, name string) bool {
	info, err := os.Stat(filepath.Join(dir, name))
	return err == nil && info.IsDir()
}
