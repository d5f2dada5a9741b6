package prompt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/notestore/pkg/core"
)

// Terminal asks the user on the controlling terminal. It implements both
// core.Picker and core.Prompter.
type Terminal struct {
	// Default is pre-filled in the directory prompt.
	Default string
}

// PickDirectory asks for an existing directory. Aborting the prompt is
// reported as a permission denial: the user did not grant anything.
func (t Terminal) PickDirectory(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	dir, err := Input("Notes directory", t.Default, ValidateDirectory)
	if err != nil {
		return "", denyOnAbort(err)
	}
	return filepath.Clean(dir), nil
}

// Confirm asks a yes/no question, defaulting to no. Aborting the prompt
// counts as answering no.
func (t Terminal) Confirm(ctx context.Context, question string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return declineOnAbort(Confirm(question, false))
}

// Fixed is a non-interactive picker that always returns the same path.
type Fixed string

func (f Fixed) PickDirectory(ctx context.Context) (string, error) {
	if err := ValidateDirectory(string(f)); err != nil {
		return "", err
	}
	return filepath.Clean(string(f)), nil
}

// Answer is a non-interactive prompter with a canned reply.
type Answer bool

func (a Answer) Confirm(ctx context.Context, question string) (bool, error) {
	return bool(a), nil
}

// ValidateDirectory checks that path names an existing directory.
func ValidateDirectory(path string) error {
	if path == "" {
		return fmt.Errorf("%w: directory is required", core.ErrInvalidPath)
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", core.ErrNotFound, path)
		}
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", core.ErrTypeMismatch, path)
	}
	return nil
}

func denyOnAbort(err error) error {
	if IsAborted(err) {
		return fmt.Errorf("%w: %w", core.ErrPermissionDenied, err)
	}
	return err
}

func declineOnAbort(ok bool, err error) (bool, error) {
	switch {
	case IsAborted(err):
		return false, nil
	case err != nil:
		return false, err
	}
	return ok, nil
}

var (
	_ core.Picker   = Terminal{}
	_ core.Prompter = Terminal{}
	_ core.Picker   = Fixed("")
	_ core.Prompter = Answer(false)
)
