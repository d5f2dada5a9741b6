package fs

import (
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/notestore/pkg/core"
)

// mapErr translates afero/os errors into the core taxonomy while keeping
// the underlying error in the chain.
func mapErr(op, name string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %s %s", core.ErrNotFound, op, name)
	case errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w: %s %s: %w", core.ErrPermissionDenied, op, name, err)
	default:
		return fmt.Errorf("%w: %s %s: %w", core.ErrIO, op, name, err)
	}
}
