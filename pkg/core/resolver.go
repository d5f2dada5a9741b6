package core

import (
	"context"
	"fmt"
)

// resolveDirectory walks segments from the active root. Missing directories
// are created only when create is true.
func (s *Session) resolveDirectory(ctx context.Context, segments []string, create bool) (Directory, error) {
	dir, err := s.activeRoot()
	if err != nil {
		return nil, err
	}
	return walk(ctx, dir, segments, create)
}

func walk(ctx context.Context, dir Directory, segments []string, create bool) (Directory, error) {
	for _, segment := range segments {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		next, err := dir.Directory(ctx, segment, create)
		if err != nil {
			return nil, fmt.Errorf("resolve %q: %w", segment, err)
		}
		dir = next
	}
	return dir, nil
}

// resolveParent validates a file path and resolves the directory holding it.
func (s *Session) resolveParent(ctx context.Context, p string, create bool) (Directory, string, error) {
	dirs, leaf, err := SplitFilePath(p)
	if err != nil {
		return nil, "", err
	}
	parent, err := s.resolveDirectory(ctx, dirs, create)
	if err != nil {
		return nil, "", err
	}
	return parent, leaf, nil
}
