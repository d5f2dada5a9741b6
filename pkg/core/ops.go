package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// WriteFile creates or overwrites the file at p, creating parent
// directories as needed.
func (s *Session) WriteFile(ctx context.Context, p string, content string) error {
	parent, leaf, err := s.resolveParent(ctx, p, true)
	if err != nil {
		return err
	}
	f, err := parent.File(ctx, leaf, true)
	if err != nil {
		return fmt.Errorf("write %s: %w", p, err)
	}
	if err := f.Write(ctx, content); err != nil {
		return fmt.Errorf("write %s: %w", p, err)
	}
	s.logger.Debug("file written", "path", p, "bytes", len(content))
	return nil
}

// ReadFile returns the content of the file at p.
func (s *Session) ReadFile(ctx context.Context, p string) (string, error) {
	parent, leaf, err := s.resolveParent(ctx, p, false)
	if err != nil {
		return "", err
	}
	f, err := parent.File(ctx, leaf, false)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", p, err)
	}
	content, err := f.Read(ctx)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", p, err)
	}
	return content, nil
}

// DeleteFile removes the entry at p. Directories are removed only when
// empty, and the reserved notes and templates directories never are.
func (s *Session) DeleteFile(ctx context.Context, p string) error {
	if isReserved(p) {
		return fmt.Errorf("%w: %s is a reserved directory", ErrInvalidPath, p)
	}
	parent, leaf, err := s.resolveParent(ctx, p, false)
	if err != nil {
		return err
	}
	if err := parent.Remove(ctx, leaf); err != nil {
		return fmt.Errorf("delete %s: %w", p, err)
	}
	s.logger.Debug("file deleted", "path", p)
	return nil
}

func isReserved(p string) bool {
	return p == NotesDir || p == TemplatesDir
}

// FileExists reports whether p names a file. It never fails.
func (s *Session) FileExists(ctx context.Context, p string) bool {
	parent, leaf, err := s.resolveParent(ctx, p, false)
	if err != nil {
		return false
	}
	_, err = parent.File(ctx, leaf, false)
	return err == nil
}

// DirectoryExists reports whether p names a directory. It never fails.
func (s *Session) DirectoryExists(ctx context.Context, p string) bool {
	segments, err := SplitDirPath(p)
	if err != nil {
		return false
	}
	_, err = s.resolveDirectory(ctx, segments, false)
	return err == nil
}

// ListFiles returns every file and directory below dirPath, recursively.
// A directory that cannot be resolved lists as empty; failures deeper in
// the tree are returned.
func (s *Session) ListFiles(ctx context.Context, dirPath string) ([]DirectoryEntry, error) {
	segments, err := SplitDirPath(dirPath)
	if err != nil {
		return []DirectoryEntry{}, nil
	}
	dir, err := s.resolveDirectory(ctx, segments, false)
	if err != nil {
		return []DirectoryEntry{}, nil
	}

	results := []DirectoryEntry{}
	prefix := strings.Join(segments, PathSeparator)
	if err := listRecursive(ctx, dir, prefix, &results); err != nil {
		return nil, fmt.Errorf("list %s: %w", dirPath, err)
	}
	return results, nil
}

// Glob lists the whole root and keeps the entries matching a doublestar
// pattern such as "notes/**/*.md".
func (s *Session) Glob(ctx context.Context, pattern string) ([]DirectoryEntry, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: bad pattern %q", ErrInvalidPath, pattern)
	}
	root, err := s.activeRoot()
	if err != nil {
		return nil, err
	}

	var all []DirectoryEntry
	if err := listRecursive(ctx, root, "", &all); err != nil {
		return nil, err
	}

	matches := []DirectoryEntry{}
	for _, e := range all {
		if ok, _ := doublestar.Match(pattern, e.Path); ok {
			matches = append(matches, e)
		}
	}
	return matches, nil
}

func listRecursive(ctx context.Context, dir Directory, prefix string, results *[]DirectoryEntry) error {
	entries, err := dir.Entries(ctx)
	if err != nil {
		return err
	}
	for _, e := range entries {
		full := JoinPath(prefix, e.Name)
		if e.Kind == KindFile {
			*results = append(*results, DirectoryEntry{Path: full, IsFile: true})
			continue
		}
		*results = append(*results, DirectoryEntry{Path: full, IsFile: false})

		child, err := dir.Directory(ctx, e.Name, false)
		if err != nil {
			return err
		}
		if err := listRecursive(ctx, child, full, results); err != nil {
			return err
		}
	}
	return nil
}
