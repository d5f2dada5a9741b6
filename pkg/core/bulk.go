package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"
)

// templatePattern selects the direct children of templates/ that are templates.
const templatePattern = "*" + TemplateExt

// pendingRead is a file discovered during traversal, read later in parallel.
type pendingRead struct {
	key  string
	dir  Directory
	name string
}

// GetAllNotes reads every file below notes/, keyed by its path relative to
// notes/. A missing notes/ directory yields an empty map. Reads run
// concurrently and any failure fails the whole call.
func (s *Session) GetAllNotes(ctx context.Context) (NoteMap, error) {
	dir, err := s.resolveDirectory(ctx, []string{NotesDir}, false)
	if errors.Is(err, ErrNotFound) {
		return NoteMap{}, nil
	}
	if err != nil {
		return nil, err
	}

	var reads []pendingRead
	if err := collectFiles(ctx, dir, "", &reads); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	contents, err := s.readAll(ctx, reads)
	if err != nil {
		return nil, fmt.Errorf("read notes: %w", err)
	}
	s.logger.Debug("notes loaded", "count", len(contents))
	return NoteMap(contents), nil
}

// GetAllTemplates reads the direct *.md children of templates/, keyed by
// file name without the extension. Subdirectories are not visited.
func (s *Session) GetAllTemplates(ctx context.Context) (TemplateMap, error) {
	dir, err := s.resolveDirectory(ctx, []string{TemplatesDir}, false)
	if errors.Is(err, ErrNotFound) {
		return TemplateMap{}, nil
	}
	if err != nil {
		return nil, err
	}

	entries, err := dir.Entries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	var reads []pendingRead
	for _, e := range entries {
		if e.Kind != KindFile {
			continue
		}
		if ok, _ := doublestar.Match(templatePattern, e.Name); !ok {
			continue
		}
		reads = append(reads, pendingRead{
			key:  strings.TrimSuffix(e.Name, TemplateExt),
			dir:  dir,
			name: e.Name,
		})
	}

	contents, err := s.readAll(ctx, reads)
	if err != nil {
		return nil, fmt.Errorf("read templates: %w", err)
	}
	return TemplateMap(contents), nil
}

// InitDirectories makes sure the reserved notes/ and templates/ directories
// exist under the active root.
func (s *Session) InitDirectories(ctx context.Context) error {
	root, err := s.activeRoot()
	if err != nil {
		return err
	}
	for _, name := range []string{NotesDir, TemplatesDir} {
		if _, err := root.Directory(ctx, name, true); err != nil {
			return fmt.Errorf("init %s: %w", name, err)
		}
	}
	return nil
}

func collectFiles(ctx context.Context, dir Directory, prefix string, reads *[]pendingRead) error {
	entries, err := dir.Entries(ctx)
	if err != nil {
		return err
	}
	for _, e := range entries {
		key := JoinPath(prefix, e.Name)
		if e.Kind == KindFile {
			*reads = append(*reads, pendingRead{key: key, dir: dir, name: e.Name})
			continue
		}
		child, err := dir.Directory(ctx, e.Name, false)
		if err != nil {
			return err
		}
		if err := collectFiles(ctx, child, key, reads); err != nil {
			return err
		}
	}
	return nil
}

// readAll reads the pending files concurrently. The result is all or nothing.
func (s *Session) readAll(ctx context.Context, reads []pendingRead) (map[string]string, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.ReadConcurrency)

	var mu sync.Mutex
	out := make(map[string]string, len(reads))

	for _, r := range reads {
		g.Go(func() error {
			f, err := r.dir.File(gctx, r.name, false)
			if err != nil {
				return fmt.Errorf("%s: %w", r.key, err)
			}
			content, err := f.Read(gctx)
			if err != nil {
				return fmt.Errorf("%s: %w", r.key, err)
			}
			mu.Lock()
			out[r.key] = content
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
