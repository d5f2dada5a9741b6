package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/aretw0/notestore/pkg/core"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// directory implements core.Directory on top of an afero.Fs.
// path is relative to the filesystem root ("/" for the root itself).
type directory struct {
	fsys afero.Fs
	path string
	name string
}

func (d *directory) Name() string { return d.name }

func (d *directory) Directory(ctx context.Context, name string, create bool) (core.Directory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p := filepath.Join(d.path, name)

	info, err := d.fsys.Stat(p)
	switch {
	case err == nil && !info.IsDir():
		return nil, fmt.Errorf("%w: %s is a file", core.ErrTypeMismatch, name)
	case err == nil:
		// exists
	case os.IsNotExist(err) && create:
		if err := d.fsys.Mkdir(p, dirPerm); err != nil && !os.IsExist(err) {
			return nil, mapErr("mkdir", name, err)
		}
	default:
		return nil, mapErr("open directory", name, err)
	}

	return &directory{fsys: d.fsys, path: p, name: name}, nil
}

func (d *directory) File(ctx context.Context, name string, create bool) (core.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p := filepath.Join(d.path, name)

	info, err := d.fsys.Stat(p)
	switch {
	case err == nil && info.IsDir():
		return nil, fmt.Errorf("%w: %s is a directory", core.ErrTypeMismatch, name)
	case err == nil:
		// exists
	case os.IsNotExist(err) && create:
		f, err := d.fsys.OpenFile(p, os.O_CREATE|os.O_WRONLY, filePerm)
		if err != nil {
			return nil, mapErr("create", name, err)
		}
		if err := f.Close(); err != nil {
			return nil, mapErr("create", name, err)
		}
	default:
		return nil, mapErr("open file", name, err)
	}

	return &file{fsys: d.fsys, path: p, name: name}, nil
}

func (d *directory) Remove(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p := filepath.Join(d.path, name)

	info, err := d.fsys.Stat(p)
	if err != nil {
		return mapErr("remove", name, err)
	}
	// MemMapFs drops non-empty directories without complaint; match the
	// host filesystem instead.
	if info.IsDir() {
		children, err := afero.ReadDir(d.fsys, p)
		if err != nil {
			return mapErr("remove", name, err)
		}
		if len(children) > 0 {
			return fmt.Errorf("%w: remove %s: directory not empty", core.ErrIO, name)
		}
	}
	return mapErr("remove", name, d.fsys.Remove(p))
}

func (d *directory) Entries(ctx context.Context) ([]core.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	infos, err := afero.ReadDir(d.fsys, d.path)
	if err != nil {
		return nil, mapErr("read directory", d.path, err)
	}

	entries := make([]core.Entry, 0, len(infos))
	for _, info := range infos {
		if isTemp(info.Name()) {
			continue
		}
		kind := core.KindFile
		if info.IsDir() {
			kind = core.KindDirectory
		}
		entries = append(entries, core.Entry{Name: info.Name(), Kind: kind})
	}
	return entries, nil
}

// file implements core.File on top of an afero.Fs.
type file struct {
	fsys afero.Fs
	path string
	name string
}

func (f *file) Name() string { return f.name }

func (f *file) Read(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := afero.ReadFile(f.fsys, f.path)
	if err != nil {
		return "", mapErr("read", f.name, err)
	}
	return string(data), nil
}

func (f *file) Write(ctx context.Context, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := writeFileAtomic(f.fsys, f.path, []byte(content), filePerm); err != nil {
		return mapErr("write", f.name, err)
	}
	return nil
}

var (
	_ core.Directory = (*directory)(nil)
	_ core.File      = (*file)(nil)
)
