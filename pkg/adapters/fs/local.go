package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/notestore/pkg/core"
)

// Root kinds reported through introspection.
const (
	KindLocalDirectory = "local-directory"
	KindSandbox        = "sandbox"
)

// LocalConfig holds the collaborators of the local directory provider.
type LocalConfig struct {
	// Picker chooses the directory. Without it the backend is unavailable.
	Picker core.Picker

	// Prompter confirms permission requests. Without it requests are denied
	// unless AutoGrant is set.
	Prompter core.Prompter

	// AutoGrant treats every accessible directory as already granted.
	AutoGrant bool

	Logger *slog.Logger
}

// LocalProvider implements core.LocalProvider over host directories.
//
// A directory is granted once the user picked it or approved a permission
// request in this process. Grants are never persisted: after a restart the
// capability is restored in the "prompt" state and must be confirmed again.
type LocalProvider struct {
	config  LocalConfig
	logger  *slog.Logger
	mu      sync.RWMutex
	trusted map[string]bool
}

// NewLocalProvider creates a provider for user-granted host directories.
func NewLocalProvider(config LocalConfig) *LocalProvider {
	return &LocalProvider{
		config:  config,
		logger:  orDiscard(config.Logger),
		trusted: make(map[string]bool),
	}
}

func (p *LocalProvider) Available() bool {
	return p.config.Picker != nil
}

func (p *LocalProvider) Pick(ctx context.Context) (core.Directory, core.Capability, error) {
	if !p.Available() {
		return nil, core.Capability{}, fmt.Errorf("%w: no directory picker", core.ErrUnsupportedBackend)
	}

	chosen, err := p.config.Picker.PickDirectory(ctx)
	if err != nil {
		return nil, core.Capability{}, err
	}
	abs, err := filepath.Abs(chosen)
	if err != nil {
		return nil, core.Capability{}, fmt.Errorf("%w: %w", core.ErrIO, err)
	}
	if err := checkReadWrite(abs); err != nil {
		return nil, core.Capability{}, err
	}

	p.trust(abs)
	c := core.Capability{
		Backend:   core.BackendLocal,
		Name:      filepath.Base(abs),
		Path:      abs,
		GrantedAt: time.Now().UTC(),
	}
	return NewHostRoot(abs, KindLocalDirectory, p.logger), c, nil
}

func (p *LocalProvider) Restore(ctx context.Context, c core.Capability) (core.Directory, error) {
	if c.Backend != core.BackendLocal {
		return nil, fmt.Errorf("%w: capability for %s backend", core.ErrUnsupportedBackend, c.Backend)
	}
	return NewHostRoot(c.Path, KindLocalDirectory, p.logger), nil
}

func (p *LocalProvider) QueryPermission(ctx context.Context, c core.Capability) (core.PermissionState, error) {
	if err := checkReadWrite(c.Path); err != nil {
		p.logger.Debug("directory not accessible", "path", c.Path, "error", err)
		return core.PermissionDenied, nil
	}
	if p.config.AutoGrant || p.isTrusted(c.Path) {
		return core.PermissionGranted, nil
	}
	return core.PermissionPrompt, nil
}

func (p *LocalProvider) RequestPermission(ctx context.Context, c core.Capability) (core.PermissionState, error) {
	state, err := p.QueryPermission(ctx, c)
	if err != nil || state != core.PermissionPrompt {
		return state, err
	}
	if p.config.Prompter == nil {
		return core.PermissionDenied, nil
	}

	ok, err := p.config.Prompter.Confirm(ctx, fmt.Sprintf("Allow read-write access to %s", c.Path))
	if err != nil {
		return core.PermissionDenied, err
	}
	if !ok {
		return core.PermissionDenied, nil
	}
	p.trust(c.Path)
	return core.PermissionGranted, nil
}

func (p *LocalProvider) trust(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.trusted[path] = true
}

func (p *LocalProvider) isTrusted(path string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.trusted[path]
}

// checkReadWrite verifies that path is an existing directory we can create
// files in.
func checkReadWrite(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return mapErr("stat", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", core.ErrTypeMismatch, path)
	}

	f, err := os.CreateTemp(path, TempFilePrefix+"check-*")
	if err != nil {
		if os.IsPermission(err) {
			return fmt.Errorf("%w: %s is not writable", core.ErrPermissionDenied, path)
		}
		return mapErr("check", path, err)
	}
	f.Close()
	return os.Remove(f.Name())
}

var _ core.LocalProvider = (*LocalProvider)(nil)
