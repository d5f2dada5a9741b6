package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/spf13/afero"

	"github.com/aretw0/notestore/pkg/core"
)

// SandboxConfig configures the application-private backend.
type SandboxConfig struct {
	// Dir is the host directory holding the sandbox.
	Dir string

	// InMemory keeps the sandbox in memory for the lifetime of the provider.
	InMemory bool

	Logger *slog.Logger
}

// SandboxProvider implements core.SandboxProvider. It needs no grant and
// always hands out the same storage.
type SandboxProvider struct {
	config SandboxConfig
	logger *slog.Logger

	once sync.Once
	mem  afero.Fs
}

// NewSandboxProvider creates the sandboxed origin provider.
func NewSandboxProvider(config SandboxConfig) *SandboxProvider {
	return &SandboxProvider{
		config: config,
		logger: orDiscard(config.Logger),
	}
}

func (p *SandboxProvider) Available() bool {
	return p.config.InMemory || p.config.Dir != ""
}

func (p *SandboxProvider) Root(ctx context.Context) (core.Directory, error) {
	if !p.Available() {
		return nil, fmt.Errorf("%w: sandbox not configured", core.ErrUnsupportedBackend)
	}
	if p.config.InMemory {
		p.once.Do(func() { p.mem = afero.NewMemMapFs() })
		return NewMemRoot(p.mem, KindSandbox, p.logger), nil
	}

	if err := os.MkdirAll(p.config.Dir, 0o700); err != nil {
		return nil, mapErr("create sandbox", p.config.Dir, err)
	}
	return NewHostRoot(p.config.Dir, KindSandbox, p.logger), nil
}

var _ core.SandboxProvider = (*SandboxProvider)(nil)
