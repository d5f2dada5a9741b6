package notestore

import (
	"context"
	"log/slog"

	"github.com/aretw0/notestore/internal/platform"
	"github.com/aretw0/notestore/pkg/config"
	"github.com/aretw0/notestore/pkg/core"
)

// --- Types ---

// Store is a session together with the resources it owns.
type Store = platform.Instance

// Backend identifies the active storage backend.
type Backend = core.Backend

// DirectoryEntry is one item returned by ListFiles.
type DirectoryEntry = core.DirectoryEntry

// --- Configuration ---

// Option defines a functional option for configuring notestore.
type Option = platform.Option

// WithConfig applies a configuration loaded with config.Load.
func WithConfig(cfg *config.Config) Option {
	return platform.WithConfig(cfg)
}

// WithLogger sets the logger for the session and its adapters.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithCapabilityStore injects a custom capability store.
func WithCapabilityStore(store core.CapabilityStore) Option {
	return platform.WithCapabilityStore(store)
}

// WithBadgerStore persists capabilities in a BadgerDB database at dir.
func WithBadgerStore(dir string) Option {
	return platform.WithBadgerStore(dir)
}

// WithCapabilityKey sets the key the capability is stored under.
func WithCapabilityKey(key string) Option {
	return platform.WithCapabilityKey(key)
}

// WithPicker enables the local directory backend.
func WithPicker(picker core.Picker) Option {
	return platform.WithPicker(picker)
}

// WithPrompter sets who confirms permission requests on reconnect.
func WithPrompter(prompter core.Prompter) Option {
	return platform.WithPrompter(prompter)
}

// WithAutoGrant treats accessible directories as granted on reconnect.
func WithAutoGrant(enabled bool) Option {
	return platform.WithAutoGrant(enabled)
}

// WithSandboxDir keeps the sandboxed origin in a host directory.
func WithSandboxDir(dir string) Option {
	return platform.WithSandboxDir(dir)
}

// WithSandboxInMemory keeps the sandboxed origin in memory.
func WithSandboxInMemory() Option {
	return platform.WithSandboxInMemory()
}

// WithReadConcurrency bounds parallel reads of the bulk aggregators.
func WithReadConcurrency(n int) Option {
	return platform.WithReadConcurrency(n)
}

// WithDevSafety controls re-rooting of data directories under `go run`.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// --- Factory ---

// New creates a Store with no active backend.
func New(ctx context.Context, opts ...Option) (*Store, error) {
	return platform.New(ctx, opts...)
}

// --- Utils ---

// IsDevRun checks if the current process is running via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}

// FindRoot looks upwards from startDir for a directory holding notes/ or
// templates/.
func FindRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}
