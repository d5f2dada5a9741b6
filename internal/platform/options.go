package platform

import (
	"log/slog"

	"github.com/aretw0/notestore/pkg/config"
	"github.com/aretw0/notestore/pkg/core"
)

// options holds the internal configuration for a notestore instance.
type options struct {
	logger   *slog.Logger
	store    core.CapabilityStore
	picker   core.Picker
	prompter core.Prompter

	capabilityStore string
	capabilityDir   string
	capabilityKey   string

	sandboxDir      string
	sandboxInMemory bool

	autoGrant       bool
	readConcurrency int
	devSafety       bool
}

// Option defines a functional option for configuring notestore.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		capabilityStore: "memory",
		capabilityKey:   core.DefaultCapabilityKey,
		sandboxInMemory: true,
		devSafety:       true,
	}
}

// WithConfig applies a loaded configuration file. Options given after it
// override individual settings.
func WithConfig(cfg *config.Config) Option {
	return func(o *options) {
		s := cfg.Storage
		o.capabilityStore = s.CapabilityStore
		o.capabilityDir = s.CapabilityDir
		o.capabilityKey = s.CapabilityKey
		o.sandboxDir = s.SandboxDir
		o.sandboxInMemory = s.SandboxInMemory
		o.autoGrant = s.AutoGrant
		o.readConcurrency = s.ReadConcurrency
	}
}

// WithLogger sets the logger for the session and its adapters.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithCapabilityStore injects a custom capability store (e.g. a mock).
// If provided, the configured store kind is skipped and the caller keeps
// ownership of it.
func WithCapabilityStore(store core.CapabilityStore) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithBadgerStore persists capabilities in a BadgerDB database at dir.
func WithBadgerStore(dir string) Option {
	return func(o *options) {
		o.capabilityStore = "badger"
		o.capabilityDir = dir
	}
}

// WithCapabilityKey sets the key the capability is stored under.
func WithCapabilityKey(key string) Option {
	return func(o *options) {
		o.capabilityKey = key
	}
}

// WithPicker enables the local directory backend.
// Without a picker the backend is reported as unavailable.
func WithPicker(picker core.Picker) Option {
	return func(o *options) {
		o.picker = picker
	}
}

// WithPrompter sets who confirms permission requests on reconnect.
func WithPrompter(prompter core.Prompter) Option {
	return func(o *options) {
		o.prompter = prompter
	}
}

// WithAutoGrant treats accessible directories as granted on reconnect.
func WithAutoGrant(enabled bool) Option {
	return func(o *options) {
		o.autoGrant = enabled
	}
}

// WithSandboxDir keeps the sandboxed origin in a host directory.
func WithSandboxDir(dir string) Option {
	return func(o *options) {
		o.sandboxDir = dir
		o.sandboxInMemory = false
	}
}

// WithSandboxInMemory keeps the sandboxed origin in memory.
func WithSandboxInMemory() Option {
	return func(o *options) {
		o.sandboxDir = ""
		o.sandboxInMemory = true
	}
}

// WithReadConcurrency bounds parallel reads in GetAllNotes and
// GetAllTemplates. Zero means default (16).
func WithReadConcurrency(n int) Option {
	return func(o *options) {
		o.readConcurrency = n
	}
}

// WithDevSafety controls the safety mechanism when running via `go run` or
// `go test`. By default (true), sandbox and capability directories outside
// the system temp dir are re-rooted into a temporary directory so a dev run
// never touches real application data.
//
// CAUTION: Only disable this if you are sure your code is safe.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.devSafety = enabled
	}
}
