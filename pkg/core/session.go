package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// DefaultReadConcurrency bounds the number of file reads a bulk aggregator
// keeps in flight.
const DefaultReadConcurrency = 16

// Config holds the collaborators of a Session.
type Config struct {
	Local           LocalProvider   // optional
	Sandbox         SandboxProvider // optional
	Store           CapabilityStore // required when Local is set
	CapabilityKey   string
	ReadConcurrency int
	Logger          *slog.Logger
}

// Session owns the active storage root and exposes the path-addressed
// filesystem on top of it.
//
// The root is established once (PickDirectory, UseSandboxedOrigin or
// Reconnect) and lives until Disconnect. Operations take a snapshot of the
// root when they start, so a concurrent Disconnect does not interrupt them.
type Session struct {
	mu      sync.RWMutex
	backend Backend
	root    Directory
	name    string

	config Config
	logger *slog.Logger
}

// NewSession creates a Session with no active backend.
func NewSession(config Config) (*Session, error) {
	if config.Local != nil && config.Store == nil {
		return nil, fmt.Errorf("a capability store is required for the local directory backend")
	}
	if config.CapabilityKey == "" {
		config.CapabilityKey = DefaultCapabilityKey
	}
	if config.ReadConcurrency <= 0 {
		config.ReadConcurrency = DefaultReadConcurrency
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{
		backend: BackendNone,
		config:  config,
		logger:  logger,
	}, nil
}

// DetectCapabilities inspects the configured providers. It has no side effects.
func (s *Session) DetectCapabilities() Capabilities {
	return Capabilities{
		LocalDirectoryAvailable:  s.config.Local != nil && s.config.Local.Available(),
		SandboxedOriginAvailable: s.config.Sandbox != nil && s.config.Sandbox.Available(),
	}
}

// PickDirectory lets the user choose a host directory, makes it the active
// root and persists its capability, overwriting any previous one.
func (s *Session) PickDirectory(ctx context.Context) (string, error) {
	if !s.DetectCapabilities().LocalDirectoryAvailable {
		return "", fmt.Errorf("%w: local directory access", ErrUnsupportedBackend)
	}
	if err := s.ensureInactive(); err != nil {
		return "", err
	}

	root, c, err := s.config.Local.Pick(ctx)
	if err != nil {
		return "", err
	}

	if err := s.activate(BackendLocal, root, c.Name); err != nil {
		return "", err
	}

	data, err := c.MarshalBinary()
	if err == nil {
		err = s.config.Store.Put(ctx, s.config.CapabilityKey, data)
	}
	if err != nil {
		s.deactivate()
		return "", fmt.Errorf("%w: failed to persist capability: %w", ErrIO, err)
	}

	s.logger.Debug("local directory selected", "name", c.Name, "path", c.Path)
	return c.Name, nil
}

// UseSandboxedOrigin makes the application-private storage the active root.
// Nothing is persisted: the sandbox is available in every session.
func (s *Session) UseSandboxedOrigin(ctx context.Context) (string, error) {
	if !s.DetectCapabilities().SandboxedOriginAvailable {
		return "", fmt.Errorf("%w: sandboxed origin storage", ErrUnsupportedBackend)
	}
	if err := s.ensureInactive(); err != nil {
		return "", err
	}

	root, err := s.config.Sandbox.Root(ctx)
	if err != nil {
		return "", err
	}
	if err := s.activate(BackendSandbox, root, SandboxName); err != nil {
		return "", err
	}

	s.logger.Debug("sandboxed origin selected")
	return SandboxName, nil
}

// Reconnect restores the persisted local directory.
//
// ok is false when there is no persisted capability or permission was not
// granted. A declined capability stays in the store: it may be granted next
// time.
func (s *Session) Reconnect(ctx context.Context) (name string, ok bool, err error) {
	if !s.DetectCapabilities().LocalDirectoryAvailable {
		s.logger.Debug("reconnect skipped, local directory access unavailable")
		return "", false, nil
	}
	if err := s.ensureInactive(); err != nil {
		return "", false, err
	}

	data, found, err := s.config.Store.Get(ctx, s.config.CapabilityKey)
	if err != nil {
		return "", false, fmt.Errorf("%w: failed to load capability: %w", ErrIO, err)
	}
	if !found {
		return "", false, nil
	}

	var c Capability
	if err := c.UnmarshalBinary(data); err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrIO, err)
	}

	state, err := s.config.Local.QueryPermission(ctx, c)
	if err != nil {
		return "", false, err
	}
	if state != PermissionGranted {
		s.logger.Debug("permission not granted, requesting", "path", c.Path, "state", state)
		state, err = s.config.Local.RequestPermission(ctx, c)
		if err != nil {
			return "", false, err
		}
		if state != PermissionGranted {
			s.logger.Warn("permission declined, staying disconnected", "path", c.Path, "state", state)
			return "", false, nil
		}
	}

	root, err := s.config.Local.Restore(ctx, c)
	if err != nil {
		return "", false, err
	}
	if err := s.activate(BackendLocal, root, c.Name); err != nil {
		return "", false, err
	}

	s.logger.Debug("reconnected", "name", c.Name, "path", c.Path)
	return c.Name, true, nil
}

// Disconnect drops the active root (the underlying directory is untouched)
// and deletes the persisted capability. Calling it again is a no-op.
func (s *Session) Disconnect(ctx context.Context) error {
	s.deactivate()

	if s.config.Store == nil {
		return nil
	}
	if err := s.config.Store.Delete(ctx, s.config.CapabilityKey); err != nil {
		return fmt.Errorf("%w: failed to clear capability: %w", ErrIO, err)
	}
	return nil
}

// ActiveBackend returns the backend in use, BackendNone before selection.
func (s *Session) ActiveBackend() Backend {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.backend
}

// DirectoryName returns the display name of the active root.
func (s *Session) DirectoryName() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.root == nil {
		return "", false
	}
	return s.name, true
}

// Watch streams changes under the active root for backends that support it.
func (s *Session) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	root, err := s.activeRoot()
	if err != nil {
		return nil, err
	}
	w, ok := root.(Watchable)
	if !ok {
		return nil, fmt.Errorf("%w: %s backend cannot be watched", ErrUnsupportedBackend, s.ActiveBackend())
	}
	return w.Watch(ctx, pattern)
}

func (s *Session) activeRoot() (Directory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.root == nil {
		return nil, ErrNoActiveBackend
	}
	return s.root, nil
}

func (s *Session) ensureInactive() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.root != nil {
		return fmt.Errorf("%w: %s", ErrBackendActive, s.backend)
	}
	return nil
}

func (s *Session) activate(backend Backend, root Directory, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.root != nil {
		return fmt.Errorf("%w: %s", ErrBackendActive, s.backend)
	}
	s.backend = backend
	s.root = root
	s.name = name
	return nil
}

func (s *Session) deactivate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.backend = BackendNone
	s.root = nil
	s.name = ""
}
