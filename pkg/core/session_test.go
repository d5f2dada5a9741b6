package core_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/aretw0/notestore/pkg/adapters/fs"
	"github.com/aretw0/notestore/pkg/core"
)

func TestNewSession(t *testing.T) {
	t.Run("Local Requires Store", func(t *testing.T) {
		_, err := core.NewSession(core.Config{Local: fs.NewLocalProvider(fs.LocalConfig{})})
		if err == nil {
			t.Error("expected error without capability store")
		}
	})

	t.Run("Starts Inactive", func(t *testing.T) {
		s, err := core.NewSession(core.Config{})
		if err != nil {
			t.Fatalf("NewSession failed: %v", err)
		}
		if s.ActiveBackend() != core.BackendNone {
			t.Errorf("expected none, got %s", s.ActiveBackend())
		}
		if _, ok := s.DirectoryName(); ok {
			t.Error("expected no directory name")
		}
	})
}

func TestDetectCapabilities(t *testing.T) {
	e := newEnv(t)
	caps := e.session.DetectCapabilities()
	if !caps.LocalDirectoryAvailable || !caps.SandboxedOriginAvailable {
		t.Errorf("expected both backends available, got %+v", caps)
	}

	bare, _ := core.NewSession(core.Config{})
	if caps := bare.DetectCapabilities(); caps.LocalDirectoryAvailable || caps.SandboxedOriginAvailable {
		t.Errorf("expected nothing available, got %+v", caps)
	}
}

func TestPickDirectory(t *testing.T) {
	ctx := context.Background()

	t.Run("Activates And Persists", func(t *testing.T) {
		e := newEnv(t)
		name, err := e.session.PickDirectory(ctx)
		if err != nil {
			t.Fatalf("PickDirectory failed: %v", err)
		}
		if got, ok := e.session.DirectoryName(); !ok || got != name {
			t.Errorf("expected directory name %q, got %q", name, got)
		}
		if e.session.ActiveBackend() != core.BackendLocal {
			t.Errorf("expected local backend, got %s", e.session.ActiveBackend())
		}

		data, ok, err := e.store.Get(ctx, core.DefaultCapabilityKey)
		if err != nil || !ok {
			t.Fatalf("expected persisted capability, ok=%v err=%v", ok, err)
		}
		var c core.Capability
		if err := c.UnmarshalBinary(data); err != nil {
			t.Fatalf("stored capability does not decode: %v", err)
		}
		if c.Path != e.dir {
			t.Errorf("expected capability path %q, got %q", e.dir, c.Path)
		}
	})

	t.Run("Unsupported", func(t *testing.T) {
		s, _ := core.NewSession(core.Config{})
		if _, err := s.PickDirectory(ctx); !errors.Is(err, core.ErrUnsupportedBackend) {
			t.Errorf("expected ErrUnsupportedBackend, got %v", err)
		}
	})

	t.Run("Requires Disconnect To Switch", func(t *testing.T) {
		e := newEnv(t)
		if _, err := e.session.UseSandboxedOrigin(ctx); err != nil {
			t.Fatalf("UseSandboxedOrigin failed: %v", err)
		}
		if _, err := e.session.PickDirectory(ctx); !errors.Is(err, core.ErrBackendActive) {
			t.Errorf("expected ErrBackendActive, got %v", err)
		}
		if err := e.session.Disconnect(ctx); err != nil {
			t.Fatalf("Disconnect failed: %v", err)
		}
		if _, err := e.session.PickDirectory(ctx); err != nil {
			t.Errorf("PickDirectory after disconnect failed: %v", err)
		}
	})

	t.Run("Store Failure Leaves Session Inactive", func(t *testing.T) {
		e := newEnv(t)
		s, _ := core.NewSession(core.Config{Local: e.local, Store: brokenStore{}})
		if _, err := s.PickDirectory(ctx); !errors.Is(err, core.ErrIO) {
			t.Errorf("expected ErrIO, got %v", err)
		}
		if s.ActiveBackend() != core.BackendNone {
			t.Errorf("expected no backend after failed persist, got %s", s.ActiveBackend())
		}
	})
}

func TestUseSandboxedOrigin(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	name, err := e.session.UseSandboxedOrigin(ctx)
	if err != nil {
		t.Fatalf("UseSandboxedOrigin failed: %v", err)
	}
	if name != core.SandboxName {
		t.Errorf("expected %q, got %q", core.SandboxName, name)
	}
	if e.session.ActiveBackend() != core.BackendSandbox {
		t.Errorf("expected sandbox backend, got %s", e.session.ActiveBackend())
	}
	if _, ok, _ := e.store.Get(ctx, core.DefaultCapabilityKey); ok {
		t.Error("sandbox must not persist a capability")
	}

	s, _ := core.NewSession(core.Config{})
	if _, err := s.UseSandboxedOrigin(ctx); !errors.Is(err, core.ErrUnsupportedBackend) {
		t.Errorf("expected ErrUnsupportedBackend, got %v", err)
	}
}

func TestReconnect(t *testing.T) {
	ctx := context.Background()

	t.Run("Nothing Persisted", func(t *testing.T) {
		e := newEnv(t)
		name, ok, err := e.session.Reconnect(ctx)
		if err != nil || ok || name != "" {
			t.Errorf("expected no reconnection, got %q ok=%v err=%v", name, ok, err)
		}
	})

	t.Run("Granted Without Prompt", func(t *testing.T) {
		e := newEnv(t)
		picked, err := e.session.PickDirectory(ctx)
		if err != nil {
			t.Fatalf("PickDirectory failed: %v", err)
		}

		// Same provider: the grant from picking is still in effect.
		next := e.newSession(t, e.local)
		name, ok, err := next.Reconnect(ctx)
		if err != nil || !ok {
			t.Fatalf("expected reconnection, ok=%v err=%v", ok, err)
		}
		if name != picked {
			t.Errorf("expected %q, got %q", picked, name)
		}
		if e.prompter.asked != 0 {
			t.Errorf("expected no prompt, got %d", e.prompter.asked)
		}
		if next.ActiveBackend() != core.BackendLocal {
			t.Errorf("expected local backend, got %s", next.ActiveBackend())
		}
	})

	t.Run("Prompt Approved", func(t *testing.T) {
		e := newEnv(t)
		if _, err := e.session.PickDirectory(ctx); err != nil {
			t.Fatalf("PickDirectory failed: %v", err)
		}

		// A fresh provider models a restarted process: the grant is gone.
		prompter := &answerPrompter{answer: true}
		restarted := fs.NewLocalProvider(fs.LocalConfig{Picker: staticPicker(e.dir), Prompter: prompter})
		next := e.newSession(t, restarted)

		_, ok, err := next.Reconnect(ctx)
		if err != nil || !ok {
			t.Fatalf("expected reconnection, ok=%v err=%v", ok, err)
		}
		if prompter.asked != 1 {
			t.Errorf("expected exactly one prompt, got %d", prompter.asked)
		}
	})

	t.Run("Prompt Declined", func(t *testing.T) {
		e := newEnv(t)
		if _, err := e.session.PickDirectory(ctx); err != nil {
			t.Fatalf("PickDirectory failed: %v", err)
		}

		restarted := fs.NewLocalProvider(fs.LocalConfig{Picker: staticPicker(e.dir), Prompter: &answerPrompter{answer: false}})
		next := e.newSession(t, restarted)

		name, ok, err := next.Reconnect(ctx)
		if err != nil || ok || name != "" {
			t.Fatalf("expected declined reconnection, got %q ok=%v err=%v", name, ok, err)
		}
		if next.ActiveBackend() != core.BackendNone {
			t.Errorf("expected no backend, got %s", next.ActiveBackend())
		}
		if _, ok, _ := e.store.Get(ctx, core.DefaultCapabilityKey); !ok {
			t.Error("declined capability must stay in the store")
		}
	})

	t.Run("Corrupt Capability", func(t *testing.T) {
		e := newEnv(t)
		_ = e.store.Put(ctx, core.DefaultCapabilityKey, []byte("::: not yaml"))
		if _, _, err := e.session.Reconnect(ctx); !errors.Is(err, core.ErrIO) {
			t.Errorf("expected ErrIO, got %v", err)
		}
	})

	t.Run("Store Failure", func(t *testing.T) {
		e := newEnv(t)
		s, _ := core.NewSession(core.Config{Local: e.local, Store: brokenStore{}})
		if _, _, err := s.Reconnect(ctx); !errors.Is(err, errBroken) {
			t.Errorf("expected store error, got %v", err)
		}
	})
}

func TestDisconnect(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	if _, err := e.session.PickDirectory(ctx); err != nil {
		t.Fatalf("PickDirectory failed: %v", err)
	}

	if err := e.session.Disconnect(ctx); err != nil {
		t.Fatalf("Disconnect failed: %v", err)
	}
	if err := e.session.Disconnect(ctx); err != nil {
		t.Fatalf("second Disconnect failed: %v", err)
	}
	if e.session.ActiveBackend() != core.BackendNone {
		t.Errorf("expected none, got %s", e.session.ActiveBackend())
	}
	if _, ok, _ := e.store.Get(ctx, core.DefaultCapabilityKey); ok {
		t.Error("expected capability to be deleted")
	}

	checks := map[string]error{
		"write":     e.session.WriteFile(ctx, "notes/a.md", "x"),
		"delete":    e.session.DeleteFile(ctx, "notes/a.md"),
		"init":      e.session.InitDirectories(ctx),
		"readError": func() error { _, err := e.session.ReadFile(ctx, "notes/a.md"); return err }(),
		"notes":     func() error { _, err := e.session.GetAllNotes(ctx); return err }(),
		"templates": func() error { _, err := e.session.GetAllTemplates(ctx); return err }(),
	}
	for name, err := range checks {
		if !errors.Is(err, core.ErrNoActiveBackend) {
			t.Errorf("%s: expected ErrNoActiveBackend, got %v", name, err)
		}
	}

	// The directory itself is untouched.
	if _, err := os.Stat(e.dir); err != nil {
		t.Errorf("directory should still exist: %v", err)
	}
}

func TestState(t *testing.T) {
	s := sandboxSession(t)
	state, ok := s.State().(core.SessionState)
	if !ok {
		t.Fatalf("unexpected state type %T", s.State())
	}
	if state.Backend != core.BackendSandbox || state.DirectoryName != core.SandboxName {
		t.Errorf("unexpected state: %+v", state)
	}
	if state.RootType != fs.KindSandbox {
		t.Errorf("expected root type %q, got %q", fs.KindSandbox, state.RootType)
	}
	if s.ComponentType() != "session" {
		t.Errorf("unexpected component type %q", s.ComponentType())
	}
}
