package core_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/aretw0/notestore/pkg/adapters/fs"
	"github.com/aretw0/notestore/pkg/adapters/memory"
	"github.com/aretw0/notestore/pkg/core"
)

type staticPicker string

func (p staticPicker) PickDirectory(ctx context.Context) (string, error) {
	return string(p), nil
}

type answerPrompter struct {
	answer bool
	asked  int
}

func (p *answerPrompter) Confirm(ctx context.Context, question string) (bool, error) {
	p.asked++
	return p.answer, nil
}

// env bundles a session with the collaborators tests want to poke at.
type env struct {
	session  *core.Session
	store    *memory.Store
	local    *fs.LocalProvider
	prompter *answerPrompter
	dir      string
}

// newEnv builds a session with a local provider rooted at a temp dir and an
// in-memory sandbox.
func newEnv(t *testing.T) *env {
	t.Helper()
	dir := t.TempDir()
	prompter := &answerPrompter{answer: true}
	e := &env{
		store:    memory.NewStore(),
		prompter: prompter,
		dir:      dir,
		local: fs.NewLocalProvider(fs.LocalConfig{
			Picker:   staticPicker(dir),
			Prompter: prompter,
		}),
	}
	e.session = e.newSession(t, e.local)
	return e
}

// newSession creates another session sharing the env's capability store,
// as a restarted process would.
func (e *env) newSession(t *testing.T, local core.LocalProvider) *core.Session {
	t.Helper()
	s, err := core.NewSession(core.Config{
		Local:   local,
		Sandbox: fs.NewSandboxProvider(fs.SandboxConfig{InMemory: true}),
		Store:   e.store,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return s
}

// sandboxSession returns a session already switched to an in-memory sandbox.
func sandboxSession(t *testing.T) *core.Session {
	t.Helper()
	s, err := core.NewSession(core.Config{
		Sandbox: fs.NewSandboxProvider(fs.SandboxConfig{InMemory: true}),
	})
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	if _, err := s.UseSandboxedOrigin(context.Background()); err != nil {
		t.Fatalf("UseSandboxedOrigin failed: %v", err)
	}
	return s
}

func mustWrite(t *testing.T, s *core.Session, path, content string) {
	t.Helper()
	if err := s.WriteFile(context.Background(), path, content); err != nil {
		t.Fatalf("WriteFile(%s) failed: %v", path, err)
	}
}

// brokenStore fails every call.
type brokenStore struct{}

var errBroken = errors.New("store offline")

func (brokenStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, errBroken
}
func (brokenStore) Put(ctx context.Context, key string, value []byte) error { return errBroken }
func (brokenStore) Delete(ctx context.Context, key string) error            { return errBroken }
