package platform_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notestore/internal/platform"
	"github.com/aretw0/notestore/internal/prompt"
	"github.com/aretw0/notestore/pkg/adapters/memory"
	"github.com/aretw0/notestore/pkg/config"
	"github.com/aretw0/notestore/pkg/core"
)

func TestNew_Defaults(t *testing.T) {
	ctx := context.Background()
	inst, err := platform.New(ctx)
	require.NoError(t, err)
	defer inst.Close()

	caps := inst.DetectCapabilities()
	assert.False(t, caps.LocalDirectoryAvailable, "no picker means no local backend")
	assert.True(t, caps.SandboxedOriginAvailable)
	assert.Equal(t, core.BackendNone, inst.ActiveBackend())

	name, err := inst.UseSandboxedOrigin(ctx)
	require.NoError(t, err)
	assert.Equal(t, core.SandboxName, name)
}

func TestNew_CapabilitySurvivesRestart(t *testing.T) {
	ctx := context.Background()
	notesDir := t.TempDir()
	dbDir := filepath.Join(t.TempDir(), "capabilities")

	opts := []platform.Option{
		platform.WithPicker(prompt.Fixed(notesDir)),
		platform.WithBadgerStore(dbDir),
	}

	first, err := platform.New(ctx, opts...)
	require.NoError(t, err)

	name, err := first.PickDirectory(ctx)
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(notesDir), name)
	require.NoError(t, first.WriteFile(ctx, "notes/hello.md", "# hi"))
	require.NoError(t, first.Close())

	t.Run("Declined Prompt Stays Disconnected", func(t *testing.T) {
		s, err := platform.New(ctx, append(opts, platform.WithPrompter(prompt.Answer(false)))...)
		require.NoError(t, err)
		defer s.Close()

		_, ok, err := s.Reconnect(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, core.BackendNone, s.ActiveBackend())
	})

	t.Run("Auto Grant Reconnects", func(t *testing.T) {
		s, err := platform.New(ctx, append(opts, platform.WithAutoGrant(true))...)
		require.NoError(t, err)
		defer s.Close()

		name, ok, err := s.Reconnect(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, filepath.Base(notesDir), name)

		content, err := s.ReadFile(ctx, "notes/hello.md")
		require.NoError(t, err)
		assert.Equal(t, "# hi", content)

		require.NoError(t, s.Disconnect(ctx))
	})

	t.Run("Nothing Left After Disconnect", func(t *testing.T) {
		s, err := platform.New(ctx, append(opts, platform.WithAutoGrant(true))...)
		require.NoError(t, err)
		defer s.Close()

		_, ok, err := s.Reconnect(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestNew_WithConfig(t *testing.T) {
	ctx := context.Background()
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	cfg := config.Default()
	cfg.Storage.CapabilityStore = "memory"
	cfg.Storage.SandboxDir = filepath.Join(t.TempDir(), "origin")
	cfg.Storage.ReadConcurrency = 2

	store := memory.NewStore()
	inst, err := platform.New(ctx,
		platform.WithConfig(cfg),
		platform.WithCapabilityStore(store),
		platform.WithPicker(prompt.Fixed(t.TempDir())),
	)
	require.NoError(t, err)
	defer inst.Close()

	_, err = inst.PickDirectory(ctx)
	require.NoError(t, err)

	_, found, err := store.Get(ctx, core.DefaultCapabilityKey)
	require.NoError(t, err)
	assert.True(t, found, "injected store receives the capability")

	state, ok := inst.State().(core.SessionState)
	require.True(t, ok)
	assert.Equal(t, 2, state.ReadConcurrency)
}

func TestNew_UnknownStore(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.CapabilityStore = "etcd"
	_, err := platform.New(context.Background(), platform.WithConfig(cfg))
	assert.Error(t, err)
}
