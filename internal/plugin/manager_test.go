package plugin_test

import (
	"context"
	"errors"
	"testing"

	"github.com/driftnote/scrollkit/internal/application/port"
	"github.com/driftnote/scrollkit/internal/domain/entity"
	"github.com/driftnote/scrollkit/internal/infrastructure/sched"
	"github.com/driftnote/scrollkit/internal/logging"
	"github.com/driftnote/scrollkit/internal/plugin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type fakePlugin struct {
	name        string
	activations int
	deactivates int
	configs     []entity.Config
	activateErr error
}

func (f *fakePlugin) Name() string { return f.name }

func (f *fakePlugin) Activate(_ context.Context, _ plugin.Host) error {
	if f.activateErr != nil {
		return f.activateErr
	}
	f.activations++
	return nil
}

func (f *fakePlugin) Deactivate(context.Context) error {
	f.deactivates++
	return nil
}

func (f *fakePlugin) OnConfigChange(_ context.Context, cfg entity.Config) error {
	f.configs = append(f.configs, cfg)
	return nil
}

func testHost() plugin.Host {
	return plugin.NewStaticHost(
		entity.DefaultConfig(),
		sched.New(),
		port.StaticContainers(),
		plugin.StaticSinks(),
	)
}

func TestManager_ActivateAllActivatesInOrderOnce(t *testing.T) {
	m := plugin.NewManager(testHost())
	a := &fakePlugin{name: "a"}
	b := &fakePlugin{name: "b"}
	require.NoError(t, m.Register(a))
	require.NoError(t, m.Register(b))

	require.NoError(t, m.ActivateAll(testContext()))
	require.NoError(t, m.ActivateAll(testContext()))

	assert.Equal(t, 1, a.activations, "second ActivateAll must not reactivate")
	assert.Equal(t, 1, b.activations)
	assert.True(t, m.Active("a"))
	assert.True(t, m.Active("b"))
}

func TestManager_RegisterRejectsDuplicateNames(t *testing.T) {
	m := plugin.NewManager(testHost())
	require.NoError(t, m.Register(&fakePlugin{name: "a"}))

	err := m.Register(&fakePlugin{name: "a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestManager_ActivationFailureDoesNotStopOthers(t *testing.T) {
	m := plugin.NewManager(testHost())
	broken := &fakePlugin{name: "broken", activateErr: errors.New("no display")}
	healthy := &fakePlugin{name: "healthy"}
	require.NoError(t, m.Register(broken))
	require.NoError(t, m.Register(healthy))

	err := m.ActivateAll(testContext())
	require.Error(t, err)

	assert.False(t, m.Active("broken"))
	assert.True(t, m.Active("healthy"))
	assert.Equal(t, 1, healthy.activations)
}

func TestManager_DeactivateAllOnlyTouchesActivePlugins(t *testing.T) {
	m := plugin.NewManager(testHost())
	a := &fakePlugin{name: "a"}
	require.NoError(t, m.Register(a))

	require.NoError(t, m.ActivateAll(testContext()))
	require.NoError(t, m.DeactivateAll(testContext()))
	require.NoError(t, m.DeactivateAll(testContext()))

	assert.Equal(t, 1, a.deactivates, "second DeactivateAll must be a no-op")
	assert.False(t, m.Active("a"))
}

func TestManager_OnConfigChangeReachesOnlyActivePlugins(t *testing.T) {
	m := plugin.NewManager(testHost())
	active := &fakePlugin{name: "active"}
	dormant := &fakePlugin{name: "dormant", activateErr: errors.New("nope")}
	require.NoError(t, m.Register(active))
	require.NoError(t, m.Register(dormant))
	_ = m.ActivateAll(testContext())

	cfg := entity.DefaultConfig()
	cfg.Scrollbars.HideDelayMs = 1200
	require.NoError(t, m.OnConfigChange(testContext(), cfg))

	require.Len(t, active.configs, 1)
	assert.Equal(t, 1200, active.configs[0].Scrollbars.HideDelayMs)
	assert.Empty(t, dormant.configs)
}
