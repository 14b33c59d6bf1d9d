package tabwidth_test

import (
	"context"
	"testing"

	"github.com/driftnote/scrollkit/internal/application/port"
	"github.com/driftnote/scrollkit/internal/domain/entity"
	"github.com/driftnote/scrollkit/internal/infrastructure/sched"
	"github.com/driftnote/scrollkit/internal/logging"
	"github.com/driftnote/scrollkit/internal/plugin"
	"github.com/driftnote/scrollkit/internal/plugins/tabwidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type fakeStyleSink struct {
	applied []string
	clears  int
}

func (f *fakeStyleSink) ApplyVariables(_ context.Context, css string) error {
	f.applied = append(f.applied, css)
	return nil
}

func (f *fakeStyleSink) Clear(context.Context) error {
	f.clears++
	return nil
}

func newHost(cfg entity.Config, sink *fakeStyleSink) plugin.Host {
	return plugin.NewStaticHost(cfg, sched.New(), port.StaticContainers(), plugin.StaticSinks(sink))
}

func TestPlugin_ActivateAppliesWidthVariable(t *testing.T) {
	cfg := entity.DefaultConfig()
	cfg.Tabs.HeaderWidth = 140
	sink := &fakeStyleSink{}
	p := tabwidth.New()

	require.NoError(t, p.Activate(testContext(), newHost(cfg, sink)))

	require.Len(t, sink.applied, 1)
	assert.Contains(t, sink.applied[0], "--scrollkit-tab-width: 140px")
}

func TestPlugin_ActivateWithHostDefaultWidthClears(t *testing.T) {
	sink := &fakeStyleSink{}
	p := tabwidth.New()

	require.NoError(t, p.Activate(testContext(), newHost(entity.DefaultConfig(), sink)))

	assert.Empty(t, sink.applied)
	assert.Equal(t, 1, sink.clears)
}

func TestPlugin_OnConfigChangeReappliesVariable(t *testing.T) {
	sink := &fakeStyleSink{}
	p := tabwidth.New()
	require.NoError(t, p.Activate(testContext(), newHost(entity.DefaultConfig(), sink)))

	cfg := entity.DefaultConfig()
	cfg.Tabs.HeaderWidth = 200
	require.NoError(t, p.OnConfigChange(testContext(), cfg))

	require.Len(t, sink.applied, 1)
	assert.Contains(t, sink.applied[0], "200px")
}

func TestPlugin_DeactivateClearsOnce(t *testing.T) {
	cfg := entity.DefaultConfig()
	cfg.Tabs.HeaderWidth = 140
	sink := &fakeStyleSink{}
	p := tabwidth.New()
	require.NoError(t, p.Activate(testContext(), newHost(cfg, sink)))

	require.NoError(t, p.Deactivate(testContext()))
	require.NoError(t, p.Deactivate(testContext()))

	assert.Equal(t, 1, sink.clears)
}

func TestPlugin_OnConfigChangeWhileInactiveIsNoOp(t *testing.T) {
	sink := &fakeStyleSink{}
	p := tabwidth.New()

	cfg := entity.DefaultConfig()
	cfg.Tabs.HeaderWidth = 99
	require.NoError(t, p.OnConfigChange(testContext(), cfg))

	assert.Empty(t, sink.applied)
	assert.Equal(t, 0, sink.clears)
}
