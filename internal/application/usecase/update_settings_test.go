package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/driftnote/scrollkit/internal/application/usecase"
	"github.com/driftnote/scrollkit/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettingsStore struct {
	cfg     entity.Config
	saved   []entity.Config
	saveErr error
	loadErr error
	watch   func(entity.Config)
	closed  bool
}

func (f *fakeSettingsStore) Load(context.Context) (entity.Config, error) {
	if f.loadErr != nil {
		return entity.Config{}, f.loadErr
	}
	return f.cfg, nil
}

func (f *fakeSettingsStore) Save(_ context.Context, cfg entity.Config) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.cfg = cfg
	f.saved = append(f.saved, cfg)
	return nil
}

func (f *fakeSettingsStore) Watch(fn func(entity.Config)) error {
	f.watch = fn
	return nil
}

func (f *fakeSettingsStore) Close() error {
	f.closed = true
	return nil
}

func TestUpdateSettingsUseCase_SavesValidRecord(t *testing.T) {
	store := &fakeSettingsStore{cfg: entity.DefaultConfig()}
	uc := usecase.NewUpdateSettingsUseCase(store)

	next := entity.DefaultConfig()
	next.Scrollbars.ShowDelayMs = 200
	next.Scrollbars.ThumbColor = "#A1B2C3"

	saved, err := uc.Execute(testContext(), usecase.UpdateSettingsInput{Config: next})
	require.NoError(t, err)

	assert.Equal(t, next, saved)
	require.Len(t, store.saved, 1)
	assert.Equal(t, next, store.saved[0])
}

func TestUpdateSettingsUseCase_RejectsInvalidRecordWithoutSaving(t *testing.T) {
	store := &fakeSettingsStore{cfg: entity.DefaultConfig()}
	uc := usecase.NewUpdateSettingsUseCase(store)

	bad := entity.DefaultConfig()
	bad.Scrollbars.HideDelayMs = 0
	bad.Scrollbars.ThumbColor = "red"

	_, err := uc.Execute(testContext(), usecase.UpdateSettingsInput{Config: bad})
	require.Error(t, err)

	assert.Contains(t, err.Error(), "hide_delay_ms")
	assert.Contains(t, err.Error(), "thumb_color")
	assert.Empty(t, store.saved, "a rejected update must not touch the store")
}

func TestUpdateSettingsUseCase_StoreFailurePropagates(t *testing.T) {
	store := &fakeSettingsStore{saveErr: errors.New("disk full")}
	uc := usecase.NewUpdateSettingsUseCase(store)

	_, err := uc.Execute(testContext(), usecase.UpdateSettingsInput{Config: entity.DefaultConfig()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
