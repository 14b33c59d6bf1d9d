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

type fakeStyleSink struct {
	applied  []string
	clears   int
	applyErr error
	clearErr error
}

func (f *fakeStyleSink) ApplyVariables(_ context.Context, css string) error {
	if f.applyErr != nil {
		return f.applyErr
	}
	f.applied = append(f.applied, css)
	return nil
}

func (f *fakeStyleSink) Clear(context.Context) error {
	if f.clearErr != nil {
		return f.clearErr
	}
	f.clears++
	return nil
}

func TestGenerateScrollbarCSSVars(t *testing.T) {
	tests := []struct {
		name     string
		settings entity.ScrollbarSettings
		want     string
	}{
		{
			name:     "nothing set",
			settings: entity.DefaultScrollbarSettings(),
			want:     "",
		},
		{
			name:     "color only",
			settings: entity.ScrollbarSettings{HideDelayMs: 750, ThumbColor: "#A1B2C3"},
			want:     ":root {\n  --scrollkit-thumb-color: #A1B2C3;\n}\n",
		},
		{
			name:     "width only",
			settings: entity.ScrollbarSettings{HideDelayMs: 750, ThumbWidth: 12},
			want:     ":root {\n  --scrollkit-thumb-width: 12px;\n}\n",
		},
		{
			name:     "both set",
			settings: entity.ScrollbarSettings{HideDelayMs: 750, ThumbColor: "#fff", ThumbWidth: 8},
			want:     ":root {\n  --scrollkit-thumb-color: #fff;\n  --scrollkit-thumb-width: 8px;\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, usecase.GenerateScrollbarCSSVars(tt.settings))
		})
	}
}

func TestGenerateTabCSSVars(t *testing.T) {
	assert.Equal(t, "", usecase.GenerateTabCSSVars(entity.TabSettings{}))
	assert.Equal(t,
		":root {\n  --scrollkit-tab-width: 140px;\n}\n",
		usecase.GenerateTabCSSVars(entity.TabSettings{HeaderWidth: 140}))
}

func TestApplyStylesUseCase_FansOutToAllSinks(t *testing.T) {
	a := &fakeStyleSink{}
	b := &fakeStyleSink{}
	uc := usecase.NewApplyStylesUseCase(a, b)

	err := uc.Execute(testContext(), usecase.ApplyStylesInput{CSS: ":root { --x: 1; }"})
	require.NoError(t, err)

	assert.Equal(t, []string{":root { --x: 1; }"}, a.applied)
	assert.Equal(t, []string{":root { --x: 1; }"}, b.applied)
}

func TestApplyStylesUseCase_EmptyBlockClears(t *testing.T) {
	sink := &fakeStyleSink{}
	uc := usecase.NewApplyStylesUseCase(sink)

	require.NoError(t, uc.Execute(testContext(), usecase.ApplyStylesInput{}))

	assert.Empty(t, sink.applied)
	assert.Equal(t, 1, sink.clears)
}

func TestApplyStylesUseCase_SinkFailureDoesNotStopOthers(t *testing.T) {
	broken := &fakeStyleSink{applyErr: errors.New("display gone")}
	healthy := &fakeStyleSink{}
	uc := usecase.NewApplyStylesUseCase(broken, healthy)

	err := uc.Execute(testContext(), usecase.ApplyStylesInput{CSS: ":root {}"})
	require.Error(t, err)

	assert.Len(t, healthy.applied, 1)
}

func TestApplyStylesUseCase_ClearAggregatesErrors(t *testing.T) {
	broken := &fakeStyleSink{clearErr: errors.New("already detached")}
	healthy := &fakeStyleSink{}
	uc := usecase.NewApplyStylesUseCase(broken, healthy)

	err := uc.Clear(testContext())
	require.Error(t, err)

	assert.Equal(t, 1, healthy.clears)
}
