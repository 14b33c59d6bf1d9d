package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseEventOffsets(t *testing.T) {
	events, err := parseEventOffsets("0, 700,1500")
	require.NoError(t, err)
	require.Equal(t, []time.Duration{0, 700 * time.Millisecond, 1500 * time.Millisecond}, events)
}

func TestParseEventOffsets_SkipsEmptyParts(t *testing.T) {
	events, err := parseEventOffsets("0,,700,")
	require.NoError(t, err)
	require.Len(t, events, 2)
}

func TestParseEventOffsets_RejectsGarbage(t *testing.T) {
	_, err := parseEventOffsets("0,soon")
	require.Error(t, err)
	require.Contains(t, err.Error(), "soon")
}

func TestParseEventOffsets_RejectsNegative(t *testing.T) {
	_, err := parseEventOffsets("-5")
	require.Error(t, err)
	require.Contains(t, err.Error(), "negative")
}
