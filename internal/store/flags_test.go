package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoolMissingReadsFalse(t *testing.T) {
	s := OpenFlags(t.TempDir())
	v, err := s.Bool("never_written")
	require.NoError(t, err)
	require.False(t, v)
}

func TestBoolRoundTrip(t *testing.T) {
	s := OpenFlags(t.TempDir())
	require.NoError(t, s.SetBool(FirstRunCompleted, true))

	v, err := s.Bool(FirstRunCompleted)
	require.NoError(t, err)
	require.True(t, v)
}

func TestBoolSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, OpenFlags(dir).SetBool(FirstRunCompleted, true))

	v, err := OpenFlags(dir).Bool(FirstRunCompleted)
	require.NoError(t, err)
	require.True(t, v)
}

func TestIntRoundTrip(t *testing.T) {
	s := OpenFlags(t.TempDir())
	require.NoError(t, s.SetInt("sessions", 7))

	v, err := s.Int("sessions")
	require.NoError(t, err)
	require.Equal(t, 7, v)
}

func TestIntMissingReadsZero(t *testing.T) {
	s := OpenFlags(t.TempDir())
	v, err := s.Int("never_written")
	require.NoError(t, err)
	require.Zero(t, v)
}
