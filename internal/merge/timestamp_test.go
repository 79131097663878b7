package merge

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestTimestamp(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	require.NoError(t, os.WriteFile(a, nil, 0o644))
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, os.WriteFile(b, nil, 0o644))

	ta, err := fileTimestamp(a)
	require.NoError(t, err)
	tb, err := fileTimestamp(b)
	require.NoError(t, err)
	want := ta
	if tb.After(ta) {
		want = tb
	}

	got, err := LatestTimestamp([]string{a, filepath.Join(dir, "missing"), b})
	require.NoError(t, err)
	assert.True(t, want.Equal(got))
	assert.False(t, got.IsZero())
}

func TestLatestTimestamp_NoneReadable(t *testing.T) {
	_, err := LatestTimestamp([]string{filepath.Join(t.TempDir(), "missing")})
	assert.ErrorIs(t, err, ErrTimestampUnavailable)

	_, err = LatestTimestamp(nil)
	assert.ErrorIs(t, err, ErrTimestampUnavailable)
}
