package history

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileIsEmptyNotError(t *testing.T) {
	l := NewLedger(filepath.Join(t.TempDir(), "does-not-exist.txt"))

	titles, err := l.Load()
	require.NoError(t, err)
	assert.Empty(t, titles)
}

func TestAppendThenLoad_PreservesInsertionOrder(t *testing.T) {
	l := NewLedger(filepath.Join(t.TempDir(), "titles.txt"))

	require.NoError(t, l.Append("First Post"))
	require.NoError(t, l.Append("Second Post"))
	require.NoError(t, l.Append("Third Post"))

	titles, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"First Post", "Second Post", "Third Post"}, titles)
}

func TestLoad_SkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "titles.txt")
	require.NoError(t, os.WriteFile(path, []byte("One\n\n  \nTwo\n"), 0o644))

	titles, err := NewLedger(path).Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"One", "Two"}, titles)
}

func TestAppend_IsGrowthOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "titles.txt")
	l := NewLedger(path)

	require.NoError(t, l.Append("Kept Forever"))
	require.NoError(t, l.Append("Also Kept"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Kept Forever\nAlso Kept\n", string(data))
}
