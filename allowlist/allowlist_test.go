package allowlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileIsEmpty(t *testing.T) {
	l, err := Load(filepath.Join(t.TempDir(), Filename))
	require.NoError(t, err)
	assert.Equal(t, 0, l.Len())
}

func TestLoadSkipsCommentsAndBlanks(t *testing.T) {
	path := filepath.Join(t.TempDir(), Filename)
	require.NoError(t, os.WriteFile(path, []byte(`# header
registry.example.com/ns/app:v1

  quay.io/acme/tool:2.0
`), 0o644))
	l, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, l.Len())
	assert.True(t, l.Contains("registry.example.com/ns/app:v1"))
	assert.True(t, l.Contains("quay.io/acme/tool:2.0"))
	assert.False(t, l.Contains("# header"))
}

func TestAddDeduplicates(t *testing.T) {
	l := New()
	assert.True(t, l.Add("acme/app:v1"))
	assert.False(t, l.Add("acme/app:v1"))
	assert.False(t, l.Add("  acme/app:v1  "))
	assert.False(t, l.Add(""))
	assert.Equal(t, 1, l.Len())
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), Filename)
	l := New()
	l.Add("zeta/app:v1")
	l.Add("acme/app:v1")
	require.NoError(t, l.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	// sorted, comment header preserved
	assert.Equal(t, "# approved image references, managed by imagegate\nacme/app:v1\nzeta/app:v1\n", string(data))

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, l.Entries(), reloaded.Entries())
}
