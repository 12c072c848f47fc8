package invoices

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachmentStore_Save(t *testing.T) {
	store := NewAttachmentStore(t.TempDir())

	path, err := store.Save("P1", "INV-001", "scan.pdf", strings.NewReader("content"))
	require.NoError(t, err)

	assert.Equal(t, "P1", filepath.Base(filepath.Dir(path)))
	name := filepath.Base(path)
	assert.True(t, strings.HasPrefix(name, "INV_INV-001_"))
	assert.True(t, strings.HasSuffix(name, ".pdf"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestAttachmentStore_BlankProjectGoesToGeneral(t *testing.T) {
	store := NewAttachmentStore(t.TempDir())

	path, err := store.Save("", "INV-002", "scan.jpg", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "GENERAL", filepath.Base(filepath.Dir(path)))
}

func TestAttachmentStore_SanitizesHostileNames(t *testing.T) {
	base := t.TempDir()
	store := NewAttachmentStore(base)

	path, err := store.Save("../evil", "INV/../003", "a.pdf", strings.NewReader("x"))
	require.NoError(t, err)

	rel, err := filepath.Rel(base, path)
	require.NoError(t, err)
	assert.False(t, strings.HasPrefix(rel, ".."))
	assert.NotContains(t, filepath.Base(path), "/")
}

func TestAttachmentStore_UniqueNames(t *testing.T) {
	store := NewAttachmentStore(t.TempDir())

	p1, err := store.Save("P1", "INV-004", "a.pdf", strings.NewReader("x"))
	require.NoError(t, err)
	p2, err := store.Save("P1", "INV-004", "a.pdf", strings.NewReader("y"))
	require.NoError(t, err)
	assert.NotEqual(t, p1, p2)
}
