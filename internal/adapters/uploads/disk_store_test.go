package uploads_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/degroeneboom/school_site_app/internal/adapters/uploads"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStore_SaveReturnsReference(t *testing.T) {
	dir := t.TempDir()
	store := uploads.NewDiskStore(dir, "/uploads/")

	ref, err := store.Save(context.Background(), "Schoolreglement 2026.PDF", strings.NewReader("inhoud"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ref, "/uploads/"), "reference %q", ref)
	assert.True(t, strings.HasSuffix(ref, ".pdf"), "reference %q", ref)
	assert.Contains(t, ref, "schoolreglement-2026")

	data, err := os.ReadFile(filepath.Join(dir, filepath.Base(ref)))
	require.NoError(t, err)
	assert.Equal(t, "inhoud", string(data))
}

func TestDiskStore_SanitizesHostileFilename(t *testing.T) {
	dir := t.TempDir()
	store := uploads.NewDiskStore(dir, "/uploads")

	ref, err := store.Save(context.Background(), "../../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)

	// The stored file stays inside the upload directory.
	assert.NotContains(t, ref, "..")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestDiskStore_EmptyStemFallsBack(t *testing.T) {
	store := uploads.NewDiskStore(t.TempDir(), "/uploads")

	ref, err := store.Save(context.Background(), "???", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Contains(t, ref, "upload")
}
