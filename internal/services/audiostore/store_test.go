package audiostore

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesystemStore(t *testing.T) {
	store, err := NewFilesystemStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("save and open round trip", func(t *testing.T) {
		path, err := store.Save(ctx, 1, "rec-abc.webm", strings.NewReader("audio-bytes"))
		require.NoError(t, err)
		assert.Contains(t, path, "rec-abc.webm")

		exists, err := store.Exists(ctx, path)
		require.NoError(t, err)
		assert.True(t, exists)

		reader, err := store.Open(ctx, path)
		require.NoError(t, err)
		defer reader.Close()

		data, err := io.ReadAll(reader)
		require.NoError(t, err)
		assert.Equal(t, "audio-bytes", string(data))
	})

	t.Run("rejects unsupported extension", func(t *testing.T) {
		_, err := store.Save(ctx, 1, "malware.exe", strings.NewReader("nope"))
		assert.Error(t, err)
	})

	t.Run("strips directory traversal from filename", func(t *testing.T) {
		path, err := store.Save(ctx, 2, "../../escape.mp3", strings.NewReader("audio"))
		require.NoError(t, err)
		assert.NotContains(t, path, "..")
	})

	t.Run("delete all removes every recording", func(t *testing.T) {
		first, err := store.Save(ctx, 4, "take-1.webm", strings.NewReader("audio"))
		require.NoError(t, err)
		second, err := store.Save(ctx, 4, "take-2.webm", strings.NewReader("audio"))
		require.NoError(t, err)

		require.NoError(t, store.DeleteAll(ctx, 4))

		for _, path := range []string{first, second} {
			exists, err := store.Exists(ctx, path)
			require.NoError(t, err)
			assert.False(t, exists)
		}
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		path, err := store.Save(ctx, 3, "gone.wav", strings.NewReader("audio"))
		require.NoError(t, err)

		require.NoError(t, store.Delete(ctx, path))
		require.NoError(t, store.Delete(ctx, path))

		exists, err := store.Exists(ctx, path)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestAllowedExtension(t *testing.T) {
	assert.True(t, AllowedExtension("talk.WEBM"))
	assert.True(t, AllowedExtension("talk.mp3"))
	assert.False(t, AllowedExtension("talk.pdf"))
	assert.False(t, AllowedExtension("talk"))
}
