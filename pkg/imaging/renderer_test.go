package imaging_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/socialkit/pkg/imaging"
)

func TestFileRenderer(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fsys := fstest.MapFS{
		"cat.jpg": {Data: []byte("jpeg bytes")},
	}

	t.Run("renders an existing image", func(t *testing.T) {
		t.Parallel()

		r, err := imaging.NewFileRenderer(fsys, 8)
		require.NoError(t, err)

		require.NoError(t, r.Render(ctx, "cat.jpg"))
		assert.Equal(t, 1, r.CacheLen())
	})

	t.Run("missing image", func(t *testing.T) {
		t.Parallel()

		r, err := imaging.NewFileRenderer(fsys, 8)
		require.NoError(t, err)

		require.ErrorIs(t, r.Render(ctx, "dog.jpg"), imaging.ErrImageNotFound)
		assert.Zero(t, r.CacheLen())
	})

	t.Run("repeated render hits the cache", func(t *testing.T) {
		t.Parallel()

		r, err := imaging.NewFileRenderer(fsys, 8)
		require.NoError(t, err)

		require.NoError(t, r.Render(ctx, "cat.jpg"))
		require.NoError(t, r.Render(ctx, "cat.jpg"))
		assert.Equal(t, 1, r.CacheLen())
	})

	t.Run("cache is bounded", func(t *testing.T) {
		t.Parallel()

		many := fstest.MapFS{
			"a.jpg": {Data: []byte("a")},
			"b.jpg": {Data: []byte("b")},
			"c.jpg": {Data: []byte("c")},
		}
		r, err := imaging.NewFileRenderer(many, 2)
		require.NoError(t, err)

		require.NoError(t, r.Render(ctx, "a.jpg"))
		require.NoError(t, r.Render(ctx, "b.jpg"))
		require.NoError(t, r.Render(ctx, "c.jpg"))
		assert.Equal(t, 2, r.CacheLen())
	})
}
