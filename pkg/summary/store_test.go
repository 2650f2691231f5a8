package summary_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langkit/pkg/summary"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("put and get", func(t *testing.T) {
		t.Parallel()

		s := summary.NewMemoryStore()
		rec := summary.Record{
			ID:        "rec-1",
			Lang:      "zh-tw",
			Title:     "Taiwan",
			Extract:   "An island.",
			FetchedAt: time.Now().UTC(),
		}
		require.NoError(t, s.Put(ctx, rec))

		got, err := s.Get(ctx, "zh-tw", "Taiwan")
		require.NoError(t, err)
		require.Equal(t, rec, got)
	})

	t.Run("missing record", func(t *testing.T) {
		t.Parallel()

		s := summary.NewMemoryStore()
		_, err := s.Get(ctx, "en", "Nowhere")
		require.ErrorIs(t, err, summary.ErrNotFound)
	})

	t.Run("languages are separate keys", func(t *testing.T) {
		t.Parallel()

		s := summary.NewMemoryStore()
		require.NoError(t, s.Put(ctx, summary.Record{Lang: "zh-tw", Title: "Taiwan"}))

		_, err := s.Get(ctx, "zh-hant", "Taiwan")
		require.ErrorIs(t, err, summary.ErrNotFound)
	})

	t.Run("closed store rejects operations", func(t *testing.T) {
		t.Parallel()

		s := summary.NewMemoryStore()
		require.NoError(t, s.Close())
		require.NoError(t, s.Close())

		_, err := s.Get(ctx, "en", "Go")
		require.ErrorIs(t, err, summary.ErrClosed)
		require.ErrorIs(t, s.Put(ctx, summary.Record{Lang: "en", Title: "Go"}), summary.ErrClosed)
	})
}
