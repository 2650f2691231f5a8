package summary_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langkit/pkg/summary"
)

func TestClientFetch(t *testing.T) {
	t.Parallel()

	var gotPath, gotAcceptLang string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAcceptLang = r.Header.Get("Accept-Language")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"title": "Taiwan",
			"lang": "zh-tw",
			"extract_html": "<p><b>Taiwan</b> is an island &amp; a country.</p><script>evil()</script>"
		}`))
	}))
	defer srv.Close()

	client := summary.NewClient(srv.URL,
		summary.WithAcceptLanguage("zh-tw, en;q=0.5"),
	)

	got, err := client.Fetch(context.Background(), "zh-tw", "Taiwan")
	require.NoError(t, err)
	require.Equal(t, "/zh-tw/page/summary/Taiwan", gotPath)
	require.Equal(t, "zh-tw, en;q=0.5", gotAcceptLang)
	require.Equal(t, "Taiwan", got.Title)
	require.Equal(t, "zh-tw", got.Lang)
	require.Equal(t, "Taiwan is an island & a country.", got.Extract)
	require.Empty(t, got.ExtractHTML)
}

func TestClientFetchErrors(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/en/page/summary/Missing":
			w.WriteHeader(http.StatusNotFound)
		case "/en/page/summary/Broken":
			_, _ = w.Write([]byte("{not json"))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	client := summary.NewClient(srv.URL)
	ctx := context.Background()

	_, err := client.Fetch(ctx, "", "Taiwan")
	require.ErrorIs(t, err, summary.ErrEmptyLang)

	_, err = client.Fetch(ctx, "en", "")
	require.ErrorIs(t, err, summary.ErrEmptyTitle)

	_, err = client.Fetch(ctx, "en", "Missing")
	require.ErrorIs(t, err, summary.ErrNotFound)

	_, err = client.Fetch(ctx, "en", "Broken")
	require.ErrorIs(t, err, summary.ErrDecodeFailed)

	_, err = client.Fetch(ctx, "en", "Boom")
	require.ErrorIs(t, err, summary.ErrUnexpectedStatus)
}

func TestClientFetchCollapsesConcurrentRequests(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		time.Sleep(100 * time.Millisecond)
		_, _ = w.Write([]byte(`{"title": "Go", "extract": "A language."}`))
	}))
	defer srv.Close()

	client := summary.NewClient(srv.URL)

	const workers = 5
	results := make([]summary.Summary, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = client.Fetch(context.Background(), "en", "Go")
		}()
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		require.Equal(t, "A language.", results[i].Extract)
	}
	require.Equal(t, int32(1), hits.Load())
}
