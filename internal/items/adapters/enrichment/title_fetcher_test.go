package enrichment_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notemark/internal/items/adapters/enrichment"
	"notemark/pkg/resilience"
)

func htmlServer(t *testing.T, status int, body string, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// localFetcher разрешает httptest-серверы на 127.0.0.1.
func localFetcher(opts enrichment.FetcherOptions) *enrichment.TitleFetcher {
	opts.AllowPrivateNetworks = true
	return enrichment.NewTitleFetcher(nil, opts)
}

func TestTitleFetcher_FetchTitle(t *testing.T) {
	ctx := context.Background()

	t.Run("title element", func(t *testing.T) {
		srv := htmlServer(t, http.StatusOK, "<html><head><title>\n  Effective   Go \n</title></head></html>", nil)

		title, err := localFetcher(enrichment.FetcherOptions{}).FetchTitle(ctx, srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "Effective Go", title)
	})

	t.Run("og:title fallback", func(t *testing.T) {
		srv := htmlServer(t, http.StatusOK,
			`<html><head><meta property="og:title" content="Open Graph Title"></head></html>`, nil)

		title, err := localFetcher(enrichment.FetcherOptions{}).FetchTitle(ctx, srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "Open Graph Title", title)
	})

	t.Run("no title", func(t *testing.T) {
		srv := htmlServer(t, http.StatusOK, "<html><body>hello</body></html>", nil)

		_, err := localFetcher(enrichment.FetcherOptions{}).FetchTitle(ctx, srv.URL)

		require.ErrorIs(t, err, enrichment.ErrNoTitle)
	})

	t.Run("sends user agent", func(t *testing.T) {
		var got atomic.Value
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got.Store(r.UserAgent())
			_, _ = w.Write([]byte("<title>ok</title>"))
		}))
		defer srv.Close()

		_, err := localFetcher(enrichment.FetcherOptions{UserAgent: "notemark-test"}).FetchTitle(ctx, srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "notemark-test", got.Load())
	})

	t.Run("client error is not retried", func(t *testing.T) {
		var hits atomic.Int32
		srv := htmlServer(t, http.StatusNotFound, "<title>Not Found</title>", &hits)

		_, err := localFetcher(enrichment.FetcherOptions{}).FetchTitle(ctx, srv.URL)

		require.ErrorIs(t, err, enrichment.ErrUnexpectedStatus)
		assert.Equal(t, int32(1), hits.Load())
	})

	t.Run("server error is retried once", func(t *testing.T) {
		var hits atomic.Int32
		srv := htmlServer(t, http.StatusServiceUnavailable, "", &hits)

		_, err := localFetcher(enrichment.FetcherOptions{}).FetchTitle(ctx, srv.URL)

		require.ErrorIs(t, err, enrichment.ErrUnexpectedStatus)
		assert.Equal(t, int32(2), hits.Load())
	})

	t.Run("body is limited", func(t *testing.T) {
		body := "<html><head>" + strings.Repeat(" ", 4096) + "<title>late</title></head></html>"
		srv := htmlServer(t, http.StatusOK, body, nil)

		_, err := localFetcher(enrichment.FetcherOptions{MaxBodyBytes: 512}).FetchTitle(ctx, srv.URL)

		require.ErrorIs(t, err, enrichment.ErrNoTitle)
	})

	t.Run("unsupported urls", func(t *testing.T) {
		f := localFetcher(enrichment.FetcherOptions{})
		for _, raw := range []string{"ftp://example.com/file", "not a url", "javascript:alert(1)", "https://"} {
			_, err := f.FetchTitle(ctx, raw)
			assert.ErrorIs(t, err, enrichment.ErrUnsupportedURL, raw)
		}
	})

	t.Run("timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-time.After(2 * time.Second):
			case <-r.Context().Done():
			}
		}))
		defer srv.Close()

		start := time.Now()
		_, err := localFetcher(enrichment.FetcherOptions{Timeout: 100 * time.Millisecond}).FetchTitle(ctx, srv.URL)

		require.Error(t, err)
		assert.Less(t, time.Since(start), time.Second)
	})
}

func TestTitleFetcher_BreakerOpens(t *testing.T) {
	var hits atomic.Int32
	srv := htmlServer(t, http.StatusServiceUnavailable, "", &hits)

	f := localFetcher(enrichment.FetcherOptions{
		Breaker: resilience.CircuitBreakerConfig{ErrorThreshold: 1, Timeout: time.Minute, SuccessThreshold: 1},
	})

	_, err := f.FetchTitle(context.Background(), srv.URL)
	require.ErrorIs(t, err, enrichment.ErrUnexpectedStatus)
	assert.Equal(t, resilience.StateOpen, f.Breaker(srv.URL).State())
	calls := hits.Load()

	_, err = f.FetchTitle(context.Background(), srv.URL)
	require.ErrorIs(t, err, resilience.ErrCircuitOpen)
	assert.Equal(t, calls, hits.Load())
}

func TestTitleFetcher_ClientErrorsKeepBreakerClosed(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<title>Good Page</title>"))
	})
	mux.HandleFunc("/missing", http.NotFound)
	srv := httptest.NewServer(mux)
	defer srv.Close()

	f := localFetcher(enrichment.FetcherOptions{
		Breaker: resilience.CircuitBreakerConfig{ErrorThreshold: 5, Timeout: time.Minute, SuccessThreshold: 1},
	})
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, err := f.FetchTitle(ctx, srv.URL+"/missing")
		require.ErrorIs(t, err, enrichment.ErrUnexpectedStatus)
	}
	assert.Equal(t, resilience.StateClosed, f.Breaker(srv.URL).State())

	title, err := f.FetchTitle(ctx, srv.URL+"/ok")
	require.NoError(t, err)
	assert.Equal(t, "Good Page", title)
}

func TestTitleFetcher_BreakerIsPerHost(t *testing.T) {
	down := htmlServer(t, http.StatusBadGateway, "", nil)
	up := htmlServer(t, http.StatusOK, "<title>Still Here</title>", nil)

	f := localFetcher(enrichment.FetcherOptions{
		Breaker: resilience.CircuitBreakerConfig{ErrorThreshold: 1, Timeout: time.Minute, SuccessThreshold: 1},
	})
	ctx := context.Background()

	_, err := f.FetchTitle(ctx, down.URL)
	require.Error(t, err)
	require.Equal(t, resilience.StateOpen, f.Breaker(down.URL).State())

	title, err := f.FetchTitle(ctx, up.URL)
	require.NoError(t, err)
	assert.Equal(t, "Still Here", title)
	assert.Equal(t, resilience.StateClosed, f.Breaker(up.URL).State())
}

func TestTitleFetcher_RejectsInternalAddresses(t *testing.T) {
	var hits atomic.Int32
	srv := htmlServer(t, http.StatusOK, "<title>internal</title>", &hits)

	f := enrichment.NewTitleFetcher(nil, enrichment.FetcherOptions{
		Breaker: resilience.CircuitBreakerConfig{ErrorThreshold: 1, Timeout: time.Minute, SuccessThreshold: 1},
	})
	ctx := context.Background()

	for _, raw := range []string{srv.URL, "http://[::1]:1/", "http://169.254.169.254/latest/meta-data/", "http://10.0.0.1/"} {
		_, err := f.FetchTitle(ctx, raw)
		assert.ErrorIs(t, err, enrichment.ErrBlockedAddress, raw)
	}
	assert.Zero(t, hits.Load())
	assert.Equal(t, resilience.StateClosed, f.Breaker(srv.URL).State())
}
