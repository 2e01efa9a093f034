package http_test

import (
	"context"
	"fmt"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwalczyk-dev/postrisk"
	"github.com/mwalczyk-dev/postrisk/http"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("fetches HTML", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			gotUA = r.Header.Get("User-Agent")
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			fmt.Fprint(w, "<html><body>hi</body></html>")
		}))
		defer srv.Close()

		f := http.NewFetcher()
		result, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>hi</body></html>", result.Body)
		assert.Contains(t, result.ContentType, "text/html")
		assert.Contains(t, gotUA, "Mozilla/5.0")
	})

	t.Run("fetches plain text", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.Header().Set("Content-Type", "text/plain")
			fmt.Fprint(w, "raw text")
		}))
		defer srv.Close()

		f := http.NewFetcher()
		result, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "raw text", result.Body)
	})

	t.Run("non-2xx status", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			nethttp.NotFound(w, r)
		}))
		defer srv.Close()

		f := http.NewFetcher()
		_, err := f.Fetch(context.Background(), srv.URL)
		require.Error(t, err)
		assert.Equal(t, postrisk.ETRANSPORT, postrisk.ErrorCode(err))
		assert.Contains(t, postrisk.ErrorMessage(err), "HTTP 404")
	})

	t.Run("unsupported content type", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.Header().Set("Content-Type", "image/png")
			w.Write([]byte{0x89, 0x50})
		}))
		defer srv.Close()

		f := http.NewFetcher()
		_, err := f.Fetch(context.Background(), srv.URL)
		require.Error(t, err)
		assert.Equal(t, postrisk.EUNSUPPORTED, postrisk.ErrorCode(err))
	})

	t.Run("unreachable host", func(t *testing.T) {
		t.Parallel()

		f := http.NewFetcher(http.WithTimeout(time.Second))
		_, err := f.Fetch(context.Background(), "http://127.0.0.1:1")
		require.Error(t, err)
		assert.Equal(t, postrisk.ETRANSPORT, postrisk.ErrorCode(err))
	})

	t.Run("rate limit delays the second request", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.Header().Set("Content-Type", "text/plain")
			fmt.Fprint(w, "ok")
		}))
		defer srv.Close()

		f := http.NewFetcher(http.WithRateLimit(20))

		start := time.Now()
		for i := 0; i < 3; i++ {
			_, err := f.Fetch(context.Background(), srv.URL)
			require.NoError(t, err)
		}
		// 20 req/s with burst 1 means the three calls need two 50ms refills.
		assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
	})

	t.Run("context cancellation", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		f := http.NewFetcher()
		_, err := f.Fetch(ctx, srv.URL)
		require.Error(t, err)
	})
}
