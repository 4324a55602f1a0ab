package ddog

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/castai/logging"
	"github.com/stretchr/testify/require"
)

func TestClient(t *testing.T) {
	handler := logging.NewTextHandler(logging.TextHandlerConfig{
		Level: slog.LevelDebug,
	})
	logger := logging.New(handler)

	ctx := context.Background()

	t.Run("fails if no api key", func(t *testing.T) {
		_, err := NewClient(Config{}, logger)
		require.Error(t, err)
		require.Contains(t, err.Error(), "api key is required")
	})

	t.Run("succeeds with valid config", func(t *testing.T) {
		_, err := NewClient(Config{APIKey: "key"}, logger)
		require.NoError(t, err)
	})

	t.Run("executes a route", func(t *testing.T) {
		var gotMethod, gotPath, gotBody string
		var gotHeader http.Header

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			gotHeader = r.Header.Clone()

			buf, _ := io.ReadAll(r.Body)
			gotBody = string(buf)

			w.WriteHeader(http.StatusAccepted)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		}))
		defer srv.Close()

		client, err := NewClient(Config{
			BaseURL:        srv.URL,
			APIKey:         "key",
			ApplicationKey: "app-key",
		}, logger)
		require.NoError(t, err)

		builder := NewBuilder().
			V2().
			WithHeaders(Header{Name: HeaderAccept, Value: "application/json"})

		route, err := builder.CreateTagConfig("my.metric")
		require.NoError(t, err)

		status, body, err := client.Do(ctx, route, builder.Headers()...)
		require.NoError(t, err)
		require.Equal(t, http.StatusAccepted, status)
		require.Equal(t, `{"status":"ok"}`, string(body))

		require.Equal(t, http.MethodPost, gotMethod)
		require.Equal(t, "/api/v2/metrics/my.metric/tags", gotPath)
		require.JSONEq(t, `{
			"data": {
				"type": "manage_tags",
				"id": "my.metric",
				"attributes": {"tags": []}
			}
		}`, gotBody)

		require.Equal(t, "key", gotHeader.Get(HeaderAPIKey))
		require.Equal(t, "app-key", gotHeader.Get(HeaderApplicationKey))
		require.Equal(t, "application/json", gotHeader.Get(HeaderAccept))
		require.Equal(t, "application/json", gotHeader.Get(HeaderContentType))
		require.NotEmpty(t, gotHeader.Get(HeaderRequestID))
	})

	t.Run("passes duplicate headers through", func(t *testing.T) {
		var gotValues []string

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotValues = r.Header.Values("X-Custom")
		}))
		defer srv.Close()

		client, err := NewClient(Config{BaseURL: srv.URL, APIKey: "key"}, logger)
		require.NoError(t, err)

		route, err := NewBuilder().V2().GetMetrics(0, "", "")
		require.NoError(t, err)

		_, _, err = client.Do(ctx, route,
			Header{Name: "X-Custom", Value: "1"},
			Header{Name: "X-Custom", Value: "3"},
		)
		require.NoError(t, err)
		require.Equal(t, []string{"1", "3"}, gotValues)
	})

	t.Run("forwards listing query parameters", func(t *testing.T) {
		var gotQuery string

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			_, _ = w.Write([]byte(`{"metrics":[]}`))
		}))
		defer srv.Close()

		client, err := NewClient(Config{BaseURL: srv.URL, APIKey: "key"}, logger)
		require.NoError(t, err)

		route, err := NewBuilder().V2().GetMetrics(10, "", "env:prod")
		require.NoError(t, err)

		status, _, err := client.Do(ctx, route)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "from=10&tag_filter=env%3Aprod", gotQuery)
	})

	t.Run("returns api errors without retrying", func(t *testing.T) {
		var calls atomic.Int32

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"errors":["Forbidden"]}`))
		}))
		defer srv.Close()

		client, err := NewClient(Config{BaseURL: srv.URL, APIKey: "key"}, logger)
		require.NoError(t, err)

		route, err := NewBuilder().V2().PostSeries()
		require.NoError(t, err)

		status, body, err := client.Do(ctx, route)
		require.NoError(t, err)
		require.Equal(t, http.StatusForbidden, status)
		require.Contains(t, string(body), "Forbidden")
		require.Equal(t, int32(1), calls.Load())
	})

	t.Run("retries server errors", func(t *testing.T) {
		var calls atomic.Int32

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		client, err := NewClient(Config{BaseURL: srv.URL, APIKey: "key"}, logger)
		require.NoError(t, err)

		route, err := NewBuilder().V2().PostSeries()
		require.NoError(t, err)

		status, _, err := client.Do(ctx, route)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, int32(2), calls.Load())
	})

	t.Run("gives up when the retry window elapses", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client, err := NewClient(Config{
			BaseURL:         srv.URL,
			APIKey:          "key",
			MaxRetryTimeout: 200 * time.Millisecond,
		}, logger)
		require.NoError(t, err)

		route, err := NewBuilder().V2().PostSeries()
		require.NoError(t, err)

		status, _, err := client.Do(ctx, route)
		require.Error(t, err)
		require.Equal(t, http.StatusInternalServerError, status)
	})
}
