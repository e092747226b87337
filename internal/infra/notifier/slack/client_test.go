package slack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/superfluid-finance/web3-hooks/internal/format"
	transporthttp "github.com/superfluid-finance/web3-hooks/internal/pkg/transport/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestClient_Send(t *testing.T) {
	msg := format.Message{
		Text:   "Upgrade Token Event",
		Blocks: []format.Block{format.Section("*Block Number:* `42`")},
	}

	t.Run("posts text and blocks", func(t *testing.T) {
		var got format.Message
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			_, _ = w.Write([]byte("ok"))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, WithRate(rate.Inf, 1))
		require.NoError(t, c.Send(t.Context(), msg))
		assert.Equal(t, msg, got)
	})

	t.Run("non-2xx is an error and is not retried", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			http.Error(w, "invalid_payload", http.StatusBadRequest)
		}))
		defer srv.Close()

		c := NewClient(srv.URL, WithRate(rate.Inf, 1))
		err := c.Send(t.Context(), msg)
		assert.ErrorIs(t, err, transporthttp.ErrUnexpectedStatus)
		assert.ErrorContains(t, err, "invalid_payload")
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("server error is not retried", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := NewClient(srv.URL, WithRate(rate.Inf, 1))
		assert.Error(t, c.Send(t.Context(), msg))
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("paced by the limiter", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		defer srv.Close()

		c := NewClient(srv.URL, WithRate(rate.Every(time.Hour), 1))
		require.NoError(t, c.Send(t.Context(), msg))

		ctx, cancel := context.WithTimeout(t.Context(), 50*time.Millisecond)
		defer cancel()

		assert.Error(t, c.Send(ctx, msg))
	})
}
