package jsonrpc

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	transporthttp "github.com/superfluid-finance/web3-hooks/internal/pkg/transport/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponse_Err(t *testing.T) {
	t.Run("returns nil when Error field is nil", func(t *testing.T) {
		resp := response{JsonRPC: "2.0"}

		assert.NoError(t, resp.Err(), "Err() should return nil when Error field is nil")
	})

	t.Run("returns formatted error when Error field is present", func(t *testing.T) {
		resp := response{
			JsonRPC: "2.0",
			Error: &struct {
				Code    int    `json:"code"`
				Message string `json:"message"`
			}{
				Code:    -32005,
				Message: "query returned more than 10000 results",
			},
		}

		err := resp.Err()

		assert.ErrorIs(t, err, ErrProviderReturnedError, "Err() should wrap ErrProviderReturnedError")
		assert.Contains(t, err.Error(), fmt.Sprintf("[%d]", -32005))
		assert.Contains(t, err.Error(), "query returned more than 10000 results")
	})
}

func TestClient_Fetch(t *testing.T) {
	t.Run("sends a well formed request and returns the result", func(t *testing.T) {
		var got request
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

			_ = json.NewEncoder(w).Encode(map[string]any{
				"jsonrpc": "2.0",
				"result":  "0x3e8",
				"id":      got.ID,
			})
		}))
		defer srv.Close()

		c := NewClient(srv.URL)

		result, err := c.Fetch(t.Context(), "eth_getLogs", map[string]any{"fromBlock": "0x1"})
		require.NoError(t, err)
		assert.JSONEq(t, `"0x3e8"`, string(result))

		assert.Equal(t, "2.0", got.JsonRPC)
		assert.Equal(t, "eth_getLogs", got.Method)
		assert.NotEmpty(t, got.ID)
		require.Len(t, got.Params, 1)
	})

	t.Run("params default to an empty array", func(t *testing.T) {
		var raw map[string]json.RawMessage
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
			_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":"1","result":"0x1"}`))
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL).Fetch(t.Context(), "eth_blockNumber")
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(raw["params"]))
	})

	t.Run("response with JSON-RPC error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"jsonrpc": "2.0",
				"error": map[string]any{
					"code":    -32601,
					"message": "method not found",
				},
				"id": "1",
			})
		}))
		defer srv.Close()

		result, err := NewClient(srv.URL).Fetch(t.Context(), "nonexistent_method")
		assert.ErrorIs(t, err, ErrProviderReturnedError)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "method not found")
	})

	t.Run("malformed JSON response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("this is not json"))
		}))
		defer srv.Close()

		result, err := NewClient(srv.URL).Fetch(t.Context(), "bad_json")
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "invalid character")
	})

	t.Run("non 2xx status is reported", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte("slow down"))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, WithHTTPClient(http.DefaultClient))

		result, err := c.Fetch(t.Context(), "eth_blockNumber")
		assert.ErrorIs(t, err, transporthttp.ErrUnexpectedStatus)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "eth_blockNumber")
	})

	t.Run("network error when server is down", func(t *testing.T) {
		srv := httptest.NewServer(nil)
		srv.Close()

		c := NewClient(srv.URL, WithHTTPClient(transporthttp.NewClient(transporthttp.WithRetryMax(0)).StandardClient()))

		result, err := c.Fetch(t.Context(), "network_failure")
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestNewClient(t *testing.T) {
	t.Run("uses the retrying transport by default", func(t *testing.T) {
		c := NewClient("http://localhost:8545")

		assert.Equal(t, "http://localhost:8545", c.providerEndpoint)
		require.NotNil(t, c.httpClient)
		assert.NotNil(t, c.httpClient.Transport)
	})

	t.Run("custom http client", func(t *testing.T) {
		custom := &http.Client{}
		c := NewClient("http://localhost:8545", WithHTTPClient(custom))

		assert.Same(t, custom, c.httpClient)
	})
}
