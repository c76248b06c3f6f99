package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"LuckyStore/pkg/correlation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Do(t *testing.T) {
	t.Run("should send JSON with auth and correlation headers", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, "corr-1", r.Header.Get(correlation.HeaderName))

			var in map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			assert.Equal(t, "v", in["k"])

			_, _ = w.Write([]byte(`{"id":"42"}`))
		}))
		defer server.Close()

		var out struct {
			ID string `json:"id"`
		}
		ctx := correlation.WithID(context.Background(), "corr-1")

		err := New("test", server.Client()).Do(ctx, Request{
			Operation: "create",
			Method:    http.MethodPost,
			URL:       server.URL,
			Bearer:    "secret",
			Body:      map[string]string{"k": "v"},
		}, &out)

		require.NoError(t, err)
		assert.Equal(t, "42", out.ID)
	})

	t.Run("should return StatusError on non-2xx", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"invalid token"}`))
		}))
		defer server.Close()

		err := New("test", server.Client()).Do(context.Background(), Request{Method: http.MethodGet, URL: server.URL}, nil)

		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
		assert.Contains(t, statusErr.Body, "invalid token")
	})
}

func TestFlexibleJSON(t *testing.T) {
	var v struct {
		A Float  `json:"a"`
		B Float  `json:"b"`
		C Float  `json:"c"`
		D String `json:"d"`
		E String `json:"e"`
		F String `json:"f"`
	}

	err := json.Unmarshal([]byte(`{"a":16000,"b":"16000.50","c":"n/a","d":123,"e":"x","f":null}`), &v)

	require.NoError(t, err)
	assert.Equal(t, Float(16000), v.A)
	assert.Equal(t, Float(16000.5), v.B)
	assert.Equal(t, Float(0), v.C)
	assert.Equal(t, String("123"), v.D)
	assert.Equal(t, String("x"), v.E)
	assert.Equal(t, String(""), v.F)
}
