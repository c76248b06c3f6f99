package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	name   string
	result Result
}

func (s stubChecker) Name() string { return s.name }

func (s stubChecker) Check(context.Context) Result { return s.result }

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

func TestRegistry_CheckAll(t *testing.T) {
	tests := []struct {
		name     string
		checkers []Checker
		want     Status
	}{
		{name: "empty registry is up", want: StatusUp},
		{
			name:     "all up",
			checkers: []Checker{stubChecker{"a", Up()}, stubChecker{"b", Up()}},
			want:     StatusUp,
		},
		{
			name:     "one down",
			checkers: []Checker{stubChecker{"a", Up()}, stubChecker{"b", Down(errors.New("boom"))}},
			want:     StatusDown,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewRegistry(tt.checkers...).CheckAll(context.Background())

			assert.Equal(t, tt.want, got.Status)
			assert.Len(t, got.Checks, len(tt.checkers))
		})
	}

	t.Run("should keep checker order in results", func(t *testing.T) {
		r := NewRegistry()
		r.Register(stubChecker{"first", Up()})
		r.Register(stubChecker{"second", Down(errors.New("x"))})

		got := r.CheckAll(context.Background())

		require.Len(t, got.Checks, 2)
		assert.Equal(t, "first", got.Checks[0].Name)
		assert.Equal(t, "second", got.Checks[1].Name)
		assert.Equal(t, "x", got.Checks[1].Message)
	})
}

func TestReadinessHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("should answer 503 when a dependency is down", func(t *testing.T) {
		engine := gin.New()
		engine.GET("/ready", ReadinessHandler(NewRegistry(NewPostgresChecker(stubPinger{errors.New("refused")})), time.Second))
		w := httptest.NewRecorder()

		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		var body ReadinessResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, StatusDown, body.Status)
		assert.Equal(t, "postgres", body.Checks[0].Name)
	})

	t.Run("should answer 200 when everything is up", func(t *testing.T) {
		engine := gin.New()
		engine.GET("/ready", ReadinessHandler(NewRegistry(NewPostgresChecker(stubPinger{})), time.Second))
		w := httptest.NewRecorder()

		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHTTPChecker(t *testing.T) {
	t.Run("should be up on 404", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		got := NewHTTPChecker("lottery_api", srv.URL, srv.Client()).Check(context.Background())

		assert.Equal(t, StatusUp, got.Status)
	})

	t.Run("should be down on 502", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		got := NewHTTPChecker("lottery_api", srv.URL, srv.Client()).Check(context.Background())

		assert.Equal(t, StatusDown, got.Status)
		assert.Contains(t, got.Message, "502")
	})
}
