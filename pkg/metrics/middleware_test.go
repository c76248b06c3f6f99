package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requestCount reads storefront_http_requests_total for one label set.
func requestCount(t *testing.T, handler, method, code string) float64 {
	t.Helper()
	families, err := Registry.Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != "storefront_http_requests_total" {
			continue
		}
		for _, m := range family.GetMetric() {
			labels := map[string]string{}
			for _, l := range m.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			if labels["handler"] == handler && labels["method"] == method && labels["status_code"] == code {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestGinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(GinMiddleware())
	engine.GET("/things/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("should label by route template", func(t *testing.T) {
		before := requestCount(t, "/things/:id", http.MethodGet, "200")

		engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/things/42", nil))

		assert.Equal(t, before+1, requestCount(t, "/things/:id", http.MethodGet, "200"))
	})

	t.Run("should group unmatched paths", func(t *testing.T) {
		before := requestCount(t, "unmatched", http.MethodGet, "404")

		engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

		assert.Equal(t, before+1, requestCount(t, "unmatched", http.MethodGet, "404"))
	})
}
