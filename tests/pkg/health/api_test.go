package health_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lrad-tours/voyages-api/pkg/health"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthGet(t *testing.T) {
	t.Run("reports liveness", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
		rr := httptest.NewRecorder()
		health.HealthGet("1.0.0")(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

		var resp health.HealthResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "healthy", resp.Status)
		assert.Equal(t, "1.0.0", resp.Version)
		assert.NotEmpty(t, resp.GoVersion)
		assert.NotEmpty(t, resp.Uptime)
	})

	t.Run("rejects non-GET methods", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/health", nil)
		rr := httptest.NewRecorder()
		health.HealthGet("1.0.0")(rr, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})
}
