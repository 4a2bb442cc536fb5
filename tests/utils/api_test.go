package utils_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lrad-tours/voyages-api/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBody(s string) io.Reader {
	return strings.NewReader(s)
}

func TestRenderResponse(t *testing.T) {
	t.Run("marshals the payload as json", func(t *testing.T) {
		rr := httptest.NewRecorder()
		utils.RenderResponse(rr, http.StatusOK, map[string]string{"status": "sent"})

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"status":"sent"}`, rr.Body.String())
	})

	t.Run("nil payload writes an empty body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		utils.RenderResponse(rr, http.StatusMethodNotAllowed, nil)

		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("api error hides the status code field", func(t *testing.T) {
		ae := utils.NewBadRequest("month must be an integer between 1 and 12")
		rr := httptest.NewRecorder()
		utils.RenderResponse(rr, ae.StatusCode, ae)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"month must be an integer between 1 and 12"}`, rr.Body.String())
	})

	t.Run("fallback link serializes when set", func(t *testing.T) {
		ae := utils.ApiError{
			StatusCode: http.StatusBadGateway,
			Msg:        "l'envoi a échoué",
			Fallback:   "https://wa.me/221783083535",
		}
		rr := httptest.NewRecorder()
		utils.RenderResponse(rr, ae.StatusCode, ae)

		assert.JSONEq(t, `{"error":"l'envoi a échoué","fallback_whatsapp_url":"https://wa.me/221783083535"}`, rr.Body.String())
	})
}

func TestJsonDecodeBody(t *testing.T) {
	t.Run("decodes a valid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", newBody(`{"name":"Awa"}`))
		var dst struct {
			Name string `json:"name"`
		}
		require.NoError(t, utils.JsonDecodeBody(req, &dst))
		assert.Equal(t, "Awa", dst.Name)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", newBody(`{broken`))
		var dst map[string]interface{}
		assert.Error(t, utils.JsonDecodeBody(req, &dst))
	})
}

func TestAllowedMethods(t *testing.T) {
	handler := utils.AllowedMethods(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}, http.MethodPost)

	t.Run("allows a listed method", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodPost, "/", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("rejects everything else", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodDelete, "/", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})
}

func TestAllowedContentTypes(t *testing.T) {
	handler := utils.AllowedContentTypes(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}, "application/json")

	t.Run("allows a listed content type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("content-type", "application/json")
		rr := httptest.NewRecorder()
		handler(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("rejects an unlisted content type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("content-type", "text/plain")
		rr := httptest.NewRecorder()
		handler(rr, req)
		assert.Equal(t, http.StatusUnsupportedMediaType, rr.Code)
	})

	t.Run("GET requests skip the check", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
