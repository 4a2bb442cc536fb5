package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type ApiError struct {
	StatusCode int    `json:"-"`
	Msg        string `json:"error,omitempty"`
	// Fallback carries the alternative-channel deep link suggested when an
	// external dispatch fails.
	Fallback string `json:"fallback_whatsapp_url,omitempty"`
}

func (o *ApiError) Error() string {
	return fmt.Sprintf("%d: %s", o.StatusCode, o.Msg)
}

func NewInternalServerError(msg string) ApiError {
	return ApiError{StatusCode: http.StatusInternalServerError, Msg: msg}
}

func NewBadRequest(msg string) ApiError {
	return ApiError{StatusCode: http.StatusBadRequest, Msg: msg}
}

func JsonDecodeBody(r *http.Request, dst interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, dst)
}

func RenderResponse(w http.ResponseWriter, statusCode int, res interface{}) {
	w.Header().Set("Content-Type", "application/json")
	var body []byte
	if res != nil {
		var err error
		body, err = json.Marshal(res)
		if err != nil {
			ae := NewInternalServerError(err.Error())
			statusCode = ae.StatusCode
			body, err = json.Marshal(&ae)
			if err != nil {
				body = []byte(`{"error": "internal server error"}`)
			}
		}
	}
	w.WriteHeader(statusCode)
	if len(body) > 0 {
		w.Write(body)
	}
}

func AllowedMethods(next http.HandlerFunc, methods ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if existsInSlice(methods, r.Method) {
			next(w, r)
		} else {
			RenderResponse(w, http.StatusMethodNotAllowed, nil)
		}
	}
}

func AllowedContentTypes(next http.HandlerFunc, mediaTypes ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// content-type only matters for requests that carry a body
		if r.Method == http.MethodGet || existsInSlice(mediaTypes, r.Header.Get("content-type")) {
			next(w, r)
		} else {
			RenderResponse(w, http.StatusUnsupportedMediaType, nil)
		}
	}
}

func existsInSlice(list []string, needle string) bool {
	for i := range list {
		if list[i] == needle {
			return true
		}
	}
	return false
}
