package errutils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorHandlingMiddleware(t *testing.T) {
	cause := errors.New("bad json")
	h := ErrorHandlingMiddleware(func(w http.ResponseWriter, r *http.Request) {
		*r = *WithError(r, cause, http.StatusBadRequest, "Bad Request")
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Bad Request"}`, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestErrorHandlingMiddleware_NoError(t *testing.T) {
	h := ErrorHandlingMiddleware(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestHandlerError_Unwrap(t *testing.T) {
	cause := errors.New("cause")
	err := NewHandlerError(cause, http.StatusNotFound, "Not Found")
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "cause", err.Error())
}
