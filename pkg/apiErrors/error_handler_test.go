package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrWritesDisabled, "ALLOW_WRITES is not enabled", nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":"WRITES_DISABLED","message":"ALLOW_WRITES is not enabled"}`, rec.Body.String())
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusServiceUnavailable, StatusFor(ErrBackupUnverified))
	assert.Equal(t, http.StatusConflict, StatusFor(ErrImportRunning))
	assert.Equal(t, http.StatusInternalServerError, StatusFor("NOPE"))
}

func TestFromError(t *testing.T) {
	assert.Equal(t, APIError{Code: ErrInternalServer, Message: "unknown error"}, FromError(nil, ErrImportFailed))
	assert.Equal(t, APIError{Code: ErrImportFailed, Message: "boom"}, FromError(errors.New("boom"), ErrImportFailed))
}
