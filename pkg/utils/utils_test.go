package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestTokenSigner_RoundTrip(t *testing.T) {
	signer := NewTokenSigner("secret", time.Hour)

	token, err := signer.CreateToken("user-1", "a@example.com")
	require.NoError(t, err)

	claims, err := signer.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, time.Hour, signer.TTL())
}

func TestTokenSigner_Rejects(t *testing.T) {
	signer := NewTokenSigner("secret", time.Hour)
	token, err := NewTokenSigner("other", time.Hour).CreateToken("user-1", "a@example.com")
	require.NoError(t, err)

	_, err = signer.ValidateToken(token)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, IsTokenExpired(err))

	_, err = signer.ValidateToken("garbage")
	assert.ErrorIs(t, err, ErrUnauthorized)

	noSubject, err := signer.CreateToken("", "a@example.com")
	require.NoError(t, err)
	_, err = signer.ValidateToken(noSubject)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestNewTokenSigner_DefaultTTL(t *testing.T) {
	assert.Equal(t, time.Hour, NewTokenSigner("s", 0).TTL())
}

func TestPasswords(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.NoError(t, ComparePasswords(hash, "hunter22"))
	assert.Error(t, ComparePasswords(hash, "hunter23"))
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{ErrInvalidInput, http.StatusBadRequest},
		{ErrUserAlreadyExists, http.StatusBadRequest},
		{fmt.Errorf("%w: missing destination", ErrIncompleteSession), http.StatusBadRequest},
		{ErrInvalidStep, http.StatusBadRequest},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrUserNotFound, http.StatusNotFound},
		{ErrSessionNotFound, http.StatusNotFound},
		{ErrDestinationMissing, http.StatusNotFound},
		{ErrNotFound, http.StatusNotFound},
		{ErrServiceUnavailable, http.StatusServiceUnavailable},
		{ErrUpstreamFailure, http.StatusBadGateway},
		{fmt.Errorf("%w: redis down", ErrStoreError), http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			code, msg := StatusFor(tt.err)
			assert.Equal(t, tt.code, code)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestHandleServiceError_HidesInternalDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set("trace_id", "trace-1")

	HandleServiceError(c, zaptest.NewLogger(t), errors.New("pq: password authentication failed"))

	var body APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, "Internal server error", body.Message)
	assert.Equal(t, "trace-1", body.TraceID)
}

func TestRespondSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondSuccess(c, gin.H{"n": 1}, "ok")

	var body APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusOK, body.Code)
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, map[string]any{"n": float64(1)}, body.Data)
}

func TestFormatRFC3339(t *testing.T) {
	assert.Empty(t, FormatRFC3339(time.Time{}))
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("x", 3600))
	assert.Equal(t, "2024-05-01T11:00:00Z", FormatRFC3339(ts))
}

func TestNewTextModel_EmptyKey(t *testing.T) {
	m, err := NewTextModel("gemini", " ", "")
	assert.NoError(t, err)
	assert.Nil(t, m)

	_, err = NewTextModel("llama", "key", "")
	assert.ErrorIs(t, err, ErrUnsupportedProvider)

	m, err = NewTextModel("openai", "sk-test", "")
	require.NoError(t, err)
	assert.Equal(t, "openai/gpt-4o-mini", m.Name())
}
