package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"watermyplants/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPayload() domain.NewUserPayload {
	return domain.FormState{
		Username:       "bob-1",
		Email:          "bob@example.com",
		Phone:          "+1 (415) 555-1234",
		Password:       "Tr0ub4dor&3",
		VerifyPassword: "Tr0ub4dor&3",
		PasswordScore:  4,
	}.Payload()
}

func TestHTTPRegistrar_Register(t *testing.T) {
	var calls atomic.Int32
	var body map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/registeruser", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.NoError(t, json.Unmarshal(raw, &body))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":7}`))
	}))
	defer srv.Close()

	registrar := NewHTTPRegistrar(srv.URL+"/registeruser", time.Second)
	defer registrar.Close()

	res, err := registrar.Register(context.Background(), testPayload())

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Equal(t, `{"id":7}`, res.Body)
	assert.True(t, res.Success())
	assert.Equal(t, int32(1), calls.Load())

	assert.Equal(t, map[string]any{
		"username": "bob-1",
		"email":    "bob@example.com",
		"phone":    "+1 (415) 555-1234",
		"password": "Tr0ub4dor&3",
	}, body)
}

func TestHTTPRegistrar_ErrorStatusIsNotRetried(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	registrar := NewHTTPRegistrar(srv.URL, time.Second)
	defer registrar.Close()

	res, err := registrar.Register(context.Background(), testPayload())

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	assert.Equal(t, "boom", res.Body)
	assert.False(t, res.Success())
	assert.Equal(t, int32(1), calls.Load())
}

func TestHTTPRegistrar_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	registrar := NewHTTPRegistrar(url, time.Second)
	defer registrar.Close()

	res, err := registrar.Register(context.Background(), testPayload())

	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrRegistrationFailed)
}
