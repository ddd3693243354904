package geocode

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visit_tracker/internal/apperrors"
)

func TestReverseGeocode_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "-23.55", r.URL.Query().Get("lat"))
		assert.Equal(t, "-46.63", r.URL.Query().Get("lon"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"display_name":"Avenida Paulista, São Paulo"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 2*time.Second)
	addr, err := client.ReverseGeocode(context.Background(), -23.55, -46.63)
	require.NoError(t, err)
	assert.Equal(t, "Avenida Paulista, São Paulo", addr)
}

func TestReverseGeocode_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 2*time.Second)
	_, err := client.ReverseGeocode(context.Background(), 0, 0)
	require.Error(t, err)

	var degraded *apperrors.DegradedError
	assert.True(t, errors.As(err, &degraded))
}

func TestReverseGeocode_MalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 2*time.Second)
	_, err := client.ReverseGeocode(context.Background(), 0, 0)
	require.Error(t, err)

	var degraded *apperrors.DegradedError
	assert.True(t, errors.As(err, &degraded))
}

func TestReverseGeocode_EmptyDisplayName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"display_name":""}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 2*time.Second)
	_, err := client.ReverseGeocode(context.Background(), 0, 0)
	require.Error(t, err)
}

func TestReverseGeocode_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{"display_name":"too late"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 50*time.Millisecond)
	start := time.Now()
	_, err := client.ReverseGeocode(context.Background(), 0, 0)
	require.Error(t, err)
	assert.Less(t, time.Since(start), 250*time.Millisecond)

	var degraded *apperrors.DegradedError
	assert.True(t, errors.As(err, &degraded))
}
