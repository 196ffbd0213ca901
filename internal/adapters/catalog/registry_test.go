package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pinsync/internal/adapters/catalog"
	"go.trai.ch/pinsync/internal/core/domain"
)

func newPyPI(t *testing.T, handler http.HandlerFunc) (*catalog.PyPI, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	registry, err := catalog.NewPyPI(server.URL+"/pypi/", server.Client())
	require.NoError(t, err)
	return registry, server
}

func TestPyPI_LatestVersion(t *testing.T) {
	registry, _ := newPyPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pypi/mypy/json", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"info": {"name": "mypy", "version": "1.0.0"}, "releases": {}}`))
	})

	version, found, err := registry.LatestVersion(context.Background(), "mypy")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "1.0.0", version)
}

func TestPyPI_NotFound(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "status 404",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(`{"message": "Not Found"}`))
			},
		},
		{
			name: "not found message",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`{"message": "Not Found"}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry, _ := newPyPI(t, tt.handler)

			version, found, err := registry.LatestVersion(context.Background(), "pre-commit-hooks-extra")
			require.NoError(t, err)
			assert.False(t, found)
			assert.Empty(t, version)
		})
	}
}

func TestPyPI_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    error
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			want: domain.ErrRegistryUnavailable,
		},
		{
			name: "rate limited",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
			want: domain.ErrRegistryUnavailable,
		},
		{
			name: "invalid json",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`{"info":`))
			},
			want: domain.ErrRegistryResponseInvalid,
		},
		{
			name: "missing version",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`{"info": {}}`))
			},
			want: domain.ErrRegistryResponseInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry, _ := newPyPI(t, tt.handler)

			_, found, err := registry.LatestVersion(context.Background(), "black")
			require.Error(t, err)
			assert.False(t, found)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestPyPI_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	registry, err := catalog.NewPyPI(server.URL, server.Client())
	require.NoError(t, err)
	server.Close()

	_, _, err = registry.LatestVersion(context.Background(), "black")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRegistryUnavailable)
}

func TestPyPI_MemoizesAnswers(t *testing.T) {
	var calls atomic.Int32
	registry, _ := newPyPI(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Path == "/pypi/missing/json" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"info": {"version": "23.1.0"}}`))
	})
	ctx := context.Background()

	for range 3 {
		version, found, err := registry.LatestVersion(ctx, "black")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "23.1.0", version)

		_, found, err = registry.LatestVersion(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, found)
	}

	assert.Equal(t, int32(2), calls.Load())
}

func TestPyPI_DoesNotMemoizeFailures(t *testing.T) {
	var calls atomic.Int32
	registry, _ := newPyPI(t, func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"info": {"version": "6.0.0"}}`))
	})
	ctx := context.Background()

	_, _, err := registry.LatestVersion(ctx, "flake8")
	require.ErrorIs(t, err, domain.ErrRegistryUnavailable)

	version, found, err := registry.LatestVersion(ctx, "flake8")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "6.0.0", version)
}
