package numbersapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Veraticus/number-classifier/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string, attempts int) *Client {
	t.Helper()
	client, err := NewClient(Config{
		BaseURL:     baseURL,
		Timeout:     2 * time.Second,
		MaxAttempts: attempts,
	})
	require.NoError(t, err)
	t.Cleanup(client.Close)
	return client
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:   "default config",
			config: DefaultConfig(),
		},
		{
			name:    "missing base URL",
			config:  Config{},
			wantErr: common.ErrMissingConfig,
		},
		{
			name:    "unsupported scheme",
			config:  Config{BaseURL: "ftp://numbersapi.com"},
			wantErr: common.ErrInvalidConfig,
		},
		{
			name:    "negative timeout",
			config:  Config{BaseURL: "http://numbersapi.com", Timeout: -time.Second},
			wantErr: common.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestClient_FactURL(t *testing.T) {
	client := newTestClient(t, "http://facts.example.com/", 1)

	assert.Equal(t, "http://facts.example.com/371/math", client.FactURL(371))
	assert.Equal(t, "http://facts.example.com/-5/math", client.FactURL(-5))
}

func TestClient_Fact(t *testing.T) {
	t.Run("returns body text", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/371/math", r.URL.Path)
			_, _ = w.Write([]byte("371 is a narcissistic number.\n"))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, 1)
		fact, err := client.Fact(context.Background(), 371)
		require.NoError(t, err)
		assert.Equal(t, "371 is a narcissistic number.", fact)
	})

	t.Run("retries server errors", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if calls.Add(1) == 1 {
				http.Error(w, "try later", http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte("28 is a perfect number."))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, 3)
		fact, err := client.Fact(context.Background(), 28)
		require.NoError(t, err)
		assert.Equal(t, "28 is a perfect number.", fact)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("does not retry client errors", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			http.NotFound(w, nil)
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, 3)
		_, err := client.Fact(context.Background(), 12)
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrFactUnavailable)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			http.Error(w, "down", http.StatusBadGateway)
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, 2)
		_, err := client.Fact(context.Background(), 12)
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrMaxRetries)
		assert.ErrorIs(t, err, common.ErrFactUnavailable)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("honors context deadline", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer server.Close()
		defer close(release)

		client := newTestClient(t, server.URL, 3)
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := client.Fact(ctx, 7)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestStatic(t *testing.T) {
	fact, err := Static("a fact").Fact(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "a fact", fact)
}
