package peer

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/errors"
)

type profile struct {
	UserID string `json:"userId"`
	Nama   string `json:"nama"`
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestInvoke_ClassifiesOutcomes(t *testing.T) {
	t.Run("success with envelope data", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"data":{"userId":"u-1","nama":"Budi"},"message":"ok","code":200}`))
		}))
		defer srv.Close()

		client := NewClient("user-service", srv.URL, time.Second, discardLogger())
		outcome := client.Invoke(context.Background(), http.MethodGet, "/api/user/getUserById/u-1", nil)

		assert.Equal(t, KindSuccess, outcome.Kind)
		assert.True(t, outcome.OK())
		assert.JSONEq(t, `{"userId":"u-1","nama":"Budi"}`, string(outcome.Data))
	})

	t.Run("404 maps to not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		client := NewClient("user-service", srv.URL, time.Second, discardLogger())
		outcome := client.Invoke(context.Background(), http.MethodGet, "/api/user/getUserById/missing", nil)

		assert.Equal(t, KindNotFound, outcome.Kind)
		assert.Equal(t, http.StatusNotFound, outcome.Status)
	})

	t.Run("slow peer maps to timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		client := NewClient("user-service", srv.URL, 20*time.Millisecond, discardLogger())
		outcome := client.Invoke(context.Background(), http.MethodGet, "/api/user/getAllUser", nil)

		assert.Equal(t, KindTimeout, outcome.Kind)
		assert.Error(t, outcome.Err)
	})

	t.Run("connection refused maps to transport error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		client := NewClient("user-service", srv.URL, time.Second, discardLogger())
		outcome := client.Invoke(context.Background(), http.MethodGet, "/api/user/getAllUser", nil)

		assert.Equal(t, KindTransportError, outcome.Kind)
		assert.Error(t, outcome.Err)
	})

	t.Run("500 maps to unexpected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := NewClient("user-service", srv.URL, time.Second, discardLogger())
		outcome := client.Invoke(context.Background(), http.MethodGet, "/api/user/getAllUser", nil)

		assert.Equal(t, KindUnexpected, outcome.Kind)
		assert.Equal(t, http.StatusInternalServerError, outcome.Status)
	})

	t.Run("2xx without envelope data maps to unexpected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data":null,"message":"empty","code":200}`))
		}))
		defer srv.Close()

		client := NewClient("user-service", srv.URL, time.Second, discardLogger())
		outcome := client.Invoke(context.Background(), http.MethodGet, "/api/user/getAllUser", nil)

		assert.Equal(t, KindUnexpected, outcome.Kind)
		assert.Error(t, outcome.Err)
	})

	t.Run("malformed body maps to unexpected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer srv.Close()

		client := NewClient("user-service", srv.URL, time.Second, discardLogger())
		outcome := client.Invoke(context.Background(), http.MethodGet, "/api/user/getAllUser", nil)

		assert.Equal(t, KindUnexpected, outcome.Kind)
	})
}

func TestFetchOptional_DegradesToNil(t *testing.T) {
	t.Run("returns decoded payload on success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data":{"userId":"u-1","nama":"Budi"},"code":200}`))
		}))
		defer srv.Close()

		client := NewClient("user-service", srv.URL, time.Second, discardLogger())
		got := FetchOptional[profile](context.Background(), client, http.MethodGet, "/api/user/getUserById/u-1", nil, "getUserById")

		require.NotNil(t, got)
		assert.Equal(t, "u-1", got.UserID)
		assert.Equal(t, "Budi", got.Nama)
	})

	t.Run("returns nil on not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		client := NewClient("user-service", srv.URL, time.Second, discardLogger())
		got := FetchOptional[profile](context.Background(), client, http.MethodGet, "/api/user/getUserById/missing", nil, "getUserById")

		assert.Nil(t, got)
	})

	t.Run("returns nil on timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		client := NewClient("user-service", srv.URL, 20*time.Millisecond, discardLogger())
		got := FetchOptional[profile](context.Background(), client, http.MethodGet, "/api/user/getUserById/u-1", nil, "getUserById")

		assert.Nil(t, got)
	})
}

func TestFetchRequired_Escalates(t *testing.T) {
	t.Run("returns payload on success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data":{"userId":"u-9","nama":"Sari"},"code":200}`))
		}))
		defer srv.Close()

		client := NewClient("user-service", srv.URL, time.Second, discardLogger())
		got, err := FetchRequired[profile](context.Background(), client, http.MethodPost, "/api/user/addUser", map[string]string{"userId": "u-9"}, "addUser")

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "u-9", got.UserID)
	})

	t.Run("wraps any failure as a dependent service error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := NewClient("user-service", srv.URL, time.Second, discardLogger())
		got, err := FetchRequired[profile](context.Background(), client, http.MethodPost, "/api/user/addUser", nil, "addUser")

		assert.Nil(t, got)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrExternalService))

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusBadGateway, appErr.HTTPCode())
	})

	t.Run("escalates on not found too", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		client := NewClient("user-service", srv.URL, time.Second, discardLogger())
		_, err := FetchRequired[profile](context.Background(), client, http.MethodPost, "/api/user/addUser", nil, "addUser")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrExternalService))
	})
}
