package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskhub-io/taskhub-client/internal/client"
	"github.com/taskhub-io/taskhub-client/internal/constants"
	"github.com/taskhub-io/taskhub-client/pkg/taskapi"
)

func newTestClient(t *testing.T, handler http.Handler) (*client.Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	apiClient, err := client.New(context.Background(), &taskapi.Config{
		APIEndpoint:  server.URL,
		RetryMax:     1,
		RetryWaitMin: time.Millisecond,
		RetryWaitMax: 5 * time.Millisecond,
	})
	require.NoError(t, err)

	return apiClient, server
}

func TestAuthClient_Signin(t *testing.T) {
	t.Parallel()
	t.Run("stores token and normalizes the response", func(t *testing.T) {
		t.Parallel()

		apiClient, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/auth/signin", request.URL.Path)
			assert.Equal(t, "POST", request.Method)

			var body map[string]string

			err := json.NewDecoder(request.Body).Decode(&body)
			require.NoError(t, err)
			assert.Equal(t, "a@b.com", body["email"])
			assert.Equal(t, "Secret12", body["password"])

			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"access_token": "issued-token",
				"user":         map[string]string{"id": "u1", "email": "a@b.com", "name": "Ada"},
			})
		}))

		resp, err := apiClient.Auth().Signin(context.Background(), "a@b.com", "Secret12")
		require.NoError(t, err)

		assert.Equal(t, "u1", resp.ID)
		assert.Equal(t, "a@b.com", resp.Email)
		assert.Equal(t, "Ada", resp.Name)
		assert.Equal(t, "issued-token", resp.Token)
		assert.Equal(t, constants.TokenTTLSeconds, resp.ExpiresIn)
		assert.Equal(t, "issued-token", apiClient.Token())
	})

	t.Run("trims email and password before sending", func(t *testing.T) {
		t.Parallel()

		apiClient, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			var body map[string]string

			err := json.NewDecoder(request.Body).Decode(&body)
			require.NoError(t, err)
			assert.Equal(t, "a@b.com", body["email"])
			assert.Equal(t, "Secret12", body["password"])

			_ = json.NewEncoder(writer).Encode(map[string]interface{}{"token": "t"})
		}))

		_, err := apiClient.Auth().Signin(context.Background(), "  a@b.com  ", "  Secret12  ")
		require.NoError(t, err)
	})

	t.Run("accepts the legacy token field", func(t *testing.T) {
		t.Parallel()

		apiClient, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"token": "legacy-token",
				"user":  map[string]string{"id": "u1", "email": "a@b.com"},
			})
		}))

		resp, err := apiClient.Auth().Signin(context.Background(), "a@b.com", "Secret12")
		require.NoError(t, err)
		assert.Equal(t, "legacy-token", resp.Token)
		assert.Equal(t, "legacy-token", apiClient.Token())
	})

	t.Run("falls back to the input email when the server omits the user", func(t *testing.T) {
		t.Parallel()

		apiClient, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{"access_token": "t"})
		}))

		resp, err := apiClient.Auth().Signin(context.Background(), "a@b.com", "Secret12")
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", resp.Email)
	})

	t.Run("propagates API errors", func(t *testing.T) {
		t.Parallel()

		apiClient, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(writer).Encode(map[string]string{"detail": "Invalid credentials"})
		}))

		_, err := apiClient.Auth().Signin(context.Background(), "a@b.com", "wrongpass")
		require.Error(t, err)
		assert.True(t, taskapi.IsUnauthorized(err))
		assert.Contains(t, err.Error(), "Invalid credentials")
	})
}

func TestAuthClient_Signup(t *testing.T) {
	t.Parallel()

	apiClient, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/auth/signup", request.URL.Path)

		var body map[string]string

		err := json.NewDecoder(request.Body).Decode(&body)
		require.NoError(t, err)
		assert.Equal(t, "Ada", body["name"])

		writer.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"access_token": "new-token",
			"user":         map[string]string{"id": "u2", "email": "new@b.com", "name": "Ada"},
		})
	}))

	resp, err := apiClient.Auth().Signup(context.Background(), "new@b.com", "Secret12", "Ada")
	require.NoError(t, err)
	assert.Equal(t, "u2", resp.ID)
	assert.Equal(t, "new-token", apiClient.Token())
}

func TestAuthClient_Me(t *testing.T) {
	t.Parallel()
	t.Run("camelizes the wire response", func(t *testing.T) {
		t.Parallel()

		apiClient, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/auth/me", request.URL.Path)
			_, _ = writer.Write([]byte(`{"id": "u1", "email": "a@b.com", "created_at": "2024-01-01T00:00:00"}`))
		}))

		user, err := apiClient.Auth().Me(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
		assert.Equal(t, "2024-01-01T00:00:00", user.CreatedAt)
	})

	t.Run("unauthorized without a valid token", func(t *testing.T) {
		t.Parallel()

		apiClient, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
		}))

		_, err := apiClient.Auth().Me(context.Background())
		require.Error(t, err)
		assert.True(t, taskapi.IsUnauthorized(err))
	})
}

func TestAuthClient_Refresh(t *testing.T) {
	t.Parallel()

	apiClient, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/auth/refresh", request.URL.Path)
		_ = json.NewEncoder(writer).Encode(map[string]string{"token": "fresh-token"})
	}))

	resp, err := apiClient.Auth().Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", resp.Token)
	assert.Equal(t, "fresh-token", apiClient.Token())
}

func TestAuthClient_Signout(t *testing.T) {
	t.Parallel()
	t.Run("clears the token on success", func(t *testing.T) {
		t.Parallel()

		apiClient, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/auth/signout", request.URL.Path)
			_ = json.NewEncoder(writer).Encode(map[string]string{"status": "ok", "message": "signed out"})
		}))

		apiClient.SetToken("active-token")

		resp, err := apiClient.Auth().Signout(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "ok", resp.Status)
		assert.Empty(t, apiClient.Token())
	})

	t.Run("clears the token even when the server call fails", func(t *testing.T) {
		t.Parallel()

		apiClient, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusInternalServerError)
		}))

		apiClient.SetToken("active-token")

		_, err := apiClient.Auth().Signout(context.Background())
		require.Error(t, err)
		assert.Empty(t, apiClient.Token())
	})
}

func TestClient_CheckHealth(t *testing.T) {
	t.Parallel()

	apiClient, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/health", request.URL.Path)
		_ = json.NewEncoder(writer).Encode(map[string]string{"status": "healthy", "version": "1.2.0"})
	}))

	health, err := apiClient.CheckHealth(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "1.2.0", health.Version)
}
