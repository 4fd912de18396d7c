package taskclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskhub-io/taskhub-client/pkg/taskapi"
	"github.com/taskhub-io/taskhub-client/pkg/taskclient"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("requires a config", func(t *testing.T) {
		t.Parallel()

		_, err := taskclient.New(context.Background(), nil)
		require.ErrorIs(t, err, taskapi.ErrConfigRequired)
	})

	t.Run("requires an API endpoint", func(t *testing.T) {
		t.Parallel()

		_, err := taskclient.New(context.Background(), &taskapi.Config{})
		require.ErrorIs(t, err, taskapi.ErrAPIEndpointRequired)
	})

	t.Run("assumes https when no scheme is given", func(t *testing.T) {
		t.Parallel()

		config := &taskapi.Config{APIEndpoint: "api.example.com"}

		_, err := taskclient.New(context.Background(), config)
		require.NoError(t, err)
		assert.Equal(t, "https://api.example.com", config.APIEndpoint)
	})

	t.Run("trims a trailing slash", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/health", request.URL.Path)
			_, _ = writer.Write([]byte(`{"status": "healthy"}`))
		}))
		defer server.Close()

		client, err := taskclient.New(context.Background(), &taskapi.Config{APIEndpoint: server.URL + "/"})
		require.NoError(t, err)

		health, err := client.CheckHealth(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "healthy", health.Status)
	})
}

func TestNewWithEndpoint(t *testing.T) {
	t.Parallel()

	client, err := taskclient.NewWithEndpoint(context.Background(), "https://api.example.com")
	require.NoError(t, err)
	assert.Empty(t, client.Token())
}

func TestNewWithToken(t *testing.T) {
	t.Parallel()

	client, err := taskclient.NewWithToken(context.Background(), "https://api.example.com", "seed-token")
	require.NoError(t, err)
	assert.Equal(t, "seed-token", client.Token())
}
