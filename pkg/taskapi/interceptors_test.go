package taskapi_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskhub-io/taskhub-client/pkg/taskapi"
)

func TestInterceptorChain(t *testing.T) {
	t.Parallel()
	t.Run("request interceptors run in order", func(t *testing.T) {
		t.Parallel()

		var order []string

		chain := taskapi.NewInterceptorChain()
		chain.AddRequestInterceptor(func(ctx context.Context, req *taskapi.Request) error {
			order = append(order, "first")

			return nil
		})
		chain.AddRequestInterceptor(func(ctx context.Context, req *taskapi.Request) error {
			order = append(order, "second")

			return nil
		})

		err := chain.ExecuteRequestInterceptors(context.Background(), &taskapi.Request{})
		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("failure stops the chain", func(t *testing.T) {
		t.Parallel()

		chainErr := errors.New("boom")
		called := false

		chain := taskapi.NewInterceptorChain()
		chain.AddRequestInterceptor(func(ctx context.Context, req *taskapi.Request) error {
			return chainErr
		})
		chain.AddRequestInterceptor(func(ctx context.Context, req *taskapi.Request) error {
			called = true

			return nil
		})

		err := chain.ExecuteRequestInterceptors(context.Background(), &taskapi.Request{})
		require.ErrorIs(t, err, chainErr)
		assert.False(t, called)
	})

	t.Run("response interceptors see request and response", func(t *testing.T) {
		t.Parallel()

		chain := taskapi.NewInterceptorChain()
		chain.AddResponseInterceptor(func(ctx context.Context, req *taskapi.Request, resp *taskapi.Response) error {
			assert.Equal(t, "/api/tasks", req.Path)
			assert.Equal(t, 200, resp.StatusCode)

			return nil
		})

		err := chain.ExecuteResponseInterceptors(context.Background(),
			&taskapi.Request{Path: "/api/tasks"},
			&taskapi.Response{StatusCode: 200})
		require.NoError(t, err)
	})
}

func TestHeaderInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := taskapi.HeaderInterceptor(map[string]string{"X-Custom": "value"})

	req := &taskapi.Request{}
	err := interceptor(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "value", req.Headers.Get("X-Custom"))
}

func TestRequestIDInterceptor(t *testing.T) {
	t.Parallel()
	t.Run("assigns an ID", func(t *testing.T) {
		t.Parallel()

		req := &taskapi.Request{}
		err := taskapi.RequestIDInterceptor()(context.Background(), req)
		require.NoError(t, err)
		assert.NotEmpty(t, req.Headers.Get("X-Request-ID"))
	})

	t.Run("preserves an existing ID", func(t *testing.T) {
		t.Parallel()

		req := &taskapi.Request{Headers: http.Header{}}
		req.Headers.Set("X-Request-ID", "fixed-id")

		err := taskapi.RequestIDInterceptor()(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "fixed-id", req.Headers.Get("X-Request-ID"))
	})
}
