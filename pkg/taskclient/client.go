// Package taskclient provides the main entry point for creating TaskHub
// API clients.
package taskclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/taskhub-io/taskhub-client/internal/client"
	"github.com/taskhub-io/taskhub-client/pkg/taskapi"
)

// New creates a new TaskHub API client.
func New(ctx context.Context, config *taskapi.Config) (taskapi.Client, error) {
	if config == nil {
		return nil, taskapi.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		return nil, taskapi.ErrAPIEndpointRequired
	}

	// Normalize API endpoint
	apiEndpoint := strings.TrimSuffix(config.APIEndpoint, "/")
	if !strings.HasPrefix(apiEndpoint, "http://") && !strings.HasPrefix(apiEndpoint, "https://") {
		apiEndpoint = "https://" + apiEndpoint
	}

	config.APIEndpoint = apiEndpoint

	apiClient, err := client.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithEndpoint creates a new client with just an API endpoint (no
// initial token; the session starts anonymous).
func NewWithEndpoint(ctx context.Context, endpoint string) (taskapi.Client, error) {
	return New(ctx, &taskapi.Config{
		APIEndpoint: endpoint,
	})
}

// NewWithToken creates a new client with an API endpoint and an existing
// session token.
func NewWithToken(ctx context.Context, endpoint, token string) (taskapi.Client, error) {
	return New(ctx, &taskapi.Config{
		APIEndpoint: endpoint,
		AccessToken: token,
	})
}
