// Package client provides the concrete taskapi.Client implementation and
// its resource clients.
package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/taskhub-io/taskhub-client/internal/auth"
	"github.com/taskhub-io/taskhub-client/internal/constants"
	"github.com/taskhub-io/taskhub-client/internal/http"
	"github.com/taskhub-io/taskhub-client/pkg/taskapi"
)

// Client implements the taskapi.Client interface.
type Client struct {
	httpClient *http.Client
	session    *auth.Session
	baseURL    string
	logger     taskapi.Logger

	// Resource clients
	auth  taskapi.AuthClient
	tasks taskapi.TasksClient
}

// New creates a new TaskHub API client.
func New(ctx context.Context, config *taskapi.Config) (*Client, error) {
	if config.APIEndpoint == "" {
		return nil, taskapi.ErrAPIEndpointRequired
	}

	session := auth.NewSession(config.AccessToken)
	httpClient := http.NewClient(config.APIEndpoint, session, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		session:    session,
		baseURL:    config.APIEndpoint,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *taskapi.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))

		chain := taskapi.NewInterceptorChain()
		chain.AddRequestInterceptor(taskapi.RequestIDInterceptor())

		if config.Debug {
			chain.AddRequestInterceptor(taskapi.LoggingInterceptor(config.Logger))
			chain.AddResponseInterceptor(taskapi.LoggingResponseInterceptor(config.Logger))
		}

		httpOpts = append(httpOpts, http.WithInterceptors(chain))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.auth = NewAuthClient(c.httpClient, c.session)
	c.tasks = NewTasksClient(c.httpClient)
}

// Auth implements taskapi.Client.Auth.
func (c *Client) Auth() taskapi.AuthClient {
	return c.auth
}

// Tasks implements taskapi.Client.Tasks.
func (c *Client) Tasks() taskapi.TasksClient {
	return c.tasks
}

// Token implements taskapi.SessionTokens.
func (c *Client) Token() string {
	return c.session.Token()
}

// SetToken implements taskapi.SessionTokens.
func (c *Client) SetToken(token string) {
	c.session.SetToken(token)
}

// ClearToken implements taskapi.SessionTokens.
func (c *Client) ClearToken() {
	c.session.Clear()
}

// CheckHealth implements taskapi.Client.CheckHealth.
func (c *Client) CheckHealth(ctx context.Context) (*taskapi.Health, error) {
	resp, err := c.httpClient.Get(ctx, constants.APIPathHealth, nil)
	if err != nil {
		return nil, fmt.Errorf("checking health: %w", err)
	}

	var health taskapi.Health

	err = json.Unmarshal(resp.Body, &health)
	if err != nil {
		return nil, fmt.Errorf("parsing health response: %w", err)
	}

	return &health, nil
}

// loggerAdapter adapts taskapi.Logger to http.Logger.
type loggerAdapter struct {
	logger taskapi.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
