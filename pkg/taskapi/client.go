package taskapi

import (
	"context"
	"time"
)

// AuthClient provides the authentication operations.
type AuthClient interface {
	// Signup registers a new account. On success the issued token is
	// stored in the client session.
	Signup(ctx context.Context, email, password, name string) (*AuthResponse, error)
	// Signin authenticates an existing account. Email and password are
	// trimmed of surrounding whitespace before being sent. On success the
	// issued token is stored in the client session.
	Signin(ctx context.Context, email, password string) (*AuthResponse, error)
	// Me returns the user record for the active session token. It fails
	// with an unauthorized error when no valid token is held.
	Me(ctx context.Context) (*User, error)
	// Refresh exchanges the current token for a fresh one and stores it
	// in the client session.
	Refresh(ctx context.Context) (*RefreshResponse, error)
	// Signout notifies the server and clears the session token. The local
	// token is cleared even when the server call fails.
	Signout(ctx context.Context) (*SignoutResponse, error)
}

// TasksClient provides the task CRUD operations. All read operations
// return tasks with wire field names converted to camelCase.
type TasksClient interface {
	List(ctx context.Context, opts *TaskListOptions) (*TaskList, error)
	Get(ctx context.Context, id int64) (*Task, error)
	Create(ctx context.Context, request *TaskCreateRequest) (*Task, error)
	// Update performs a full replace via PUT.
	Update(ctx context.Context, id int64, request *TaskUpdateRequest) (*Task, error)
	// Patch performs a partial update via PATCH.
	Patch(ctx context.Context, id int64, request *TaskUpdateRequest) (*Task, error)
	// ToggleComplete flips the completion flag server-side and returns the
	// resulting task.
	ToggleComplete(ctx context.Context, id int64) (*Task, error)
	// Delete removes the task. On success the resource is no longer
	// retrievable by id.
	Delete(ctx context.Context, id int64) error
}

// SessionTokens exposes the session token held by a client. The token is
// scoped to the client instance; it is set by the auth flow and cleared on
// signout or any unauthorized response.
type SessionTokens interface {
	Token() string
	SetToken(token string)
	ClearToken()
}

// Client is the top-level TaskHub API client.
type Client interface {
	Auth() AuthClient
	Tasks() TasksClient
	SessionTokens

	// CheckHealth queries the unauthenticated health endpoint.
	CheckHealth(ctx context.Context) (*Health, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a Client.
//
// Per-request timeouts and cancellation are controlled via the context
// passed to client methods; HTTPTimeout is the outer cap applied to every
// request (default 30 seconds). Retry behavior covers transient failures
// only (connection errors, 429, 5xx) and can be tuned via RetryMax and the
// wait bounds.
type Config struct {
	// APIEndpoint: base URL for the TaskHub API (e.g. "https://api.example.com").
	// taskclient.New normalizes this value by trimming a trailing slash and
	// adding "https://" if no scheme is present.
	APIEndpoint string

	// AccessToken: optional initial bearer token seeding the session, e.g.
	// one persisted by the CLI from an earlier signin.
	AccessToken string

	// HTTPTimeout: outer timeout applied to every request. Zero means the
	// 30 second default.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of retries for transient failures. Zero
	// means the default.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries.
	RetryWaitMax time.Duration
	// Debug: enables verbose HTTP request/response logging when a Logger
	// is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
}
