package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations such as health checks.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Authentication.
const (
	// TokenTTLSeconds is the session token lifetime reported to callers.
	// The server does not include an expiry in auth responses, so the
	// client reports this fixed value (7 days).
	TokenTTLSeconds = 604800
)

// Pagination limits.
const (
	// DefaultPageLimit is the default number of tasks per page.
	DefaultPageLimit = 20

	// MaxPageLimit is the largest page size the API accepts.
	MaxPageLimit = 100
)

// Field length limits enforced by both the validators and the server.
const (
	// MaxTitleLength is the maximum task title length.
	MaxTitleLength = 255

	// MaxDescriptionLength is the maximum task description length.
	MaxDescriptionLength = 1000

	// MaxNameLength is the maximum user name length.
	MaxNameLength = 255

	// MinPasswordLength is the minimum password length.
	MinPasswordLength = 8
)

// API path constants.
const (
	// APIPathTasks is the tasks collection endpoint.
	APIPathTasks = "/api/tasks"

	// APIPathHealth is the health check endpoint.
	APIPathHealth = "/api/health"
)
