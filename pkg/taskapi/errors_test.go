package taskapi_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskhub-io/taskhub-client/pkg/taskapi"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		statusCode   int
		body         string
		transportErr error
		wantCode     string
		wantMessage  string
	}{
		{
			name:        "detail field wins",
			statusCode:  404,
			body:        `{"detail": "Task not found", "message": "ignored"}`,
			wantCode:    "404",
			wantMessage: "Task not found",
		},
		{
			name:        "message field as fallback",
			statusCode:  500,
			body:        `{"message": "Something broke"}`,
			wantCode:    "500",
			wantMessage: "Something broke",
		},
		{
			name:        "non-string detail is skipped",
			statusCode:  422,
			body:        `{"detail": [{"loc": ["title"]}], "message": "Validation failed"}`,
			wantCode:    "422",
			wantMessage: "Validation failed",
		},
		{
			name:         "non-generic transport message surfaces",
			statusCode:   0,
			transportErr: errors.New("connection refused"),
			wantCode:     taskapi.CodeUnknown,
			wantMessage:  "connection refused",
		},
		{
			name:         "generic transport message falls through to status",
			statusCode:   502,
			transportErr: errors.New("Network Error"),
			wantCode:     "502",
			wantMessage:  "Error: 502",
		},
		{
			name:         "generic transport message without status",
			statusCode:   0,
			transportErr: errors.New("Network Error"),
			wantCode:     taskapi.CodeUnknown,
			wantMessage:  "Error: Network error",
		},
		{
			name:        "unparseable body falls through to status",
			statusCode:  500,
			body:        "<html>Internal Server Error</html>",
			wantCode:    "500",
			wantMessage: "Error: 500",
		},
		{
			name:        "empty everything without status",
			statusCode:  0,
			wantCode:    taskapi.CodeUnknown,
			wantMessage: "Error: Network error",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			apiErr := taskapi.Normalize(testCase.statusCode, []byte(testCase.body), testCase.transportErr)
			require.NotNil(t, apiErr)
			assert.Equal(t, "error", apiErr.Status)
			assert.Equal(t, testCase.wantCode, apiErr.Code)
			assert.Equal(t, testCase.wantMessage, apiErr.Message)
		})
	}
}

func TestNormalize_Details(t *testing.T) {
	t.Parallel()

	body := `{"message": "Validation failed", "details": [{"field": "title", "message": "Title is required"}], "timestamp": "2024-01-01T00:00:00Z"}`
	apiErr := taskapi.Normalize(422, []byte(body), nil)

	require.Len(t, apiErr.Details, 1)
	assert.Equal(t, "title", apiErr.Details[0].Field)
	assert.Equal(t, "Title is required", apiErr.Details[0].Message)
	assert.Equal(t, "2024-01-01T00:00:00Z", apiErr.Timestamp)
}

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	apiErr := taskapi.Normalize(404, []byte(`{"detail": "Task not found"}`), nil)
	assert.Equal(t, "Task not found (code: 404)", apiErr.Error())
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()

	unauthorized := taskapi.Normalize(401, nil, nil)
	notFound := taskapi.Normalize(404, nil, nil)
	validation := taskapi.Normalize(422, nil, nil)

	assert.True(t, taskapi.IsUnauthorized(unauthorized))
	assert.False(t, taskapi.IsUnauthorized(notFound))

	assert.True(t, taskapi.IsNotFound(notFound))
	assert.False(t, taskapi.IsNotFound(unauthorized))

	assert.True(t, taskapi.IsValidation(validation))
	assert.False(t, taskapi.IsValidation(notFound))

	withDetails := taskapi.Normalize(400, []byte(`{"details": [{"field": "title", "message": "required"}]}`), nil)
	assert.True(t, taskapi.IsValidation(withDetails))

	assert.False(t, taskapi.IsUnauthorized(errors.New("plain error")))
}
