package taskapi

import (
	"net/url"
	"strconv"
)

// User represents the authenticated account.
//
// Field names follow the client's camelCase convention; wire responses are
// converted from snake_case before decoding.
type User struct {
	ID        string `json:"id"                  yaml:"id"`
	Email     string `json:"email"               yaml:"email"`
	Name      string `json:"name,omitempty"      yaml:"name,omitempty"`
	CreatedAt string `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
}

// Task represents a single task owned by the current user.
type Task struct {
	ID          int64  `json:"id"                    yaml:"id"`
	Title       string `json:"title"                 yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Completed   bool   `json:"completed"             yaml:"completed"`
	CreatedAt   string `json:"createdAt"             yaml:"createdAt"`
	UpdatedAt   string `json:"updatedAt"             yaml:"updatedAt"`
}

// TaskList is the normalized shape of a list response. The server may reply
// with a bare array or with a wrapped object; the tasks client folds both
// into this structure.
type TaskList struct {
	Items  []Task `json:"items"  yaml:"items"`
	Total  int    `json:"total"  yaml:"total"`
	Limit  int    `json:"limit"  yaml:"limit"`
	Offset int    `json:"offset" yaml:"offset"`
}

// TaskCreateRequest is the body for creating a task.
type TaskCreateRequest struct {
	Title       string `json:"title"                 yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// TaskUpdateRequest is the body for updating a task. All fields are
// optional; absent fields are omitted from the request body.
type TaskUpdateRequest struct {
	Title       *string `json:"title,omitempty"       yaml:"title,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"   yaml:"completed,omitempty"`
}

// AuthResponse is the normalized result of signup and signin.
type AuthResponse struct {
	ID        string `json:"id"             yaml:"id"`
	Email     string `json:"email"          yaml:"email"`
	Name      string `json:"name,omitempty" yaml:"name,omitempty"`
	Token     string `json:"token"          yaml:"token"`
	ExpiresIn int    `json:"expiresIn"      yaml:"expiresIn"`
}

// RefreshResponse is the result of a token refresh.
type RefreshResponse struct {
	Token     string `json:"token"     yaml:"token"`
	ExpiresIn int    `json:"expiresIn" yaml:"expiresIn"`
}

// SignoutResponse is the server acknowledgement of a signout.
type SignoutResponse struct {
	Status  string `json:"status"  yaml:"status"`
	Message string `json:"message" yaml:"message"`
}

// Health is the /api/health response.
type Health struct {
	Status  string `json:"status"  yaml:"status"`
	Version string `json:"version" yaml:"version"`
}

// Task status filter values.
const (
	TaskStatusAll       = "all"
	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
)

// Task sort values.
const (
	TaskSortCreated = "created"
	TaskSortTitle   = "title"
	TaskSortUpdated = "updated"
)

// TaskListOptions carries the filter, sort, and paging parameters for
// listing tasks. Zero values fall back to the API defaults (status "all",
// sort "created", limit 20, offset 0).
type TaskListOptions struct {
	Status string
	Sort   string
	Limit  int
	Offset int
}

// ToValues converts the options to URL query values, applying defaults for
// unset fields.
func (o *TaskListOptions) ToValues() url.Values {
	values := url.Values{}

	status := TaskStatusAll
	sort := TaskSortCreated
	limit := 20
	offset := 0

	if o != nil {
		if o.Status != "" {
			status = o.Status
		}

		if o.Sort != "" {
			sort = o.Sort
		}

		if o.Limit > 0 {
			limit = o.Limit
		}

		if o.Offset > 0 {
			offset = o.Offset
		}
	}

	values.Set("status", status)
	values.Set("sort", sort)
	values.Set("limit", strconv.Itoa(limit))
	values.Set("offset", strconv.Itoa(offset))

	return values
}
