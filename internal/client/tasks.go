package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/taskhub-io/taskhub-client/internal/constants"
	"github.com/taskhub-io/taskhub-client/internal/http"
	"github.com/taskhub-io/taskhub-client/internal/wire"
	"github.com/taskhub-io/taskhub-client/pkg/taskapi"
)

// TasksClient implements taskapi.TasksClient.
type TasksClient struct {
	httpClient *http.Client
}

// NewTasksClient creates a new tasks client.
func NewTasksClient(httpClient *http.Client) *TasksClient {
	return &TasksClient{
		httpClient: httpClient,
	}
}

func taskPath(id int64) string {
	return constants.APIPathTasks + "/" + strconv.FormatInt(id, 10)
}

// decodeTask converts a wire task body to camelCase and decodes it.
func decodeTask(body []byte) (*taskapi.Task, error) {
	converted, err := wire.CamelizeJSON(body)
	if err != nil {
		return nil, fmt.Errorf("converting task response: %w", err)
	}

	var task taskapi.Task

	err = json.Unmarshal(converted, &task)
	if err != nil {
		return nil, fmt.Errorf("parsing task response: %w", err)
	}

	return &task, nil
}

// wrappedTaskList is the object form of a list response.
type wrappedTaskList struct {
	Items  []taskapi.Task `json:"items"`
	Total  *int           `json:"total"`
	Limit  *int           `json:"limit"`
	Offset *int           `json:"offset"`
}

// List implements taskapi.TasksClient.List. The server may answer with a
// bare task array or a wrapped {items, total, limit, offset} object; both
// are normalized into a TaskList, defaulting total to the item count and
// echoing the requested limit/offset when the server omits them.
func (c *TasksClient) List(ctx context.Context, opts *taskapi.TaskListOptions) (*taskapi.TaskList, error) {
	query := opts.ToValues()

	resp, err := c.httpClient.Get(ctx, constants.APIPathTasks, query)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	converted, err := wire.CamelizeJSON(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("converting tasks response: %w", err)
	}

	requestedLimit, _ := strconv.Atoi(query.Get("limit"))
	requestedOffset, _ := strconv.Atoi(query.Get("offset"))

	list := &taskapi.TaskList{
		Limit:  requestedLimit,
		Offset: requestedOffset,
	}

	if bytes.HasPrefix(bytes.TrimSpace(converted), []byte("[")) {
		err = json.Unmarshal(converted, &list.Items)
		if err != nil {
			return nil, fmt.Errorf("parsing tasks response: %w", err)
		}

		list.Total = len(list.Items)

		return list, nil
	}

	var wrapped wrappedTaskList

	err = json.Unmarshal(converted, &wrapped)
	if err != nil {
		return nil, fmt.Errorf("parsing tasks response: %w", err)
	}

	list.Items = wrapped.Items
	if list.Items == nil {
		list.Items = []taskapi.Task{}
	}

	list.Total = len(list.Items)
	if wrapped.Total != nil {
		list.Total = *wrapped.Total
	}

	if wrapped.Limit != nil {
		list.Limit = *wrapped.Limit
	}

	if wrapped.Offset != nil {
		list.Offset = *wrapped.Offset
	}

	return list, nil
}

// Get implements taskapi.TasksClient.Get.
func (c *TasksClient) Get(ctx context.Context, id int64) (*taskapi.Task, error) {
	resp, err := c.httpClient.Get(ctx, taskPath(id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting task: %w", err)
	}

	return decodeTask(resp.Body)
}

// Create implements taskapi.TasksClient.Create.
func (c *TasksClient) Create(ctx context.Context, request *taskapi.TaskCreateRequest) (*taskapi.Task, error) {
	resp, err := c.httpClient.Post(ctx, constants.APIPathTasks, request)
	if err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}

	return decodeTask(resp.Body)
}

// Update implements taskapi.TasksClient.Update (full replace).
func (c *TasksClient) Update(ctx context.Context, id int64, request *taskapi.TaskUpdateRequest) (*taskapi.Task, error) {
	resp, err := c.httpClient.Put(ctx, taskPath(id), request)
	if err != nil {
		return nil, fmt.Errorf("updating task: %w", err)
	}

	return decodeTask(resp.Body)
}

// Patch implements taskapi.TasksClient.Patch (partial update).
func (c *TasksClient) Patch(ctx context.Context, id int64, request *taskapi.TaskUpdateRequest) (*taskapi.Task, error) {
	resp, err := c.httpClient.Patch(ctx, taskPath(id), request)
	if err != nil {
		return nil, fmt.Errorf("patching task: %w", err)
	}

	return decodeTask(resp.Body)
}

// ToggleComplete implements taskapi.TasksClient.ToggleComplete.
func (c *TasksClient) ToggleComplete(ctx context.Context, id int64) (*taskapi.Task, error) {
	resp, err := c.httpClient.Patch(ctx, taskPath(id)+"/complete", struct{}{})
	if err != nil {
		return nil, fmt.Errorf("toggling task: %w", err)
	}

	return decodeTask(resp.Body)
}

// Delete implements taskapi.TasksClient.Delete.
func (c *TasksClient) Delete(ctx context.Context, id int64) error {
	_, err := c.httpClient.Delete(ctx, taskPath(id))
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}

	return nil
}
