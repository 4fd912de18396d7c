package state

import (
	"context"
	"sync"

	"github.com/taskhub-io/taskhub-client/pkg/taskapi"
)

// Tasks mirrors the server's task collection for one client session. Every
// mutation calls the server first and applies the result locally only after
// the call resolves; a failed call leaves the mirror untouched. Safe for
// concurrent use.
type Tasks struct {
	mutex  sync.RWMutex
	client taskapi.Client
	tasks  []taskapi.Task
	total  int
}

// NewTasks creates a task manager over the given client.
func NewTasks(client taskapi.Client) *Tasks {
	return &Tasks{client: client}
}

// Fetch loads the task list from the server and replaces the mirror.
func (t *Tasks) Fetch(ctx context.Context, opts *taskapi.TaskListOptions) error {
	list, err := t.client.Tasks().List(ctx, opts)
	if err != nil {
		return err
	}

	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.tasks = list.Items
	t.total = list.Total

	return nil
}

// Create creates a task on the server and prepends the returned copy, so
// the newest task is first.
func (t *Tasks) Create(ctx context.Context, request *taskapi.TaskCreateRequest) (*taskapi.Task, error) {
	task, err := t.client.Tasks().Create(ctx, request)
	if err != nil {
		return nil, err
	}

	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.tasks = append([]taskapi.Task{*task}, t.tasks...)
	t.total++

	return task, nil
}

// Update updates a task on the server and replaces the local copy with the
// server-returned one.
func (t *Tasks) Update(ctx context.Context, id int64, request *taskapi.TaskUpdateRequest) (*taskapi.Task, error) {
	task, err := t.client.Tasks().Patch(ctx, id, request)
	if err != nil {
		return nil, err
	}

	t.replace(task)

	return task, nil
}

// Toggle flips a task's completion on the server and replaces the local
// copy with the server-returned one.
func (t *Tasks) Toggle(ctx context.Context, id int64) (*taskapi.Task, error) {
	task, err := t.client.Tasks().ToggleComplete(ctx, id)
	if err != nil {
		return nil, err
	}

	t.replace(task)

	return task, nil
}

// Delete deletes a task on the server and removes it from the mirror after
// the call resolves.
func (t *Tasks) Delete(ctx context.Context, id int64) error {
	err := t.client.Tasks().Delete(ctx, id)
	if err != nil {
		return err
	}

	t.mutex.Lock()
	defer t.mutex.Unlock()

	for i := range t.tasks {
		if t.tasks[i].ID == id {
			t.tasks = append(t.tasks[:i], t.tasks[i+1:]...)

			break
		}
	}

	if t.total > 0 {
		t.total--
	}

	return nil
}

// Get returns a copy of the mirrored task with the given id, without
// calling the server.
func (t *Tasks) Get(id int64) (*taskapi.Task, bool) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	for i := range t.tasks {
		if t.tasks[i].ID == id {
			task := t.tasks[i]

			return &task, true
		}
	}

	return nil, false
}

// All returns a copy of the mirrored task list.
func (t *Tasks) All() []taskapi.Task {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	tasks := make([]taskapi.Task, len(t.tasks))
	copy(tasks, t.tasks)

	return tasks
}

// Total returns the server-reported total, which may exceed the number of
// mirrored tasks when the list is paginated.
func (t *Tasks) Total() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.total
}

func (t *Tasks) replace(task *taskapi.Task) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	for i := range t.tasks {
		if t.tasks[i].ID == task.ID {
			t.tasks[i] = *task

			return
		}
	}
}
