package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/taskhub-io/taskhub-client/pkg/taskapi"
	"github.com/taskhub-io/taskhub-client/pkg/validate"
)

// NewTasksCommand creates the tasks command group.
func NewTasksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"task"},
		Short:   "Manage tasks",
		Long:    "List, create, update, complete, and delete tasks",
	}

	cmd.AddCommand(newTasksListCommand())
	cmd.AddCommand(newTasksGetCommand())
	cmd.AddCommand(newTasksCreateCommand())
	cmd.AddCommand(newTasksUpdateCommand())
	cmd.AddCommand(newTasksCompleteCommand())
	cmd.AddCommand(newTasksDeleteCommand())

	return cmd
}

func parseTaskID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task ID %q: %w", arg, err)
	}

	return id, nil
}

func newTasksListCommand() *cobra.Command {
	var (
		status string
		sort   string
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long:  "List tasks with optional status filter, sorting, and paging",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateAuthenticatedClient(ctx)
			if err != nil {
				return err
			}

			list, err := client.Tasks().List(ctx, &taskapi.TaskListOptions{
				Status: status,
				Sort:   sort,
				Limit:  limit,
				Offset: offset,
			})
			if err != nil {
				return fmt.Errorf("failed to list tasks: %w", err)
			}

			return outputTaskList(list)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status (all, pending, completed)")
	cmd.Flags().StringVar(&sort, "sort", "", "sort order (created, updated, title)")
	cmd.Flags().IntVar(&limit, "limit", 0, "results per page")
	cmd.Flags().IntVar(&offset, "offset", 0, "paging offset")

	return cmd
}

func outputTaskList(list *taskapi.TaskList) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(list)
	case OutputFormatYAML:
		return StandardYAMLRenderer(list)
	default:
		return renderTaskTable(list)
	}
}

func renderTaskTable(list *taskapi.TaskList) error {
	if len(list.Items) == 0 {
		fmt.Println("No tasks found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Title", "Status", "Created")

	for _, task := range list.Items {
		status := "pending"
		if task.Completed {
			status = "completed"
		}

		_ = table.Append(strconv.FormatInt(task.ID, 10), task.Title, status, task.CreatedAt)
	}

	_ = table.Render()

	fmt.Printf("\nShowing %d of %d tasks\n", len(list.Items), list.Total)

	return nil
}

func newTasksGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TASK_ID",
		Short: "Show a task",
		Long:  "Show a single task by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()

			client, err := CreateAuthenticatedClient(ctx)
			if err != nil {
				return err
			}

			task, err := client.Tasks().Get(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get task: %w", err)
			}

			return outputTask(task)
		},
	}
}

func outputTask(task *taskapi.Task) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(task)
	case OutputFormatYAML:
		return StandardYAMLRenderer(task)
	default:
		status := "pending"
		if task.Completed {
			status = "completed"
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")

		_ = table.Append("ID", strconv.FormatInt(task.ID, 10))
		_ = table.Append("Title", task.Title)

		if task.Description != "" {
			_ = table.Append("Description", task.Description)
		}

		_ = table.Append("Status", status)
		_ = table.Append("Created", task.CreatedAt)
		_ = table.Append("Updated", task.UpdatedAt)

		_ = table.Render()

		return nil
	}
}

func newTasksCreateCommand() *cobra.Command {
	var (
		title       string
		description string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task",
		Long:  "Create a new task",
		RunE: func(cmd *cobra.Command, args []string) error {
			form := validate.CreateTaskForm{Title: title, Description: description}
			if errs := validate.CreateTask(form); len(errs) > 0 {
				return printValidationErrors(errs)
			}

			ctx := context.Background()

			client, err := CreateAuthenticatedClient(ctx)
			if err != nil {
				return err
			}

			task, err := client.Tasks().Create(ctx, &taskapi.TaskCreateRequest{
				Title:       title,
				Description: description,
			})
			if err != nil {
				return fmt.Errorf("failed to create task: %w", err)
			}

			fmt.Printf("Successfully created task %d\n", task.ID)

			return outputTask(task)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "task title (required)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "task description")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newTasksUpdateCommand() *cobra.Command {
	var (
		title       string
		description string
		completed   bool
	)

	cmd := &cobra.Command{
		Use:   "update TASK_ID",
		Short: "Update a task",
		Long:  "Update the title, description, or completion of a task; only changed flags are sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			form := validate.UpdateTaskForm{}
			if cmd.Flags().Changed("title") {
				form.Title = &title
			}

			if cmd.Flags().Changed("description") {
				form.Description = &description
			}

			if cmd.Flags().Changed("completed") {
				form.Completed = &completed
			}

			if errs := validate.UpdateTask(form); len(errs) > 0 {
				return printValidationErrors(errs)
			}

			ctx := context.Background()

			client, err := CreateAuthenticatedClient(ctx)
			if err != nil {
				return err
			}

			task, err := client.Tasks().Patch(ctx, id, &taskapi.TaskUpdateRequest{
				Title:       form.Title,
				Description: form.Description,
				Completed:   form.Completed,
			})
			if err != nil {
				return fmt.Errorf("failed to update task: %w", err)
			}

			fmt.Printf("Successfully updated task %d\n", task.ID)

			return outputTask(task)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new task title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "new task description")
	cmd.Flags().BoolVar(&completed, "completed", false, "completion state")

	return cmd
}

func newTasksCompleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "complete TASK_ID",
		Short: "Toggle task completion",
		Long:  "Flip a task between pending and completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()

			client, err := CreateAuthenticatedClient(ctx)
			if err != nil {
				return err
			}

			task, err := client.Tasks().ToggleComplete(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to toggle task: %w", err)
			}

			status := "pending"
			if task.Completed {
				status = "completed"
			}

			fmt.Printf("Task %d is now %s\n", task.ID, status)

			return nil
		},
	}
}

func newTasksDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete TASK_ID",
		Short: "Delete a task",
		Long:  "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			if !force {
				fmt.Printf("Really delete task %d? (y/N): ", id)

				var response string

				_, _ = fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					fmt.Println("Cancelled")

					return nil
				}
			}

			ctx := context.Background()

			client, err := CreateAuthenticatedClient(ctx)
			if err != nil {
				return err
			}

			err = client.Tasks().Delete(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to delete task: %w", err)
			}

			fmt.Printf("Successfully deleted task %d\n", id)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}
