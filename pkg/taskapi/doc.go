// Package taskapi provides types, interfaces, and helpers for working with
// the TaskHub API.
//
// # Overview
//
// The taskapi package defines the domain types (e.g., User, Task, TaskList)
// and the interfaces for resource-oriented clients (AuthClient,
// TasksClient). A concrete implementation of these clients is provided by
// the taskclient package, which wires configuration, transport, and session
// handling. Most consumers should import taskclient to construct a client
// and then interact with the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/taskhub-io/taskhub-client/pkg/taskapi"
//	  "github.com/taskhub-io/taskhub-client/pkg/taskclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := taskclient.New(ctx, &taskapi.Config{APIEndpoint: "https://api.example.com"})
//	  if err != nil { log.Fatal(err) }
//
//	  // List pending tasks, newest first
//	  tasks, err := cli.Tasks().List(ctx, &taskapi.TaskListOptions{
//	    Status: taskapi.TaskStatusPending,
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = tasks
//	}
//
// # Errors
//
// API errors are represented by APIError, which carries the HTTP status,
// a machine-readable code, and a normalized human-readable message.
// Helpers such as IsUnauthorized, IsNotFound, and IsValidation make it easy
// to branch on common error cases.
//
// # Interceptors
//
// Request and response interceptors can observe or mutate traffic at the
// transport level. LoggingInterceptor, HeaderInterceptor, and
// RequestIDInterceptor cover the common cases; custom interceptors are
// plain functions on Request and Response.
package taskapi
