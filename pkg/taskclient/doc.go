// Package taskclient provides the primary entry point for constructing a
// TaskHub API client that implements the taskapi.Client interface.
//
// It layers configuration, HTTP transport, and session handling on top of
// the resource interfaces and types defined in the taskapi package. Most
// applications should import taskclient to build a client, then use the
// returned taskapi.Client to access Auth() and Tasks().
//
// Quick start
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
//
//	  // Minimal: just an API endpoint (anonymous session).
//	  cli, err := taskclient.New(ctx, &taskapi.Config{APIEndpoint: "https://api.example.com"})
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with a session token you already have:
//	  cli, err = taskclient.New(ctx, &taskapi.Config{
//	    APIEndpoint: "https://api.example.com",
//	    AccessToken: "eyJhbGciOi...", // bearer token
//	  })
//
//	  // Sign in to obtain and store a token on the session:
//	  _, err = cli.Auth().Signin(ctx, "you@example.com", "password")
//	  if err != nil { log.Fatal(err) }
//
//	  tasks, err := cli.Tasks().List(ctx, nil)
//	  _ = tasks
//	}
//
// The endpoint is normalized before use: a trailing slash is trimmed and
// https:// is assumed when no scheme is given. The constructors
// NewWithEndpoint and NewWithToken cover the two common cases without
// building a Config by hand.
package taskclient
