// Package state provides in-memory managers that mirror server-owned
// resources. The mirrors follow a confirmed-first policy: local state
// changes only after the server acknowledges a write, never before.
package state

import (
	"context"
	"sync"

	"github.com/taskhub-io/taskhub-client/pkg/taskapi"
)

// Auth tracks the current user for one client session. At most one user is
// held at a time; the slot is cleared on sign-out or a failed session
// check. Safe for concurrent use.
type Auth struct {
	mutex   sync.RWMutex
	client  taskapi.Client
	user    *taskapi.User
	lastErr string
}

// NewAuth creates an auth manager over the given client.
func NewAuth(client taskapi.Client) *Auth {
	return &Auth{client: client}
}

// Restore checks whether the session token held by the client still
// identifies a user. A missing token or any failure yields the anonymous
// state: the token is cleared and no error is returned. Startup must never
// fail loudly on a stale session.
func (a *Auth) Restore(ctx context.Context) {
	if a.client.Token() == "" {
		a.setUser(nil)

		return
	}

	user, err := a.client.Auth().Me(ctx)
	if err != nil {
		a.client.ClearToken()
		a.setUser(nil)

		return
	}

	a.setUser(user)
}

// SignUp registers a new account and records it as the current user.
func (a *Auth) SignUp(ctx context.Context, email, password, name string) error {
	resp, err := a.client.Auth().Signup(ctx, email, password, name)
	if err != nil {
		a.recordError(err)

		return err
	}

	a.setUser(&taskapi.User{ID: resp.ID, Email: resp.Email, Name: resp.Name})

	return nil
}

// SignIn authenticates and records the current user.
func (a *Auth) SignIn(ctx context.Context, email, password string) error {
	resp, err := a.client.Auth().Signin(ctx, email, password)
	if err != nil {
		a.recordError(err)

		return err
	}

	a.setUser(&taskapi.User{ID: resp.ID, Email: resp.Email, Name: resp.Name})

	return nil
}

// SignOut clears the current user and session token. The local state is
// cleared regardless of whether the server call succeeds; the error is
// still returned so callers can report it.
func (a *Auth) SignOut(ctx context.Context) error {
	_, err := a.client.Auth().Signout(ctx)

	a.setUser(nil)

	if err != nil {
		a.recordError(err)
	}

	return err
}

// RefreshToken renews the session token. On failure the current user is
// cleared: the session is no longer trustworthy.
func (a *Auth) RefreshToken(ctx context.Context) error {
	_, err := a.client.Auth().Refresh(ctx)
	if err != nil {
		a.setUser(nil)

		return err
	}

	return nil
}

// CurrentUser returns a copy of the current user, or nil when anonymous.
func (a *Auth) CurrentUser() *taskapi.User {
	a.mutex.RLock()
	defer a.mutex.RUnlock()

	if a.user == nil {
		return nil
	}

	user := *a.user

	return &user
}

// IsAuthenticated reports whether a current user is held.
func (a *Auth) IsAuthenticated() bool {
	a.mutex.RLock()
	defer a.mutex.RUnlock()

	return a.user != nil
}

// Err returns the message of the last failed operation, or the empty
// string. It is reset by the next successful sign-in or sign-up.
func (a *Auth) Err() string {
	a.mutex.RLock()
	defer a.mutex.RUnlock()

	return a.lastErr
}

func (a *Auth) setUser(user *taskapi.User) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	a.user = user
	a.lastErr = ""
}

func (a *Auth) recordError(err error) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	a.lastErr = err.Error()
}
