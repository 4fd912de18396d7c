package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/taskhub-io/taskhub-client/internal/auth"
	"github.com/taskhub-io/taskhub-client/internal/constants"
	"github.com/taskhub-io/taskhub-client/internal/http"
	"github.com/taskhub-io/taskhub-client/internal/wire"
	"github.com/taskhub-io/taskhub-client/pkg/taskapi"
)

// AuthClient implements taskapi.AuthClient.
type AuthClient struct {
	httpClient *http.Client
	session    *auth.Session
}

// NewAuthClient creates a new auth client.
func NewAuthClient(httpClient *http.Client, session *auth.Session) *AuthClient {
	return &AuthClient{
		httpClient: httpClient,
		session:    session,
	}
}

// signupRequest is the signup/signin request body.
type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// authWireResponse is the raw auth response. Older server versions issue
// the token under "token" instead of "access_token"; both are accepted.
type authWireResponse struct {
	AccessToken string `json:"access_token"`
	Token       string `json:"token"`
	User        struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"user"`
}

// issuedToken returns the token under whichever field name the server used.
func (r *authWireResponse) issuedToken() string {
	if r.AccessToken != "" {
		return r.AccessToken
	}

	return r.Token
}

// Signup implements taskapi.AuthClient.Signup.
func (c *AuthClient) Signup(ctx context.Context, email, password, name string) (*taskapi.AuthResponse, error) {
	resp, err := c.httpClient.Post(ctx, "/api/auth/signup", &signupRequest{
		Email:    email,
		Password: password,
		Name:     name,
	})
	if err != nil {
		return nil, fmt.Errorf("signing up: %w", err)
	}

	return c.storeAuthResponse(resp.Body, email, name)
}

// Signin implements taskapi.AuthClient.Signin. Email and password are
// trimmed of surrounding whitespace before being sent.
func (c *AuthClient) Signin(ctx context.Context, email, password string) (*taskapi.AuthResponse, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)

	resp, err := c.httpClient.Post(ctx, "/api/auth/signin", &signupRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("signing in: %w", err)
	}

	return c.storeAuthResponse(resp.Body, email, "")
}

// storeAuthResponse extracts the issued token, stores it in the session,
// and normalizes the response. The server omits an expiry, so the fixed
// token lifetime is reported.
func (c *AuthClient) storeAuthResponse(body []byte, fallbackEmail, fallbackName string) (*taskapi.AuthResponse, error) {
	var wireResp authWireResponse

	err := json.Unmarshal(body, &wireResp)
	if err != nil {
		return nil, fmt.Errorf("parsing auth response: %w", err)
	}

	token := wireResp.issuedToken()
	if token != "" {
		c.session.SetToken(token)
	}

	authResp := &taskapi.AuthResponse{
		ID:        wireResp.User.ID,
		Email:     wireResp.User.Email,
		Name:      wireResp.User.Name,
		Token:     token,
		ExpiresIn: constants.TokenTTLSeconds,
	}

	if authResp.Email == "" {
		authResp.Email = fallbackEmail
	}

	if authResp.Name == "" {
		authResp.Name = fallbackName
	}

	return authResp, nil
}

// Me implements taskapi.AuthClient.Me.
func (c *AuthClient) Me(ctx context.Context) (*taskapi.User, error) {
	resp, err := c.httpClient.Get(ctx, "/api/auth/me", nil)
	if err != nil {
		return nil, fmt.Errorf("getting current user: %w", err)
	}

	body, err := wire.CamelizeJSON(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("converting user response: %w", err)
	}

	var user taskapi.User

	err = json.Unmarshal(body, &user)
	if err != nil {
		return nil, fmt.Errorf("parsing user response: %w", err)
	}

	return &user, nil
}

// Refresh implements taskapi.AuthClient.Refresh.
func (c *AuthClient) Refresh(ctx context.Context) (*taskapi.RefreshResponse, error) {
	resp, err := c.httpClient.Post(ctx, "/api/auth/refresh", struct{}{})
	if err != nil {
		return nil, fmt.Errorf("refreshing token: %w", err)
	}

	var refresh taskapi.RefreshResponse

	err = json.Unmarshal(resp.Body, &refresh)
	if err != nil {
		return nil, fmt.Errorf("parsing refresh response: %w", err)
	}

	if refresh.Token != "" {
		c.session.SetToken(refresh.Token)
	}

	return &refresh, nil
}

// Signout implements taskapi.AuthClient.Signout. The local token is
// cleared even when the server call fails: local logout must succeed
// regardless of server reachability.
func (c *AuthClient) Signout(ctx context.Context) (*taskapi.SignoutResponse, error) {
	defer c.session.Clear()

	resp, err := c.httpClient.Post(ctx, "/api/auth/signout", struct{}{})
	if err != nil {
		return nil, fmt.Errorf("signing out: %w", err)
	}

	var signout taskapi.SignoutResponse

	err = json.Unmarshal(resp.Body, &signout)
	if err != nil {
		return nil, fmt.Errorf("parsing signout response: %w", err)
	}

	return &signout, nil
}
