// Package authn wraps the backend platform's email/password authentication
// behind a typed client with explicit signed-in/signed-out state.
package authn

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-resty/resty/v2"

	appLog "tripkit/internal/log"
)

// User is an authenticated account.
type User struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name,omitempty"`
}

// State is the authentication state handed to listeners. User is nil when
// signed out; there is no untyped "whatever the platform sent" variant.
type State struct {
	User *User
}

// Client talks to the platform's auth endpoints and tracks the current
// session.
type Client struct {
	api *resty.Client

	mu        sync.Mutex
	token     string
	user      *User
	listeners []func(State)
}

// New builds an auth client for the given platform endpoint.
func New(baseURL, apiKey string) *Client {
	return &Client{
		api: resty.New().
			SetBaseURL(baseURL).
			SetHeader("X-Api-Key", apiKey).
			SetHeader("Content-Type", "application/json"),
	}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Login signs in with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (User, error) {
	return c.createSession(ctx, "/auth/login", email, password)
}

// Register creates an account and signs it in.
func (c *Client) Register(ctx context.Context, email, password string) (User, error) {
	return c.createSession(ctx, "/auth/register", email, password)
}

func (c *Client) createSession(ctx context.Context, path, email, password string) (User, error) {
	var out sessionResponse
	resp, err := c.api.R().
		SetContext(ctx).
		SetBody(credentials{Email: email, Password: password}).
		SetResult(&out).
		Post(path)
	if err != nil {
		return User{}, err
	}
	if resp.IsError() {
		return User{}, fmt.Errorf("authn %s: HTTP %d: %s", path, resp.StatusCode(), resp.String())
	}

	c.mu.Lock()
	c.token = out.Token
	u := out.User
	c.user = &u
	c.mu.Unlock()

	appLog.Info("authn signed in", "uid", out.User.UID)
	c.notify()
	return out.User, nil
}

// Logout ends the current session. Without a session it is a no-op.
func (c *Client) Logout(ctx context.Context) error {
	c.mu.Lock()
	token := c.token
	c.mu.Unlock()
	if token == "" {
		return nil
	}

	resp, err := c.api.R().
		SetContext(ctx).
		SetAuthToken(token).
		Post("/auth/logout")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("authn logout: HTTP %d: %s", resp.StatusCode(), resp.String())
	}

	c.mu.Lock()
	c.token = ""
	c.user = nil
	c.mu.Unlock()

	appLog.Info("authn signed out")
	c.notify()
	return nil
}

// Current returns the present authentication state.
func (c *Client) Current() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{User: c.user}
}

// OnStateChange registers a listener invoked after every sign-in and
// sign-out, starting with the current state.
func (c *Client) OnStateChange(fn func(State)) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	c.listeners = append(c.listeners, fn)
	state := State{User: c.user}
	c.mu.Unlock()

	fn(state)
}

func (c *Client) notify() {
	c.mu.Lock()
	listeners := append([]func(State){}, c.listeners...)
	state := State{User: c.user}
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(state)
	}
}
