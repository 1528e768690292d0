package apisvc

import (
	"context"
	"net/http"
	"strconv"

	"github.com/pkg/errors"

	"github.com/medhistory/medhistory/core/user"
)

// LoginResponse is the token + user summary echoed by POST /login.
type LoginResponse struct {
	Token string    `json:"token"`
	User  user.User `json:"user"`
}

// Login exchanges credentials for a bearer token. Unauthenticated by nature.
func (c *Client) Login(ctx context.Context, creds user.Credentials) (LoginResponse, error) {
	var res LoginResponse
	err := c.request(ctx, http.MethodPost, "/login", creds, &res, false)
	return res, errors.Wrap(err, "logging in")
}

// Register creates an account through the admin-only registration endpoint.
// The caller's bearer token must belong to an admin; enforcement is server-side.
func (c *Client) Register(ctx context.Context, nu user.NewUser) (user.User, error) {
	var usr user.User
	err := c.post(ctx, "/register", nu, &usr)
	return usr, errors.Wrap(err, "registering user")
}

// Users lists all accounts (admin).
func (c *Client) Users(ctx context.Context) ([]user.User, error) {
	var users []user.User
	err := c.get(ctx, "/users", &users)
	return users, errors.Wrap(err, "listing users")
}

// CreateUser creates an account (admin).
func (c *Client) CreateUser(ctx context.Context, nu user.NewUser) (user.User, error) {
	var usr user.User
	err := c.post(ctx, "/users", nu, &usr)
	return usr, errors.Wrap(err, "creating user")
}

// DeleteUser removes an account (admin).
func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return errors.Wrap(c.delete(ctx, "/user/"+strconv.Itoa(id)), "deleting user")
}

// Doctors lists doctor accounts, used to pick a consultation's assignee.
func (c *Client) Doctors(ctx context.Context) ([]user.User, error) {
	var doctors []user.User
	err := c.get(ctx, "/doctors", &doctors)
	return doctors, errors.Wrap(err, "listing doctors")
}
