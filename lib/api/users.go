// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"

	"github.com/1111philo/htc-app/lib/schema"
)

// UsersPage is one page of the user listing.
type UsersPage struct {
	Rows  []schema.User `json:"rows"`
	Total int           `json:"total,omitempty"`
}

// AddUser creates a staff account and returns its new ID. This is the
// sign-up path, so it goes through the public (API-key) namespace;
// the caller has no bearer token yet. The password travels only to
// the backend, which registers the account with the identity provider.
func (client *Client) AddUser(ctx context.Context, user schema.User, password string) (int, error) {
	body := map[string]any{
		"name":     user.Name,
		"email":    user.Email,
		"role":     user.Role,
		"password": password,
	}

	var result struct {
		UserID int `json:"user_id"`
	}
	if err := client.postPublic(ctx, "/addUser", body, &result); err != nil {
		return 0, err
	}
	if result.UserID == 0 {
		return 0, &Error{Kind: KindServer, Path: "/addUser", Err: fmt.Errorf("response has no user_id")}
	}
	return result.UserID, nil
}

// UpdateUser updates a staff account's profile fields.
func (client *Client) UpdateUser(ctx context.Context, user schema.User) error {
	var envelope successEnvelope
	if err := client.postAuth(ctx, "/updateUser", user, &envelope); err != nil {
		return err
	}
	if !envelope.Success {
		return &Error{Kind: KindServer, Path: "/updateUser", StatusCode: 200, Err: fmt.Errorf("backend reported success=false")}
	}
	return nil
}

// DeleteUser removes a staff account.
func (client *Client) DeleteUser(ctx context.Context, userID int) error {
	var envelope successEnvelope
	if err := client.postAuth(ctx, "/deleteUser", map[string]any{"user_id": userID}, &envelope); err != nil {
		return err
	}
	if !envelope.Success {
		return &Error{Kind: KindServer, Path: "/deleteUser", StatusCode: 200, Err: fmt.Errorf("backend reported success=false")}
	}
	return nil
}

// GetUser fetches a staff account by the identity provider's subject
// identifier.
func (client *Client) GetUser(ctx context.Context, sub string) (*schema.User, error) {
	var user schema.User
	if err := client.postAuth(ctx, "/getUser", map[string]any{"sub": sub}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUsers fetches one page of the user listing. pageNum is 1-based.
func (client *Client) GetUsers(ctx context.Context, pageNum, limit int) (*UsersPage, error) {
	body := map[string]any{
		"offset": PageOffset(pageNum, limit),
		"limit":  limit,
	}

	var page UsersPage
	if err := client.postAuth(ctx, "/getUsers", body, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// SearchUsers fetches users matching a free-text query (first, last,
// dob, or id), unpaginated.
func (client *Client) SearchUsers(ctx context.Context, query string) (*UsersPage, error) {
	body := map[string]any{
		"query":  query,
		"offset": 0,
		"limit":  searchLimit,
	}

	var page UsersPage
	if err := client.postAuth(ctx, "/getUsers", body, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
