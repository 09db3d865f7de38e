package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// APIError is a non-2xx answer of the API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api returned %d: %s", e.Status, e.Message)
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Client talks to the FastAuth HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, "/login", "", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *Client) Register(ctx context.Context, name, email, password string) error {
	return c.do(ctx, http.MethodPost, "/register", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, nil)
}

func (c *Client) RecoverPassword(ctx context.Context, email string) error {
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	err := c.do(ctx, http.MethodPost, "/recover-password", "", map[string]string{
		"email": email,
	}, &resp)
	if err != nil {
		return err
	}
	if !resp.Success {
		return &APIError{Status: http.StatusOK, Message: resp.Message}
	}
	return nil
}

func (c *Client) Profile(ctx context.Context, token string) (Profile, error) {
	var profile Profile
	if err := c.do(ctx, http.MethodGet, "/user-profile", token, nil, &profile); err != nil {
		return Profile{}, err
	}
	return profile, nil
}

// UpdateProfile saves the account and returns the token that replaces the current one.
func (c *Client) UpdateProfile(ctx context.Context, token, name, email, password string) (string, error) {
	body := map[string]string{
		"name":  name,
		"email": email,
	}
	if password != "" {
		body["password"] = password
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPut, "/users", token, body, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *Client) DeleteAccount(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodDelete, "/users", token, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path, token string, in any, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		raw, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(raw, &eb) != nil {
			eb.Message = string(raw)
		}
		msg := eb.Error
		if msg == "" {
			msg = eb.Message
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
