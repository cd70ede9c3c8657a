package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the task API. One HTTP request per operation, no retries;
// any non-2xx response is surfaced as an error carrying the server message.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken sets the Bearer token attached to subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

type apiError struct {
	Message string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	return c.doStatus(ctx, method, path, body, out, nil)
}

// doStatus issues one request. accept lists extra status codes that should be
// decoded into out instead of treated as failures.
func (c *Client) doStatus(ctx context.Context, method, path string, body, out interface{}, accept []int) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	for _, code := range accept {
		if resp.StatusCode == code {
			ok = true
		}
	}
	if !ok {
		raw, _ := io.ReadAll(resp.Body)
		var apiErr apiError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("%s %s failed %d: %s", method, path, resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("%s %s failed %d: %s", method, path, resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Login authenticates and stores the returned token on the client.
func (c *Client) Login(ctx context.Context, username, password string) error {
	var result struct {
		Token string `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, "/login", map[string]string{
		"username": username,
		"password": password,
	}, &result)
	if err != nil {
		return err
	}
	c.token = result.Token
	return nil
}

func (c *Client) ListTasks(ctx context.Context) ([]Task, error) {
	var tasks []Task
	err := c.do(ctx, http.MethodGet, "/api/tasks", nil, &tasks)
	return tasks, err
}

func (c *Client) CreateTask(ctx context.Context, data TaskCreate) (*Task, error) {
	var task Task
	err := c.do(ctx, http.MethodPost, "/api/tasks", data, &task)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) UpdateTask(ctx context.Context, id int64, partial TaskUpdate) (*Task, error) {
	var task Task
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/tasks/%d", id), partial, &task)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	var confirmation struct {
		Message string `json:"message"`
	}
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", id), nil, &confirmation)
}

func (c *Client) GetStats(ctx context.Context) (*Stats, error) {
	var stats Stats
	err := c.do(ctx, http.MethodGet, "/api/stats", nil, &stats)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetHealth probes /health. A 503 is still a valid health payload (the
// unhealthy state), not a transport failure.
func (c *Client) GetHealth(ctx context.Context) (*Health, error) {
	var health Health
	err := c.doStatus(ctx, http.MethodGet, "/health", nil, &health,
		[]int{http.StatusServiceUnavailable})
	if err != nil {
		return nil, err
	}
	return &health, nil
}
