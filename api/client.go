package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/vlctrack/vlctrack/history"
)

// Client edits the history through the API of a running watcher, so a
// second process never writes the store behind the watcher's back.
type Client struct {
	base   string
	client *http.Client
}

func NewClient(addr string) *Client {
	return &Client{
		base:   "http://" + addr + "/api/v1",
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

// Health succeeds when a watcher answers on the address.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil)
}

func (c *Client) Delete(ctx context.Context, path string, removeFile bool) error {
	return c.do(ctx, http.MethodDelete, "/history", url.Values{
		"file":   {path},
		"remove": {strconv.FormatBool(removeFile)},
	})
}

func (c *Client) Clear(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/history", url.Values{"all": {"true"}})
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values) error {
	target := c.base + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusBadRequest {
		return nil
	}

	var body ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("%s %s: %s", method, path, resp.Status)
	}

	if body.Error.Code == codeDeletionFailed {
		return &history.DeletionError{File: body.Error.File, Err: errors.New(body.Error.Message)}
	}

	return fmt.Errorf("%s %s: %s", method, path, body.Error.Message)
}
