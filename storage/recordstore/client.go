// Package recordstore implements the HTTP client for the remote record store,
// a collection-per-resource CRUD service (see apps/devstore for the reference
// implementation).
package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/Lemoonautt/Unigestion-PJ/core"
	"github.com/Lemoonautt/Unigestion-PJ/core/academic"
)

// StatusError is returned when the store answers with a non-2xx status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("record store returned %d: %s", e.Code, e.Body)
}

type Client struct {
	baseURL string
	http    *http.Client
}

var _ academic.Store = (*Client)(nil)

func NewClient(conf core.StoreConfig) *Client {
	return &Client{
		baseURL: conf.BaseURL,
		http:    &http.Client{Timeout: conf.Timeout},
	}
}

func (c *Client) List(ctx context.Context, resource string, out interface{}) error {
	return c.do(ctx, http.MethodGet, c.url(resource), nil, out)
}

func (c *Client) Get(ctx context.Context, resource, id string, out interface{}) error {
	return c.do(ctx, http.MethodGet, c.url(resource, id), nil, out)
}

func (c *Client) Create(ctx context.Context, resource string, in, out interface{}) error {
	return c.do(ctx, http.MethodPost, c.url(resource), in, out)
}

func (c *Client) Patch(ctx context.Context, resource, id string, in, out interface{}) error {
	return c.do(ctx, http.MethodPatch, c.url(resource, id), in, out)
}

func (c *Client) Delete(ctx context.Context, resource, id string) error {
	return c.do(ctx, http.MethodDelete, c.url(resource, id), nil, nil)
}

func (c *Client) url(parts ...string) string {
	u := c.baseURL
	for _, p := range parts {
		u += "/" + url.PathEscape(p)
	}
	return u
}

func (c *Client) do(ctx context.Context, method, rawURL string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "encoding request")
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return errors.Wrap(err, "building request")
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "record store unreachable")
	}
	defer res.Body.Close() //nolint:errcheck

	if res.StatusCode == http.StatusNotFound {
		return errors.Wrap(academic.ErrNotFound, rawURL)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(res.Body, 1<<10))
		return &StatusError{Code: res.StatusCode, Body: string(raw)}
	}

	if out == nil {
		return nil
	}
	return errors.Wrap(json.NewDecoder(res.Body).Decode(out), "decoding response")
}
