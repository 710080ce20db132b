// Package client talks JSON over HTTP to the control server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jask/charon/internal/config"
	"github.com/jask/charon/internal/models"
)

var (
	// ErrConnection wraps transport failures: refused, reset, timed out.
	ErrConnection = errors.New("connection failed")
	// ErrDecode wraps a response body that is not the expected JSON.
	ErrDecode = errors.New("failed to parse JSON")
)

// StatusError is a non-2xx reply from the server.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("server returned status %d %s", e.Code, http.StatusText(e.Code))
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

const (
	MsgTaskQueued    = "task queued successfully"
	MsgConfigUpdated = "ghost config updated"
	MsgKillSent      = "kill signal sent"
)

// maxErrorBody caps how much of an error reply ends up in a StatusError.
const maxErrorBody = 256

// Client is the control API. Every call is bounded by ctx and the client
// timeout.
type Client struct {
	base          string
	configSubpath string
	http          *http.Client
	log           zerolog.Logger
}

// New builds a client for cfg. A nil hc gets a fresh http.Client with
// cfg.Timeout.
func New(cfg config.APIConfig, hc *http.Client, log zerolog.Logger) *Client {
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}
	return &Client{
		base:          cfg.BaseURL(),
		configSubpath: strings.Trim(cfg.ConfigSubpath, "/"),
		http:          hc,
		log:           log.With().Str("component", "client").Logger(),
	}
}

// BaseURL is the API root every path is joined to.
func (c *Client) BaseURL() string { return c.base }

func (c *Client) FetchGhosts(ctx context.Context) ([]models.Ghost, error) {
	var out []models.Ghost
	if err := c.getJSON(ctx, "/ghosts", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FetchTasks(ctx context.Context, ghostID string) ([]models.Task, error) {
	var out []models.Task
	if err := c.getJSON(ctx, ghostPath(ghostID, "tasks"), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SendTask(ctx context.Context, ghostID string, req models.TaskRequest) (string, error) {
	if err := c.post(ctx, ghostPath(ghostID, "task"), req); err != nil {
		return "", err
	}
	return MsgTaskQueued, nil
}

// UpdateConfig posts the new beacon timing to /ghosts/{id}, or to
// /ghosts/{id}/{config_subpath} when one is configured.
func (c *Client) UpdateConfig(ctx context.Context, ghostID string, cfg models.GhostConfigUpdate) (string, error) {
	path := ghostPath(ghostID)
	if c.configSubpath != "" {
		path = ghostPath(ghostID, c.configSubpath)
	}
	if err := c.post(ctx, path, cfg); err != nil {
		return "", err
	}
	return MsgConfigUpdated, nil
}

func (c *Client) KillGhost(ctx context.Context, ghostID string) (string, error) {
	if err := c.post(ctx, ghostPath(ghostID, "kill"), nil); err != nil {
		return "", err
	}
	return MsgKillSent, nil
}

func ghostPath(id string, rest ...string) string {
	p := "/ghosts/" + url.PathEscape(id)
	for _, r := range rest {
		p += "/" + r
	}
	return p
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: GET %s: %v", ErrDecode, path, err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body any) error {
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		payload = bytes.NewReader(b)
	}
	resp, err := c.do(ctx, http.MethodPost, path, payload)
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.Body.Close()
}

// do sends one request. Non-2xx replies are turned into *StatusError and the
// body is closed; on success the caller owns resp.Body.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return nil, fmt.Errorf("%w: %s %s: %v", ErrConnection, method, path, err)
	}
	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{
			Method: method,
			Path:   path,
			Code:   resp.StatusCode,
			Body:   strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}
