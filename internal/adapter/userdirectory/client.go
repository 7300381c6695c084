package userdirectory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/polkiloo/micromart/internal/domain/model"
)

// Client resolves user identifiers against the user directory service.
type Client interface {
	Lookup(ctx context.Context, id int64) model.UserLookup
}

// HTTPClient implements Client over the directory's HTTP API. Each call is
// a single bounded GET whose result always collapses into one of the three
// lookup outcomes; raw transport errors never reach callers.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// response mirrors the JSON payload of GET /users/{id}.
type response struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Active bool   `json:"active"`
}

// NewHTTPClient creates a directory client with the given timeout budget.
func NewHTTPClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse user directory url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("user directory url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Lookup fetches the user record for id. No retries, no caching: each
// invocation is one independent request.
func (c *HTTPClient) Lookup(ctx context.Context, id int64) model.UserLookup {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/users/", strconv.FormatInt(id, 10))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		c.logger.Error("build user lookup request", slog.Int64("user_id", id), slog.String("error", err.Error()))
		return model.DirectoryUnavailable()
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("user directory unreachable", slog.Int64("user_id", id), slog.String("error", err.Error()))
		return model.DirectoryUnavailable()
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			c.logger.Warn("read user directory response", slog.Int64("user_id", id), slog.String("error", err.Error()))
			return model.DirectoryUnavailable()
		}
		var data response
		if err := json.Unmarshal(body, &data); err != nil {
			c.logger.Warn("decode user directory response", slog.Int64("user_id", id), slog.String("error", err.Error()))
			return model.DirectoryUnavailable()
		}
		return model.FoundUser(&model.User{ID: data.ID, Name: data.Name, Email: data.Email, Active: data.Active})
	case http.StatusNotFound:
		return model.MissingUser()
	default:
		c.logger.Warn("unexpected user directory status", slog.Int64("user_id", id), slog.Int("status", resp.StatusCode))
		return model.DirectoryUnavailable()
	}
}
