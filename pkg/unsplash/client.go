// Package unsplash is a minimal client for the Unsplash photo search API.
package unsplash

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const DefaultBaseURL = "https://api.unsplash.com"

// ErrMissingAccessKey is returned by NewClient when no access key is set.
var ErrMissingAccessKey = errors.New("unsplash: access key is not configured")

// Config holds the API credentials and transport settings.
type Config struct {
	AccessKey string
	BaseURL   string
	Timeout   time.Duration
}

// URLs are the renditions Unsplash serves for one photo.
type URLs struct {
	Raw     string `json:"raw"`
	Full    string `json:"full"`
	Regular string `json:"regular"`
	Small   string `json:"small"`
	Thumb   string `json:"thumb"`
}

// Author is the photographer credited for a photo.
type Author struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

// Photo is one search hit.
type Photo struct {
	ID             string `json:"id"`
	Description    string `json:"description"`
	AltDescription string `json:"alt_description"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	URLs           URLs   `json:"urls"`
	User           Author `json:"user"`
}

// SearchResult is the body of GET /search/photos.
type SearchResult struct {
	Total      int     `json:"total"`
	TotalPages int     `json:"total_pages"`
	Results    []Photo `json:"results"`
}

// StatusError reports a non-success answer from the API.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unsplash: unexpected status %d: %s", e.StatusCode, e.Body)
}

// Client performs authenticated calls against the API.
type Client struct {
	http *resty.Client
}

// NewClient builds a client. It fails with ErrMissingAccessKey when the
// credential is empty.
func NewClient(cfg Config) (*Client, error) {
	if cfg.AccessKey == "" {
		return nil, ErrMissingAccessKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept-Version", "v1").
		SetHeader("Accept", "application/json").
		SetAuthScheme("Client-ID").
		SetAuthToken(cfg.AccessKey)

	return &Client{http: httpClient}, nil
}

// SearchPhotos runs one search request. No retry is attempted.
func (c *Client) SearchPhotos(ctx context.Context, query string, page, perPage int) (*SearchResult, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"query":    query,
			"page":     strconv.Itoa(page),
			"per_page": strconv.Itoa(perPage),
		}).
		SetResult(&SearchResult{}).
		Get("/search/photos")
	if err != nil {
		return nil, errors.Wrap(err, "unsplash: search request")
	}
	if resp.IsError() {
		return nil, &StatusError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	result, ok := resp.Result().(*SearchResult)
	if !ok || result == nil {
		return nil, errors.New("unsplash: unexpected response body")
	}
	if result.Results == nil {
		result.Results = []Photo{}
	}
	return result, nil
}
