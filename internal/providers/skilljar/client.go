package skilljar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"course-fetch/internal/httpx"
	"course-fetch/internal/ratelimit"
)

const (
	acceptJSON = "application/json"

	lessonsEndpoint = "/v1/lessons"
)

// Client talks to the Skilljar REST API. Authentication is HTTP Basic with
// the API key as username and an empty password.
type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client

	// Limiter paces every outbound request, blob downloads included.
	Limiter *ratelimit.Limiter

	PageSize int
	Retry    httpx.RetryConfig
}

func New(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		APIKey:   apiKey,
		HTTP:     httpx.NewClient(2*time.Minute, false),
		Limiter:  ratelimit.New(5),
		PageSize: 100,
		Retry:    httpx.DefaultRetryConfig(),
	}
}

/* -------- API -------- */

// ListLessonsRaw fetches every page of /v1/lessons for a course and returns
// the raw lesson records. maxPages <= 0 means all pages.
func (c *Client) ListLessonsRaw(ctx context.Context, courseID string, maxPages int) ([]json.RawMessage, error) {
	params := url.Values{"course_id": {courseID}}
	return c.paginate(ctx, lessonsEndpoint, params, maxPages)
}

// LessonDetailRaw fetches the full metadata record of one lesson.
func (c *Client) LessonDetailRaw(ctx context.Context, lessonID string) (json.RawMessage, error) {
	endpoint := lessonsEndpoint + "/" + url.PathEscape(lessonID)

	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, err
	}

	_, body, err := httpx.DoWithRetry(ctx, c.HTTP, c.buildGet(endpoint, nil), c.Retry)
	if err != nil {
		return nil, fmt.Errorf("skilljar: lesson detail %s: %w", lessonID, err)
	}
	return json.RawMessage(body), nil
}

// ListContentItemsRaw fetches every page of a lesson's content items.
func (c *Client) ListContentItemsRaw(ctx context.Context, lessonID string, maxPages int) ([]json.RawMessage, error) {
	endpoint := lessonsEndpoint + "/" + url.PathEscape(lessonID) + "/content-items"
	return c.paginate(ctx, endpoint, nil, maxPages)
}

// Download opens a content blob for streaming. The request is paced by the
// shared limiter but not retried: a failed item is reported to the caller,
// which logs it and moves on. Brotli-encoded bodies are unwrapped.
func (c *Client) Download(ctx context.Context, rawURL string) (io.ReadCloser, string, error) {
	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("skilljar: build download request: %w", err)
	}
	// blob URLs are usually signed CDN links; no API auth on purpose
	req.Header.Set("Accept-Encoding", "br")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("skilljar: download %s: %w", rawURL, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 900))
		resp.Body.Close()
		return nil, "", &httpx.HTTPError{
			Method:     http.MethodGet,
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Header:     resp.Header.Clone(),
			Body:       body,
		}
	}

	return struct {
		io.Reader
		io.Closer
	}{httpx.DecodeBody(resp), resp.Body}, resp.Header.Get("Content-Type"), nil
}

/* -------- internals -------- */

func (c *Client) paginate(ctx context.Context, endpoint string, params url.Values, maxPages int) ([]json.RawMessage, error) {
	var all []json.RawMessage

	for page := 1; ; page++ {
		if maxPages > 0 && page > maxPages {
			break
		}

		q := url.Values{}
		for k, vs := range params {
			q[k] = vs
		}
		q.Set("page", strconv.Itoa(page))
		if c.PageSize > 0 {
			q.Set("page_size", strconv.Itoa(c.PageSize))
		}

		if err := c.Limiter.Wait(ctx); err != nil {
			return all, err
		}

		_, body, err := httpx.DoWithRetry(ctx, c.HTTP, c.buildGet(endpoint, q), c.Retry)
		if err != nil {
			// devolvemos lo que juntamos, para no perder todo el run
			return all, fmt.Errorf("skilljar: %s page=%d: %w", endpoint, page, err)
		}

		results, hasNext, err := parsePage(body)
		if err != nil {
			return all, fmt.Errorf("skilljar: %s page=%d: %w", endpoint, page, err)
		}

		all = append(all, results...)

		if !hasNext || len(results) == 0 {
			break
		}
	}

	return all, nil
}

func (c *Client) buildGet(endpoint string, q url.Values) func(context.Context) (*http.Request, error) {
	return func(ctx context.Context) (*http.Request, error) {
		u := c.BaseURL + endpoint
		if len(q) > 0 {
			u += "?" + q.Encode()
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", acceptJSON)
		req.Header.Set("Content-Type", acceptJSON)
		req.SetBasicAuth(c.APIKey, "")
		return req, nil
	}
}
