// Package restapi talks to the academic REST backend.
package restapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sendgrid/rest"

	"github.com/academia/dashboard/core"
)

// Backend resources
const (
	ResourceCourses    = "cursos"
	ResourceStudents   = "estudiantes"
	ResourceActivities = "actividades"
	ResourceReports    = "reportes"
	ResourceExport     = "exportar"

	RequestIDHeader = "X-Request-ID"
)

// RequestObserver records one backend round trip. A zero status means the backend was not reached.
type RequestObserver interface {
	ObserveRequest(resource, method string, status int, d time.Duration)
}

type noopObserver struct{}

func (noopObserver) ObserveRequest(string, string, int, time.Duration) {}

// Client is safe for concurrent use.
type Client struct {
	baseURL string
	http    *rest.Client
	metrics RequestObserver
}

// NewClient returns a client for the backend at `baseURL`. A zero `timeout` means no timeout.
func NewClient(baseURL string, timeout time.Duration, metrics RequestObserver) *Client {
	if metrics == nil {
		metrics = noopObserver{}
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &rest.Client{HTTPClient: &http.Client{Timeout: timeout}},
		metrics: metrics,
	}
}

func resourcePath(resource string, id ...int) string {
	p := "/api/" + resource + "/"
	if len(id) > 0 {
		p += itoa(id[0]) + "/"
	}
	return p
}

// send issues one request. Non-2xx answers become a *core.RequestError carrying the body verbatim,
// network failures a *core.TransportError.
func (c *Client) send(ctx context.Context, resource string, method rest.Method, path string, query map[string]string, payload interface{}) (*rest.Response, error) {
	req := rest.Request{
		Method:      method,
		BaseURL:     c.baseURL + path,
		QueryParams: query,
		Headers: map[string]string{
			"Accept":        "application/json",
			RequestIDHeader: uuid.NewString(),
		},
	}
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, "encoding payload")
		}
		req.Body = body
		req.Headers["Content-Type"] = "application/json"
	}

	start := time.Now()
	res, err := c.http.SendWithContext(ctx, req)
	if err != nil {
		c.metrics.ObserveRequest(resource, string(method), 0, time.Since(start))
		return nil, core.NewTransportError(err)
	}
	c.metrics.ObserveRequest(resource, string(method), res.StatusCode, time.Since(start))

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, core.NewRequestError(string(method), path, res.StatusCode, res.Body)
	}
	return res, nil
}

// do sends the request and decodes the JSON answer into dst, when given.
func (c *Client) do(ctx context.Context, resource string, method rest.Method, path string, query map[string]string, payload, dst interface{}) error {
	res, err := c.send(ctx, resource, method, path, query, payload)
	if err != nil {
		return err
	}
	if dst == nil || strings.TrimSpace(res.Body) == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(res.Body), dst); err != nil {
		return errors.Wrapf(err, "decoding %s %s", method, path)
	}
	return nil
}
