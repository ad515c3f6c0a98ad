package weblate

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	apperrors "weblatedl/internal/errors"

	"github.com/go-resty/resty/v2"
)

const module = "weblate"

// Client reads component metadata from a Weblate instance.
type Client struct {
	baseURL   string
	project   string
	component string
	http      *resty.Client
}

// Option customises Client construction.
type Option func(*Client)

// WithTimeout bounds every request; zero leaves requests unbounded.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(timeout)
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.http.SetHeader("User-Agent", userAgent)
		}
	}
}

// WithLogger routes resty's own warnings and debug output into log.
func WithLogger(log Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.http.SetLogger(restyLogger{log: log})
		}
	}
}

// NewClient returns a Client for project/component on the Weblate instance at baseURL.
func NewClient(baseURL, project, component string, opts ...Option) *Client {
	baseURL = strings.TrimRight(baseURL, "/")

	c := &Client{
		baseURL:   baseURL,
		project:   project,
		component: component,
		http: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Accept", "application/json"),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	return c
}

// ManifestURL is the translation listing endpoint for the bound component.
func (c *Client) ManifestURL() string {
	return c.baseURL + manifestPath(c.project, c.component)
}

// DownloadURL is the file download endpoint for one language of the bound component.
func (c *Client) DownloadURL(languageCode string) string {
	return fmt.Sprintf("%s/download/%s/%s/%s/",
		c.baseURL,
		url.PathEscape(c.project),
		url.PathEscape(c.component),
		url.PathEscape(languageCode),
	)
}

// FetchManifest performs a single GET of the translation listing and decodes it.
// Network failures, non-2xx responses and undecodable bodies are returned as errors;
// nothing is retried.
func (c *Client) FetchManifest(ctx context.Context) (*Manifest, error) {
	manifestURL := c.ManifestURL()

	var manifest Manifest
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&manifest).
		ForceContentType("application/json").
		Get(manifestPath(c.project, c.component))
	if err != nil {
		// resty reports decode failures through the same error return.
		if resp != nil && resp.IsSuccess() {
			return nil, apperrors.DecodeError(apperrors.CodeManifestDecode, "failed to decode translation manifest", err).
				WithModule(module).
				WithOperation("FetchManifest").
				WithField("url", manifestURL)
		}
		return nil, apperrors.NetworkError(apperrors.CodeManifestRequest, "translation manifest request failed", err).
			WithModule(module).
			WithOperation("FetchManifest").
			WithField("url", manifestURL)
	}

	if !resp.IsSuccess() {
		return nil, apperrors.NetworkError(apperrors.CodeManifestStatus, "translation manifest request returned unexpected status", nil).
			WithModule(module).
			WithOperation("FetchManifest").
			WithFields(apperrors.Metadata{
				"url":    manifestURL,
				"status": resp.StatusCode(),
			})
	}

	if manifest.Results == nil {
		return nil, apperrors.DecodeError(apperrors.CodeManifestDecode, "translation manifest has no results list", nil).
			WithModule(module).
			WithOperation("FetchManifest").
			WithField("url", manifestURL)
	}

	return &manifest, nil
}

func manifestPath(project, component string) string {
	return fmt.Sprintf("/api/components/%s/%s/translations/", url.PathEscape(project), url.PathEscape(component))
}
