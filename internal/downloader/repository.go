package downloader

import (
	"context"
	"io"
	"net/http"
	"time"

	apperrors "weblatedl/internal/errors"
)

const (
	module         = "downloader"
	copyBufferSize = 32 * 1024
)

// Logger is the logging surface the downloader needs.
type Logger interface {
	Debug(format string, args ...interface{})
	Success(format string, args ...interface{})
}

// HTTPClient represents the subset of http.Client methods required by the repository.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Target describes a single file to fetch.
type Target struct {
	Name      string
	URL       string
	LocalPath string
}

// Repository fetches targets one at a time onto the filesystem.
type Repository struct {
	logger    Logger
	client    HTTPClient
	fs        FileSystem
	reporter  ProgressReporter
	userAgent string
}

// RepositoryOption customises Repository construction.
type RepositoryOption func(*Repository)

// WithHTTPClient overrides the HTTP client used for downloads.
func WithHTTPClient(client HTTPClient) RepositoryOption {
	return func(r *Repository) {
		r.client = client
	}
}

// WithFileSystem overrides the filesystem implementation.
func WithFileSystem(fs FileSystem) RepositoryOption {
	return func(r *Repository) {
		r.fs = fs
	}
}

// WithProgressReporter overrides the progress reporter implementation.
func WithProgressReporter(reporter ProgressReporter) RepositoryOption {
	return func(r *Repository) {
		r.reporter = reporter
	}
}

// WithUserAgent sets the User-Agent header on download requests.
func WithUserAgent(userAgent string) RepositoryOption {
	return func(r *Repository) {
		r.userAgent = userAgent
	}
}

// NewRepository constructs a Repository. timeout bounds each request; zero disables it.
func NewRepository(log Logger, timeout time.Duration, opts ...RepositoryOption) (*Repository, error) {
	if log == nil {
		return nil, apperrors.SystemError(apperrors.CodeSystemGeneric, "logger must not be nil", nil).
			WithModule(module).
			WithOperation("NewRepository")
	}

	repo := &Repository{
		logger:   log,
		client:   defaultHTTPClient(timeout),
		fs:       OSFileSystem{},
		reporter: NoopProgressReporter{},
	}

	for _, opt := range opts {
		opt(repo)
	}

	if repo.client == nil {
		repo.client = defaultHTTPClient(timeout)
	}
	if repo.fs == nil {
		repo.fs = OSFileSystem{}
	}
	if repo.reporter == nil {
		repo.reporter = NoopProgressReporter{}
	}

	return repo, nil
}

// Download issues exactly one GET for target and writes the body verbatim to
// target.LocalPath, replacing any existing file. Nothing is written unless the
// response status is 2xx; a body that fails mid-copy leaves no partial file.
func (r *Repository) Download(ctx context.Context, target Target) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.URL, nil)
	if err != nil {
		return apperrors.New(apperrors.ErrCategoryValidation, apperrors.CodeValidationGeneric, "failed to create download request", err).
			WithModule(module).
			WithOperation("Download").
			WithField("url", target.URL)
	}
	if r.userAgent != "" {
		req.Header.Set("User-Agent", r.userAgent)
	}

	r.logger.Debug("Downloading %s from %s", target.Name, target.URL)

	resp, err := r.client.Do(req)
	if err != nil {
		return apperrors.NetworkError(apperrors.CodeDownloadRequest, "download request failed", err).
			WithModule(module).
			WithOperation("Download").
			WithField("url", target.URL)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apperrors.NetworkError(apperrors.CodeDownloadStatus, "download failed with unexpected status", nil).
			WithModule(module).
			WithOperation("Download").
			WithFields(apperrors.Metadata{
				"url":    target.URL,
				"status": resp.StatusCode,
			})
	}

	written, err := r.write(target, resp)
	if err != nil {
		return err
	}

	r.logger.Success("%s saved to %s (%d bytes)", target.Name, target.LocalPath, written)
	return nil
}

func (r *Repository) write(target Target, resp *http.Response) (int64, error) {
	file, err := r.fs.Create(target.LocalPath)
	if err != nil {
		return 0, apperrors.SystemError(apperrors.CodeDownloadWrite, "failed to create local file", err).
			WithModule(module).
			WithOperation("Download").
			WithField("path", target.LocalPath)
	}

	progress := NewProgressReader(resp.Body, resp.ContentLength, r.reporter, target.Name)

	buf := make([]byte, copyBufferSize)
	if _, err := io.CopyBuffer(file, progress, buf); err != nil {
		_ = file.Close()
		_ = r.fs.Remove(target.LocalPath)
		return 0, apperrors.SystemError(apperrors.CodeDownloadWrite, "failed to write downloaded file", err).
			WithModule(module).
			WithOperation("Download").
			WithField("path", target.LocalPath)
	}

	if err := file.Close(); err != nil {
		return 0, apperrors.SystemError(apperrors.CodeDownloadWrite, "failed to flush downloaded file", err).
			WithModule(module).
			WithOperation("Download").
			WithField("path", target.LocalPath)
	}

	return progress.Finish(), nil
}

func defaultHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
