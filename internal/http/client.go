package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/ckan-client/internal/constants"
	"github.com/fivetwenty-io/ckan-client/pkg/ckan"
)

// Logger is the logging surface used by the transport.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client sends requests to a single CKAN site.
type Client struct {
	baseURL    string
	token      string
	httpClient *retryablehttp.Client
	logger     Logger
	debug      bool
	userAgent  string
}

// Request describes one outgoing call.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string

	// Body is JSON-encoded when set. Ignored when Upload is set.
	Body interface{}

	// Form and Upload switch the request to multipart/form-data: Form entries
	// become text parts and the file at Upload is streamed as UploadField.
	Form        map[string]string
	Upload      string
	UploadField string
}

// Response is the raw result of a call. The status code is informational.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout sets the overall per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithHTTPClient uses a copy of httpClient (TLS, proxies, transport) as the
// underlying client. Later options such as WithTimeout modify the copy only.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			hc := *httpClient
			c.httpClient.HTTPClient = &hc
		}
	}
}

// NewClient creates a transport for baseURL. An empty token disables the
// Authorization header.
func NewClient(baseURL, token string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.CheckRetry = neverRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		httpClient: retryClient,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.debug && client.logger != nil {
		retryClient.Logger = &leveledLogger{logger: client.logger}
	}

	return client
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HasToken reports whether an Authorization token is configured.
func (c *Client) HasToken() bool {
	return c.token != ""
}

// Do executes req once. Transport, upload and read failures are returned as
// errors; any HTTP status, including 4xx/5xx, is returned as a Response.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    httpReq.URL.String(),
			"auth":   c.HasToken(),
		})
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, ckan.ErrUploadFile) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %w", ckan.ErrTransport, err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %w", ckan.ErrResponseDecoding, err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status":   resp.StatusCode,
			"duration": time.Since(start).String(),
			"bytes":    len(respBody),
		})
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       respBody,
	}, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	})
}

// PostMultipart performs a multipart/form-data POST streaming the file at
// uploadPath as fileField.
func (c *Client) PostMultipart(ctx context.Context, path string, fields map[string]string, fileField, uploadPath string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:      http.MethodPost,
		Path:        path,
		Form:        fields,
		Upload:      uploadPath,
		UploadField: fileField,
	})
}

func (c *Client) buildRequest(ctx context.Context, req *Request) (*retryablehttp.Request, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var (
		rawBody     interface{}
		contentType string
	)

	switch {
	case req.Upload != "":
		reader, boundary, err := multipartBody(req.Form, req.UploadField, req.Upload)
		if err != nil {
			return nil, err
		}

		rawBody = reader
		contentType = "multipart/form-data; boundary=" + boundary
	case req.Body != nil:
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ckan.ErrRequestEncoding, err)
		}

		rawBody = encoded
		contentType = "application/json"
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, rawBody)
	if err != nil {
		if errors.Is(err, ckan.ErrUploadFile) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: creating request: %w", ckan.ErrTransport, err)
	}

	httpReq.Header.Set("Accept", "application/json")

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	if c.token != "" {
		httpReq.Header.Set("Authorization", c.token)
	}

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	return httpReq, nil
}

// multipartBody checks that uploadPath is a readable regular file and returns
// a reader func that streams the form from disk on every invocation. The same
// boundary is used for every invocation so the Content-Type stays valid.
func multipartBody(fields map[string]string, fileField, uploadPath string) (retryablehttp.ReaderFunc, string, error) {
	info, err := os.Stat(uploadPath)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ckan.ErrUploadFile, err)
	}

	if info.IsDir() {
		return nil, "", fmt.Errorf("%w: %s is a directory", ckan.ErrUploadFile, uploadPath)
	}

	if fileField == "" {
		fileField = constants.UploadFieldName
	}

	boundary := multipart.NewWriter(io.Discard).Boundary()

	readerFunc := func() (io.Reader, error) {
		file, err := os.Open(uploadPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ckan.ErrUploadFile, err)
		}

		pipeReader, pipeWriter := io.Pipe()

		go func() {
			defer func() {
				_ = file.Close()
			}()

			pipeWriter.CloseWithError(writeMultipart(pipeWriter, boundary, fields, fileField, file))
		}()

		return pipeReader, nil
	}

	return readerFunc, boundary, nil
}

func writeMultipart(w io.Writer, boundary string, fields map[string]string, fileField string, file *os.File) error {
	writer := multipart.NewWriter(w)

	err := writer.SetBoundary(boundary)
	if err != nil {
		return fmt.Errorf("setting multipart boundary: %w", err)
	}

	for _, key := range slices.Sorted(maps.Keys(fields)) {
		err = writer.WriteField(key, fields[key])
		if err != nil {
			return fmt.Errorf("writing form field %q: %w", key, err)
		}
	}

	part, err := writer.CreateFormFile(fileField, filepath.Base(file.Name()))
	if err != nil {
		return fmt.Errorf("creating form file: %w", err)
	}

	_, err = io.Copy(part, file)
	if err != nil {
		return fmt.Errorf("%w: streaming %s: %w", ckan.ErrUploadFile, file.Name(), err)
	}

	err = writer.Close()
	if err != nil {
		return fmt.Errorf("closing multipart writer: %w", err)
	}

	return nil
}

// neverRetry hands every outcome straight back to the caller.
func neverRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	return false, nil
}

// leveledLogger adapts Logger to retryablehttp.LeveledLogger.
type leveledLogger struct {
	logger Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, kvFields(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, kvFields(keysAndValues))
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, kvFields(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, kvFields(keysAndValues))
}

func kvFields(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}

	return fields
}
