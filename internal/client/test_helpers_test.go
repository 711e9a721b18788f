package client

import (
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/ckan-client/pkg/ckan"
)

const okReply = `{"help": "https://demo.ckan.org/api/3/action/help_show", "success": true, "result": []}`

// recordedRequest is what the test server saw for one call.
type recordedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

type recorder struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (r *recorder) add(req recordedRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.requests = append(r.requests, req)
}

func (r *recorder) last(t *testing.T) recordedRequest {
	t.Helper()

	r.mu.Lock()
	defer r.mu.Unlock()

	require.NotEmpty(t, r.requests, "no request reached the server")

	return r.requests[len(r.requests)-1]
}

// newRecordingServer answers every request with reply and records it.
func newRecordingServer(t *testing.T, reply string) (*httptest.Server, *recorder) {
	t.Helper()

	rec := &recorder{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)

			return
		}

		rec.add(recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Header: r.Header.Clone(),
			Body:   data,
		})

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(server.Close)

	return server, rec
}

// NewTestClient creates a client for baseURL with an optional token.
func NewTestClient(t *testing.T, baseURL, token string) *Client {
	t.Helper()

	c, err := New(&ckan.Config{BaseURL: baseURL, Token: token})
	require.NoError(t, err)

	return c
}

// multipartParts decodes a recorded multipart body into text fields and
// file parts (name -> content), keeping the file name of each file part.
func multipartParts(t *testing.T, req recordedRequest) (map[string]string, map[string]string, map[string]string) {
	t.Helper()

	mediaType, params, err := mime.ParseMediaType(req.Header.Get("Content-Type"))
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	fields := make(map[string]string)
	files := make(map[string]string)
	fileNames := make(map[string]string)

	reader := multipart.NewReader(strings.NewReader(string(req.Body)), params["boundary"])

	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}

		require.NoError(t, err)

		content, err := io.ReadAll(part)
		require.NoError(t, err)

		if part.FileName() != "" {
			files[part.FormName()] = string(content)
			fileNames[part.FormName()] = part.FileName()

			continue
		}

		fields[part.FormName()] = string(content)
	}

	return fields, files, fileNames
}
