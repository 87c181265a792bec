package api

import (
	"bytes"
	"io"
	"mime"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeDaemon answers every request with a fixed status and body and records
// what it received.
type fakeDaemon struct {
	status int
	body   string

	mu       sync.Mutex
	requests []recordedRequest
}

type recordedRequest struct {
	Method      string
	Path        string
	RawQuery    string
	UserAgent   string
	ContentType string
	Body        []byte
	Form        url.Values
	Files       map[string]string
	FileNames   map[string]string
}

func (f *fakeDaemon) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	r.Body = io.NopCloser(bytes.NewReader(body))

	rec := recordedRequest{
		Method:      r.Method,
		Path:        r.URL.Path,
		RawQuery:    r.URL.RawQuery,
		UserAgent:   r.Header.Get("User-Agent"),
		ContentType: r.Header.Get("Content-Type"),
		Body:        body,
		Form:        url.Values{},
		Files:       map[string]string{},
		FileNames:   map[string]string{},
	}

	mediaType, _, _ := mime.ParseMediaType(rec.ContentType)
	switch mediaType {
	case "multipart/form-data":
		if err := r.ParseMultipartForm(1 << 20); err == nil {
			for k, v := range r.MultipartForm.Value {
				rec.Form[k] = v
			}
			for k, headers := range r.MultipartForm.File {
				fh := headers[0]
				file, err := fh.Open()
				if err != nil {
					continue
				}
				data, _ := io.ReadAll(file)
				file.Close()
				rec.Files[k] = string(data)
				rec.FileNames[k] = fh.Filename
			}
		}
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err == nil {
			rec.Form = r.PostForm
		}
	}

	f.mu.Lock()
	f.requests = append(f.requests, rec)
	f.mu.Unlock()

	status := f.status
	if status == 0 {
		status = http.StatusOK
	}
	if strings.HasPrefix(strings.TrimSpace(f.body), "{") {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(status)
	io.WriteString(w, f.body)
}

func (f *fakeDaemon) last(t *testing.T) recordedRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests, "daemon received no request")
	return f.requests[len(f.requests)-1]
}

// newTestClient starts a fake daemon answering with status and body and
// returns a client pointed at it.
func newTestClient(t *testing.T, status int, body string) (*Client, *fakeDaemon) {
	t.Helper()

	daemon := &fakeDaemon{status: status, body: body}
	srv := httptest.NewServer(daemon)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)

	return NewClientWithAddress("http://"+u.Hostname(), port), daemon
}
