package cmd

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubResponse struct {
	status int
	body   string
}

type stubRequest struct {
	Method   string
	Path     string
	RawQuery string
	Form     url.Values
	Files    map[string]string
}

// stubDaemon serves canned responses keyed by request path and records the
// requests it receives. Unknown paths get a 404 with a daemon style message.
type stubDaemon struct {
	mu        sync.Mutex
	responses map[string]stubResponse
	requests  []stubRequest
}

func (s *stubDaemon) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := stubRequest{
		Method:   r.Method,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
		Form:     url.Values{},
		Files:    map[string]string{},
	}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(1 << 20); err == nil {
			req.Form = r.MultipartForm.Value
			for name, headers := range r.MultipartForm.File {
				if f, err := headers[0].Open(); err == nil {
					data, _ := io.ReadAll(f)
					f.Close()
					req.Files[name] = string(data)
				}
			}
		}
	} else if err := r.ParseForm(); err == nil {
		req.Form = r.PostForm
	}

	s.mu.Lock()
	s.requests = append(s.requests, req)
	resp, ok := s.responses[r.URL.Path]
	s.mu.Unlock()

	if !ok {
		resp = stubResponse{status: http.StatusNotFound, body: `{"message":"404 - Refer to API.md"}`}
	}
	if strings.HasPrefix(resp.body, "{") || strings.HasPrefix(resp.body, "[") {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(resp.status)
	w.Write([]byte(resp.body))
}

func (s *stubDaemon) on(path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[path] = stubResponse{status: status, body: body}
}

func (s *stubDaemon) recorded() []stubRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]stubRequest(nil), s.requests...)
}

func (s *stubDaemon) last(t *testing.T) stubRequest {
	t.Helper()
	reqs := s.recorded()
	require.NotEmpty(t, reqs, "daemon received no requests")
	return reqs[len(reqs)-1]
}

// cli runs siago commands against a stub daemon
type cli struct {
	t          *testing.T
	daemon     *stubDaemon
	configPath string
	flags      []string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	daemon := &stubDaemon{responses: map[string]stubResponse{}}
	server := httptest.NewServer(daemon)
	t.Cleanup(server.Close)

	u, err := url.Parse(server.URL)
	require.NoError(t, err)

	configPath := filepath.Join(t.TempDir(), "siago.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("timeout = \"5s\"\n"), 0600))

	return &cli{
		t:          t,
		daemon:     daemon,
		configPath: configPath,
		flags: []string{
			"--config", configPath,
			"--addr", u.Scheme + "://" + u.Hostname(),
			"--port", u.Port(),
		},
	}
}

// config replaces the contents of the config file passed with --config
func (c *cli) config(content string) {
	c.t.Helper()
	require.NoError(c.t, os.WriteFile(c.configPath, []byte(content), 0600))
}

func (c *cli) run(stdin string, args ...string) (string, error) {
	c.t.Helper()
	root := NewRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append(args, c.flags...))
	err := root.Execute()
	return out.String(), err
}
