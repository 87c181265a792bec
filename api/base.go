package api

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("siago/api")

// Client handles API calls to a siad daemon
type Client struct {
	httpClient *http.Client
	address    string
	port       int
	headers    map[string]string
}

// NewClient creates a new API client for the default local daemon
func NewClient() *Client {
	return NewClientWithAddress(DefaultAddress, DefaultPort)
}

// NewClientWithAddress creates a new API client for the daemon listening on
// address:port. An empty address or a zero port falls back to the defaults.
func NewClientWithAddress(address string, port int) *Client {
	if address == "" {
		address = DefaultAddress
	}
	if port == 0 {
		port = DefaultPort
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		address: address,
		port:    port,
		headers: map[string]string{
			"User-Agent": DefaultUserAgent,
		},
	}
}

// SetAddress replaces the daemon address used by all subsequent calls
func (c *Client) SetAddress(address string) {
	c.address = address
}

// SetPort replaces the daemon port used by all subsequent calls
func (c *Client) SetPort(port int) {
	c.port = port
}

// SetHTTPClient replaces the underlying HTTP client, e.g. to change the
// request timeout.
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

// Address returns the configured daemon address
func (c *Client) Address() string {
	return c.address
}

// Port returns the configured daemon port
func (c *Client) Port() int {
	return c.port
}

// URL returns the full request URL for path. The path is appended verbatim.
func (c *Client) URL(path string) string {
	return c.address + ":" + strconv.Itoa(c.port) + path
}

// Get sends a GET request to path. A non-empty payload is sent as a
// multipart/form-data body.
func (c *Client) Get(path string, payload Payload) (*Result, error) {
	return c.get(path, payload, true)
}

// GetBytes behaves like Get but never decodes the body: the result always
// holds the raw bytes.
func (c *Client) GetBytes(path string, payload Payload) (*Result, error) {
	return c.get(path, payload, false)
}

// Post sends a POST request to path with the payload as url-encoded form data.
func (c *Client) Post(path string, payload Payload) (*Result, error) {
	var body io.Reader
	contentType := ""
	if len(payload) > 0 {
		body = bytes.NewBufferString(payload.values().Encode())
		contentType = "application/x-www-form-urlencoded"
	}
	return c.do(http.MethodPost, path, body, contentType, true)
}

// PostBytes sends a POST request to path with an opaque body that is passed
// through unmodified.
func (c *Client) PostBytes(path string, data []byte) (*Result, error) {
	return c.do(http.MethodPost, path, bytes.NewReader(data), "application/octet-stream", true)
}

func (c *Client) get(path string, payload Payload, decode bool) (*Result, error) {
	if len(payload) == 0 {
		return c.do(http.MethodGet, path, nil, "", decode)
	}

	body, contentType, err := payload.multipart()
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	return c.do(http.MethodGet, path, body, contentType, decode)
}

func (c *Client) do(method, path string, body io.Reader, contentType string, decode bool) (*Result, error) {
	url := c.URL(path)

	req, err := http.NewRequest(method, quoteStrayPercents(url), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	log.Debugw("daemon request", "method", method, "url", url, "status", resp.StatusCode, "bytes", len(data))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newDaemonRequestError(resp.StatusCode, data)
	}

	return newResult(resp.StatusCode, data, decode), nil
}

// getJSON sends a GET request and decodes the JSON body into v
func (c *Client) getJSON(path string, payload Payload, v interface{}) error {
	res, err := c.Get(path, payload)
	if err != nil {
		return err
	}
	if err := res.Decode(v); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// postJSON sends a POST request and decodes the JSON body into v
func (c *Client) postJSON(path string, payload Payload, v interface{}) error {
	res, err := c.Post(path, payload)
	if err != nil {
		return err
	}
	if err := res.Decode(v); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// quoteStrayPercents rewrites every '%' that does not start a valid escape
// as "%25" so identifiers like "100%.txt" survive URL parsing. Everything
// else is left untouched.
func quoteStrayPercents(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && !(i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2])) {
			b.WriteString("%25")
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
