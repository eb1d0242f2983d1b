// Package click2pay is the thin HTTP client for the Click2Pay transaction
// API (sandbox by default). The provider has no Go SDK; auth is a single
// Basic token built from the client id/secret pair.
package click2pay

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"certificados_xpto/internal/usecase/interfaces"
)

const (
	defaultBaseURL = "https://apisandbox.click2pay.com.br/v1"

	requestTimeout = 15 * time.Second
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	authToken  string
}

var _ interfaces.IUpstreamClient = (*Client)(nil)

// New builds a client for the given credentials. Empty credentials are
// allowed; the client then reports Configured() == false and the router
// refuses to dispatch.
func New(clientID, clientSecret, baseURL string) *Client {
	token := ""
	if clientID != "" && clientSecret != "" {
		token = "Basic " + base64.StdEncoding.EncodeToString([]byte(clientID+":"+clientSecret))
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		authToken:  token,
	}
}

// NewFromEnv reads CLICK2PAY_CLIENT_ID / CLICK2PAY_CLIENT_SECRET, with the
// legacy CLIENT_ID / CLIENT_SECRET names as fallback.
func NewFromEnv() *Client {
	clientID := getenvAny("CLICK2PAY_CLIENT_ID", "CLIENT_ID")
	clientSecret := getenvAny("CLICK2PAY_CLIENT_SECRET", "CLIENT_SECRET")
	baseURL := os.Getenv("CLICK2PAY_BASE_URL")

	if clientID == "" || clientSecret == "" {
		log.Printf("[click2pay][client] credentials not configured")
	}

	return New(clientID, clientSecret, baseURL)
}

func (c *Client) Configured() bool {
	return c.authToken != ""
}

func (c *Client) Post(ctx context.Context, path string, body interface{}) (interfaces.UpstreamResponse, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return interfaces.UpstreamResponse{}, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return interfaces.UpstreamResponse{}, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.authToken)

	return c.do(req)
}

func (c *Client) Get(ctx context.Context, path string, query url.Values) (interfaces.UpstreamResponse, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return interfaces.UpstreamResponse{}, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", c.authToken)

	return c.do(req)
}

func (c *Client) do(req *http.Request) (interfaces.UpstreamResponse, error) {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[click2pay][client] %s %s failed err=%v", req.Method, req.URL.Path, err)
		return interfaces.UpstreamResponse{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return interfaces.UpstreamResponse{}, err
	}
	log.Printf("[click2pay][client] %s %s status=%d elapsed=%s", req.Method, req.URL.Path, resp.StatusCode, time.Since(start).Round(time.Millisecond))

	return interfaces.UpstreamResponse{
		StatusCode:  resp.StatusCode,
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

// HTTPClient exposes the underlying client for request interception in tests.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

func getenvAny(keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return ""
}
