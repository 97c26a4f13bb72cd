package apclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

const defaultTimeout = 30 * time.Second

// Client fetches ActivityPub resources. Requests are fully sequential;
// the client holds no state between resolutions beyond its transport.
type Client struct {
	httpClient  *http.Client
	tokenSource oauth2.TokenSource
	log         *logrus.Logger
}

// New creates a Client. A nil httpClient gets a default with a 30s
// timeout; a nil logger discards its output.
func New(httpClient *http.Client, log *logrus.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Client{httpClient: httpClient, log: log}
}

// NewWithToken creates a Client that authenticates every fetch with a
// static bearer token, for servers running in authorized-fetch mode.
func NewWithToken(httpClient *http.Client, log *logrus.Logger, token string) *Client {
	c := New(httpClient, log)
	c.tokenSource = oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token,
		TokenType:   "Bearer",
	})
	return c
}

// HTTPClient exposes the underlying transport, for collaborators that
// need to make sibling requests (e.g. JSON-LD context fetches).
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// fetch issues one GET with the given Accept header, decodes the JSON
// body into out, and returns the raw body for callers that want it.
func (c *Client) fetch(ctx context.Context, url, accept string, out any) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", accept)

	if c.tokenSource != nil {
		token, err := c.tokenSource.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to obtain token: %w", err)
		}
		token.SetAuthHeader(req)
	}

	c.log.WithFields(logrus.Fields{
		"url":    url,
		"accept": accept,
	}).Debug("fetching resource")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return json.RawMessage(body), nil
}
