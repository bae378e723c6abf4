package catalog

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is a simple HTTP client for fetching the route dataset from a URL,
// for deployments that publish the CSV instead of shipping it with the
// binary.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a dataset HTTP client. timeoutMS <= 0 disables the
// request timeout.
func NewClient(timeoutMS int) *Client {
	c := &http.Client{}
	if timeoutMS > 0 {
		c.Timeout = time.Duration(timeoutMS) * time.Millisecond
	}
	return &Client{httpClient: c}
}

// Fetch downloads the dataset from url and returns the raw CSV bytes.
func (c *Client) Fetch(url string) ([]byte, error) {
	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}

// LoadURL fetches the dataset from url and builds the catalog.
func LoadURL(url string, timeoutMS int) (*Catalog, error) {
	buf, err := NewClient(timeoutMS).Fetch(url)
	if err != nil {
		return nil, &DataError{Msg: fmt.Sprintf("cannot fetch dataset: %v", err)}
	}
	return Load(bytes.NewReader(buf), url)
}
