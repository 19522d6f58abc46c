// Package seclist downloads reference password lists for merging with
// generated wordlists.
package seclist

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/zarlcorp/zforge/internal/wordfile"
)

// defaultURL is the SecLists top-1000 common credentials list.
const defaultURL = "https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/Common-Credentials/10-million-password-list-top-1000.txt"

const downloadTimeout = 30 * time.Second

// maxListSize bounds how much of a response body is read. Reference lists
// are small; anything bigger is a misconfigured URL.
const maxListSize = 32 << 20

// Client fetches password lists over HTTP.
type Client struct {
	url  string
	http *http.Client
}

// NewClient creates a download client for the default SecLists source.
func NewClient() *Client {
	return &Client{
		url:  defaultURL,
		http: &http.Client{Timeout: downloadTimeout},
	}
}

// Fetch downloads the list and returns its non-empty lines.
func (c *Client) Fetch(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch list: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch list: unexpected status %s", resp.Status)
	}

	lines, err := wordfile.ReadLines(io.LimitReader(resp.Body, maxListSize))
	if err != nil {
		return nil, fmt.Errorf("fetch list: %w", err)
	}

	return lines, nil
}
