package httpsource

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/termfolio/internal/ports"
	"github.com/go-resty/resty/v2"
)

// DocumentPath is where the content document is served relative to the base URL.
const DocumentPath = "/terminal-content.md"

const defaultTimeout = 10 * time.Second

type Options struct {
	HTTPClient *http.Client
	Timeout    time.Duration
	UserAgent  string
}

type Source struct {
	client *resty.Client
	path   string
}

var _ ports.ContentSource = (*Source)(nil)

// NewSource fetches DocumentPath below baseURL. A baseURL that already names a
// markdown file is used as is.
func NewSource(baseURL string, opts Options) *Source {
	var client *resty.Client
	if opts.HTTPClient != nil {
		client = resty.NewWithClient(opts.HTTPClient)
	} else {
		client = resty.New()
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	path := DocumentPath
	if strings.HasSuffix(strings.ToLower(baseURL), ".md") {
		path = ""
	}

	client.
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "text/markdown, text/plain;q=0.9, */*;q=0.1")
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}

	return &Source{client: client, path: path}
}

func (s *Source) Fetch(ctx context.Context) (string, error) {
	resp, err := s.client.R().SetContext(ctx).Get(s.path)
	if err != nil {
		return "", fmt.Errorf("fetch content: %w", err)
	}

	if !resp.IsSuccess() {
		return "", fmt.Errorf("fetch content: unexpected status %d", resp.StatusCode())
	}

	return resp.String(), nil
}
