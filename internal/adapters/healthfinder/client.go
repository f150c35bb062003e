// Package healthfinder adapts the ODPHP MyHealthfinder JSON API into the
// TopicSource port.
package healthfinder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"
	"golang.org/x/time/rate"

	"github.com/vitaltrack/vitaltrack/internal/domain/model"
)

const defaultBaseURL = "https://odphp.health.gov/myhealthfinder/api/v3"

// resourceProjection reshapes the deeply nested MyHealthfinder envelope into
// flat {title, url, snippet} objects. Kept as JMESPath so the mapping reads
// as one expression instead of a chain of nil-checked lookups.
const resourceProjection = `Result.Resources.Resource[].{` +
	`title: Title, url: AccessibleVersion, snippet: Sections.section[0].Description}`

// ClientOptions configures the MyHealthfinder client.
type ClientOptions struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger

	// RequestsPerSecond caps outbound calls; defaults to 2.
	RequestsPerSecond float64
}

// Client queries the MyHealthfinder topic search service.
type Client struct {
	baseURL    string
	http       *http.Client
	logger     *slog.Logger
	limiter    *rate.Limiter
	projection jmespath.JMESPath
}

// NewClient creates a Client with defaults filled in.
func NewClient(opts ClientOptions) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	rps := opts.RequestsPerSecond
	if rps <= 0 {
		rps = 2
	}
	return &Client{
		baseURL:    baseURL,
		http:       hc,
		logger:     logger.With("adapter", "healthfinder"),
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		projection: jmespath.MustCompile(resourceProjection),
	}
}

// Name implements the TopicSource port.
func (c *Client) Name() string { return model.SourceHealthFinder }

// Search implements the TopicSource port.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]model.Resource, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("keyword", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/topicsearch.json?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("healthfinder: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("healthfinder: search: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return nil, fmt.Errorf("healthfinder: unexpected status %d", resp.StatusCode)
	}

	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("healthfinder: decode response: %w", err)
	}

	projected, err := c.projection.Search(payload)
	if err != nil {
		return nil, fmt.Errorf("healthfinder: project response: %w", err)
	}

	items, _ := projected.([]any)
	resources := make([]model.Resource, 0, len(items))
	for _, item := range items {
		fields, ok := item.(map[string]any)
		if !ok {
			continue
		}
		res := model.Resource{
			Source:  model.SourceHealthFinder,
			Title:   stringField(fields, "title"),
			URL:     stringField(fields, "url"),
			Snippet: stringField(fields, "snippet"),
		}
		if res.Title == "" {
			continue
		}
		resources = append(resources, res)
		if len(resources) == limit {
			break
		}
	}

	c.logger.Debug("search complete", "query", query, "results", len(resources))
	return resources, nil
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
