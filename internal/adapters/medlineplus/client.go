// Package medlineplus adapts the MedlinePlus wsearch XML API into the
// TopicSource port.
package medlineplus

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/vitaltrack/vitaltrack/internal/domain/model"
)

const defaultBaseURL = "https://wsearch.nlm.nih.gov/ws/query"

// ClientOptions configures the MedlinePlus client.
type ClientOptions struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger

	// RequestsPerSecond caps outbound calls; defaults to 1, which is what
	// the NLM terms of service ask of unauthenticated clients.
	RequestsPerSecond float64
}

// Client queries the MedlinePlus health topic search service.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
	limiter *rate.Limiter
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
		rps = 1
	}
	return &Client{
		baseURL: baseURL,
		http:    hc,
		logger:  logger.With("adapter", "medlineplus"),
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// Name implements the TopicSource port.
func (c *Client) Name() string { return model.SourceMedlinePlus }

// searchResult mirrors the wsearch XML envelope.
type searchResult struct {
	XMLName xml.Name   `xml:"nlmSearchResult"`
	List    []document `xml:"list>document"`
}

type document struct {
	URL     string    `xml:"url,attr"`
	Content []content `xml:"content"`
}

type content struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",innerxml"`
}

// highlightTags matches the query-term markup MedlinePlus embeds in field
// values, e.g. <span class="qt0">diabetes</span>.
var highlightTags = regexp.MustCompile(`</?[a-zA-Z][^>]*>`)

// Search implements the TopicSource port.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]model.Resource, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("db", "healthTopics")
	q.Set("term", query)
	q.Set("retmax", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("medlineplus: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("medlineplus: search: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return nil, fmt.Errorf("medlineplus: unexpected status %d", resp.StatusCode)
	}

	var result searchResult
	if err := xml.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("medlineplus: decode response: %w", err)
	}

	resources := make([]model.Resource, 0, len(result.List))
	for _, doc := range result.List {
		res := model.Resource{
			Source: model.SourceMedlinePlus,
			URL:    doc.URL,
		}
		for _, f := range doc.Content {
			switch f.Name {
			case "title":
				res.Title = cleanField(f.Value)
			case "snippet":
				if res.Snippet == "" {
					res.Snippet = cleanField(f.Value)
				}
			case "FullSummary":
				if res.Snippet == "" {
					res.Snippet = cleanField(f.Value)
				}
			}
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

// cleanField unescapes a content value and drops the highlight markup. The
// API escapes the span tags inside the XML, so unescaping must come first.
func cleanField(v string) string {
	return highlightTags.ReplaceAllString(html.UnescapeString(v), "")
}
