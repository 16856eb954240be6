// Package search enriches roadmap task resources with live web-search
// results from the Tavily API.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const (
	defaultEndpoint = "https://api.tavily.com/search"
	defaultTimeout  = 15 * time.Second
	defaultDepth    = "basic"
)

// Resource is one curated search result.
type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Client is a Tavily search client. A nil *Client is valid and returns no
// results, so enrichment can be disabled by configuration.
type Client struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a Tavily client. An empty API key yields a nil client
// (enrichment disabled).
func NewClient(apiKey string) *Client {
	if apiKey == "" {
		return nil
	}
	return &Client{
		apiKey:   apiKey,
		endpoint: defaultEndpoint,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

type searchRequest struct {
	APIKey      string `json:"api_key"`
	Query       string `json:"query"`
	SearchDepth string `json:"search_depth"`
	MaxResults  int    `json:"max_results"`
}

type searchResponse struct {
	Results []struct {
		Title string `json:"title"`
		URL   string `json:"url"`
	} `json:"results"`
}

// Search runs one web search. Failures are logged and degrade to an empty
// result set: missing resource links must never fail roadmap generation.
func (c *Client) Search(ctx context.Context, query string, maxResults int) []Resource {
	if c == nil {
		return nil
	}
	if maxResults <= 0 {
		maxResults = 3
	}

	body, err := json.Marshal(searchRequest{
		APIKey:      c.apiKey,
		Query:       query,
		SearchDepth: defaultDepth,
		MaxResults:  maxResults,
	})
	if err != nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.WarnContext(ctx, "tavily search failed", "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.WarnContext(ctx, "tavily search returned non-OK status", "status", resp.StatusCode)
		return nil
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		slog.WarnContext(ctx, "tavily response decode failed", "error", err)
		return nil
	}

	resources := make([]Resource, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		if r.URL == "" {
			continue
		}
		title := r.Title
		if title == "" {
			title = "Untitled Resource"
		}
		resources = append(resources, Resource{Title: title, URL: r.URL})
	}
	return resources
}

// EnrichQuery builds the search query for a task.
func EnrichQuery(title, description string) string {
	if description == "" {
		return title
	}
	return fmt.Sprintf("%s: %s", title, description)
}
