// Package europepmc retrieves journal articles from the Europe PMC REST API.
package europepmc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL is the Europe PMC REST search endpoint.
const DefaultBaseURL = "https://www.ebi.ac.uk/europepmc/webservices/rest/search"

// DefaultTimeout bounds a single search request.
const DefaultTimeout = 15 * time.Second

// DefaultUserAgent identifies radarsci to the Europe PMC service.
const DefaultUserAgent = "RadarSci/0.2 (+https://github.com/juanvillada/radarsci)"

// SearchResult is the slice of a Europe PMC search hit that radarsci consumes.
type SearchResult struct {
	ID                   string  `json:"id"`
	Source               string  `json:"source"`
	Title                string  `json:"title"`
	AbstractText         string  `json:"abstractText"`
	AuthorString         string  `json:"authorString"`
	FirstPublicationDate string  `json:"firstPublicationDate"`
	DOI                  string  `json:"doi"`
	PMCID                string  `json:"pmcid"`
	Score                float64 `json:"score"`
}

// searchResponse mirrors the envelope around the result list.
type searchResponse struct {
	ResultList struct {
		Result []SearchResult `json:"result"`
	} `json:"resultList"`
}

// Options configures the Client.
type Options struct {
	BaseURL string        // Search endpoint; DefaultBaseURL when empty
	Timeout time.Duration // Per-request timeout; DefaultTimeout when zero
	Contact string        // Optional contact address appended to the User-Agent
}

// Client executes search requests against the Europe PMC REST API.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewClient builds a Client, applying defaults for unset options.
func NewClient(opts *Options) *Client {
	if opts == nil {
		opts = &Options{}
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	userAgent := DefaultUserAgent
	if opts.Contact != "" {
		userAgent = fmt.Sprintf("%s mailto:%s", DefaultUserAgent, opts.Contact)
	}

	return &Client{
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Search runs a single search expression and returns the raw result list.
func (c *Client) Search(ctx context.Context, expression string, pageSize int) ([]SearchResult, error) {
	params := url.Values{}
	params.Set("query", expression)
	params.Set("pageSize", strconv.Itoa(pageSize))
	params.Set("format", "json")
	params.Set("resultType", "core")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var payload searchResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode response JSON: %w", err)
	}

	return payload.ResultList.Result, nil
}
