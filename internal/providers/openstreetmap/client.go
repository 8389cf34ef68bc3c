package openstreetmap

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// API Docs: https://nominatim.org/release-docs/develop/api/Reverse/
// Sample request: https://nominatim.openstreetmap.org/reverse?lat=-34.60&lon=-58.38&format=json
// API Docs: https://nominatim.org/release-docs/develop/api/Search/
// Sample request: https://nominatim.openstreetmap.org/search?q=Mendoza&format=json&addressdetails=1&limit=5
const (
	baseReverseURL = "https://nominatim.openstreetmap.org/reverse"
	baseSearchURL  = "https://nominatim.openstreetmap.org/search"
)

type Client struct {
	httpClient *http.Client
	reverseURL string
	searchURL  string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{},
		reverseURL: baseReverseURL,
		searchURL:  baseSearchURL,
	}
}

// Reverse looks up the place at the given coordinates
func (c *Client) Reverse(latitude, longitude float64) (*LookupAPIResponse, error) {
	// Build URL with query parameters
	u, err := url.Parse(c.reverseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("lat", fmt.Sprintf("%f", latitude))
	q.Set("lon", fmt.Sprintf("%f", longitude))
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	var apiResp LookupAPIResponse
	if err := c.getJSON(u.String(), &apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}

// Search geocodes a free-form query to candidate places
func (c *Client) Search(query string, limit int) ([]SearchAPIResult, error) {
	u, err := url.Parse(c.searchURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("addressdetails", "1")
	q.Set("limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()

	var results []SearchAPIResult
	if err := c.getJSON(u.String(), &results); err != nil {
		return nil, err
	}

	return results, nil
}

func (c *Client) getJSON(rawURL string, out interface{}) error {
	resp, err := c.httpClient.Get(rawURL)
	if err != nil {
		return fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
