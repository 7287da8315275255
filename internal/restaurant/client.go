package restaurant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Client reads the restaurant catalog over the content API's GraphQL
// endpoint, the same query the browser storefront issues.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

const listRestaurantsGraphQL = `query GetRestaurants {
  restaurants {
    UID_Restaurant
    Name
    Description
    Image { url }
  }
}`

func NewClient(baseURL string, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// List fetches every restaurant in the catalog.
func (c *Client) List(ctx context.Context) ([]Restaurant, error) {
	c.logger.Info("Fetching restaurants from content API")

	jsonData, err := json.Marshal(map[string]interface{}{"query": listRestaurantsGraphQL})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal restaurants query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/graphql", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach content API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("content API returned status %d", resp.StatusCode)
	}

	var body struct {
		Data struct {
			Restaurants []struct {
				UID         string `json:"UID_Restaurant"`
				Name        string `json:"Name"`
				Description string `json:"Description"`
				Image       struct {
					URL string `json:"url"`
				} `json:"Image"`
			} `json:"restaurants"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode restaurants response: %w", err)
	}

	out := make([]Restaurant, 0, len(body.Data.Restaurants))
	for _, r := range body.Data.Restaurants {
		out = append(out, Restaurant{
			UID:         r.UID,
			Name:        r.Name,
			Description: r.Description,
			Image:       r.Image.URL,
		})
	}

	c.logger.WithField("count", len(out)).Info("Retrieved restaurants")
	return out, nil
}
