package dish

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Client reads the dish catalog from the storefront side: GraphQL for
// browsing (the query the browser issues) and the v1 REST endpoint for
// single-dish lookups.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

const dishesByRestaurantGraphQL = `query($restID: String) {
  dishes(restID: $restID) {
    UID_Dish
    RestID
    Name
    Description
    Price
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

// ListByRestaurant fetches the dishes offered by one restaurant.
func (c *Client) ListByRestaurant(ctx context.Context, restUID string) ([]Dish, error) {
	c.logger.WithField("rest_uid", restUID).Info("Fetching dishes from content API")

	jsonData, err := json.Marshal(map[string]interface{}{
		"query":     dishesByRestaurantGraphQL,
		"variables": map[string]interface{}{"restID": restUID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal dishes query: %w", err)
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
			Dishes []struct {
				UID         string  `json:"UID_Dish"`
				RestID      string  `json:"RestID"`
				Name        string  `json:"Name"`
				Description string  `json:"Description"`
				Price       float64 `json:"Price"`
				Image       struct {
					URL string `json:"url"`
				} `json:"Image"`
			} `json:"dishes"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode dishes response: %w", err)
	}

	out := make([]Dish, 0, len(body.Data.Dishes))
	for _, d := range body.Data.Dishes {
		out = append(out, Dish{
			UID:           d.UID,
			RestaurantUID: d.RestID,
			Name:          d.Name,
			Description:   d.Description,
			Price:         d.Price,
			Image:         d.Image.URL,
		})
	}

	c.logger.WithField("count", len(out)).Info("Retrieved dishes")
	return out, nil
}

// GetByUID looks up one dish; ErrNotFound when the catalog does not know it.
func (c *Client) GetByUID(ctx context.Context, uid string) (Dish, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/dishes/"+uid, nil)
	if err != nil {
		return Dish{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Dish{}, fmt.Errorf("failed to reach content API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return Dish{}, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return Dish{}, fmt.Errorf("content API returned status %d", resp.StatusCode)
	}

	var d Dish
	if err := json.NewDecoder(resp.Body).Decode(&d); err != nil {
		return Dish{}, fmt.Errorf("failed to decode dish response: %w", err)
	}
	return d, nil
}
