package order

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Client submits orders to the content API from the storefront side.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewClient(baseURL string, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// Submit posts the order to the content API and returns the created order.
func (c *Client) Submit(ctx context.Context, sub Submission) (Order, error) {
	c.logger.WithField("charge_id", sub.Data.ChargeID).Info("Submitting order to content API")

	jsonData, err := json.Marshal(sub)
	if err != nil {
		return Order{}, fmt.Errorf("failed to marshal order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/orders", bytes.NewBuffer(jsonData))
	if err != nil {
		return Order{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Order{}, fmt.Errorf("failed to reach content API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var errBody struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil && errBody.Error != "" {
			return Order{}, fmt.Errorf("content API rejected order: %s", errBody.Error)
		}
		return Order{}, fmt.Errorf("content API returned status %d", resp.StatusCode)
	}

	var body Response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Order{}, fmt.Errorf("failed to decode order response: %w", err)
	}

	c.logger.WithField("order_uid", body.Order.UID).Info("Order persisted")
	return body.Order, nil
}
