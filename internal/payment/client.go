package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// RelayClient calls the payment relay from the storefront side.
type RelayClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewRelayClient(baseURL string, logger *logrus.Logger) *RelayClient {
	return &RelayClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// CreateIntent requests an authorization for the given minor-unit amount and
// returns the processor's client secret.
func (c *RelayClient) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	c.logger.WithFields(logrus.Fields{"amount": amount, "currency": currency}).Info("Requesting payment intent")

	jsonData, err := json.Marshal(map[string]interface{}{"amount": amount, "currency": currency})
	if err != nil {
		return "", fmt.Errorf("failed to marshal intent request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/create-payment-intent", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach payment relay: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errBody struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil && errBody.Error != "" {
			return "", fmt.Errorf("payment relay rejected request: %s", errBody.Error)
		}
		return "", fmt.Errorf("payment relay returned status %d", resp.StatusCode)
	}

	var body struct {
		ClientSecret string `json:"clientSecret"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode relay response: %w", err)
	}
	if body.ClientSecret == "" {
		return "", fmt.Errorf("payment relay returned no client secret")
	}

	c.logger.Info("Payment intent created")
	return body.ClientSecret, nil
}
