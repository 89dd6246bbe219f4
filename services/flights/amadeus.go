// File: services/flights/amadeus.go
package flights

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"voyago/config"
	"voyago/models"
)

const (
	tokenPath  = "/v1/security/oauth2/token"
	offersPath = "/v2/shopping/flight-offers"
)

// AmadeusClient talks to the Amadeus self-service flight offers API using
// OAuth2 client-credentials. Tokens are cached until shortly before expiry.
type AmadeusClient struct {
	baseURL    string
	apiKey     string
	apiSecret  string
	httpClient *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewAmadeusClient builds a client from the loaded application config.
func NewAmadeusClient() *AmadeusClient {
	return &AmadeusClient{
		baseURL:    strings.TrimRight(config.AppConfig.FlightAPIBaseURL, "/"),
		apiKey:     config.AppConfig.FlightAPIKey,
		apiSecret:  config.AppConfig.FlightAPISecret,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type apiError struct {
	Errors []struct {
		Status int    `json:"status"`
		Title  string `json:"title"`
		Detail string `json:"detail"`
	} `json:"errors"`
}

func (c *AmadeusClient) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}
	if c.apiKey == "" || c.apiSecret == "" {
		return "", fmt.Errorf("flight API credentials not configured")
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.apiKey},
		"client_secret": {c.apiSecret},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request returned status %d", resp.StatusCode)
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("decoding token response: %w", err)
	}

	c.accessToken = tok.AccessToken
	// Refresh a minute early to avoid using a token at the expiry boundary.
	c.tokenExpiry = time.Now().Add(time.Duration(tok.ExpiresIn-60) * time.Second)
	return c.accessToken, nil
}

// Search queries the flight-offers endpoint with the given parameters.
func (c *AmadeusClient) Search(ctx context.Context, q SearchQuery) (*models.OfferList, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{
		"originLocationCode":      {q.Origin},
		"destinationLocationCode": {q.Destination},
		"departureDate":           {q.DepartureDate},
		"adults":                  {strconv.Itoa(q.Adults)},
		"max":                     {strconv.Itoa(q.MaxResults)},
	}
	if q.ReturnDate != "" {
		params.Set("returnDate", q.ReturnDate)
	}
	if q.TravelClass != "" {
		params.Set("travelClass", q.TravelClass)
	}
	if q.NonStop {
		params.Set("nonStop", "true")
	}
	if q.Currency != "" {
		params.Set("currencyCode", q.Currency)
	}
	if q.MaxPrice > 0 {
		params.Set("maxPrice", strconv.Itoa(q.MaxPrice))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+offersPath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("flight search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && len(apiErr.Errors) > 0 {
			return nil, fmt.Errorf("flight search returned status %d: %s", resp.StatusCode, apiErr.Errors[0].Detail)
		}
		return nil, fmt.Errorf("flight search returned status %d", resp.StatusCode)
	}

	var list models.OfferList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("decoding flight search response: %w", err)
	}
	return &list, nil
}

// Ping verifies the API is reachable and credentials are valid by
// acquiring a token.
func (c *AmadeusClient) Ping(ctx context.Context) error {
	_, err := c.token(ctx)
	return err
}
