package ecwid

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"recommender/internal/logger"
)

type Client struct {
	apiBase     string
	storeID     string
	accessToken string
	httpClient  *http.Client
	logger      *logger.Logger
}

func NewClient(apiBase, storeID, accessToken string, logger *logger.Logger) *Client {
	return &Client{
		apiBase:     apiBase,
		storeID:     storeID,
		accessToken: accessToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// GetProducts fetches one page of enabled products from Ecwid
func (c *Client) GetProducts(offset, limit int) (*ProductsResponse, error) {
	var productsResp ProductsResponse
	if err := c.get("products", offset, limit, &productsResp); err != nil {
		return nil, err
	}
	return &productsResp, nil
}

// GetOrders fetches one page of orders from Ecwid
func (c *Client) GetOrders(offset, limit int) (*OrdersResponse, error) {
	var ordersResp OrdersResponse
	if err := c.get("orders", offset, limit, &ordersResp); err != nil {
		return nil, err
	}
	return &ordersResp, nil
}

// GetCategories fetches one page of categories from Ecwid
func (c *Client) GetCategories(offset, limit int) (*CategoriesResponse, error) {
	var categoriesResp CategoriesResponse
	if err := c.get("categories", offset, limit, &categoriesResp); err != nil {
		return nil, err
	}
	return &categoriesResp, nil
}

// GetProfile fetches the store profile
func (c *Client) GetProfile() (*Profile, error) {
	url := fmt.Sprintf("%s/%s/profile", c.apiBase, c.storeID)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API request failed: %d - %s", resp.StatusCode, string(body))
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &profile, nil
}

func (c *Client) get(resource string, offset, limit int, target interface{}) error {
	url := fmt.Sprintf("%s/%s/%s", c.apiBase, c.storeID, resource)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	q := req.URL.Query()
	q.Set("offset", strconv.Itoa(offset))
	q.Set("limit", strconv.Itoa(limit))
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API request failed: %d - %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
