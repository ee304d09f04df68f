package minhareceita

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"conesites/cmd/internal/domain/entity"
)

const DefaultBaseURL = "https://minhareceita.org/"

var (
	ErrNotFound = errors.New("not found")
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient() *Client {
	return NewClientWithBaseURL(DefaultBaseURL, &http.Client{Timeout: 15 * time.Second})
}

func NewClientWithBaseURL(baseURL string, httpClient *http.Client) *Client {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// GetByCNPJ expects a digits-only CNPJ. The returned company is not stamped
// with cache metadata.
func (c *Client) GetByCNPJ(ctx context.Context, cnpj string) (*entity.Company, error) {
	endpoint, err := url.JoinPath(c.baseURL, url.PathEscape(cnpj))
	if err != nil {
		return nil, fmt.Errorf("building minhareceita url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling minhareceita: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("minhareceita failed with status code: %d", resp.StatusCode)
	}

	var company companyResponse
	if err := json.NewDecoder(resp.Body).Decode(&company); err != nil {
		return nil, fmt.Errorf("decoding minhareceita response: %w", err)
	}
	return company.ToDomain(), nil
}
