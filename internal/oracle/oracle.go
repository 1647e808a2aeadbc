// Package oracle provides coin prices.
package oracle

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/go-petr/credit-manager/pkg/web"
	"github.com/shopspring/decimal"
)

// ErrPriceNotFound indicates a denom the oracle has no price for.
var ErrPriceNotFound = errors.New("price not found")

// Mock is an in-process price table.
type Mock struct {
	mu     sync.RWMutex
	prices map[string]decimal.Decimal
}

// NewMock returns a Mock with the given prices.
func NewMock(prices map[string]decimal.Decimal) *Mock {
	m := &Mock{prices: make(map[string]decimal.Decimal, len(prices))}
	for denom, price := range prices {
		m.prices[denom] = price
	}

	return m
}

// Price returns the price of one unit of denom.
func (m *Mock) Price(_ context.Context, denom string) (decimal.Decimal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	price, ok := m.prices[denom]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrPriceNotFound, denom)
	}

	return price, nil
}

// ChangePrice sets the price of denom.
func (m *Mock) ChangePrice(denom string, price decimal.Decimal) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.prices[denom] = price
}

// Client fetches prices from an oracle over HTTP.
type Client struct {
	c *web.Client
}

// NewClient returns an oracle Client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{c: web.NewClient(baseURL, timeout)}
}

type priceResponse struct {
	Denom string          `json:"denom"`
	Price decimal.Decimal `json:"price"`
}

// Price returns the price of one unit of denom.
func (c *Client) Price(ctx context.Context, denom string) (decimal.Decimal, error) {
	var res priceResponse
	if err := c.c.Do(ctx, http.MethodGet, "/price/"+url.PathEscape(denom), nil, &res); err != nil {
		var se *web.StatusError
		if errors.As(err, &se) && se.Code == http.StatusNotFound {
			return decimal.Zero, fmt.Errorf("%w: %s", ErrPriceNotFound, denom)
		}

		return decimal.Zero, fmt.Errorf("oracle: price %s: %w", denom, err)
	}

	return res.Price, nil
}
