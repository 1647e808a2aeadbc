package redbank

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-petr/credit-manager/internal/domain"
	"github.com/go-petr/credit-manager/pkg/mathpkg"
	"github.com/go-petr/credit-manager/pkg/web"
)

// Client talks to a lender over HTTP.
type Client struct {
	c *web.Client
}

// NewClient returns a lender Client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{c: web.NewClient(baseURL, timeout)}
}

type debtResponse struct {
	Denom  string          `json:"denom"`
	Amount mathpkg.Uint128 `json:"amount"`
}

// UserDebt returns the amount the credit manager owes for the denom.
func (c *Client) UserDebt(ctx context.Context, denom string) (mathpkg.Uint128, error) {
	var res debtResponse
	if err := c.c.Do(ctx, http.MethodGet, "/debt/"+url.PathEscape(denom), nil, &res); err != nil {
		return mathpkg.Zero(), fmt.Errorf("red bank: user debt %s: %w", denom, err)
	}

	return res.Amount, nil
}

// PreviewBorrow asks the lender how much its debt would grow if coin were borrowed.
func (c *Client) PreviewBorrow(ctx context.Context, coin domain.Coin) (mathpkg.Uint128, error) {
	var res debtResponse
	if err := c.c.Do(ctx, http.MethodPost, "/borrow/preview", coin, &res); err != nil {
		return mathpkg.Zero(), fmt.Errorf("red bank: preview borrow %s: %w", coin.Denom, err)
	}

	return res.Amount, nil
}

// Borrow asks the lender to lend coin to the credit manager.
func (c *Client) Borrow(ctx context.Context, coin domain.Coin) error {
	if err := c.c.Do(ctx, http.MethodPost, "/borrow", coin, nil); err != nil {
		return fmt.Errorf("red bank: borrow: %w", err)
	}

	return nil
}

// Repay sends coin back to the lender.
func (c *Client) Repay(ctx context.Context, coin domain.Coin) error {
	if err := c.c.Do(ctx, http.MethodPost, "/repay", coin, nil); err != nil {
		return fmt.Errorf("red bank: repay: %w", err)
	}

	return nil
}
