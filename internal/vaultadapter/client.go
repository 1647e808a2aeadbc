package vaultadapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-petr/credit-manager/internal/domain"
	"github.com/go-petr/credit-manager/pkg/mathpkg"
	"github.com/go-petr/credit-manager/pkg/web"
)

// Client talks to vaults over HTTP.
type Client struct {
	c *web.Client
}

// NewClient returns a vault Client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{c: web.NewClient(baseURL, timeout)}
}

type coinsBody struct {
	Coins []domain.Coin `json:"coins"`
}

type amountBody struct {
	Amount mathpkg.Uint128 `json:"amount"`
}

type unlockBody struct {
	ID     uint64          `json:"id"`
	Amount mathpkg.Uint128 `json:"amount"`
}

func vaultPath(vault, suffix string) string {
	return "/vaults/" + url.PathEscape(vault) + suffix
}

func unlockPath(vault string, id uint64, suffix string) string {
	return vaultPath(vault, "/unlocks/"+strconv.FormatUint(id, 10)+suffix)
}

// PreviewDeposit returns the LP shares minted for coins.
func (c *Client) PreviewDeposit(ctx context.Context, vault string, coins []domain.Coin) (mathpkg.Uint128, error) {
	var res amountBody
	if err := c.c.Do(ctx, http.MethodPost, vaultPath(vault, "/preview-deposit"), coinsBody{coins}, &res); err != nil {
		return mathpkg.Zero(), fmt.Errorf("vault %s: preview deposit: %w", vault, err)
	}

	return res.Amount, nil
}

// PreviewRedeem returns the coins amount LP shares are worth.
func (c *Client) PreviewRedeem(ctx context.Context, vault string, amount mathpkg.Uint128) ([]domain.Coin, error) {
	var res coinsBody
	if err := c.c.Do(ctx, http.MethodPost, vaultPath(vault, "/preview-redeem"), amountBody{amount}, &res); err != nil {
		return nil, fmt.Errorf("vault %s: preview redeem: %w", vault, err)
	}

	return res.Coins, nil
}

// ReserveUnlock allocates the id of a future unlocking position.
func (c *Client) ReserveUnlock(ctx context.Context, vault string, amount mathpkg.Uint128) (domain.UnlockStatus, error) {
	var res domain.UnlockStatus
	if err := c.c.Do(ctx, http.MethodPost, vaultPath(vault, "/unlocks/reserve"), amountBody{amount}, &res); err != nil {
		return domain.UnlockStatus{}, fmt.Errorf("vault %s: reserve unlock: %w", vault, err)
	}

	return res, nil
}

// UnlockStatus returns the unlocking position with the given id.
func (c *Client) UnlockStatus(ctx context.Context, vault string, id uint64) (domain.UnlockStatus, error) {
	var res domain.UnlockStatus
	if err := c.c.Do(ctx, http.MethodGet, unlockPath(vault, id, ""), nil, &res); err != nil {
		return domain.UnlockStatus{}, fmt.Errorf("vault %s: unlock %d: %w", vault, id, err)
	}

	return res, nil
}

// Deposit sends coins to the vault.
func (c *Client) Deposit(ctx context.Context, vault string, coins []domain.Coin) error {
	if err := c.c.Do(ctx, http.MethodPost, vaultPath(vault, "/deposit"), coinsBody{coins}, nil); err != nil {
		return fmt.Errorf("vault %s: deposit: %w", vault, err)
	}

	return nil
}

// StartUnlock starts the lockup of a reserved unlocking position.
func (c *Client) StartUnlock(ctx context.Context, vault string, id uint64, amount mathpkg.Uint128) error {
	if err := c.c.Do(ctx, http.MethodPost, vaultPath(vault, "/unlocks"), unlockBody{ID: id, Amount: amount}, nil); err != nil {
		return fmt.Errorf("vault %s: start unlock %d: %w", vault, id, err)
	}

	return nil
}

// Redeem burns a matured unlocking position.
func (c *Client) Redeem(ctx context.Context, vault string, id uint64) error {
	if err := c.c.Do(ctx, http.MethodPost, unlockPath(vault, id, "/redeem"), nil, nil); err != nil {
		return fmt.Errorf("vault %s: redeem %d: %w", vault, id, err)
	}

	return nil
}
