// Package registryservice manages business logic layer of the coin and vault allow-lists.
package registryservice

import (
	"context"
	"fmt"

	"github.com/go-petr/credit-manager/internal/domain"
	"github.com/go-petr/credit-manager/pkg/web"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Repo provides data access layer interface needed by registry service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package registryservice
type Repo interface {
	CoinInfo(ctx context.Context, denom string) (domain.CoinInfo, error)
	VaultInfo(ctx context.Context, address string) (domain.VaultInfo, error)
	ListCoins(ctx context.Context, startAfter string, limit int32) ([]domain.CoinInfo, error)
	ListVaults(ctx context.Context, startAfter string, limit int32) ([]domain.VaultInfo, error)
	ReplaceConfig(ctx context.Context, coins []domain.CoinInfo, vaults []domain.VaultInfo) error
}

// Service facilitates registry service layer logic.
type Service struct {
	repo  Repo
	admin string
}

// New returns registry service. Only admin may update the allow-lists.
func New(r Repo, admin string) *Service {
	return &Service{repo: r, admin: admin}
}

// CoinInfo returns the risk parameters of a whitelisted denom.
func (s *Service) CoinInfo(ctx context.Context, denom string) (domain.CoinInfo, error) {
	return s.repo.CoinInfo(ctx, denom)
}

// VaultInfo returns the risk parameters of a whitelisted vault.
func (s *Service) VaultInfo(ctx context.Context, address string) (domain.VaultInfo, error) {
	return s.repo.VaultInfo(ctx, address)
}

// ListCoins returns a page of whitelisted denoms.
func (s *Service) ListCoins(ctx context.Context, startAfter string, limit int32) ([]domain.CoinInfo, error) {
	return s.repo.ListCoins(ctx, startAfter, web.ClampLimit(limit))
}

// ListVaults returns a page of whitelisted vaults.
func (s *Service) ListVaults(ctx context.Context, startAfter string, limit int32) ([]domain.VaultInfo, error) {
	return s.repo.ListVaults(ctx, startAfter, web.ClampLimit(limit))
}

// UpdateConfig replaces the allow-lists after validating the risk parameters.
func (s *Service) UpdateConfig(ctx context.Context, caller string, coins []domain.CoinInfo, vaults []domain.VaultInfo) error {
	l := zerolog.Ctx(ctx)

	if caller != s.admin {
		l.Warn().Str("caller", caller).Err(domain.ErrUnauthorizedConfig).Send()
		return domain.ErrUnauthorizedConfig
	}

	seen := make(map[string]struct{}, len(coins))
	for _, c := range coins {
		if _, ok := seen[c.Denom]; ok {
			return fmt.Errorf("%w: duplicate denom %s", domain.ErrInvalidConfig, c.Denom)
		}

		seen[c.Denom] = struct{}{}

		if err := validateLTV(c.Denom, c.MaxLTV, c.LiquidationThreshold); err != nil {
			return err
		}
	}

	seen = make(map[string]struct{}, len(vaults))
	for _, v := range vaults {
		if _, ok := seen[v.Address]; ok {
			return fmt.Errorf("%w: duplicate vault %s", domain.ErrInvalidConfig, v.Address)
		}

		seen[v.Address] = struct{}{}

		if err := validateLTV(v.Address, v.MaxLTV, v.LiquidationThreshold); err != nil {
			return err
		}
	}

	if err := s.repo.ReplaceConfig(ctx, coins, vaults); err != nil {
		return err
	}

	l.Info().Int("coins", len(coins)).Int("vaults", len(vaults)).Msg("config updated")

	return nil
}

func validateLTV(name string, maxLTV, liquidationThreshold decimal.Decimal) error {
	one := decimal.NewFromInt(1)

	if !maxLTV.IsPositive() || maxLTV.GreaterThan(one) {
		return fmt.Errorf("%w: %s max_ltv %s must be in (0, 1]", domain.ErrInvalidConfig, name, maxLTV)
	}

	if !liquidationThreshold.IsPositive() || liquidationThreshold.GreaterThan(one) {
		return fmt.Errorf("%w: %s liquidation_threshold %s must be in (0, 1]",
			domain.ErrInvalidConfig, name, liquidationThreshold)
	}

	if maxLTV.GreaterThan(liquidationThreshold) {
		return fmt.Errorf("%w: %s max_ltv %s is above liquidation_threshold %s",
			domain.ErrInvalidConfig, name, maxLTV, liquidationThreshold)
	}

	return nil
}
