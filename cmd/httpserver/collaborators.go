package httpserver

import (
	"context"
	"fmt"

	"github.com/go-petr/credit-manager/internal/creditservice"
	"github.com/go-petr/credit-manager/internal/dispatch"
	"github.com/go-petr/credit-manager/internal/oracle"
	"github.com/go-petr/credit-manager/internal/redbank"
	"github.com/go-petr/credit-manager/internal/vaultadapter"
	"github.com/go-petr/credit-manager/pkg/configpkg"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Lender is the external lender as seen by the service and by the local dispatcher.
type Lender interface {
	creditservice.RedBank
	dispatch.Lender
}

// Vaults are the yield vaults as seen by the service and by the local dispatcher.
type Vaults interface {
	creditservice.VaultAdapter
	dispatch.Vaults
}

// Collaborators are the external systems the credit manager talks to.
type Collaborators struct {
	RedBank    Lender
	Oracle     creditservice.Oracle
	Vaults     Vaults
	Dispatcher creditservice.Dispatcher

	close func()
}

// Close releases the connections held by the collaborators.
func (c Collaborators) Close() {
	if c.close != nil {
		c.close()
	}
}

// NewCollaborators builds the collaborators selected by config.
//
// An empty URL selects the in-process mock of that collaborator seeded from
// the MOCK_* settings. An empty NATS_URL executes messages in-process.
func NewCollaborators(ctx context.Context, config configpkg.Config, logger zerolog.Logger) (Collaborators, error) {
	var c Collaborators

	if config.RedBankURL == "" {
		c.RedBank = redbank.NewMock(config.MockSimulatedYield)
	} else {
		c.RedBank = redbank.NewClient(config.RedBankURL, config.HTTPClientTimeout)
	}

	if config.OracleURL == "" {
		prices, err := mockPrices(config.MockPrices)
		if err != nil {
			return Collaborators{}, err
		}

		c.Oracle = oracle.NewMock(prices)
	} else {
		c.Oracle = oracle.NewClient(config.OracleURL, config.HTTPClientTimeout)
	}

	if config.VaultURL == "" {
		vaults, err := configpkg.ParsePairs(config.MockVaults)
		if err != nil {
			return Collaborators{}, fmt.Errorf("MOCK_VAULTS: %w", err)
		}

		m := vaultadapter.NewMock(config.MockVaultLockup, nil)
		for address, denom := range vaults {
			m.AddVault(address, denom)
		}

		c.Vaults = m
	} else {
		c.Vaults = vaultadapter.NewClient(config.VaultURL, config.HTTPClientTimeout)
	}

	if config.NATSURL == "" {
		logger.Warn().Msg("NATS_URL is empty, messages are executed in-process")
		c.Dispatcher = dispatch.NewLocal(c.RedBank, c.Vaults)

		return c, nil
	}

	nc, js, err := dispatch.ConnectNATS(config.NATSURL, logger)
	if err != nil {
		return Collaborators{}, err
	}

	if err := dispatch.EnsureStream(ctx, js); err != nil {
		nc.Close()
		return Collaborators{}, err
	}

	c.Dispatcher = dispatch.NewNATSPublisher(js)
	c.close = func() {
		if err := nc.Drain(); err != nil {
			logger.Warn().Err(err).Msg("cannot drain nats connection")
		}
	}

	return c, nil
}

func mockPrices(s string) (map[string]decimal.Decimal, error) {
	pairs, err := configpkg.ParsePairs(s)
	if err != nil {
		return nil, fmt.Errorf("MOCK_PRICES: %w", err)
	}

	prices := make(map[string]decimal.Decimal, len(pairs))

	for denom, raw := range pairs {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("MOCK_PRICES: %s: %w", denom, err)
		}

		prices[denom] = price
	}

	return prices, nil
}
