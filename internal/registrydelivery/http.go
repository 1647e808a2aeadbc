// Package registrydelivery manages delivery layer of the coin and vault allow-lists.
package registrydelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-petr/credit-manager/internal/domain"
	"github.com/go-petr/credit-manager/internal/middleware"
	"github.com/go-petr/credit-manager/pkg/errorspkg"
	"github.com/go-petr/credit-manager/pkg/web"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Service provides service layer interface needed by registry delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package registrydelivery
type Service interface {
	ListCoins(ctx context.Context, startAfter string, limit int32) ([]domain.CoinInfo, error)
	ListVaults(ctx context.Context, startAfter string, limit int32) ([]domain.VaultInfo, error)
	UpdateConfig(ctx context.Context, caller string, coins []domain.CoinInfo, vaults []domain.VaultInfo) error
}

// Handler facilitates registry delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns registry handler.
func NewHandler(rs Service) Handler {
	return Handler{service: rs}
}

type listRequest struct {
	StartAfter string `form:"start_after"`
	Limit      int32  `form:"limit" binding:"omitempty,min=1,max=30"`
}

// ListCoins handles http request to list whitelisted denoms.
func (h *Handler) ListCoins(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))
		return
	}

	coins, err := h.service.ListCoins(ctx, req.StartAfter, req.Limit)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	page := web.Page[domain.CoinInfo]{Items: coins}
	if len(coins) > 0 {
		page.StartAfter = coins[len(coins)-1].Denom
	}

	gctx.JSON(http.StatusOK, web.Response{Data: page})
}

// ListVaults handles http request to list whitelisted vaults.
func (h *Handler) ListVaults(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))
		return
	}

	vaults, err := h.service.ListVaults(ctx, req.StartAfter, req.Limit)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	page := web.Page[domain.VaultInfo]{Items: vaults}
	if len(vaults) > 0 {
		page.StartAfter = vaults[len(vaults)-1].Address
	}

	gctx.JSON(http.StatusOK, web.Response{Data: page})
}

type coinRequest struct {
	Denom                string          `json:"denom" binding:"required,denom"`
	MaxLTV               decimal.Decimal `json:"max_ltv"`
	LiquidationThreshold decimal.Decimal `json:"liquidation_threshold"`
}

type vaultRequest struct {
	Address              string          `json:"address" binding:"required"`
	MaxLTV               decimal.Decimal `json:"max_ltv"`
	LiquidationThreshold decimal.Decimal `json:"liquidation_threshold"`
}

type updateConfigRequest struct {
	Coins  []coinRequest  `json:"coins" binding:"dive"`
	Vaults []vaultRequest `json:"vaults" binding:"dive"`
}

// UpdateConfig handles http request to replace the allow-lists.
func (h *Handler) UpdateConfig(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req updateConfigRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	coins := make([]domain.CoinInfo, len(req.Coins))
	for i, c := range req.Coins {
		coins[i] = domain.CoinInfo(c)
	}

	vaults := make([]domain.VaultInfo, len(req.Vaults))
	for i, v := range req.Vaults {
		vaults[i] = domain.VaultInfo(v)
	}

	err := h.service.UpdateConfig(ctx, middleware.Username(gctx), coins, vaults)

	switch {
	case err == nil:
		gctx.JSON(http.StatusOK, web.Response{Data: struct {
			Coins  []domain.CoinInfo  `json:"coins"`
			Vaults []domain.VaultInfo `json:"vaults"`
		}{coins, vaults}})
	case errors.Is(err, domain.ErrUnauthorizedConfig):
		gctx.JSON(http.StatusForbidden, web.Error(err))
	case errors.Is(err, domain.ErrInvalidConfig):
		gctx.JSON(http.StatusBadRequest, web.Error(err))
	default:
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}
