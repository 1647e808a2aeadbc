// Package creditdelivery manages delivery layer of credit account updates and ledger queries.
package creditdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-petr/credit-manager/internal/domain"
	"github.com/go-petr/credit-manager/internal/middleware"
	"github.com/go-petr/credit-manager/pkg/errorspkg"
	"github.com/go-petr/credit-manager/pkg/mathpkg"
	"github.com/go-petr/credit-manager/pkg/web"
	"github.com/rs/zerolog"
)

// Service provides service layer interface needed by credit delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package creditdelivery
type Service interface {
	UpdateAccount(ctx context.Context, caller string, params domain.UpdateAccountParams) (domain.UpdateAccountResult, error)
	Position(ctx context.Context, accountID string) (domain.Position, error)
	Health(ctx context.Context, accountID string) (domain.Health, error)
	TotalDebtShares(ctx context.Context, denom string) (domain.DebtShares, error)
	AllTotalDebtShares(ctx context.Context, startAfter string, limit int32) ([]domain.DebtShares, error)
	AllCoinBalances(ctx context.Context, startAfterAccount, startAfterDenom string, limit int32) ([]domain.CoinBalance, error)
	AllDebtShares(ctx context.Context, startAfterAccount, startAfterDenom string, limit int32) ([]domain.AccountDebtShares, error)
}

// Handler facilitates credit delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns credit handler.
func NewHandler(cs Service) Handler {
	return Handler{service: cs}
}

// respondError writes err with the status matching its kind.
func respondError(gctx *gin.Context, err error) {
	l := zerolog.Ctx(gctx.Request.Context())

	switch {
	case errors.Is(err, domain.ErrAccountNotFound), errors.Is(err, domain.ErrVaultPositionNotFound):
		gctx.JSON(http.StatusNotFound, web.Error(err))
	case errors.Is(err, domain.ErrNotTokenOwner):
		l.Warn().Err(err).Send()
		gctx.JSON(http.StatusForbidden, web.Error(err))
	case domain.IsRejection(err):
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))
	case errors.Is(err, errorspkg.ErrUnavailable):
		l.Error().Err(err).Send()
		gctx.JSON(http.StatusBadGateway, web.Error(errorspkg.ErrUnavailable))
	default:
		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}

type accountURI struct {
	ID string `uri:"id" binding:"required,uuid"`
}

type coinRequest struct {
	Denom  string          `json:"denom" binding:"required,denom"`
	Amount mathpkg.Uint128 `json:"amount"`
}

func (c coinRequest) coin() domain.Coin {
	return domain.Coin{Denom: c.Denom, Amount: c.Amount}
}

func coins(reqs []coinRequest) []domain.Coin {
	if len(reqs) == 0 {
		return nil
	}

	out := make([]domain.Coin, len(reqs))
	for i, c := range reqs {
		out[i] = c.coin()
	}

	return out
}

type actionRequest struct {
	Kind       string          `json:"kind" binding:"required,oneof=deposit withdraw borrow repay vault_deposit vault_request_unlock vault_withdraw_unlocked"`
	Coin       *coinRequest    `json:"coin"`
	Vault      string          `json:"vault"`
	Coins      []coinRequest   `json:"coins" binding:"dive"`
	Amount     mathpkg.Uint128 `json:"amount"`
	PositionID uint64          `json:"position_id"`
}

func (a actionRequest) action() domain.Action {
	action := domain.Action{
		Kind:       domain.ActionKind(a.Kind),
		Vault:      a.Vault,
		Coins:      coins(a.Coins),
		Amount:     a.Amount,
		PositionID: a.PositionID,
	}

	if a.Coin != nil {
		action.Coin = a.Coin.coin()
	}

	return action
}

type updateRequest struct {
	Actions []actionRequest `json:"actions" binding:"dive"`
	Funds   []coinRequest   `json:"funds" binding:"dive"`
}

// UpdateAccount handles http request to run a batch of actions on the account.
func (h *Handler) UpdateAccount(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri accountURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	var req updateRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	params := domain.UpdateAccountParams{
		AccountID: uri.ID,
		Actions:   make([]domain.Action, len(req.Actions)),
		Funds:     coins(req.Funds),
	}

	for i, a := range req.Actions {
		params.Actions[i] = a.action()
	}

	res, err := h.service.UpdateAccount(ctx, middleware.Username(gctx), params)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: res})
}

// Position handles http request to value the account.
func (h *Handler) Position(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var uri accountURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))
		return
	}

	pos, err := h.service.Position(ctx, uri.ID)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: pos})
}

// Health handles http request to compute the health factors of the account.
func (h *Handler) Health(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var uri accountURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))
		return
	}

	health, err := h.service.Health(ctx, uri.ID)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: health})
}

type denomURI struct {
	Denom string `uri:"denom" binding:"required,denom"`
}

// TotalDebtShares handles http request to get the debt shares issued for a denom.
func (h *Handler) TotalDebtShares(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var uri denomURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))
		return
	}

	shares, err := h.service.TotalDebtShares(ctx, uri.Denom)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: shares})
}

type listRequest struct {
	StartAfter string `form:"start_after"`
	Limit      int32  `form:"limit" binding:"omitempty,min=1,max=30"`
}

// AllTotalDebtShares handles http request to list the debt shares of every denom.
func (h *Handler) AllTotalDebtShares(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))
		return
	}

	items, err := h.service.AllTotalDebtShares(ctx, req.StartAfter, req.Limit)
	if err != nil {
		respondError(gctx, err)
		return
	}

	page := web.Page[domain.DebtShares]{Items: items}
	if len(items) > 0 {
		page.StartAfter = items[len(items)-1].Denom
	}

	gctx.JSON(http.StatusOK, web.Response{Data: page})
}

type ledgerListRequest struct {
	StartAfterAccount string `form:"start_after_account"`
	StartAfterDenom   string `form:"start_after_denom"`
	Limit             int32  `form:"limit" binding:"omitempty,min=1,max=30"`
}

// ledgerPage is a page of rows keyed by account and denom.
type ledgerPage[T any] struct {
	Items             []T    `json:"items"`
	StartAfterAccount string `json:"start_after_account,omitempty"`
	StartAfterDenom   string `json:"start_after_denom,omitempty"`
}

// AllCoinBalances handles http request to dump the collateral ledger.
func (h *Handler) AllCoinBalances(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req ledgerListRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))
		return
	}

	items, err := h.service.AllCoinBalances(ctx, req.StartAfterAccount, req.StartAfterDenom, req.Limit)
	if err != nil {
		respondError(gctx, err)
		return
	}

	page := ledgerPage[domain.CoinBalance]{Items: items}
	if len(items) > 0 {
		last := items[len(items)-1]
		page.StartAfterAccount, page.StartAfterDenom = last.AccountID, last.Denom
	}

	gctx.JSON(http.StatusOK, web.Response{Data: page})
}

// AllDebtShares handles http request to dump the debt shares ledger.
func (h *Handler) AllDebtShares(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req ledgerListRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))
		return
	}

	items, err := h.service.AllDebtShares(ctx, req.StartAfterAccount, req.StartAfterDenom, req.Limit)
	if err != nil {
		respondError(gctx, err)
		return
	}

	page := ledgerPage[domain.AccountDebtShares]{Items: items}
	if len(items) > 0 {
		last := items[len(items)-1]
		page.StartAfterAccount, page.StartAfterDenom = last.AccountID, last.Denom
	}

	gctx.JSON(http.StatusOK, web.Response{Data: page})
}
