// Package accountservice manages business logic layer of credit accounts.
package accountservice

import (
	"context"

	"github.com/go-petr/credit-manager/internal/domain"
)

// Repo provides data access layer interface needed by account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Repo interface {
	Create(ctx context.Context, owner string) (domain.Account, error)
	Get(ctx context.Context, id string) (domain.Account, error)
	List(ctx context.Context, owner string, limit, offset int32) ([]domain.Account, error)
}

// Service facilitates account service layer logic.
type Service struct {
	repo Repo
}

// New returns account service struct to manage account bussines logic.
func New(ar Repo) *Service {
	return &Service{repo: ar}
}

// Create opens a credit account for the owner.
func (s *Service) Create(ctx context.Context, owner string) (domain.Account, error) {
	return s.repo.Create(ctx, owner)
}

// Get returns the account with the given ID if it is owned by the caller.
func (s *Service) Get(ctx context.Context, caller, id string) (domain.Account, error) {
	account, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Account{}, err
	}

	if !account.IsOwner(caller) {
		return domain.Account{}, domain.NotTokenOwnerError{User: caller, AccountID: id}
	}

	return account, nil
}

// List returns accounts that are owned by the given user.
func (s *Service) List(ctx context.Context, owner string, pageSize, pageID int32) ([]domain.Account, error) {
	limit := pageSize
	offset := (pageID - 1) * pageSize

	return s.repo.List(ctx, owner, limit, offset)
}
