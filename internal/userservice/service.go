// Package userservice manages business logic layer of users.
package userservice

import (
	"context"
	"time"

	"github.com/go-petr/credit-manager/internal/domain"
	"github.com/go-petr/credit-manager/pkg/errorspkg"
	"github.com/go-petr/credit-manager/pkg/passpkg"
	"github.com/go-petr/credit-manager/pkg/tokenpkg"
	"github.com/rs/zerolog"
)

// Repo provides data access layer interface needed by user service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package userservice
type Repo interface {
	Create(ctx context.Context, username, hashedPassword string) (domain.User, error)
	Get(ctx context.Context, username string) (domain.User, error)
}

// Service facilitates user service layer logic.
type Service struct {
	repo                Repo
	tokenMaker          tokenpkg.Maker
	accessTokenDuration time.Duration
}

// New return user service struct to manage user bussines logic.
func New(ur Repo, tm tokenpkg.Maker, accessTokenDuration time.Duration) *Service {
	return &Service{
		repo:                ur,
		tokenMaker:          tm,
		accessTokenDuration: accessTokenDuration,
	}
}

// Create creates and returns user.
func (s *Service) Create(ctx context.Context, username, password string) (domain.User, error) {
	l := zerolog.Ctx(ctx)

	hashedPassword, err := passpkg.Hash(password)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.User{}, errorspkg.ErrInternal
	}

	return s.repo.Create(ctx, username, hashedPassword)
}

// Login checks the password of the user and issues an access token.
func (s *Service) Login(ctx context.Context, username, password string) (domain.LoginResult, error) {
	l := zerolog.Ctx(ctx)

	user, err := s.repo.Get(ctx, username)
	if err != nil {
		return domain.LoginResult{}, err
	}

	if err := passpkg.Check(password, user.HashedPassword); err != nil {
		l.Warn().Err(err).Str("username", username).Send()
		return domain.LoginResult{}, domain.ErrWrongPassword
	}

	token, payload, err := s.tokenMaker.CreateToken(username, s.accessTokenDuration)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.LoginResult{}, errorspkg.ErrInternal
	}

	return domain.LoginResult{
		AccessToken:          token,
		AccessTokenExpiresAt: payload.ExpiredAt,
		User:                 user,
	}, nil
}
