package userservice

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/go-petr/credit-manager/internal/domain"
	"github.com/go-petr/credit-manager/pkg/errorspkg"
	"github.com/go-petr/credit-manager/pkg/passpkg"
	"github.com/go-petr/credit-manager/pkg/randompkg"
	"github.com/go-petr/credit-manager/pkg/tokenpkg"
	gomock "github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func randomUser(t *testing.T) (domain.User, string) {
	password := randompkg.String(10)

	hashedPassword, err := passpkg.Hash(password)
	if err != nil {
		t.Fatalf("passpkg.Hash(%v) failed: %v", password, err)
	}

	user := domain.User{
		Username:       randompkg.Owner(),
		HashedPassword: hashedPassword,
		CreatedAt:      time.Now().UTC().Truncate(time.Microsecond),
	}

	return user, password
}

type hashOfMatcher struct {
	password string
}

func (e hashOfMatcher) Matches(x interface{}) bool {
	hashed, ok := x.(string)
	if !ok {
		return false
	}

	return passpkg.Check(e.password, hashed) == nil
}

func (e hashOfMatcher) String() string {
	return fmt.Sprintf("is a hash of password %v", e.password)
}

// HashOf matches a bcrypt hash of the password.
func HashOf(password string) gomock.Matcher {
	return hashOfMatcher{password}
}

func newTokenMaker(t *testing.T) tokenpkg.Maker {
	maker, err := tokenpkg.NewPasetoMaker(randompkg.String(32))
	require.NoError(t, err)

	return maker
}

func TestCreate(t *testing.T) {
	t.Parallel()

	user, password := randomUser(t)

	testCases := []struct {
		name          string
		username      string
		password      string
		buildStubs    func(userRepo *MockRepo)
		checkResponse func(t *testing.T, got domain.User)
		wantError     error
	}{
		{
			name:     "OK",
			username: user.Username,
			password: password,
			buildStubs: func(userRepo *MockRepo) {
				userRepo.EXPECT().
					Create(gomock.Any(), gomock.Eq(user.Username), HashOf(password)).
					Times(1).
					Return(user, nil)
			},
			checkResponse: func(t *testing.T, got domain.User) {
				if !cmp.Equal(got, user) {
					t.Errorf("domain.User = %+v, want %+v", got, user)
				}
			},
		},
		{
			name:     "HashPasswordErr",
			username: user.Username,
			password: strings.Repeat("long", 100),
			buildStubs: func(userRepo *MockRepo) {
				userRepo.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantError: errorspkg.ErrInternal,
		},
		{
			name:     "UsernameTaken",
			username: user.Username,
			password: password,
			buildStubs: func(userRepo *MockRepo) {
				userRepo.EXPECT().
					Create(gomock.Any(), gomock.Eq(user.Username), HashOf(password)).
					Times(1).
					Return(domain.User{}, domain.ErrUsernameAlreadyExists)
			},
			wantError: domain.ErrUsernameAlreadyExists,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := NewMockRepo(ctrl)
			userService := New(userRepo, newTokenMaker(t), time.Minute)

			tc.buildStubs(userRepo)

			got, err := userService.Create(context.Background(), tc.username, tc.password)
			if err != nil {
				if err == tc.wantError {
					return
				}

				t.Fatalf("userService.Create(context.Background(), %v, %v) got error %v, want %v",
					tc.username, tc.password, err, tc.wantError)
			}

			tc.checkResponse(t, got)
		})
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()

	user, password := randomUser(t)

	testCases := []struct {
		name          string
		username      string
		password      string
		buildStubs    func(userRepo *MockRepo)
		checkResponse func(t *testing.T, maker tokenpkg.Maker, got domain.LoginResult)
		wantError     error
	}{
		{
			name:     "OK",
			username: user.Username,
			password: password,
			buildStubs: func(userRepo *MockRepo) {
				userRepo.EXPECT().
					Get(gomock.Any(), user.Username).
					Times(1).
					Return(user, nil)
			},
			checkResponse: func(t *testing.T, maker tokenpkg.Maker, got domain.LoginResult) {
				if !cmp.Equal(got.User, user) {
					t.Errorf("domain.User = %+v, want %+v", got.User, user)
				}

				payload, err := maker.VerifyToken(got.AccessToken)
				require.NoError(t, err)
				require.Equal(t, user.Username, payload.Username)
				require.WithinDuration(t, time.Now().Add(time.Minute), got.AccessTokenExpiresAt, time.Second)
			},
		},
		{
			name:     "UserNotFound",
			username: user.Username,
			password: password,
			buildStubs: func(userRepo *MockRepo) {
				userRepo.EXPECT().
					Get(gomock.Any(), user.Username).
					Times(1).
					Return(domain.User{}, domain.ErrUserNotFound)
			},
			wantError: domain.ErrUserNotFound,
		},
		{
			name:     "WrongPassword",
			username: user.Username,
			password: "wrong",
			buildStubs: func(userRepo *MockRepo) {
				userRepo.EXPECT().
					Get(gomock.Any(), user.Username).
					Times(1).
					Return(user, nil)
			},
			wantError: domain.ErrWrongPassword,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			maker := newTokenMaker(t)
			userRepo := NewMockRepo(ctrl)
			userService := New(userRepo, maker, time.Minute)

			tc.buildStubs(userRepo)

			got, err := userService.Login(context.Background(), tc.username, tc.password)
			if err != nil {
				if err == tc.wantError {
					return
				}

				t.Fatalf("userService.Login(context.Background(), %v, %v) got error %v, want %v",
					tc.username, tc.password, err, tc.wantError)
			}

			tc.checkResponse(t, maker, got)
		})
	}
}
