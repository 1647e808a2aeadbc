package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-petr/credit-manager/pkg/randompkg"
	"github.com/go-petr/credit-manager/pkg/tokenpkg"
	"github.com/go-petr/credit-manager/pkg/web"
	"github.com/stretchr/testify/require"
)

const accountOwner = "alice"

// ownerServer answers with the caller resolved by Username behind AuthMiddleware.
func ownerServer(maker tokenpkg.Maker) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.GET("/accounts", AuthMiddleware(maker), func(gctx *gin.Context) {
		gctx.JSON(http.StatusOK, web.Response{Data: Username(gctx)})
	})

	return engine
}

func TestAuthMiddleware(t *testing.T) {
	secretKey := randompkg.String(32)

	for _, tokenType := range []string{tokenpkg.TypePaseto, tokenpkg.TypeJWT} {
		maker, err := tokenpkg.NewMaker(tokenType, secretKey)
		require.NoError(t, err)

		otherMaker, err := tokenpkg.NewMaker(tokenType, randompkg.String(32))
		require.NoError(t, err)

		testCases := []struct {
			name           string
			setupAuth      func(t *testing.T, r *http.Request)
			wantStatusCode int
			wantError      string
		}{
			{
				name:           "NoAuthorization",
				setupAuth:      func(t *testing.T, r *http.Request) {},
				wantStatusCode: http.StatusUnauthorized,
				wantError:      ErrAuthHeaderNotFound.Error(),
			},
			{
				name: "TokenWithoutType",
				setupAuth: func(t *testing.T, r *http.Request) {
					require.NoError(t, AddAuthorization(r, maker, "", accountOwner, time.Minute))
				},
				wantStatusCode: http.StatusUnauthorized,
				wantError:      ErrBadAuthHeaderFormat.Error(),
			},
			{
				name: "BasicAuth",
				setupAuth: func(t *testing.T, r *http.Request) {
					r.SetBasicAuth(accountOwner, "secret123")
				},
				wantStatusCode: http.StatusUnauthorized,
				wantError:      ErrUnsupportedAuthType.Error(),
			},
			{
				name: "ExpiredToken",
				setupAuth: func(t *testing.T, r *http.Request) {
					require.NoError(t, AddAuthorization(r, maker, AuthTypeBearer, accountOwner, -time.Minute))
				},
				wantStatusCode: http.StatusUnauthorized,
				wantError:      tokenpkg.ErrExpiredToken.Error(),
			},
			{
				name: "ForeignKey",
				setupAuth: func(t *testing.T, r *http.Request) {
					require.NoError(t, AddAuthorization(r, otherMaker, AuthTypeBearer, accountOwner, time.Minute))
				},
				wantStatusCode: http.StatusUnauthorized,
				wantError:      tokenpkg.ErrInvalidToken.Error(),
			},
			{
				name: "UppercaseBearer",
				setupAuth: func(t *testing.T, r *http.Request) {
					require.NoError(t, AddAuthorization(r, maker, "Bearer", accountOwner, time.Minute))
				},
				wantStatusCode: http.StatusOK,
			},
		}

		for _, tc := range testCases {
			t.Run(tokenType+"/"+tc.name, func(t *testing.T) {
				request, err := http.NewRequest(http.MethodGet, "/accounts", nil)
				require.NoError(t, err)

				tc.setupAuth(t, request)

				recorder := httptest.NewRecorder()
				ownerServer(maker).ServeHTTP(recorder, request)
				require.Equal(t, tc.wantStatusCode, recorder.Code)

				var caller string

				got := web.Response{Data: &caller}
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&got))
				require.Equal(t, tc.wantError, got.Error)

				if tc.wantStatusCode == http.StatusOK {
					require.Equal(t, accountOwner, caller)
				}
			})
		}
	}
}

func TestUsernameWithoutMiddleware(t *testing.T) {
	gctx, _ := gin.CreateTestContext(httptest.NewRecorder())

	require.Panics(t, func() { Username(gctx) })
}
