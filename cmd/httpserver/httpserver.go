// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/go-petr/credit-manager/internal/accountdelivery"
	"github.com/go-petr/credit-manager/internal/accountrepo"
	"github.com/go-petr/credit-manager/internal/accountservice"
	"github.com/go-petr/credit-manager/internal/creditdelivery"
	"github.com/go-petr/credit-manager/internal/creditservice"
	"github.com/go-petr/credit-manager/internal/ledgerrepo"
	"github.com/go-petr/credit-manager/internal/metrics"
	"github.com/go-petr/credit-manager/internal/middleware"
	"github.com/go-petr/credit-manager/internal/registrydelivery"
	"github.com/go-petr/credit-manager/internal/registryrepo"
	"github.com/go-petr/credit-manager/internal/registryservice"
	"github.com/go-petr/credit-manager/internal/userdelivery"
	"github.com/go-petr/credit-manager/internal/userrepo"
	"github.com/go-petr/credit-manager/internal/userservice"
	"github.com/go-petr/credit-manager/pkg/configpkg"
	"github.com/go-petr/credit-manager/pkg/denompkg"
	"github.com/go-petr/credit-manager/pkg/tokenpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
	Credit *creditservice.Service
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config, c Collaborators, opts ...creditservice.Option) (*Server, error) {
	tokenMaker, err := tokenpkg.NewMaker(config.TokenType, config.TokenSymmetricKey)
	if err != nil {
		return nil, errors.New("cannot create token maker")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	userRepo := userrepo.NewRepoSQL(conn)
	accountRepo := accountrepo.NewRepoSQL(conn)
	registryRepo := registryrepo.NewRepoSQL(conn)
	ledger := ledgerrepo.NewRepoSQL(conn)

	userService := userservice.New(userRepo, tokenMaker, config.AccessTokenDuration)
	accountService := accountservice.New(accountRepo)
	registryService := registryservice.New(registryRepo, config.AdminUsername)
	creditService := creditservice.New(creditservice.Deps{
		Accounts:   accountRepo,
		Registry:   registryService,
		Ledger:     ledger,
		RedBank:    c.RedBank,
		Oracle:     c.Oracle,
		Vaults:     c.Vaults,
		Dispatcher: c.Dispatcher,
		Metrics:    metrics.New(reg),
	}, opts...)

	userHandler := userdelivery.NewHandler(userService)
	accountHandler := accountdelivery.NewHandler(accountService)
	creditHandler := creditdelivery.NewHandler(creditService)
	registryHandler := registrydelivery.NewHandler(registryService)

	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	engine.POST("/users", userHandler.Create)
	engine.POST("/users/login", userHandler.Login)

	authRoutes := engine.Group("/").Use(middleware.AuthMiddleware(tokenMaker))

	authRoutes.POST("/accounts", accountHandler.Create)
	authRoutes.GET("/accounts", accountHandler.List)
	authRoutes.GET("/accounts/:id", accountHandler.Get)

	authRoutes.POST("/accounts/:id/actions", creditHandler.UpdateAccount)
	authRoutes.GET("/accounts/:id/position", creditHandler.Position)
	authRoutes.GET("/accounts/:id/health", creditHandler.Health)
	authRoutes.GET("/debt-shares", creditHandler.AllTotalDebtShares)
	authRoutes.GET("/debt-shares/:denom", creditHandler.TotalDebtShares)
	authRoutes.GET("/coin-balances", creditHandler.AllCoinBalances)
	authRoutes.GET("/account-debt-shares", creditHandler.AllDebtShares)

	authRoutes.GET("/allowed-coins", registryHandler.ListCoins)
	authRoutes.GET("/allowed-vaults", registryHandler.ListVaults)
	authRoutes.PUT("/config", registryHandler.UpdateConfig)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("denom", denompkg.ValidDenom)
		if err != nil {
			return nil, errors.New("cannot register denom validator")
		}
	}

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
		Credit: creditService,
	}

	return server, nil
}
