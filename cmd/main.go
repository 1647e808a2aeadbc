// Package main runs the credit manager API server.
package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/go-petr/credit-manager/cmd/httpserver"
	"github.com/go-petr/credit-manager/internal/middleware"
	"github.com/go-petr/credit-manager/pkg/configpkg"
	"github.com/go-petr/credit-manager/pkg/dbpkg"

	_ "github.com/lib/pq"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)
	ctx := logger.WithContext(context.Background())

	db, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to database")
	}

	if err := dbpkg.Migrate(ctx, db); err != nil {
		logger.Fatal().Err(err).Msg("cannot migrate database")
	}

	collaborators, err := httpserver.NewCollaborators(ctx, config, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create collaborators")
	}
	defer collaborators.Close()

	server, err := httpserver.New(db, logger, config, collaborators)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	n, err := server.Credit.RedeliverPending(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("cannot redeliver pending messages")
	} else if n > 0 {
		logger.Info().Int("messages", n).Msg("redelivered pending messages")
	}

	logger.Info().Msg("CREDIT MANAGER SERVER HAS STARTED")

	err = server.Engine.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
