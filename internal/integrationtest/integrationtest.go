// Package integrationtest provides helpers to run the whole app in integration tests.
package integrationtest

import (
	"context"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-petr/credit-manager/cmd/httpserver"
	"github.com/go-petr/credit-manager/internal/middleware"
	"github.com/go-petr/credit-manager/pkg/configpkg"
	"github.com/go-petr/credit-manager/pkg/dbpkg"
	"github.com/rs/zerolog"
)

// SetupServer returns a server backed by a fresh in-memory database and the
// in-process mock collaborators seeded from the config at configPath.
func SetupServer(t *testing.T, configPath string) *httpserver.Server {
	t.Helper()

	config, err := configpkg.Load(configPath)
	if err != nil {
		t.Fatalf(`configpkg.Load(%q) returned error: %v`, configPath, err)
	}

	config.RedBankURL = ""
	config.OracleURL = ""
	config.VaultURL = ""
	config.NATSURL = ""

	zerolog.SetGlobalLevel(zerolog.FatalLevel)

	logger := middleware.CreateLogger(config)

	collaborators, err := httpserver.NewCollaborators(context.Background(), config, logger)
	if err != nil {
		t.Fatalf(`httpserver.NewCollaborators() returned error: %v`, err)
	}

	t.Cleanup(collaborators.Close)

	gin.SetMode(gin.ReleaseMode)

	server, err := httpserver.New(dbpkg.SetupDB(t), logger, config, collaborators)
	if err != nil {
		t.Fatalf(`httpserver.New() returned error: %v`, err)
	}

	return server
}
