package server

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/eterbox/internal/logging"
	"github.com/dmitrijs2005/eterbox/internal/server/auth"
	"github.com/dmitrijs2005/eterbox/internal/server/config"
	"github.com/dmitrijs2005/eterbox/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_WiresServices(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DevMode = true

	app, err := build(db, repomanager.NewPostgresRepositoryManager(), cfg, logging.Nop())
	require.NoError(t, err)
	assert.NotNil(t, app.server)
	assert.NotNil(t, app.janitor)
}

func TestBuild_RejectsBadHashParams(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.PasswordHash = auth.HashParams{}

	_, err = build(db, repomanager.NewPostgresRepositoryManager(), cfg, logging.Nop())
	assert.Error(t, err)
}
