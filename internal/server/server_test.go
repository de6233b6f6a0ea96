package server

import (
	"testing"
	"time"

	"github.com/lettercraft/backend/internal/config"
	"github.com/lettercraft/backend/internal/handler"
	"github.com/lettercraft/backend/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_HTTPConfigured(t *testing.T) {
	cfg := config.Server{
		HTTPAddress:    "localhost:0",
		RequestTimeout: 5 * time.Second,
	}

	handlers, err := handler.NewHandlers(nil, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, srv)
}

func TestNewServer_NoAddressConfigured(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	require.Error(t, err)
	assert.Nil(t, srv)
}
