package repository

import (
	"context"
	"testing"

	"logia-admin/config"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewUnknownBackend(t *testing.T) {
	_, err := New(context.Background(), "mongo", zap.NewNop().Sugar(), &config.Config{})
	require.Error(t, err)
}

func TestNewPostgresBackend(t *testing.T) {
	repo, err := New(context.Background(), "postgres", zap.NewNop().Sugar(), &config.Config{})
	require.NoError(t, err)
	require.NotNil(t, repo)
	require.NoError(t, repo.OnStop(context.Background()))
}
