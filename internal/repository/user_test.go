package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"event-management/internal/repository"
)

func TestGetUserByEmailCaseInsensitive(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	seedUser(t, store, "Alice", "Alice@Example.com")
	users := repository.NewUserRepository(store)

	got, err := users.GetUserByEmail(ctx, "alice@example.COM")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Alice", got.Name)

	missing, err := users.GetUserByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestIsEmailInUseCaseInsensitive(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	seedUser(t, store, "Alice", "alice@example.com")
	users := repository.NewUserRepository(store)

	inUse, err := users.IsEmailInUse(ctx, "ALICE@EXAMPLE.COM")
	require.NoError(t, err)
	require.True(t, inUse)

	free, err := users.IsEmailInUse(ctx, "bob@example.com")
	require.NoError(t, err)
	require.False(t, free)
}
