package services

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientLifecycle(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserService(db)
	clients := NewClientService(db)
	ctx := context.Background()

	owner, created, err := users.GetOrCreateUser(ctx, "admin@pizza.com", "admin User", models.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, created)

	again, created, err := users.GetOrCreateUser(ctx, "admin@pizza.com", "ignored", models.RoleUser)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, owner.ID, again.ID)
	assert.Equal(t, models.RoleAdmin, again.Role)

	client, secret, err := clients.CreateClient(ctx, owner.ID, NewClientRequest{Name: "deploy bot"})
	require.NoError(t, err)
	assert.NotEmpty(t, secret)
	assert.NotEqual(t, secret, client.Secret)
	assert.True(t, client.VerifyPassword(secret))
	assert.Equal(t, "read write", client.Scopes)

	owned, err := clients.GetClientsByUserID(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, owned, 1)

	assert.ErrorIs(t, clients.DeleteClient(ctx, client.ID, owner.ID+1), ErrClientNotFound)
	require.NoError(t, clients.DeleteClient(ctx, client.ID, owner.ID))

	owned, err = clients.GetClientsByUserID(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, owned)
}
