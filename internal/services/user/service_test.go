package user

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/kanbo/internal/api"
	"github.com/thenoetrevino/kanbo/internal/models"
	"github.com/thenoetrevino/kanbo/internal/storage"
	"github.com/thenoetrevino/kanbo/internal/testutil"
)

func TestUserEndpoints(t *testing.T) {
	ctx := context.Background()
	fake := testutil.NewFakeAPI(t)
	client, me := fake.SignedInClient(t)
	other := fake.SeedUser("Other", "other", "pw")
	svc := NewService(client, storage.NewMemory())

	users, err := svc.GetAllUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	got, err := svc.GetUserByID(ctx, me.ID)
	require.NoError(t, err)
	assert.Equal(t, me, *got)

	updated, err := svc.UpdateUser(ctx, me.ID, models.SignUpRequest{Name: "Renamed", Login: "tester", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)

	require.NoError(t, svc.DeleteUser(ctx, other.ID))
	_, err = svc.GetUserByID(ctx, other.ID)
	assert.Equal(t, http.StatusNotFound, api.StatusCode(err))
}

func TestUserData(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	svc := NewService(nil, store)

	_, found, err := svc.GetUserData(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	u := models.User{UserID: "u1", UserName: "Ada", Login: "ada"}
	require.NoError(t, svc.SetUserData(ctx, u))

	got, found, err := svc.GetUserData(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, u, got)

	require.NoError(t, svc.RemoveUserData(ctx))
	_, found, err = svc.GetUserData(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUserData_CorruptValueIgnored(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	require.NoError(t, store.Set(ctx, storage.KeyUserData, "{not json"))

	_, found, err := NewService(nil, store).GetUserData(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}
