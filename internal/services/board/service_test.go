package board

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/kanbo/internal/api"
	"github.com/thenoetrevino/kanbo/internal/models"
	"github.com/thenoetrevino/kanbo/internal/testutil"
)

func TestBoardLifecycle(t *testing.T) {
	ctx := context.Background()
	fake := testutil.NewFakeAPI(t)
	client, _ := fake.SignedInClient(t)
	svc := NewService(client)

	created, err := svc.CreateBoard(ctx, models.CreateBoardRequest{Title: "Roadmap", Description: "Q3"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	fake.SeedColumn(created.ID, "Todo")

	got, err := svc.GetBoard(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Roadmap", got.Title)
	assert.Len(t, got.Columns, 1)

	updated, err := svc.UpdateBoard(ctx, created.ID, models.UpdateBoardRequest{Title: "Roadmap 2", Description: "Q4"})
	require.NoError(t, err)
	assert.Equal(t, "Roadmap 2", updated.Title)

	boards, err := svc.GetAllBoards(ctx)
	require.NoError(t, err)
	assert.Len(t, boards, 1)

	require.NoError(t, svc.DeleteBoard(ctx, created.ID))
	_, err = svc.GetBoard(ctx, created.ID)
	assert.Equal(t, http.StatusNotFound, api.StatusCode(err))
}

func TestGetAllBoards_Unauthorized(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	client, err := api.New(fake.URL())
	require.NoError(t, err)

	_, err = NewService(client).GetAllBoards(context.Background())
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, api.StatusCode(err))
}
