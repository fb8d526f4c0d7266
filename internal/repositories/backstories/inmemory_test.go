package backstories_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/backstory-bot-discord/internal/entities"
	bserr "github.com/KirkDiggler/backstory-bot-discord/internal/errors"
	"github.com/KirkDiggler/backstory-bot-discord/internal/repositories/backstories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepository_CreateAndGet(t *testing.T) {
	repo := backstories.NewInMemoryRepository()
	ctx := context.Background()

	backstory := &entities.Backstory{
		OwnerID: "owner-1",
		Attributes: []*entities.Attribute{
			{TableKey: "race", Value: "Elf"},
		},
	}

	err := repo.Create(ctx, backstory)
	require.NoError(t, err)
	require.NotEmpty(t, backstory.ID)
	require.False(t, backstory.CreatedAt.IsZero())

	retrieved, err := repo.Get(ctx, backstory.ID)
	require.NoError(t, err)
	assert.Equal(t, "owner-1", retrieved.OwnerID)
	require.Len(t, retrieved.Attributes, 1)
	assert.Equal(t, "Elf", retrieved.Attributes[0].Value)
}

func TestInMemoryRepository_GetNotFound(t *testing.T) {
	repo := backstories.NewInMemoryRepository()

	_, err := repo.Get(context.Background(), "missing")

	require.Error(t, err)
	assert.True(t, bserr.IsNotFound(err))
}

func TestInMemoryRepository_ListByOwner(t *testing.T) {
	repo := backstories.NewInMemoryRepository()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &entities.Backstory{OwnerID: "owner-1"}))
	}
	require.NoError(t, repo.Create(ctx, &entities.Backstory{OwnerID: "owner-2"}))

	owned, err := repo.ListByOwner(ctx, "owner-1")
	require.NoError(t, err)
	assert.Len(t, owned, 3)
}

func TestInMemoryRepository_Delete(t *testing.T) {
	repo := backstories.NewInMemoryRepository()
	ctx := context.Background()

	backstory := &entities.Backstory{OwnerID: "owner-1"}
	require.NoError(t, repo.Create(ctx, backstory))

	require.NoError(t, repo.Delete(ctx, backstory.ID))

	_, err := repo.Get(ctx, backstory.ID)
	assert.True(t, bserr.IsNotFound(err))
}

func TestInMemoryRepository_DeleteNotFound(t *testing.T) {
	repo := backstories.NewInMemoryRepository()

	err := repo.Delete(context.Background(), "missing")

	require.Error(t, err)
	assert.True(t, bserr.IsNotFound(err))
}
