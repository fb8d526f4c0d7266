//go:build integration
// +build integration

package backstories_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/backstory-bot-discord/internal/dice"
	"github.com/KirkDiggler/backstory-bot-discord/internal/entities"
	"github.com/KirkDiggler/backstory-bot-discord/internal/repositories/backstories"
	"github.com/KirkDiggler/backstory-bot-discord/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.StartRedisContainer(t)

	repo, err := backstories.NewRedisRepository(&backstories.RedisRepoConfig{
		Client: client,
	})
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("create and retrieve backstory", func(t *testing.T) {
		backstory := &entities.Backstory{
			OwnerID: "user-123",
			Attributes: []*entities.Attribute{
				{
					TableKey: "background",
					Value:    "Noble",
					RollResult: &dice.RollResult{
						Total: 73,
						Rolls: []int{73},
					},
				},
				{TableKey: "relationship", Value: "Rival"},
			},
		}

		require.NoError(t, repo.Create(ctx, backstory))
		require.NotEmpty(t, backstory.ID)

		retrieved, err := repo.Get(ctx, backstory.ID)
		require.NoError(t, err)
		assert.Equal(t, backstory.OwnerID, retrieved.OwnerID)
		require.Len(t, retrieved.Attributes, 2)
		assert.Equal(t, "Noble", retrieved.Attributes[0].Value)
		require.NotNil(t, retrieved.Attributes[0].RollResult)
		assert.Equal(t, 73, retrieved.Attributes[0].RollResult.Total)
		assert.Nil(t, retrieved.Attributes[1].RollResult)
	})

	t.Run("list by owner", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			require.NoError(t, repo.Create(ctx, &entities.Backstory{OwnerID: "user-456"}))
		}

		owned, err := repo.ListByOwner(ctx, "user-456")
		require.NoError(t, err)
		assert.Len(t, owned, 3)
	})

	t.Run("delete removes backstory and index entry", func(t *testing.T) {
		backstory := &entities.Backstory{OwnerID: "user-789"}
		require.NoError(t, repo.Create(ctx, backstory))

		require.NoError(t, repo.Delete(ctx, backstory.ID))

		_, err := repo.Get(ctx, backstory.ID)
		assert.Error(t, err)

		owned, err := repo.ListByOwner(ctx, "user-789")
		require.NoError(t, err)
		assert.Empty(t, owned)
	})
}
