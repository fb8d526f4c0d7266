package tables_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/backstory-bot-discord/internal/entities"
	bserr "github.com/KirkDiggler/backstory-bot-discord/internal/errors"
	"github.com/KirkDiggler/backstory-bot-discord/internal/repositories/tables"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTables() []*entities.Table {
	return []*entities.Table{
		{
			Key:      "Family Lifestyle",
			Strategy: "1d100",
			Rows: []*entities.Row{
				{Text: "Wretched", Min: 1, Max: 50},
				{Text: "Comfortable", Min: 51, Max: 100},
			},
		},
		{
			Key:      "relationship",
			Strategy: entities.SelectionRandom,
			Rows: []*entities.Row{
				{Text: "Friend"},
				{Text: "Rival"},
			},
		},
	}
}

func TestInMemoryRepository_Get(t *testing.T) {
	repo := tables.NewInMemoryRepository(testTables())
	ctx := context.Background()

	table, err := repo.Get(ctx, "family-lifestyle")
	require.NoError(t, err)
	assert.Equal(t, "1d100", table.Strategy)
	assert.Len(t, table.Rows, 2)
}

func TestInMemoryRepository_GetNormalizesKey(t *testing.T) {
	repo := tables.NewInMemoryRepository(testTables())
	ctx := context.Background()

	// Display-name form resolves to the same table as the canonical key
	table, err := repo.Get(ctx, "Family Lifestyle")
	require.NoError(t, err)
	assert.Equal(t, "Wretched", table.Rows[0].Text)
}

func TestInMemoryRepository_GetUnknownTable(t *testing.T) {
	repo := tables.NewInMemoryRepository(testTables())
	ctx := context.Background()

	_, err := repo.Get(ctx, "alignment")
	require.Error(t, err)
	assert.True(t, bserr.IsUnknownTable(err))
}

func TestInMemoryRepository_GetEmptyKey(t *testing.T) {
	repo := tables.NewInMemoryRepository(testTables())

	_, err := repo.Get(context.Background(), "")
	require.Error(t, err)
	assert.True(t, bserr.IsInvalidArgument(err))
}

func TestInMemoryRepository_ListKeys(t *testing.T) {
	repo := tables.NewInMemoryRepository(testTables())

	keys, err := repo.ListKeys(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"family-lifestyle", "relationship"}, keys)
}
