package tabledata_test

import (
	"errors"
	"testing"

	mockdnd5e "github.com/KirkDiggler/backstory-bot-discord/internal/clients/dnd5e/mock"
	"github.com/KirkDiggler/backstory-bot-discord/internal/entities"
	"github.com/KirkDiggler/backstory-bot-discord/internal/tabledata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEnrichFromAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mockdnd5e.NewMockClient(ctrl)
	client.EXPECT().ListRaces().Return([]string{"Aarakocra", "Human"}, nil)
	client.EXPECT().ListClasses().Return([]string{"Artificer"}, nil)

	tableSet, err := tabledata.Load()
	require.NoError(t, err)

	require.NoError(t, tabledata.EnrichFromAPI(tableSet, client))

	var race, class *entities.Table
	for _, table := range tableSet {
		switch table.Key {
		case "race":
			race = table
		case "class":
			class = table
		}
	}

	require.NotNil(t, race)
	require.Len(t, race.Rows, 2)
	assert.Equal(t, "Aarakocra", race.Rows[0].Text)
	assert.Equal(t, entities.SelectionRandom, race.Strategy)

	require.NotNil(t, class)
	require.Len(t, class.Rows, 1)
	assert.Equal(t, "Artificer", class.Rows[0].Text)
}

func TestEnrichFromAPI_APIFailureLeavesTablesUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mockdnd5e.NewMockClient(ctrl)
	client.EXPECT().ListRaces().Return(nil, errors.New("api down"))

	tableSet, err := tabledata.Load()
	require.NoError(t, err)

	originalRows := 0
	for _, table := range tableSet {
		if table.Key == "race" {
			originalRows = len(table.Rows)
		}
	}

	require.Error(t, tabledata.EnrichFromAPI(tableSet, client))

	for _, table := range tableSet {
		if table.Key == "race" {
			assert.Len(t, table.Rows, originalRows)
		}
	}
}
