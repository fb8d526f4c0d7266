package tabledata

import (
	"github.com/KirkDiggler/backstory-bot-discord/internal/clients/dnd5e"
	"github.com/KirkDiggler/backstory-bot-discord/internal/entities"
	bserr "github.com/KirkDiggler/backstory-bot-discord/internal/errors"
)

// EnrichFromAPI replaces the race and class tables' rows with the live
// 5e API reference lists. Must run before the table store is built so
// the load-once discipline holds; on API failure the caller keeps the
// embedded rows.
func EnrichFromAPI(tableSet []*entities.Table, client dnd5e.Client) error {
	if client == nil {
		return bserr.InvalidArgument("client is required")
	}

	races, err := client.ListRaces()
	if err != nil {
		return bserr.Wrap(err, "failed to list races from 5e API")
	}

	classes, err := client.ListClasses()
	if err != nil {
		return bserr.Wrap(err, "failed to list classes from 5e API")
	}

	for _, table := range tableSet {
		switch entities.NormalizeKey(table.Key) {
		case "race":
			replaceRows(table, races)
		case "class":
			replaceRows(table, classes)
		}
	}

	return nil
}

func replaceRows(table *entities.Table, names []string) {
	if len(names) == 0 {
		return
	}

	rows := make([]*entities.Row, 0, len(names))
	for _, name := range names {
		rows = append(rows, &entities.Row{Text: name})
	}

	table.Strategy = entities.SelectionRandom
	table.Rows = rows
}
