// Package tabledata supplies the static backstory table set. The
// resolution engine treats the table store as opaque; this package is
// the external collaborator that populates it at startup.
package tabledata

import (
	_ "embed"
	"encoding/json"
	"os"
	"strings"

	"github.com/KirkDiggler/backstory-bot-discord/internal/dice"
	"github.com/KirkDiggler/backstory-bot-discord/internal/entities"
	bserr "github.com/KirkDiggler/backstory-bot-discord/internal/errors"
)

//go:embed tables.json
var tablesJSON []byte

// extraFuncs maps table keys to the handler invoked for {{extra}}
// placeholders in that table's rows. Handlers ride along in code
// because functions cannot be serialized with the dataset.
var extraFuncs = map[string]func(template string) string{
	"patron": func(template string) string {
		return " whose face you have never seen"
	},
}

// Load parses the embedded dataset into table entities
func Load() ([]*entities.Table, error) {
	return parse(tablesJSON)
}

// LoadFromFile parses a dataset from disk, for overriding the embedded
// tables without rebuilding
func LoadFromFile(path string) ([]*entities.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, bserr.Wrapf(err, "failed to read table data from '%s'", path)
	}
	return parse(data)
}

func parse(data []byte) ([]*entities.Table, error) {
	var tableSet []*entities.Table
	if err := json.Unmarshal(data, &tableSet); err != nil {
		return nil, bserr.Wrap(err, "failed to parse table data")
	}

	for _, table := range tableSet {
		if err := validate(table); err != nil {
			return nil, err
		}
		attachExtraFuncs(table)
	}

	return tableSet, nil
}

func validate(table *entities.Table) error {
	if table.Key == "" {
		return bserr.Validation("table key is required")
	}
	if len(table.Rows) == 0 {
		return bserr.Validationf("table '%s' has no rows", table.Key)
	}

	if table.IsDiceRanged() {
		// MOD-bearing strategies are checked with a zero stand-in
		expr := dice.SubstituteMod(table.Strategy, 0)
		if !dice.IsExpression(expr) {
			return bserr.Validationf("table '%s' has invalid strategy '%s'", table.Key, table.Strategy)
		}
	}

	return nil
}

func attachExtraFuncs(table *entities.Table) {
	fn, ok := extraFuncs[entities.NormalizeKey(table.Key)]
	if !ok {
		return
	}

	for _, row := range table.Rows {
		if strings.Contains(row.Template, "{{extra}}") {
			row.ExtraFunc = fn
		}
	}
}
