package attribute

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/backstory-bot-discord/internal/dice"
	"github.com/KirkDiggler/backstory-bot-discord/internal/entities"
	bserr "github.com/KirkDiggler/backstory-bot-discord/internal/errors"
)

// selectRow picks exactly one row per the table's strategy. A uniform
// random pick records no roll result; a dice-ranged pick records the
// roll used so callers can display the number itself.
func (s *service) selectRow(table *entities.Table, modifier *int) (*entities.Row, *dice.RollResult, error) {
	if len(table.Rows) == 0 {
		return nil, nil, bserr.RowNotFoundf("table '%s' has no rows", table.Key).
			WithMeta("table_key", table.Key)
	}

	if !table.IsDiceRanged() {
		result, err := s.roller.Roll(1, len(table.Rows), 0)
		if err != nil {
			return nil, nil, err
		}
		return table.Rows[result.Total-1], nil, nil
	}

	expr := table.Strategy
	if modifier != nil {
		expr = dice.SubstituteMod(expr, *modifier)
	}

	result, err := dice.RollExpression(s.roller, expr)
	if err != nil {
		return nil, nil, err
	}

	for _, row := range table.Rows {
		if row.Contains(result.Total) {
			return row, result, nil
		}
	}

	// Malformed table data; surfaced rather than silently defaulted
	return nil, nil, bserr.RowNotFoundf("no row in table '%s' covers roll total %d", table.Key, result.Total).
		WithMeta("table_key", table.Key).
		WithMeta("total", result.Total)
}

// findRow looks up a specific, non-random outcome. Integer values are
// matched against row ranges on dice-ranged tables; anything else is
// exact string equality against the row's outcome text.
func findRow(table *entities.Table, value string) (*entities.Row, error) {
	if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && table.IsDiceRanged() {
		for _, row := range table.Rows {
			if row.Contains(n) {
				return row, nil
			}
		}
		return nil, bserr.RowNotFoundf("no row in table '%s' covers value %d", table.Key, n).
			WithMeta("table_key", table.Key).
			WithMeta("value", n)
	}

	for _, row := range table.Rows {
		if row.Text == value {
			return row, nil
		}
	}

	return nil, bserr.RowNotFoundf("table '%s' has no outcome '%s'", table.Key, value).
		WithMeta("table_key", table.Key).
		WithMeta("value", value)
}
