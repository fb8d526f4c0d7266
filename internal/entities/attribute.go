package entities

import "github.com/KirkDiggler/backstory-bot-discord/internal/dice"

// FetchRandom selects an outcome by the table's own strategy. Any other
// fetch value is looked up verbatim against the table's rows, bypassing
// randomness entirely.
const FetchRandom = "random"

// Attribute is one resolved backstory attribute. Constructed by the
// attribute service, immutable thereafter; re-generation requires a
// new resolution.
type Attribute struct {
	// TableKey is the normalized key of the table this was resolved from
	TableKey string `json:"table_key"`

	// Value is the final display text after any template expansion
	Value string `json:"value"`

	// Row is the selected row after any lookup or roll
	Row *Row `json:"row,omitempty"`

	// RollResult is the dice roll used to pick the row, when the table
	// is dice-ranged and the fetch was random
	RollResult *dice.RollResult `json:"roll_result,omitempty"`
}

// String returns the attribute's final display text. This is the only
// output the presentation layer renders.
func (a *Attribute) String() string {
	return a.Value
}
