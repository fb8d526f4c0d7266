package entities

import "strings"

// SelectionRandom is the strategy that picks a row by uniform random index.
// Any other strategy value is interpreted as a dice expression whose total
// is matched against each row's [Min, Max] range.
const SelectionRandom = "random"

// Table is a named, ordered set of possible outcomes plus the strategy
// used to pick one. Tables are immutable after load.
type Table struct {
	Key      string `json:"key"`
	Strategy string `json:"strategy"`
	Rows     []*Row `json:"rows"`
}

// IsDiceRanged reports whether rows are selected by dice roll
func (t *Table) IsDiceRanged() bool {
	return t.Strategy != SelectionRandom
}

// Row is a single possible outcome within a table
type Row struct {
	// Text is the display string, used when the strategy is random or as
	// the fallback when no template is present
	Text string `json:"text"`

	// Min and Max bound the roll totals this row covers, inclusive.
	// Only meaningful for dice-ranged tables.
	Min int `json:"min,omitempty"`
	Max int `json:"max,omitempty"`

	// Template optionally supersedes Text; it may contain {{keyword}}
	// placeholders resolved against other tables, the extra hook, or
	// dice expressions
	Template string `json:"template,omitempty"`

	// ExtraFunc optionally computes the replacement for an {{extra}}
	// placeholder from the raw template string. Attached in code, never
	// serialized.
	ExtraFunc func(template string) string `json:"-"`
}

// Contains reports whether the roll total falls in the row's range
func (r *Row) Contains(total int) bool {
	return total >= r.Min && total <= r.Max
}

// NormalizeKey converts a table name to its canonical key form:
// lowercase with spaces replaced by dashes.
func NormalizeKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}
