package entities

import "time"

// Backstory is a full generated character backstory: an ordered set of
// resolved attributes belonging to one owner
type Backstory struct {
	ID         string       `json:"id"`
	OwnerID    string       `json:"owner_id"`
	Attributes []*Attribute `json:"attributes"`
	CreatedAt  time.Time    `json:"created_at"`
}

// Attribute returns the resolved attribute for a table key, or nil
func (b *Backstory) Attribute(tableKey string) *Attribute {
	for _, attr := range b.Attributes {
		if attr.TableKey == tableKey {
			return attr
		}
	}
	return nil
}
