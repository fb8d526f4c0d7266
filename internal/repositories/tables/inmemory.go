package tables

import (
	"context"
	"sort"

	"github.com/KirkDiggler/backstory-bot-discord/internal/entities"
	bserr "github.com/KirkDiggler/backstory-bot-discord/internal/errors"
)

// InMemoryRepository holds the full table set in a map. The load-once
// discipline lives in the constructor; the repository itself is
// read-only.
type InMemoryRepository struct {
	tables map[string]*entities.Table
}

// NewInMemoryRepository creates a table store from a fully loaded table
// set. Keys are normalized on the way in so lookups by display name and
// by canonical key both resolve.
func NewInMemoryRepository(tableSet []*entities.Table) *InMemoryRepository {
	repo := &InMemoryRepository{
		tables: make(map[string]*entities.Table, len(tableSet)),
	}

	for _, table := range tableSet {
		repo.tables[entities.NormalizeKey(table.Key)] = table
	}

	return repo
}

// Get retrieves a table by normalized key
func (r *InMemoryRepository) Get(ctx context.Context, key string) (*entities.Table, error) {
	if key == "" {
		return nil, bserr.InvalidArgument("table key is required")
	}

	table, exists := r.tables[entities.NormalizeKey(key)]
	if !exists {
		return nil, bserr.UnknownTablef("no table defined for key '%s'", key).
			WithMeta("table_key", key)
	}

	return table, nil
}

// ListKeys returns every table key in the store, sorted for stable output
func (r *InMemoryRepository) ListKeys(ctx context.Context) ([]string, error) {
	keys := make([]string, 0, len(r.tables))
	for key := range r.tables {
		keys = append(keys, key)
	}

	sort.Strings(keys)
	return keys, nil
}
