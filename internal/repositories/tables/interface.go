package tables

//go:generate mockgen -destination=mock/mock.go -package=mocktables -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/backstory-bot-discord/internal/entities"
)

// Repository is the read-only table store. It is fully populated at
// startup and never mutated afterwards, so implementations need no
// locking on the read path.
type Repository interface {
	// Get retrieves a table by normalized key
	Get(ctx context.Context, key string) (*entities.Table, error)

	// ListKeys returns every table key in the store
	ListKeys(ctx context.Context) ([]string, error)
}
