package backstories

//go:generate mockgen -destination=mocks/mock_repository.go -package=mockbackstories -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/backstory-bot-discord/internal/entities"
)

// Repository defines the interface for persisting generated backstories.
// The resolution engine itself stays persistence-free; this is the
// consumer-facing storage for finished results.
type Repository interface {
	// Create stores a new backstory
	Create(ctx context.Context, backstory *entities.Backstory) error

	// Get retrieves a backstory by ID
	Get(ctx context.Context, id string) (*entities.Backstory, error)

	// ListByOwner retrieves all backstories for an owner
	ListByOwner(ctx context.Context, ownerID string) ([]*entities.Backstory, error)

	// Delete removes a backstory
	Delete(ctx context.Context, id string) error
}
