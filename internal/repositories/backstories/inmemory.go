package backstories

import (
	"context"
	"sync"

	"github.com/KirkDiggler/backstory-bot-discord/internal/entities"
	bserr "github.com/KirkDiggler/backstory-bot-discord/internal/errors"
	"github.com/KirkDiggler/backstory-bot-discord/internal/uuid"
)

// InMemoryRepository is an in-memory implementation of the backstory
// repository. Useful for testing and running without Redis.
type InMemoryRepository struct {
	mu            sync.RWMutex
	backstories   map[string]*entities.Backstory
	uuidGenerator uuid.Generator
	timeProvider  TimeProvider
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		backstories:   make(map[string]*entities.Backstory),
		uuidGenerator: uuid.NewGoogleUUIDGenerator(),
		timeProvider:  ClockTimeProvider{},
	}
}

// Create stores a new backstory
func (r *InMemoryRepository) Create(ctx context.Context, backstory *entities.Backstory) error {
	if backstory == nil {
		return bserr.InvalidArgument("backstory cannot be nil")
	}
	if backstory.OwnerID == "" {
		return bserr.InvalidArgument("backstory owner ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if backstory.ID == "" {
		backstory.ID = r.uuidGenerator.New()
	}
	backstory.CreatedAt = r.timeProvider.Now()

	if _, exists := r.backstories[backstory.ID]; exists {
		return bserr.AlreadyExistsf("backstory with ID '%s' already exists", backstory.ID).
			WithMeta("backstory_id", backstory.ID)
	}

	stored := *backstory
	r.backstories[backstory.ID] = &stored

	return nil
}

// Get retrieves a backstory by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*entities.Backstory, error) {
	if id == "" {
		return nil, bserr.InvalidArgument("backstory ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	backstory, exists := r.backstories[id]
	if !exists {
		return nil, bserr.NotFoundf("backstory '%s' not found", id).
			WithMeta("backstory_id", id)
	}

	result := *backstory
	return &result, nil
}

// ListByOwner retrieves all backstories for an owner
func (r *InMemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Backstory, error) {
	if ownerID == "" {
		return nil, bserr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*entities.Backstory
	for _, backstory := range r.backstories {
		if backstory.OwnerID == ownerID {
			stored := *backstory
			result = append(result, &stored)
		}
	}

	return result, nil
}

// Delete removes a backstory
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return bserr.InvalidArgument("backstory ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.backstories[id]; !exists {
		return bserr.NotFoundf("backstory '%s' not found", id).
			WithMeta("backstory_id", id)
	}

	delete(r.backstories, id)
	return nil
}
