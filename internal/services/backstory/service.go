package backstory

//go:generate mockgen -destination=mock/mock_service.go -package=mockbackstory -source=service.go

import (
	"context"

	"github.com/KirkDiggler/backstory-bot-discord/internal/entities"
	bserr "github.com/KirkDiggler/backstory-bot-discord/internal/errors"
	"github.com/KirkDiggler/backstory-bot-discord/internal/repositories/backstories"
	"github.com/KirkDiggler/backstory-bot-discord/internal/services/attribute"
)

// DefaultAttributeKeys is the table set a full backstory resolves, in
// display order
var DefaultAttributeKeys = []string{
	"race",
	"class",
	"background",
	"family-lifestyle",
	"childhood-home",
	"childhood-memory",
	"family",
	"life-event",
	"relationship",
}

// Service builds and stores full character backstories. It is a
// consumer of the attribute resolution engine: each generation is a
// series of independent attribute resolutions.
type Service interface {
	// Generate resolves a full set of backstory attributes for an owner
	// and persists the result
	Generate(ctx context.Context, ownerID string, opts *GenerateOptions) (*entities.Backstory, error)

	// Get retrieves a stored backstory by ID
	Get(ctx context.Context, id string) (*entities.Backstory, error)

	// ListByOwner retrieves all stored backstories for an owner
	ListByOwner(ctx context.Context, ownerID string) ([]*entities.Backstory, error)

	// Delete removes a stored backstory
	Delete(ctx context.Context, id string) error
}

// GenerateOptions tunes one full generation
type GenerateOptions struct {
	// AttributeKeys overrides the default table set
	AttributeKeys []string

	// RollModifier is applied to every dice-ranged resolution
	RollModifier *int

	// Overrides forces specific outcome values per table key,
	// bypassing randomness for those attributes
	Overrides map[string]string
}

type service struct {
	attributes attribute.Service
	repository backstories.Repository
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	AttributeService attribute.Service
	Repository       backstories.Repository
}

// NewService creates a new backstory service
func NewService(cfg *ServiceConfig) (Service, error) {
	if cfg == nil {
		return nil, bserr.InvalidArgument("cfg is required")
	}
	if cfg.AttributeService == nil {
		return nil, bserr.InvalidArgument("cfg.AttributeService is required")
	}
	if cfg.Repository == nil {
		return nil, bserr.InvalidArgument("cfg.Repository is required")
	}

	return &service{
		attributes: cfg.AttributeService,
		repository: cfg.Repository,
	}, nil
}

// Generate implements Service.Generate
func (s *service) Generate(ctx context.Context, ownerID string, opts *GenerateOptions) (*entities.Backstory, error) {
	if ownerID == "" {
		return nil, bserr.InvalidArgument("owner ID is required")
	}

	if opts == nil {
		opts = &GenerateOptions{}
	}

	keys := opts.AttributeKeys
	if len(keys) == 0 {
		keys = DefaultAttributeKeys
	}

	backstory := &entities.Backstory{
		OwnerID:    ownerID,
		Attributes: make([]*entities.Attribute, 0, len(keys)),
	}

	for _, key := range keys {
		resolveOpts := &attribute.ResolveOptions{
			RollModifier: opts.RollModifier,
		}
		if override, ok := opts.Overrides[key]; ok {
			resolveOpts.Fetch = override
		}

		attr, err := s.attributes.Resolve(ctx, key, resolveOpts)
		if err != nil {
			return nil, bserr.Wrapf(err, "failed to resolve attribute '%s'", key)
		}

		backstory.Attributes = append(backstory.Attributes, attr)
	}

	if err := s.repository.Create(ctx, backstory); err != nil {
		return nil, err
	}

	return backstory, nil
}

// Get implements Service.Get
func (s *service) Get(ctx context.Context, id string) (*entities.Backstory, error) {
	return s.repository.Get(ctx, id)
}

// ListByOwner implements Service.ListByOwner
func (s *service) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Backstory, error) {
	return s.repository.ListByOwner(ctx, ownerID)
}

// Delete implements Service.Delete
func (s *service) Delete(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}
