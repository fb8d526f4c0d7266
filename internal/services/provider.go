package services

import (
	"github.com/KirkDiggler/backstory-bot-discord/internal/dice"
	"github.com/KirkDiggler/backstory-bot-discord/internal/repositories/backstories"
	"github.com/KirkDiggler/backstory-bot-discord/internal/repositories/tables"
	attributeService "github.com/KirkDiggler/backstory-bot-discord/internal/services/attribute"
	backstoryService "github.com/KirkDiggler/backstory-bot-discord/internal/services/backstory"
	"github.com/KirkDiggler/backstory-bot-discord/internal/tabledata"
)

// Provider holds all service instances
type Provider struct {
	AttributeService attributeService.Service
	BackstoryService backstoryService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	TableRepository     tables.Repository
	BackstoryRepository backstories.Repository
	Roller              dice.Roller
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) (*Provider, error) {
	// Fall back to the embedded table set if no store was provided
	tableRepo := cfg.TableRepository
	if tableRepo == nil {
		tableSet, err := tabledata.Load()
		if err != nil {
			return nil, err
		}
		tableRepo = tables.NewInMemoryRepository(tableSet)
	}

	backstoryRepo := cfg.BackstoryRepository
	if backstoryRepo == nil {
		backstoryRepo = backstories.NewInMemoryRepository()
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}

	attrService, err := attributeService.NewService(&attributeService.ServiceConfig{
		Store:  tableRepo,
		Roller: roller,
	})
	if err != nil {
		return nil, err
	}

	bsService, err := backstoryService.NewService(&backstoryService.ServiceConfig{
		AttributeService: attrService,
		Repository:       backstoryRepo,
	})
	if err != nil {
		return nil, err
	}

	return &Provider{
		AttributeService: attrService,
		BackstoryService: bsService,
	}, nil
}
