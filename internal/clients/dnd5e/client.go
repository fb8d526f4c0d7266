package dnd5e

import (
	"net/http"

	bserr "github.com/KirkDiggler/backstory-bot-discord/internal/errors"
	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apiEntities "github.com/fadedpez/dnd5e-api/entities"
)

type client struct {
	client dnd5e.Interface
}

// Config holds configuration for the API client
type Config struct {
	HttpClient *http.Client
}

// New creates a client against the public D&D 5e API
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, bserr.InvalidArgument("cfg is required")
	}

	apiClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client: cfg.HttpClient,
	})
	if err != nil {
		return nil, err
	}

	return &client{
		client: apiClient,
	}, nil
}

// ListRaces returns the display names of every race the API knows
func (c *client) ListRaces() ([]string, error) {
	response, err := c.client.ListRaces()
	if err != nil {
		return nil, err
	}

	return referenceItemNames(response), nil
}

// ListClasses returns the display names of every class the API knows
func (c *client) ListClasses() ([]string, error) {
	response, err := c.client.ListClasses()
	if err != nil {
		return nil, err
	}

	return referenceItemNames(response), nil
}

func referenceItemNames(items []*apiEntities.ReferenceItem) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		if item == nil || item.Name == "" {
			continue
		}
		names = append(names, item.Name)
	}
	return names
}
