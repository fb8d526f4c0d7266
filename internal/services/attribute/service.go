package attribute

//go:generate mockgen -destination=mock/mock_service.go -package=mockattribute -source=service.go

import (
	"context"

	"github.com/KirkDiggler/backstory-bot-discord/internal/dice"
	"github.com/KirkDiggler/backstory-bot-discord/internal/entities"
	bserr "github.com/KirkDiggler/backstory-bot-discord/internal/errors"
	"github.com/KirkDiggler/backstory-bot-discord/internal/repositories/tables"
)

// DefaultMaxDepth caps nested placeholder expansion. Table data is
// acyclic by construction, but a bad dataset should fail with a
// max_depth_exceeded error rather than exhaust the stack.
const DefaultMaxDepth = 16

// Service resolves backstory attributes from the table store
type Service interface {
	// Resolve picks one outcome from a table and expands any template
	// placeholders in its text
	Resolve(ctx context.Context, tableKey string, opts *ResolveOptions) (*entities.Attribute, error)

	// ListOutcomes enumerates every distinct outcome value defined for a
	// table, ignoring weighting. Used to populate choice menus.
	ListOutcomes(ctx context.Context, tableKey string) ([]string, error)
}

// ResolveOptions tunes a single resolution. The zero value selects a
// random outcome with no roll modifier.
type ResolveOptions struct {
	// Fetch is entities.FetchRandom (or empty) for random selection, or
	// an explicit outcome value to look up verbatim
	Fetch string

	// RollModifier, when set, is substituted for the MOD token in dice
	// expressions before rolling
	RollModifier *int
}

type service struct {
	store    tables.Repository
	roller   dice.Roller
	maxDepth int
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	// Store is the table store to resolve against. Required.
	Store tables.Repository

	// Roller is optional; defaults to a clock-seeded random roller
	Roller dice.Roller

	// MaxDepth is optional; defaults to DefaultMaxDepth
	MaxDepth int
}

// NewService creates a new attribute resolution service
func NewService(cfg *ServiceConfig) (Service, error) {
	if cfg == nil {
		return nil, bserr.InvalidArgument("cfg is required")
	}
	if cfg.Store == nil {
		return nil, bserr.InvalidArgument("cfg.Store is required")
	}

	svc := &service{
		store:    cfg.Store,
		roller:   cfg.Roller,
		maxDepth: cfg.MaxDepth,
	}

	if svc.roller == nil {
		svc.roller = dice.NewRandomRoller()
	}
	if svc.maxDepth <= 0 {
		svc.maxDepth = DefaultMaxDepth
	}

	return svc, nil
}

// Resolve implements Service.Resolve
func (s *service) Resolve(ctx context.Context, tableKey string, opts *ResolveOptions) (*entities.Attribute, error) {
	return s.resolve(ctx, tableKey, opts, 0)
}

// resolve is the depth-tracked resolution path shared by direct calls
// and nested placeholder expansion
func (s *service) resolve(ctx context.Context, tableKey string, opts *ResolveOptions, depth int) (*entities.Attribute, error) {
	if depth > s.maxDepth {
		return nil, bserr.MaxDepthExceededf("placeholder expansion exceeded depth %d resolving table '%s'", s.maxDepth, tableKey).
			WithMeta("table_key", tableKey)
	}

	if opts == nil {
		opts = &ResolveOptions{}
	}

	table, err := s.store.Get(ctx, tableKey)
	if err != nil {
		return nil, err
	}

	attr := &entities.Attribute{
		TableKey: entities.NormalizeKey(tableKey),
	}

	var row *entities.Row
	if opts.Fetch != "" && opts.Fetch != entities.FetchRandom {
		// Explicit values bypass randomness entirely
		row, err = findRow(table, opts.Fetch)
	} else {
		var result *dice.RollResult
		row, result, err = s.selectRow(table, opts.RollModifier)
		attr.RollResult = result
	}
	if err != nil {
		return nil, err
	}

	attr.Row = row

	if row.Template != "" {
		value, expandErr := s.expand(ctx, row.Template, row, opts.RollModifier, depth)
		if expandErr != nil {
			return nil, expandErr
		}
		attr.Value = value
	} else {
		attr.Value = row.Text
	}

	return attr, nil
}

// ListOutcomes implements Service.ListOutcomes
func (s *service) ListOutcomes(ctx context.Context, tableKey string) ([]string, error) {
	table, err := s.store.Get(ctx, tableKey)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(table.Rows))
	outcomes := make([]string, 0, len(table.Rows))
	for _, row := range table.Rows {
		if _, ok := seen[row.Text]; ok {
			continue
		}
		seen[row.Text] = struct{}{}
		outcomes = append(outcomes, row.Text)
	}

	return outcomes, nil
}
