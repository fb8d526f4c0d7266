package backstories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/KirkDiggler/backstory-bot-discord/internal/dice"
	"github.com/KirkDiggler/backstory-bot-discord/internal/entities"
	bserr "github.com/KirkDiggler/backstory-bot-discord/internal/errors"
	"github.com/KirkDiggler/backstory-bot-discord/internal/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

// Data represents the serialized form of a backstory in Redis
type Data struct {
	ID         string          `json:"id"`
	OwnerID    string          `json:"owner_id"`
	Attributes []AttributeData `json:"attributes"`
	CreatedAt  time.Time       `json:"created_at"`
}

// AttributeData represents one resolved attribute. Only the display
// value and the roll numbers survive serialization; the source row is
// not persisted.
type AttributeData struct {
	TableKey  string `json:"table_key"`
	Value     string `json:"value"`
	RollTotal *int   `json:"roll_total,omitempty"`
	Rolls     []int  `json:"rolls,omitempty"`
}

type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
	timeProvider  TimeProvider
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator // optional, defaults to google uuid
	TimeProvider  TimeProvider   // optional, defaults to the wall clock
}

// NewRedisRepository creates a Redis-backed backstory repository
func NewRedisRepository(cfg *RedisRepoConfig) (Repository, error) {
	if cfg == nil {
		return nil, bserr.InvalidArgument("cfg is required")
	}
	if cfg.Client == nil {
		return nil, bserr.InvalidArgument("cfg.Client is required")
	}

	repo := &redisRepo{
		client:        cfg.Client,
		uuidGenerator: cfg.UUIDGenerator,
		timeProvider:  cfg.TimeProvider,
	}

	if repo.uuidGenerator == nil {
		repo.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if repo.timeProvider == nil {
		repo.timeProvider = ClockTimeProvider{}
	}

	return repo, nil
}

func backstoryKey(id string) string {
	return fmt.Sprintf("backstory:%s", id)
}

func ownerKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:backstories", ownerID)
}

// Create stores a new backstory, assigning an ID and timestamp
func (r *redisRepo) Create(ctx context.Context, backstory *entities.Backstory) error {
	if backstory == nil {
		return bserr.InvalidArgument("backstory cannot be nil")
	}
	if backstory.OwnerID == "" {
		return bserr.InvalidArgument("backstory owner ID is required")
	}

	if backstory.ID == "" {
		backstory.ID = r.uuidGenerator.New()
	}
	backstory.CreatedAt = r.timeProvider.Now()

	jsonData, err := json.Marshal(toData(backstory))
	if err != nil {
		return bserr.Wrap(err, "failed to marshal backstory")
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, backstoryKey(backstory.ID), string(jsonData), 0)
	pipe.SAdd(ctx, ownerKey(backstory.OwnerID), backstory.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return bserr.Wrap(err, "failed to store backstory in Redis").
			WithMeta("backstory_id", backstory.ID)
	}

	return nil
}

// Get retrieves a backstory by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*entities.Backstory, error) {
	if id == "" {
		return nil, bserr.InvalidArgument("backstory ID is required")
	}

	jsonData, err := r.client.Get(ctx, backstoryKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, bserr.NotFoundf("backstory '%s' not found", id).
				WithMeta("backstory_id", id)
		}
		return nil, bserr.Wrap(err, "failed to get backstory from Redis")
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, bserr.Wrap(err, "failed to unmarshal backstory")
	}

	return toBackstory(&data), nil
}

// ListByOwner retrieves all backstories for an owner
func (r *redisRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Backstory, error) {
	if ownerID == "" {
		return nil, bserr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, ownerKey(ownerID)).Result()
	if err != nil {
		return nil, bserr.Wrap(err, "failed to list owner backstories from Redis")
	}

	backstories := make([]*entities.Backstory, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			backstory, getErr := r.Get(ctx, id)
			if getErr != nil {
				return getErr
			}
			backstories[i] = backstory
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return backstories, nil
}

// Delete removes a backstory and its owner index entry
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	backstory, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, backstoryKey(id))
	pipe.SRem(ctx, ownerKey(backstory.OwnerID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return bserr.Wrap(err, "failed to delete backstory from Redis").
			WithMeta("backstory_id", id)
	}

	return nil
}

func toData(backstory *entities.Backstory) *Data {
	data := &Data{
		ID:         backstory.ID,
		OwnerID:    backstory.OwnerID,
		Attributes: make([]AttributeData, 0, len(backstory.Attributes)),
		CreatedAt:  backstory.CreatedAt,
	}

	for _, attr := range backstory.Attributes {
		attrData := AttributeData{
			TableKey: attr.TableKey,
			Value:    attr.Value,
		}
		if attr.RollResult != nil {
			total := attr.RollResult.Total
			attrData.RollTotal = &total
			attrData.Rolls = attr.RollResult.Rolls
		}
		data.Attributes = append(data.Attributes, attrData)
	}

	return data
}

func toBackstory(data *Data) *entities.Backstory {
	backstory := &entities.Backstory{
		ID:         data.ID,
		OwnerID:    data.OwnerID,
		Attributes: make([]*entities.Attribute, 0, len(data.Attributes)),
		CreatedAt:  data.CreatedAt,
	}

	for _, attrData := range data.Attributes {
		attr := &entities.Attribute{
			TableKey: attrData.TableKey,
			Value:    attrData.Value,
		}
		if attrData.RollTotal != nil {
			attr.RollResult = &dice.RollResult{
				Total: *attrData.RollTotal,
				Rolls: attrData.Rolls,
			}
		}
		backstory.Attributes = append(backstory.Attributes, attr)
	}

	return backstory
}
