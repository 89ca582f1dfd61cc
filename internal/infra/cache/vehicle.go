// Package cache keeps short-lived vehicle snapshots in Redis.
package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"vehicle-rental/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	vehicleCachePrefix      = "cache:vehicle:"
	vehicleGenerationPrefix = "cache:vehicle-gen:"
)

// setIfGeneration writes the snapshot only while the generation counter still
// holds the value the reader saw before going to the database.
var setIfGeneration = redis.NewScript(`
local current = redis.call('GET', KEYS[2])
if (current == false and ARGV[1] == '0') or current == ARGV[1] then
	redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
	return 1
end
return 0
`)

// VehicleCache stores vehicle snapshots keyed by id. A nil client turns every
// call into a no-op miss, which is how the cache is disabled.
//
// Every invalidation bumps a per-vehicle generation. A reader that missed
// gets the generation back from Get and hands it to Set, so a snapshot read
// before a concurrent write is never stored after that write's invalidation.
type VehicleCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewVehicleCache(client redis.Cmdable, ttl time.Duration) *VehicleCache {
	return &VehicleCache{client: client, ttl: ttl}
}

func VehicleKey(id uuid.UUID) string {
	return vehicleCachePrefix + id.String()
}

func GenerationKey(id uuid.UUID) string {
	return vehicleGenerationPrefix + id.String()
}

// Get returns (nil, generation, nil) on a miss.
func (c *VehicleCache) Get(ctx context.Context, id uuid.UUID) (*shared.VehicleSnapshot, int64, error) {
	if c.client == nil {
		return nil, 0, nil
	}

	vals, err := c.client.MGet(ctx, VehicleKey(id), GenerationKey(id)).Result()
	if err != nil {
		return nil, 0, err
	}

	gen, err := parseGeneration(vals[1])
	if err != nil {
		return nil, 0, err
	}

	raw, ok := vals[0].(string)
	if !ok {
		return nil, gen, nil
	}

	var snap shared.VehicleSnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return nil, gen, err
	}
	return &snap, gen, nil
}

// Set stores snap unless the vehicle was invalidated after generation was read.
func (c *VehicleCache) Set(ctx context.Context, snap *shared.VehicleSnapshot, generation int64) error {
	if c.client == nil {
		return nil
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return setIfGeneration.Run(ctx, c.client,
		[]string{VehicleKey(snap.ID), GenerationKey(snap.ID)},
		strconv.FormatInt(generation, 10), data, c.ttl.Milliseconds(),
	).Err()
}

// Invalidate drops the snapshot after a booking or review changes it.
func (c *VehicleCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	if c.client == nil {
		return nil
	}
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, GenerationKey(id))
		pipe.Del(ctx, VehicleKey(id))
		return nil
	})
	return err
}

func parseGeneration(v any) (int64, error) {
	s, ok := v.(string)
	if !ok {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}
