package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/superfluid-finance/web3-hooks/internal/checkpoint"

	"github.com/redis/go-redis/v9"
)

// checkpointKeyPrefix namespaces checkpoint keys in a shared Redis instance.
const checkpointKeyPrefix = "web3hooks"

// checkpointKey builds the Redis key for a scan checkpoint:
//
//	"web3hooks:checkpoint:<network>-<interface>-<contract>-<event>"
func checkpointKey(key checkpoint.Key) string {
	return fmt.Sprintf("%s:checkpoint:%s", checkpointKeyPrefix, key)
}

// Save stores blockNumber under the checkpoint key with no expiration.
func (c *client) Save(ctx context.Context, key checkpoint.Key, blockNumber uint64) error {
	return c.conn.Set(ctx, checkpointKey(key), checkpoint.FormatBlockNumber(blockNumber), 0).Err()
}

// Load returns the stored checkpoint, checkpoint.ErrNoCheckpointFound when
// the key does not exist, or checkpoint.ErrCorruptCheckpoint when the value
// is not a block number.
func (c *client) Load(ctx context.Context, key checkpoint.Key) (uint64, error) {
	val, err := c.conn.Get(ctx, checkpointKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = checkpoint.ErrNoCheckpointFound
		}

		return 0, err
	}

	return checkpoint.ParseBlockNumber(val)
}

// Compile-time assertion to ensure client implements checkpoint.Storage.
var _ checkpoint.Storage = new(client)
