package hold

import (
	"context"
	"fmt"
	"time"

	"bounce-booking/internal/pkg/civil"
	"bounce-booking/internal/pkg/config"
	"bounce-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only while it still belongs to the caller.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})
}

// RedisLocker claims (asset, date) with SET NX PX. The owner token is the
// booking id so a release never drops another checkout's claim.
type RedisLocker struct {
	client redis.UniversalClient
}

func NewRedisLocker(client redis.UniversalClient) *RedisLocker {
	return &RedisLocker{client: client}
}

func Key(assetID string, date civil.Date) string {
	return fmt.Sprintf("hold:%s:%s", assetID, date.String())
}

func (l *RedisLocker) Acquire(ctx context.Context, assetID string, date civil.Date, owner string, ttl time.Duration) (bool, error) {
	ok, err := l.client.SetNX(ctx, Key(assetID, date), owner, ttl).Result()
	if err != nil {
		return false, errs.Wrapf(err, "failed to acquire hold for %s on %s", assetID, date)
	}
	return ok, nil
}

func (l *RedisLocker) Release(ctx context.Context, assetID string, date civil.Date, owner string) error {
	if err := releaseScript.Run(ctx, l.client, []string{Key(assetID, date)}, owner).Err(); err != nil {
		return errs.Wrapf(err, "failed to release hold for %s on %s", assetID, date)
	}
	return nil
}

func Ping(ctx context.Context, client *redis.Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return errs.Wrap(err, "failed to ping redis")
	}
	return nil
}

// NoopLocker always grants the claim. Used when Redis is not configured.
type NoopLocker struct{}

func (NoopLocker) Acquire(context.Context, string, civil.Date, string, time.Duration) (bool, error) {
	return true, nil
}

func (NoopLocker) Release(context.Context, string, civil.Date, string) error {
	return nil
}
