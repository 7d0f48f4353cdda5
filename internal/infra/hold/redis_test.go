//go:build unit

package hold

import (
	"context"
	"testing"
	"time"

	"bounce-booking/internal/pkg/civil"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisLocker(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	defer s.Close()

	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer client.Close()

	locker := NewRedisLocker(client)
	ctx := context.Background()
	date := civil.New(2026, time.June, 13)

	t.Run("second owner is refused while held", func(t *testing.T) {
		ok, err := locker.Acquire(ctx, "castle", date, "owner-a", time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = locker.Acquire(ctx, "castle", date, "owner-b", time.Minute)
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, locker.Release(ctx, "castle", date, "owner-a"))
	})

	t.Run("release by another owner keeps the claim", func(t *testing.T) {
		ok, err := locker.Acquire(ctx, "castle", date, "owner-a", time.Minute)
		require.NoError(t, err)
		require.True(t, ok)

		require.NoError(t, locker.Release(ctx, "castle", date, "owner-b"))
		got, err := s.Get(Key("castle", date))
		require.NoError(t, err)
		assert.Equal(t, "owner-a", got)

		require.NoError(t, locker.Release(ctx, "castle", date, "owner-a"))
		assert.False(t, s.Exists(Key("castle", date)))
	})

	t.Run("claim lapses after ttl", func(t *testing.T) {
		ok, err := locker.Acquire(ctx, "castle", date, "owner-a", time.Minute)
		require.NoError(t, err)
		require.True(t, ok)

		s.FastForward(2 * time.Minute)

		ok, err = locker.Acquire(ctx, "castle", date, "owner-b", time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("assets and dates are independent", func(t *testing.T) {
		other := date.AddDays(1)
		ok, err := locker.Acquire(ctx, "castle", other, "owner-c", time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = locker.Acquire(ctx, "slide", date, "owner-c", time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("unreachable redis surfaces an error", func(t *testing.T) {
		dead := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond, MaxRetries: -1})
		defer dead.Close()

		_, err := NewRedisLocker(dead).Acquire(ctx, "castle", date, "x", time.Minute)
		assert.Error(t, err)
	})
}

func TestKey(t *testing.T) {
	assert.Equal(t, "hold:castle:2026-06-13", Key("castle", civil.New(2026, time.June, 13)))
}
