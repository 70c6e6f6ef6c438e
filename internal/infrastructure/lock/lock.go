package lock

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Marceldinga/theyoungshallgrow--sub000/pkg/id"
)

const keyPrefix = "njangi:lock:"

// Mutex is a Redis SetNX lock used to serialize payout execution and monthly
// accrual across processes. The DB unique indexes remain the final arbiter;
// the mutex just keeps well-behaved callers from racing to a constraint error.
type Mutex struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewMutex(rdb *redis.Client, ttl time.Duration) *Mutex {
	return &Mutex{rdb: rdb, ttl: ttl}
}

// Acquire takes the named lock. It returns a release func and true on
// success, or false when another holder owns the lock.
func (m *Mutex) Acquire(ctx context.Context, name string) (func(), bool, error) {
	key := keyPrefix + name
	token := id.NewID32()

	ok, err := m.rdb.SetNX(ctx, key, token, m.ttl).Result()
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	release := func() {
		// Only delete our own token; an expired lock may have been re-acquired.
		const script = `if redis.call("get", KEYS[1]) == ARGV[1] then return redis.call("del", KEYS[1]) else return 0 end`
		_ = m.rdb.Eval(context.Background(), script, []string{key}, token).Err()
	}
	return release, true, nil
}
