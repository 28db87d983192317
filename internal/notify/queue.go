package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

type Enqueuer interface {
	Enqueue(ctx context.Context, ev Event) error
}

// RedisQueue carries email jobs through a Redis list so delivery
// survives API restarts and can be drained by a separate worker.
type RedisQueue struct {
	rdb *redis.Client
	key string
}

func NewRedisQueue(addr, key string) *RedisQueue {
	return &RedisQueue{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		key: key,
	}
}

func (q *RedisQueue) Enqueue(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return q.rdb.LPush(ctx, q.key, payload).Err()
}

// Dequeue blocks up to timeout for the next job. Returns (nil, nil)
// when the timeout elapses with an empty list.
func (q *RedisQueue) Dequeue(ctx context.Context, timeout time.Duration) (*Event, error) {
	res, err := q.rdb.BRPop(ctx, timeout, q.key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var ev Event
	if err := json.Unmarshal([]byte(res[1]), &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

func (q *RedisQueue) Close() error {
	return q.rdb.Close()
}
