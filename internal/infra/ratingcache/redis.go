package ratings_cache

import (
	"encoding/json"
	"time"

	"github.com/go-redis/redis"

	"github.com/benhagg/cineniche/internal/model"
)

// Redis is the shared-deployment driver: rating lists JSON-marshaled under
// a prefixed key. TTL 0 keeps entries for the life of the store.
type Redis struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func NewRedis(client *redis.Client, key string, ttl time.Duration) *Redis {
	return &Redis{
		client: client,
		key:    key,
		ttl:    ttl,
	}
}

func (d *Redis) Set(showID string, ratings []model.Rating) error {
	b, err := json.Marshal(ratings)
	if err != nil {
		return err
	}
	return d.client.Set(d.getFullKey(showID), b, d.ttl).Err()
}

func (d *Redis) Get(showID string) ([]model.Rating, bool, error) {
	val, err := d.client.Get(d.getFullKey(showID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}

	var ratings []model.Rating
	if err := json.Unmarshal([]byte(val), &ratings); err != nil {
		return nil, false, err
	}
	return ratings, true, nil
}

func (d *Redis) getFullKey(showID string) string {
	if d.key != "" {
		return d.key + ":" + showID
	}
	return showID
}
