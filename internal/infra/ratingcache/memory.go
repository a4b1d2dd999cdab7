package ratings_cache

import (
	"sync"

	"github.com/benhagg/cineniche/internal/model"
)

// Memory is the default ratings cache driver: a mutex-guarded map keyed by
// title identifier, alive for one application session. Writes overwrite
// whole lists; last write wins.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]model.Rating
}

func NewMemory() *Memory {
	return &Memory{
		data: make(map[string][]model.Rating),
	}
}

func (m *Memory) Set(showID string, ratings []model.Rating) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]model.Rating, len(ratings))
	copy(cp, ratings)
	m.data[showID] = cp
	return nil
}

func (m *Memory) Get(showID string) ([]model.Rating, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ratings, ok := m.data[showID]
	if !ok {
		return nil, false, nil
	}
	cp := make([]model.Rating, len(ratings))
	copy(cp, ratings)
	return cp, true, nil
}
