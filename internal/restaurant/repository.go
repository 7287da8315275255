package restaurant

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("restaurant not found")

// Repository provides access to restaurant rows.
type Repository interface {
	List() ([]Restaurant, error)
	GetByUID(uid string) (Restaurant, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu          sync.RWMutex
	restaurants []Restaurant
}

func NewInMemoryRepository(seed []Restaurant) *InMemoryRepository {
	r := &InMemoryRepository{restaurants: make([]Restaurant, 0, len(seed))}
	r.restaurants = append(r.restaurants, seed...)
	return r
}

func (r *InMemoryRepository) List() ([]Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Restaurant, len(r.restaurants))
	copy(out, r.restaurants)
	return out, nil
}

func (r *InMemoryRepository) GetByUID(uid string) (Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rest := range r.restaurants {
		if rest.UID == uid {
			return rest, nil
		}
	}
	return Restaurant{}, ErrNotFound
}
