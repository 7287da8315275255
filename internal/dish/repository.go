package dish

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("dish not found")

// Repository provides access to dish rows.
type Repository interface {
	// ListByRestaurant returns the dishes for one restaurant, or the whole
	// catalog when restUID is empty.
	ListByRestaurant(restUID string) ([]Dish, error)
	GetByUID(uid string) (Dish, error)
	// MissingUIDs reports which of the given dish UIDs are absent from the
	// catalog. Order creation uses it to reject unknown dishes before any
	// order row is written.
	MissingUIDs(uids []string) ([]string, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu     sync.RWMutex
	dishes []Dish
}

func NewInMemoryRepository(seed []Dish) *InMemoryRepository {
	r := &InMemoryRepository{dishes: make([]Dish, 0, len(seed))}
	r.dishes = append(r.dishes, seed...)
	return r
}

func (r *InMemoryRepository) ListByRestaurant(restUID string) ([]Dish, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Dish, 0)
	for _, d := range r.dishes {
		if restUID == "" || d.RestaurantUID == restUID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) GetByUID(uid string) (Dish, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.dishes {
		if d.UID == uid {
			return d, nil
		}
	}
	return Dish{}, ErrNotFound
}

func (r *InMemoryRepository) MissingUIDs(uids []string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	known := make(map[string]bool, len(r.dishes))
	for _, d := range r.dishes {
		known[d.UID] = true
	}
	missing := make([]string, 0)
	for _, uid := range uids {
		if !known[uid] {
			missing = append(missing, uid)
		}
	}
	return missing, nil
}
