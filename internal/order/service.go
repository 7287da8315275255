package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gravytrain-backend/internal/dish"
)

// UnknownDishError reports a dish reference absent from the catalog.
type UnknownDishError struct {
	UID string
}

func (e *UnknownDishError) Error() string {
	return fmt.Sprintf("Dish with UID %s not found", e.UID)
}

// Service validates and persists orders.
type Service struct {
	repo   Repository
	dishes dish.ServiceInterface
}

func NewService(repo Repository, dishes dish.ServiceInterface) *Service {
	return &Service{repo: repo, dishes: dishes}
}

// Create validates every referenced dish against the catalog before writing
// anything. The order UID is assigned here when the client did not send one.
func (s *Service) Create(ord Order) (Order, error) {
	if len(ord.Dishes) == 0 {
		return Order{}, errors.New("order must contain at least one dish")
	}

	uids := make([]string, 0, len(ord.Dishes))
	for _, item := range ord.Dishes {
		uids = append(uids, item.UID)
	}
	missing, err := s.dishes.MissingUIDs(uids)
	if err != nil {
		return Order{}, err
	}
	if len(missing) > 0 {
		return Order{}, &UnknownDishError{UID: missing[0]}
	}

	if ord.UID == "" {
		ord.UID = uuid.NewString()
	}
	if ord.CreatedAt == "" {
		ord.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	return s.repo.Create(ord)
}
