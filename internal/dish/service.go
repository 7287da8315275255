package dish

// Service provides business logic for dish catalog reads.
type Service struct {
	repo Repository
}

// ServiceInterface lets other packages (order validation, the GraphQL layer)
// depend on dish reads without binding to the concrete service.
type ServiceInterface interface {
	ListByRestaurant(restUID string) ([]Dish, error)
	GetByUID(uid string) (Dish, error)
	MissingUIDs(uids []string) ([]string, error)
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListByRestaurant(restUID string) ([]Dish, error) {
	return s.repo.ListByRestaurant(restUID)
}

func (s *Service) GetByUID(uid string) (Dish, error) {
	return s.repo.GetByUID(uid)
}

func (s *Service) MissingUIDs(uids []string) ([]string, error) {
	return s.repo.MissingUIDs(uids)
}

var _ ServiceInterface = (*Service)(nil)
