package restaurant

// Service provides business logic for restaurant catalog reads.
type Service struct {
	repo Repository
}

// ServiceInterface lets other packages depend on restaurant reads without
// binding to the concrete service.
type ServiceInterface interface {
	List() ([]Restaurant, error)
	GetByUID(uid string) (Restaurant, error)
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Restaurant, error) {
	return s.repo.List()
}

func (s *Service) GetByUID(uid string) (Restaurant, error) {
	return s.repo.GetByUID(uid)
}

var _ ServiceInterface = (*Service)(nil)
