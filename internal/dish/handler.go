package dish

import "github.com/gofiber/fiber/v2"

// Handler delegates dish catalog reads to the dish service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/dishes", h.getDishes)
	app.Get("/api/v1/dishes/:uid", h.getDish)
}

func (h *Handler) getDishes(c *fiber.Ctx) error {
	dishes, err := h.service.ListByRestaurant(c.Query("restID"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(dishes)
}

func (h *Handler) getDish(c *fiber.Ctx) error {
	d, err := h.service.GetByUID(c.Params("uid"))
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "dish not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(d)
}
