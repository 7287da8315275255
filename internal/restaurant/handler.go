package restaurant

import "github.com/gofiber/fiber/v2"

// Handler delegates restaurant catalog reads to the restaurant service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/restaurants", h.getRestaurants)
	app.Get("/api/v1/restaurants/:uid", h.getRestaurant)
}

func (h *Handler) getRestaurants(c *fiber.Ctx) error {
	restaurants, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(restaurants)
}

func (h *Handler) getRestaurant(c *fiber.Ctx) error {
	rest, err := h.service.GetByUID(c.Params("uid"))
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "restaurant not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(rest)
}
