package order

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/sirupsen/logrus"
)

// Handler exposes order creation. The route is public like the storefront
// expects, but when the JWT middleware validated a bearer token, the token's
// email claim overrides the payload's submitting-user reference.
type Handler struct {
	service *Service
	log     *logrus.Logger
}

func NewHandler(s *Service, log *logrus.Logger) *Handler {
	return &Handler{service: s, log: log}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/orders", h.createOrder)
}

func (h *Handler) createOrder(c *fiber.Ctx) error {
	payload := new(Submission)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "request body must be valid JSON"})
	}

	ord := payload.Data
	if ord.Address == "" || ord.City == "" || ord.State == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Address, City and State are required"})
	}
	if len(ord.Dishes) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dishes cannot be empty"})
	}
	if ord.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Amount must be a positive number"})
	}
	if ord.ChargeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Charge_ID is required"})
	}

	if user, ok := userFromCtx(c); ok {
		ord.User = user
	}
	if ord.User == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "User is required"})
	}

	created, err := h.service.Create(ord)
	if err != nil {
		var unknown *UnknownDishError
		if errors.As(err, &unknown) {
			h.log.WithField("dish_uid", unknown.UID).Warn("Order rejected: unknown dish")
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": unknown.Error()})
		}
		h.log.WithError(err).Error("Order creation failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Unable to create order"})
	}

	h.log.WithFields(logrus.Fields{
		"order_uid": created.UID,
		"charge_id": created.ChargeID,
	}).Info("Order created")

	return c.JSON(Response{
		Order:   created,
		Payment: PaymentDetail{ID: created.ChargeID, Status: "succeeded"},
	})
}

// userFromCtx pulls the submitting-user reference out of a validated bearer
// token when the JWT middleware stored one in the request context.
func userFromCtx(c *fiber.Ctx) (string, bool) {
	u := c.Locals("user")
	if u == nil {
		return "", false
	}
	tok, ok := u.(*jwt.Token)
	if !ok {
		return "", false
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	if email, ok := claims["email"].(string); ok && email != "" {
		return email, true
	}
	return "", false
}
