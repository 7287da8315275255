package payment

import (
	"errors"
	"math"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Handler exposes the payment relay endpoint. It validates input, forwards
// the amount/currency pair to the processor and returns the client secret.
// Each call creates a new authorization attempt; nothing is retried.
type Handler struct {
	processor Processor
	log       *logrus.Logger
}

func NewHandler(p Processor, log *logrus.Logger) *Handler {
	return &Handler{processor: p, log: log}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/create-payment-intent", h.createPaymentIntent)
}

type createIntentRequest struct {
	Amount   *float64 `json:"amount"`
	Currency *string  `json:"currency"`
}

func (h *Handler) createPaymentIntent(c *fiber.Ctx) error {
	if ct := c.Get(fiber.HeaderContentType); !strings.HasPrefix(ct, fiber.MIMEApplicationJSON) {
		h.log.WithField("content_type", ct).Warn("Rejected intent request: bad content type")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Content-Type must be application/json"})
	}

	payload := new(createIntentRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Amount is required and must be a positive number"})
	}
	if payload.Amount == nil || *payload.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Amount is required and must be a positive number"})
	}
	currency := "usd"
	if payload.Currency != nil {
		currency = *payload.Currency
	}
	if currency == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": `Currency is required and must follow ISO 4217 (e.g., "usd")`})
	}

	amount := int64(math.Round(*payload.Amount))

	intent, err := h.processor.CreateIntent(c.UserContext(), amount, currency)
	if err != nil {
		var perr *ProcessorError
		if errors.As(err, &perr) {
			switch perr.Kind {
			case ErrKindCard:
				h.log.WithError(perr).Warn("Processor card error during intent creation")
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Card error during PaymentIntent creation"})
			case ErrKindInvalidRequest:
				h.log.WithError(perr).Warn("Processor rejected intent request")
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request to payment processor"})
			}
		}
		h.log.WithError(err).Error("PaymentIntent creation failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An unexpected error occurred"})
	}

	h.log.WithFields(logrus.Fields{
		"intent_id": intent.ID,
		"amount":    amount,
		"currency":  currency,
	}).Info("PaymentIntent created")

	return c.JSON(fiber.Map{"clientSecret": intent.ClientSecret})
}
