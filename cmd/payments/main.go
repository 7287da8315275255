package main

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"gravytrain-backend/internal/config"
	"gravytrain-backend/internal/payment"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	if cfg.StripeSecretKey == "" {
		logger.Fatal("STRIPE_SECRET_KEY is not set")
	}

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLogger(logger))

	processor := payment.NewStripeProcessor(cfg.StripeSecretKey)
	payment.NewHandler(processor, logger).RegisterPublicRoutes(app)

	logger.WithField("addr", cfg.PaymentAddr).Info("Starting payment relay")
	if err := app.Listen(cfg.PaymentAddr); err != nil {
		logger.WithError(err).Fatal("Payment relay stopped")
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}

func requestLogger(logger *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logger.WithFields(logrus.Fields{
			"method":   c.Method(),
			"path":     c.Path(),
			"status":   c.Response().StatusCode(),
			"duration": time.Since(start).Milliseconds(),
		}).Info("Request completed")
		return err
	}
}
