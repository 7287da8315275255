// Command storefront is a terminal stand-in for the browser client: it
// browses the catalog, fills a cart and runs the checkout flow against the
// content API and the payment relay.
package main

import (
	"context"
	"flag"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"gravytrain-backend/internal/cart"
	"gravytrain-backend/internal/checkout"
	"gravytrain-backend/internal/config"
	"gravytrain-backend/internal/dish"
	"gravytrain-backend/internal/order"
	"gravytrain-backend/internal/payment"
	"gravytrain-backend/internal/restaurant"
)

func main() {
	restUID := flag.String("restaurant", "", "restaurant UID to order from (default: first in catalog)")
	paymentMethod := flag.String("payment-method", "pm_card_visa", "payment method passed to the processor")
	address := flag.String("address", "1 Platform Way", "delivery address")
	city := flag.String("city", "Boston", "delivery city")
	state := flag.String("state", "MA", "delivery state")
	user := flag.String("user", "generic.user@example.com", "submitting-user reference")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	if cfg.StripeSecretKey == "" {
		logger.Fatal("STRIPE_SECRET_KEY is not set")
	}

	restaurants := restaurant.NewClient(cfg.APIBaseURL, logger)
	catalog := dish.NewClient(cfg.APIBaseURL, logger)
	relay := payment.NewRelayClient(cfg.PaymentBaseURL, logger)
	confirmer := payment.NewStripeProcessor(cfg.StripeSecretKey)
	orders := order.NewClient(cfg.APIBaseURL, logger)

	ctx := context.Background()

	target := *restUID
	if target == "" {
		all, err := restaurants.List(ctx)
		if err != nil {
			logger.WithError(err).Fatal("Could not list restaurants")
		}
		if len(all) == 0 {
			logger.Fatal("Catalog has no restaurants")
		}
		target = all[0].UID
		logger.WithField("restaurant", all[0].Name).Info("Ordering from first restaurant in catalog")
	}

	dishes, err := catalog.ListByRestaurant(ctx, target)
	if err != nil {
		logger.WithError(err).Fatal("Could not list dishes")
	}
	if len(dishes) == 0 {
		logger.Fatal("Restaurant has no dishes")
	}

	crt := cart.New()
	for i, d := range dishes {
		if i >= 2 {
			break
		}
		next, err := cart.Add(crt, d)
		if err != nil {
			logger.WithError(err).WithField("dish", d.Name).Warn("Skipping dish")
			continue
		}
		crt = next
	}
	logger.WithFields(logrus.Fields{
		"items": len(crt.Items),
		"total": crt.Total,
	}).Info("Cart assembled")

	co := checkout.New(catalog, relay, confirmer, orders, logger)
	delivery := checkout.Delivery{Address: *address, City: *city, State: *state}

	result := co.Run(ctx, crt, delivery, *paymentMethod, *user)
	switch result.State {
	case checkout.StateSucceeded:
		crt = cart.New()
		logger.WithField("order_uid", result.Order.UID).Info("Order placed; cart cleared")
	case checkout.StateOrderSubmissionFailed:
		logger.WithError(result.Err).Warn("Payment captured but order not persisted; resubmitting once")
		retry := co.ResubmitOrder(ctx, crt, delivery, result.Confirmation, *user)
		if retry.State == checkout.StateSucceeded {
			crt = cart.New()
			logger.WithField("order_uid", retry.Order.UID).Info("Order placed on resubmission; cart cleared")
			return
		}
		logger.WithFields(logrus.Fields{
			"charge_id": result.Confirmation.ID,
		}).Error("Order still not persisted; keep the charge ID for manual reconciliation")
	default:
		logger.WithError(result.Err).WithField("failed_at", result.FailedAt.String()).Error("Checkout failed")
	}
}
