// Package checkout drives the storefront's payment flow: authorize with the
// payment relay, confirm with the processor, persist the order with the
// content API. One attempt per call; failure recovery is manual resubmission.
package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"gravytrain-backend/internal/cart"
	"gravytrain-backend/internal/dish"
	"gravytrain-backend/internal/order"
	"gravytrain-backend/internal/payment"
)

// Catalog verifies dish references before money moves.
type Catalog interface {
	GetByUID(ctx context.Context, uid string) (dish.Dish, error)
}

// Authorizer obtains a client secret for a minor-unit amount.
type Authorizer interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}

// Submitter persists a finished order.
type Submitter interface {
	Submit(ctx context.Context, sub order.Submission) (order.Order, error)
}

// Delivery is the checkout form's address block.
type Delivery struct {
	Address string
	City    string
	State   string
}

// Result is the outcome of one checkout attempt. FailedAt records the state
// the attempt was in when it stopped.
type Result struct {
	State        State
	FailedAt     State
	Err          error
	Confirmation payment.Confirmation
	Order        order.Order
}

// Checkout runs the flow with explicitly injected capabilities; there is no
// ambient lookup of clients or state.
type Checkout struct {
	catalog   Catalog
	payments  Authorizer
	confirmer payment.Confirmer
	orders    Submitter
	currency  string
	log       *logrus.Logger
}

func New(catalog Catalog, payments Authorizer, confirmer payment.Confirmer, orders Submitter, log *logrus.Logger) *Checkout {
	return &Checkout{
		catalog:   catalog,
		payments:  payments,
		confirmer: confirmer,
		orders:    orders,
		currency:  "usd",
		log:       log,
	}
}

// Run executes a single checkout attempt for the given cart.
func (co *Checkout) Run(ctx context.Context, crt cart.Cart, delivery Delivery, paymentMethod, user string) Result {
	if len(crt.Items) == 0 {
		return fail(StateIdle, errors.New("cart is empty"))
	}
	if delivery.Address == "" || delivery.City == "" || delivery.State == "" {
		return fail(StateIdle, errors.New("delivery address is incomplete"))
	}
	if paymentMethod == "" {
		return fail(StateIdle, errors.New("payment method is required"))
	}

	// fail before authorization when the cart references dishes the catalog
	// no longer knows: the content API would reject the order after the charge
	for _, item := range crt.Items {
		if _, err := co.catalog.GetByUID(ctx, item.UID); err != nil {
			return fail(StateIdle, fmt.Errorf("dish %s is no longer available: %w", item.UID, err))
		}
	}

	state := StateAwaitingAuthorization
	co.log.WithField("amount", cart.MinorUnits(crt)).Info("Requesting payment authorization")
	clientSecret, err := co.payments.CreateIntent(ctx, cart.MinorUnits(crt), co.currency)
	if err != nil {
		co.log.WithError(err).Error("Payment authorization failed")
		return fail(state, err)
	}

	state = StateConfirmingPayment
	conf, err := co.confirmer.Confirm(ctx, clientSecret, paymentMethod)
	if err != nil {
		co.log.WithError(err).Error("Payment confirmation failed")
		return fail(state, err)
	}
	if conf.Status != "succeeded" {
		co.log.WithField("status", conf.Status).Error("Payment not confirmed")
		return fail(state, fmt.Errorf("payment not confirmed: status %s", conf.Status))
	}

	state = StateSubmittingOrder
	created, err := co.orders.Submit(ctx, co.submission(crt, delivery, conf, user))
	if err != nil {
		// the charge went through: keep the confirmation so the order can be
		// resubmitted without paying twice
		co.log.WithError(err).WithField("charge_id", conf.ID).Error("Order submission failed after successful payment")
		return Result{State: StateOrderSubmissionFailed, FailedAt: state, Err: err, Confirmation: conf}
	}

	co.log.WithField("order_uid", created.UID).Info("Checkout succeeded")
	return Result{State: StateSucceeded, Confirmation: conf, Order: created}
}

// ResubmitOrder retries only the order-persistence step of a checkout whose
// payment already succeeded.
func (co *Checkout) ResubmitOrder(ctx context.Context, crt cart.Cart, delivery Delivery, conf payment.Confirmation, user string) Result {
	if conf.ID == "" || conf.Status != "succeeded" {
		return fail(StateSubmittingOrder, errors.New("no successful payment confirmation to resubmit with"))
	}

	created, err := co.orders.Submit(ctx, co.submission(crt, delivery, conf, user))
	if err != nil {
		return Result{State: StateOrderSubmissionFailed, FailedAt: StateSubmittingOrder, Err: err, Confirmation: conf}
	}
	return Result{State: StateSucceeded, Confirmation: conf, Order: created}
}

func (co *Checkout) submission(crt cart.Cart, delivery Delivery, conf payment.Confirmation, user string) order.Submission {
	return order.Submission{Data: order.Order{
		Address:  delivery.Address,
		City:     delivery.City,
		State:    delivery.State,
		Dishes:   crt.Items,
		Amount:   crt.Total,
		Token:    conf.ID,
		ChargeID: conf.ID,
		User:     user,
	}}
}

func fail(at State, err error) Result {
	return Result{State: StateFailed, FailedAt: at, Err: err}
}
