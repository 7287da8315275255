package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/paymentintent"
)

// Intent is the authorization handed back to the storefront: an opaque
// client secret the processor's confirmation step consumes.
type Intent struct {
	ID           string
	ClientSecret string
}

// Confirmation is the processor's verdict on a confirmed intent.
type Confirmation struct {
	ID     string
	Status string
}

// ErrKind buckets processor failures for the relay's error mapping.
type ErrKind int

const (
	// ErrKindCard covers card declines and similar cardholder-facing errors.
	ErrKindCard ErrKind = iota
	// ErrKindInvalidRequest covers requests the processor rejects outright.
	ErrKindInvalidRequest
	// ErrKindInternal covers everything else.
	ErrKindInternal
)

// ProcessorError carries the bucket alongside the processor's message so the
// relay can narrow what it surfaces to the client.
type ProcessorError struct {
	Kind    ErrKind
	Message string
}

func (e *ProcessorError) Error() string { return e.Message }

// Processor creates payment intents with the upstream payment processor.
type Processor interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (Intent, error)
}

// Confirmer completes a previously created intent with a payment method, the
// server-side counterpart of the browser SDK's confirmCardPayment call.
type Confirmer interface {
	Confirm(ctx context.Context, clientSecret, paymentMethod string) (Confirmation, error)
}

// StripeProcessor implements Processor and Confirmer against Stripe.
type StripeProcessor struct{}

func NewStripeProcessor(secretKey string) *StripeProcessor {
	stripe.Key = secretKey
	return &StripeProcessor{}
}

func (s *StripeProcessor) CreateIntent(ctx context.Context, amount int64, currency string) (Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return Intent{}, mapStripeError(err)
	}
	return Intent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

func (s *StripeProcessor) Confirm(ctx context.Context, clientSecret, paymentMethod string) (Confirmation, error) {
	id, err := intentIDFromSecret(clientSecret)
	if err != nil {
		return Confirmation{}, err
	}

	params := &stripe.PaymentIntentConfirmParams{
		PaymentMethod: stripe.String(paymentMethod),
	}
	params.AddExtra("client_secret", clientSecret)
	params.Context = ctx

	pi, err := paymentintent.Confirm(id, params)
	if err != nil {
		return Confirmation{}, mapStripeError(err)
	}
	return Confirmation{ID: pi.ID, Status: string(pi.Status)}, nil
}

// intentIDFromSecret extracts the intent ID from a "pi_..._secret_..." value.
func intentIDFromSecret(clientSecret string) (string, error) {
	id, _, ok := strings.Cut(clientSecret, "_secret_")
	if !ok || id == "" {
		return "", fmt.Errorf("malformed client secret")
	}
	return id, nil
}

func mapStripeError(err error) error {
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return &ProcessorError{Kind: ErrKindInternal, Message: err.Error()}
	}
	switch stripeErr.Type {
	case stripe.ErrorTypeCard:
		return &ProcessorError{Kind: ErrKindCard, Message: stripeErr.Msg}
	case stripe.ErrorTypeInvalidRequest:
		return &ProcessorError{Kind: ErrKindInvalidRequest, Message: stripeErr.Msg}
	default:
		return &ProcessorError{Kind: ErrKindInternal, Message: stripeErr.Msg}
	}
}

var (
	_ Processor = (*StripeProcessor)(nil)
	_ Confirmer = (*StripeProcessor)(nil)
)
