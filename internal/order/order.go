package order

import "gravytrain-backend/internal/cart"

// Order is a persisted checkout result. JSON field names follow the
// storefront contract. Amount is in dollars; only the payment relay deals in
// minor units. Orders are created once and never updated or deleted.
type Order struct {
	UID       string      `json:"UID_Order"`
	Address   string      `json:"Address"`
	City      string      `json:"City"`
	State     string      `json:"State"`
	Dishes    []cart.Item `json:"Dishes"`
	Amount    float64     `json:"Amount"`
	Token     string      `json:"Token"`
	ChargeID  string      `json:"Charge_ID"`
	User      string      `json:"User"`
	CreatedAt string      `json:"createdAt,omitempty"`
}

// Submission is the POST /api/orders payload envelope.
type Submission struct {
	Data Order `json:"data"`
}

// PaymentDetail echoes the payment confirmation alongside the created order.
type PaymentDetail struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// Response is what a successful order creation returns.
type Response struct {
	Order   Order         `json:"order"`
	Payment PaymentDetail `json:"payment"`
}
