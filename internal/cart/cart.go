// Package cart implements the storefront cart as an immutable value: every
// operation returns a new Cart and the total is always recomputed from the
// line items, never stored independently of them.
package cart

import (
	"errors"
	"math"

	"gravytrain-backend/internal/dish"
)

var ErrNoPrice = errors.New("dish has no price")

// Item is one cart line: a dish snapshot plus its quantity. Order payloads
// carry these items as-is.
type Item struct {
	dish.Dish
	Quantity int `json:"quantity"`
}

// Cart is an ordered collection of line items plus the derived total.
type Cart struct {
	Items []Item  `json:"items"`
	Total float64 `json:"total"`
}

// New returns an empty cart.
func New() Cart {
	return Cart{Items: []Item{}}
}

// Add returns a copy of c with one more of d. A dish already present has its
// quantity incremented; a dish without a price is rejected.
func Add(c Cart, d dish.Dish) (Cart, error) {
	if d.Price == 0 {
		return c, ErrNoPrice
	}

	items := make([]Item, len(c.Items))
	copy(items, c.Items)

	found := false
	for i := range items {
		if items[i].UID == d.UID {
			items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		items = append(items, Item{Dish: d, Quantity: 1})
	}
	return rebuild(items), nil
}

// Remove returns a copy of c with one less of the dish identified by uid.
// The line item is dropped once its quantity reaches zero.
func Remove(c Cart, uid string) Cart {
	items := make([]Item, 0, len(c.Items))
	for _, it := range c.Items {
		if it.UID == uid {
			it.Quantity--
		}
		if it.Quantity > 0 {
			items = append(items, it)
		}
	}
	return rebuild(items)
}

// MinorUnits converts the cart total to integer minor currency units, the
// amount shape the payment relay expects.
func MinorUnits(c Cart) int64 {
	return int64(math.Round(c.Total * 100))
}

func rebuild(items []Item) Cart {
	total := 0.0
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return Cart{Items: items, Total: total}
}
