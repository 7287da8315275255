package cart

import (
	"math"
	"testing"

	"gravytrain-backend/internal/dish"
)

func dishFixture(uid string, price float64) dish.Dish {
	return dish.Dish{UID: uid, RestaurantUID: "rest-1", Name: "Dish " + uid, Price: price}
}

func TestAdd_SameDishTwiceIncrementsQuantity(t *testing.T) {
	d := dishFixture("d1", 12.50)

	c := New()
	c, err := Add(c, d)
	if err != nil {
		t.Fatal(err)
	}
	c, err = Add(c, d)
	if err != nil {
		t.Fatal(err)
	}

	if len(c.Items) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(c.Items))
	}
	if c.Items[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", c.Items[0].Quantity)
	}
	if c.Total != 2*d.Price {
		t.Errorf("expected total %v, got %v", 2*d.Price, c.Total)
	}
}

func TestAdd_DishWithoutPriceRejected(t *testing.T) {
	c := New()
	got, err := Add(c, dishFixture("d1", 0))
	if err != ErrNoPrice {
		t.Fatalf("expected ErrNoPrice, got %v", err)
	}
	if len(got.Items) != 0 || got.Total != 0 {
		t.Errorf("cart must be unchanged on rejected add, got %+v", got)
	}
}

func TestRemove_AtQuantityOneDropsLineItem(t *testing.T) {
	c := New()
	c, _ = Add(c, dishFixture("d1", 8.00))

	c = Remove(c, "d1")
	if len(c.Items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(c.Items))
	}
	if c.Total != 0 {
		t.Errorf("expected total 0, got %v", c.Total)
	}

	// removing from an empty cart stays a no-op
	c = Remove(c, "d1")
	if len(c.Items) != 0 {
		t.Errorf("expected cart to stay empty, got %d items", len(c.Items))
	}
}

func TestTotal_AlwaysRecomputedFromItems(t *testing.T) {
	a := dishFixture("a", 10.00)
	b := dishFixture("b", 5.50)

	c := New()
	ops := []func(Cart) Cart{
		func(c Cart) Cart { c, _ = Add(c, a); return c },
		func(c Cart) Cart { c, _ = Add(c, b); return c },
		func(c Cart) Cart { c, _ = Add(c, b); return c },
		func(c Cart) Cart { return Remove(c, "a") },
		func(c Cart) Cart { c, _ = Add(c, a); return c },
		func(c Cart) Cart { return Remove(c, "b") },
	}
	for i, op := range ops {
		c = op(c)
		want := 0.0
		for _, it := range c.Items {
			want += it.Price * float64(it.Quantity)
		}
		if c.Total != want {
			t.Fatalf("after op %d total drifted: got %v want %v", i, c.Total, want)
		}
	}
}

func TestAdd_DoesNotMutateOriginalCart(t *testing.T) {
	a := dishFixture("a", 10.00)
	b := dishFixture("b", 5.50)

	base := New()
	base, _ = Add(base, a)

	grown, _ := Add(base, b)
	if len(base.Items) != 1 {
		t.Errorf("original cart mutated: %d items", len(base.Items))
	}
	if len(grown.Items) != 2 {
		t.Errorf("expected derived cart to have 2 items, got %d", len(grown.Items))
	}

	bumped, _ := Add(base, a)
	if base.Items[0].Quantity != 1 {
		t.Errorf("original line item mutated: quantity %d", base.Items[0].Quantity)
	}
	if bumped.Items[0].Quantity != 2 {
		t.Errorf("expected derived quantity 2, got %d", bumped.Items[0].Quantity)
	}
}

func TestMinorUnits(t *testing.T) {
	c := New()
	c, _ = Add(c, dishFixture("a", 10.00))
	c, _ = Add(c, dishFixture("b", 5.50))
	c, _ = Add(c, dishFixture("b", 5.50))

	if c.Total != 21.00 {
		t.Fatalf("expected total 21.00, got %v", c.Total)
	}
	if got := MinorUnits(c); got != 2100 {
		t.Errorf("expected 2100 minor units, got %d", got)
	}

	// fractional cents round instead of truncating
	odd := Cart{Items: []Item{{Dish: dishFixture("c", 0.1), Quantity: 3}}, Total: 0.1 * 3}
	if got := MinorUnits(odd); got != int64(math.Round(0.1*3*100)) {
		t.Errorf("expected rounded minor units, got %d", got)
	}
}
