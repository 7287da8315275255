package order

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/sirupsen/logrus"

	"gravytrain-backend/internal/cart"
	"gravytrain-backend/internal/dish"
)

func testApp() (*fiber.App, *InMemoryRepository) {
	dishes := dish.NewService(dish.NewInMemoryRepository([]dish.Dish{
		{UID: "dish-1", RestaurantUID: "rest-1", Name: "Boxcar Burger", Price: 10.00},
		{UID: "dish-2", RestaurantUID: "rest-1", Name: "Caboose Fries", Price: 5.50},
	}))
	repo := NewInMemoryRepository()
	log := logrus.New()
	log.SetOutput(io.Discard)

	app := fiber.New()
	NewHandler(NewService(repo, dishes), log).RegisterPublicRoutes(app)
	return app, repo
}

func validSubmission() Submission {
	return Submission{Data: Order{
		Address: "1 Rail Yard",
		City:    "Omaha",
		State:   "NE",
		Dishes: []cart.Item{
			{Dish: dish.Dish{UID: "dish-1", Name: "Boxcar Burger", Price: 10.00}, Quantity: 1},
			{Dish: dish.Dish{UID: "dish-2", Name: "Caboose Fries", Price: 5.50}, Quantity: 2},
		},
		Amount:   21.00,
		Token:    "pi_1",
		ChargeID: "pi_1",
		User:     "diner@example.com",
	}}
}

func postOrder(t *testing.T, app *fiber.App, sub Submission) (int, []byte) {
	t.Helper()
	body, err := json.Marshal(sub)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest("POST", "/api/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	raw, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}
	return res.StatusCode, raw
}

func TestCreateOrder_Success(t *testing.T) {
	app, repo := testApp()

	code, raw := postOrder(t, app, validSubmission())
	if code != 200 {
		t.Fatalf("expected 200 got %d: %s", code, raw)
	}

	var body Response
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatal(err)
	}
	if body.Order.UID == "" {
		t.Error("expected an assigned order UID")
	}
	if body.Order.CreatedAt == "" {
		t.Error("expected a createdAt timestamp")
	}
	if body.Order.Amount != 21.00 {
		t.Errorf("unexpected amount %v", body.Order.Amount)
	}
	if body.Payment.ID != "pi_1" || body.Payment.Status != "succeeded" {
		t.Errorf("unexpected payment detail %+v", body.Payment)
	}

	stored, err := repo.GetByUID(body.Order.UID)
	if err != nil {
		t.Fatalf("order not persisted: %v", err)
	}
	if len(stored.Dishes) != 2 || stored.Dishes[1].Quantity != 2 {
		t.Errorf("unexpected stored dishes %+v", stored.Dishes)
	}
}

func TestCreateOrder_UnknownDishRejected(t *testing.T) {
	app, repo := testApp()

	sub := validSubmission()
	sub.Data.Dishes = append(sub.Data.Dishes, cart.Item{Dish: dish.Dish{UID: "dish-404", Price: 3.00}, Quantity: 1})

	code, raw := postOrder(t, app, sub)
	if code != 400 {
		t.Fatalf("expected 400 got %d", code)
	}
	var body map[string]string
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatal(err)
	}
	if body["error"] != "Dish with UID dish-404 not found" {
		t.Errorf("unexpected error message %q", body["error"])
	}

	// nothing may be written when validation fails
	if _, err := repo.GetByUID("dish-404"); err != ErrNotFound {
		t.Errorf("expected empty repository, got %v", err)
	}
}

func TestCreateOrder_MissingFields(t *testing.T) {
	mutations := []struct {
		name   string
		mutate func(*Submission)
	}{
		{"no address", func(s *Submission) { s.Data.Address = "" }},
		{"no city", func(s *Submission) { s.Data.City = "" }},
		{"no state", func(s *Submission) { s.Data.State = "" }},
		{"no dishes", func(s *Submission) { s.Data.Dishes = nil }},
		{"zero amount", func(s *Submission) { s.Data.Amount = 0 }},
		{"negative amount", func(s *Submission) { s.Data.Amount = -1 }},
		{"no charge id", func(s *Submission) { s.Data.ChargeID = "" }},
		{"no user", func(s *Submission) { s.Data.User = "" }},
	}
	for _, tc := range mutations {
		t.Run(tc.name, func(t *testing.T) {
			app, _ := testApp()
			sub := validSubmission()
			tc.mutate(&sub)

			code, raw := postOrder(t, app, sub)
			if code != 400 {
				t.Fatalf("expected 400 got %d: %s", code, raw)
			}
			var body map[string]string
			if err := json.Unmarshal(raw, &body); err != nil {
				t.Fatal(err)
			}
			if body["error"] == "" {
				t.Error("expected an error message")
			}
		})
	}
}

func TestCreateOrder_MalformedJSON(t *testing.T) {
	app, _ := testApp()

	req := httptest.NewRequest("POST", "/api/orders", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != 400 {
		t.Fatalf("expected 400 got %d", res.StatusCode)
	}
}

func TestCreateOrder_TokenEmailOverridesPayloadUser(t *testing.T) {
	dishes := dish.NewService(dish.NewInMemoryRepository([]dish.Dish{
		{UID: "dish-1", Name: "Boxcar Burger", Price: 10.00},
		{UID: "dish-2", Name: "Caboose Fries", Price: 5.50},
	}))
	repo := NewInMemoryRepository()
	log := logrus.New()
	log.SetOutput(io.Discard)

	app := fiber.New()
	// stand in for the JWT middleware: a validated token in the request context
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user", &jwt.Token{Claims: jwt.MapClaims{"email": "token.holder@example.com"}})
		return c.Next()
	})
	NewHandler(NewService(repo, dishes), log).RegisterPublicRoutes(app)

	code, raw := postOrder(t, app, validSubmission())
	if code != 200 {
		t.Fatalf("expected 200 got %d: %s", code, raw)
	}
	var body Response
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatal(err)
	}
	if body.Order.User != "token.holder@example.com" {
		t.Errorf("expected token email to win, got %q", body.Order.User)
	}
}
