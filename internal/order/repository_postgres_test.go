package order

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"gravytrain-backend/internal/cart"
	"gravytrain-backend/internal/dish"
)

func TestPostgresCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	ord := Order{
		UID:     "ord-1",
		Address: "1 Rail Yard",
		City:    "Omaha",
		State:   "NE",
		Dishes: []cart.Item{
			{Dish: dish.Dish{UID: "dish-1", Name: "Boxcar Burger", Price: 10.00}, Quantity: 1},
		},
		Amount:    10.00,
		Token:     "pi_1",
		ChargeID:  "pi_1",
		User:      "diner@example.com",
		CreatedAt: "2026-09-01T12:00:00Z",
	}

	// dishes are stored as a JSON column; match it loosely
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs("ord-1", "1 Rail Yard", "Omaha", "NE", sqlmock.AnyArg(),
			10.00, "pi_1", "pi_1", "diner@example.com", "2026-09-01T12:00:00Z").
		WillReturnRows(sqlmock.NewRows([]string{"UID_Order"}).AddRow("ord-1"))

	created, err := repo.Create(ord)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if created.UID != "ord-1" {
		t.Fatalf("unexpected order UID %q", created.UID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresGetByUID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	dishes := `[{"UID_Dish":"dish-1","RestID":"rest-1","Name":"Boxcar Burger","Description":"","Price":10,"Image":"","Quantity":2}]`
	rows := sqlmock.NewRows([]string{"UID_Order", "Address", "City", "State", "Dishes", "Amount", "Token", "Charge_ID", "User", "createdAt"}).
		AddRow("ord-1", "1 Rail Yard", "Omaha", "NE", dishes, 20.00, "pi_1", "pi_1", "diner@example.com", "2026-09-01T12:00:00Z")
	mock.ExpectQuery("FROM orders").WithArgs("ord-1").WillReturnRows(rows)

	ord, err := repo.GetByUID("ord-1")
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if len(ord.Dishes) != 1 || ord.Dishes[0].Quantity != 2 {
		t.Fatalf("unexpected dishes %+v", ord.Dishes)
	}
	if ord.Amount != 20.00 {
		t.Fatalf("unexpected amount %v", ord.Amount)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresGetByUID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM orders").WithArgs("ord-404").WillReturnError(sql.ErrNoRows)

	if _, err := repo.GetByUID("ord-404"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
