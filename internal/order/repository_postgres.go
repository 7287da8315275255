package order

import (
	"database/sql"
	"encoding/json"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	insertOrderQuery = `
		INSERT INTO orders ("UID_Order", "Address", "City", "State", "Dishes", "Amount", "Token", "Charge_ID", "User", "createdAt")
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING "UID_Order"
	`
	getOrderByUIDQuery = `
		SELECT "UID_Order", "Address", "City", "State", "Dishes", "Amount", "Token", "Charge_ID", "User", "createdAt"
		FROM orders
		WHERE "UID_Order" = $1
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ord Order) (Order, error) {
	dishes, err := json.Marshal(ord.Dishes)
	if err != nil {
		return Order{}, err
	}
	if err := r.db.QueryRow(insertOrderQuery,
		ord.UID, ord.Address, ord.City, ord.State, string(dishes),
		ord.Amount, ord.Token, ord.ChargeID, ord.User, ord.CreatedAt,
	).Scan(&ord.UID); err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) GetByUID(uid string) (Order, error) {
	var (
		ord    Order
		dishes []byte
	)
	err := r.db.QueryRow(getOrderByUIDQuery, uid).Scan(
		&ord.UID, &ord.Address, &ord.City, &ord.State, &dishes,
		&ord.Amount, &ord.Token, &ord.ChargeID, &ord.User, &ord.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}
	if len(dishes) > 0 {
		if err := json.Unmarshal(dishes, &ord.Dishes); err != nil {
			return Order{}, err
		}
	}
	return ord, nil
}
