package dish

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listDishesQuery = `
		SELECT "UID_Dish", "RestID", "Name", "Description", "Price", "Image"
		FROM dishes
		ORDER BY "Name"
	`
	listDishesByRestaurantQuery = `
		SELECT "UID_Dish", "RestID", "Name", "Description", "Price", "Image"
		FROM dishes
		WHERE "RestID" = $1
		ORDER BY "Name"
	`
	getDishByUIDQuery = `
		SELECT "UID_Dish", "RestID", "Name", "Description", "Price", "Image"
		FROM dishes
		WHERE "UID_Dish" = $1
	`
	knownDishUIDsQuery = `
		SELECT "UID_Dish"
		FROM dishes
		WHERE "UID_Dish" = ANY($1::text[])
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByRestaurant(restUID string) ([]Dish, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if restUID == "" {
		rows, err = r.db.Query(listDishesQuery)
	} else {
		rows, err = r.db.Query(listDishesByRestaurantQuery, restUID)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Dish, 0)
	for rows.Next() {
		var d Dish
		if err := rows.Scan(&d.UID, &d.RestaurantUID, &d.Name, &d.Description, &d.Price, &d.Image); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByUID(uid string) (Dish, error) {
	var d Dish
	err := r.db.QueryRow(getDishByUIDQuery, uid).Scan(&d.UID, &d.RestaurantUID, &d.Name, &d.Description, &d.Price, &d.Image)
	if err == sql.ErrNoRows {
		return Dish{}, ErrNotFound
	}
	if err != nil {
		return Dish{}, err
	}
	return d, nil
}

func (r *PostgresRepository) MissingUIDs(uids []string) ([]string, error) {
	if len(uids) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(knownDishUIDsQuery, pq.Array(uids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	known := make(map[string]bool, len(uids))
	for rows.Next() {
		var uid string
		if err := rows.Scan(&uid); err != nil {
			return nil, err
		}
		known[uid] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	missing := make([]string, 0)
	for _, uid := range uids {
		if !known[uid] {
			missing = append(missing, uid)
		}
	}
	return missing, nil
}
