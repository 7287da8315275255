package restaurant

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	listRestaurantsQuery = `
		SELECT "UID_Restaurant", "Name", "Description", "Image"
		FROM restaurants
		ORDER BY "Name"
	`
	getRestaurantByUIDQuery = `
		SELECT "UID_Restaurant", "Name", "Description", "Image"
		FROM restaurants
		WHERE "UID_Restaurant" = $1
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Restaurant, error) {
	rows, err := r.db.Query(listRestaurantsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Restaurant, 0)
	for rows.Next() {
		var rest Restaurant
		if err := rows.Scan(&rest.UID, &rest.Name, &rest.Description, &rest.Image); err != nil {
			return nil, err
		}
		out = append(out, rest)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByUID(uid string) (Restaurant, error) {
	var rest Restaurant
	err := r.db.QueryRow(getRestaurantByUIDQuery, uid).Scan(&rest.UID, &rest.Name, &rest.Description, &rest.Image)
	if err == sql.ErrNoRows {
		return Restaurant{}, ErrNotFound
	}
	if err != nil {
		return Restaurant{}, err
	}
	return rest, nil
}
