package main

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"gravytrain-backend/internal/config"
	"gravytrain-backend/internal/dish"
	"gravytrain-backend/internal/graph"
	"gravytrain-backend/internal/order"
	"gravytrain-backend/internal/restaurant"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLogger(logger))

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()

	bootstrapSchema(db)
	seedCatalog(db, logger)

	restaurantService := restaurant.NewService(restaurant.NewPostgresRepository(db))
	restaurant.NewHandler(restaurantService).RegisterPublicRoutes(app)

	dishService := dish.NewService(dish.NewPostgresRepository(db))
	dish.NewHandler(dishService).RegisterPublicRoutes(app)

	schema, err := graph.NewSchema(restaurantService, dishService)
	if err != nil {
		logger.WithError(err).Fatal("Could not build GraphQL schema")
	}
	graph.NewHandler(schema).RegisterPublicRoutes(app)

	// a bearer token is optional on order creation: requests without an
	// Authorization header pass through, invalid tokens are rejected
	if cfg.JWTSecret != "" {
		app.Use(jwtware.New(jwtware.Config{
			SigningKey: []byte(cfg.JWTSecret),
			Filter: func(c *fiber.Ctx) bool {
				return c.Get(fiber.HeaderAuthorization) == ""
			},
		}))
	}

	orderService := order.NewService(order.NewPostgresRepository(db), dishService)
	order.NewHandler(orderService, logger).RegisterPublicRoutes(app)

	logger.WithField("addr", cfg.APIAddr).Info("Starting content API")
	if err := app.Listen(cfg.APIAddr); err != nil {
		logger.WithError(err).Fatal("Content API stopped")
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLogger(logger *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logger.WithFields(logrus.Fields{
			"method":   c.Method(),
			"path":     c.Path(),
			"status":   c.Response().StatusCode(),
			"duration": time.Since(start).Milliseconds(),
		}).Info("Request completed")
		return err
	}
}

func mustOpenDB(url string) *sql.DB {
	if url == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", url)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

func bootstrapSchema(db *sql.DB) {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS restaurants (
		"UID_Restaurant" TEXT PRIMARY KEY,
		"Name" TEXT NOT NULL,
		"Description" TEXT NOT NULL DEFAULT '',
		"Image" TEXT NOT NULL DEFAULT ''
	)`); err != nil {
		panic(err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS dishes (
		"UID_Dish" TEXT PRIMARY KEY,
		"RestID" TEXT NOT NULL REFERENCES restaurants("UID_Restaurant"),
		"Name" TEXT NOT NULL,
		"Description" TEXT NOT NULL DEFAULT '',
		"Price" numeric NOT NULL DEFAULT 0,
		"Image" TEXT NOT NULL DEFAULT ''
	)`); err != nil {
		panic(err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS orders (
		"UID_Order" TEXT PRIMARY KEY,
		"Address" TEXT,
		"City" TEXT,
		"State" TEXT,
		"Dishes" jsonb NOT NULL DEFAULT '[]',
		"Amount" numeric NOT NULL DEFAULT 0,
		"Token" TEXT,
		"Charge_ID" TEXT,
		"User" TEXT,
		"createdAt" TEXT
	)`); err != nil {
		panic(err)
	}
}

// seedCatalog inserts sample restaurants and dishes when the catalog is empty.
func seedCatalog(db *sql.DB, logger *logrus.Logger) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM restaurants`).Scan(&count); err != nil || count > 0 {
		return
	}

	restaurants := []struct{ uid, name, desc, img string }{
		{"rest-dining-car", "The Dining Car", "Classic plates served trackside", "/images/dining-car.jpg"},
		{"rest-caboose-cantina", "Caboose Cantina", "Tacos and bowls from the last car", "/images/caboose-cantina.jpg"},
		{"rest-first-class", "First Class Kitchen", "White-tablecloth dining at full steam", "/images/first-class.jpg"},
	}
	for _, r := range restaurants {
		if _, err := db.Exec(`INSERT INTO restaurants ("UID_Restaurant", "Name", "Description", "Image") VALUES ($1,$2,$3,$4)`,
			r.uid, r.name, r.desc, r.img); err != nil {
			logger.WithError(err).WithField("restaurant", r.name).Warn("Could not seed restaurant")
		}
	}

	dishes := []struct {
		uid, rest, name, desc string
		price                 float64
		img                   string
	}{
		{"dish-flatbread", "rest-dining-car", "Signal Flatbread", "Wood-fired flatbread with roasted tomato", 10.00, "/images/flatbread.jpg"},
		{"dish-chowder", "rest-dining-car", "Boxcar Chowder", "Smoked corn chowder with sourdough", 5.50, "/images/chowder.jpg"},
		{"dish-brisket", "rest-dining-car", "Slow Line Brisket", "Twelve-hour brisket with pickled onion", 14.25, "/images/brisket.jpg"},
		{"dish-tacos", "rest-caboose-cantina", "Rear Car Tacos", "Three al pastor tacos with lime crema", 9.75, "/images/tacos.jpg"},
		{"dish-bowl", "rest-caboose-cantina", "Switchyard Bowl", "Rice bowl with charred peppers and carnitas", 11.50, "/images/bowl.jpg"},
		{"dish-elote", "rest-caboose-cantina", "Crossing Elote", "Grilled corn with cotija and chile", 4.50, "/images/elote.jpg"},
		{"dish-duck", "rest-first-class", "Pullman Duck", "Seared duck breast with cherry gastrique", 24.00, "/images/duck.jpg"},
		{"dish-tartare", "rest-first-class", "Observation Tartare", "Hand-cut beef tartare with cured yolk", 16.00, "/images/tartare.jpg"},
		{"dish-souffle", "rest-first-class", "Steam Whistle Souffle", "Chocolate souffle, twenty-minute wait", 12.00, "/images/souffle.jpg"},
	}
	for _, d := range dishes {
		if _, err := db.Exec(`INSERT INTO dishes ("UID_Dish", "RestID", "Name", "Description", "Price", "Image") VALUES ($1,$2,$3,$4,$5,$6)`,
			d.uid, d.rest, d.name, d.desc, d.price, d.img); err != nil {
			logger.WithError(err).WithField("dish", d.name).Warn("Could not seed dish")
		}
	}

	logger.WithFields(logrus.Fields{
		"restaurants": len(restaurants),
		"dishes":      len(dishes),
	}).Info("Seeded catalog")
}
