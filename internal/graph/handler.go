package graph

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
)

// Handler serves the /graphql endpoint.
type Handler struct {
	schema graphql.Schema
}

func NewHandler(schema graphql.Schema) *Handler {
	return &Handler{schema: schema}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/graphql", h.query)
}

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

func (h *Handler) query(c *fiber.Ctx) error {
	payload := new(graphqlRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid GraphQL request body"})
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  payload.Query,
		VariableValues: payload.Variables,
		Context:        c.UserContext(),
	})
	if len(result.Errors) > 0 && result.Data == nil {
		return c.Status(fiber.StatusBadRequest).JSON(result)
	}
	return c.JSON(result)
}
