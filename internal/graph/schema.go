// Package graph exposes the catalog over GraphQL with the query shapes the
// storefront uses: `restaurants` and `dishes(restID)`.
package graph

import (
	"github.com/graphql-go/graphql"

	"gravytrain-backend/internal/dish"
	"gravytrain-backend/internal/restaurant"
)

// NewSchema builds the catalog query schema over the given services.
func NewSchema(restaurants restaurant.ServiceInterface, dishes dish.ServiceInterface) (graphql.Schema, error) {
	imageType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Image",
		Fields: graphql.Fields{
			"url": &graphql.Field{Type: graphql.String},
		},
	})

	restaurantType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Restaurant",
		Fields: graphql.Fields{
			"UID_Restaurant": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(restaurant.Restaurant).UID, nil
				},
			},
			"Name": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(restaurant.Restaurant).Name, nil
				},
			},
			"Description": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(restaurant.Restaurant).Description, nil
				},
			},
			"Image": &graphql.Field{
				Type: imageType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return map[string]interface{}{"url": p.Source.(restaurant.Restaurant).Image}, nil
				},
			},
		},
	})

	dishType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Dish",
		Fields: graphql.Fields{
			"UID_Dish": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(dish.Dish).UID, nil
				},
			},
			"RestID": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(dish.Dish).RestaurantUID, nil
				},
			},
			"Name": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(dish.Dish).Name, nil
				},
			},
			"Description": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(dish.Dish).Description, nil
				},
			},
			"Price": &graphql.Field{
				Type: graphql.Float,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(dish.Dish).Price, nil
				},
			},
			"Image": &graphql.Field{
				Type: imageType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return map[string]interface{}{"url": p.Source.(dish.Dish).Image}, nil
				},
			},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"restaurants": &graphql.Field{
				Type: graphql.NewList(restaurantType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return restaurants.List()
				},
			},
			"dishes": &graphql.Field{
				Type: graphql.NewList(dishType),
				Args: graphql.FieldConfigArgument{
					"restID": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					restID, _ := p.Args["restID"].(string)
					return dishes.ListByRestaurant(restID)
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: queryType})
}
