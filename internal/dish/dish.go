package dish

// Dish maps to the `dishes` table and is the unit the cart and order payloads
// snapshot. JSON field names follow the storefront contract; Price is in
// dollars and immutable from the client's perspective.
type Dish struct {
	UID           string  `json:"UID_Dish"`
	RestaurantUID string  `json:"RestID"`
	Name          string  `json:"Name"`
	Description   string  `json:"Description"`
	Price         float64 `json:"Price"`
	Image         string  `json:"Image"`
}
