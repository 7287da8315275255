package restaurant

// Restaurant maps to the `restaurants` table. JSON field names follow the
// storefront contract (UID_Restaurant etc.).
type Restaurant struct {
	UID         string `json:"UID_Restaurant"`
	Name        string `json:"Name"`
	Description string `json:"Description"`
	Image       string `json:"Image"`
}
