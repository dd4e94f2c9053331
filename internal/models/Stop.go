package models

// Stop is a boarding or dropoff point along a route.
// Stops are only ever returned through their route's stop listing.
type Stop struct {
	ID      string  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RouteID string  `json:"route_id" gorm:"type:uuid;index"`
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}
