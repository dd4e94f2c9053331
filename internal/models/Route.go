package models

// Route represents a fixed service path operated within one LGU.
// Type is one of jeepney, tricycle or bus.
type Route struct {
	ID   string `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name string `json:"name"`
	Type string `json:"type"`
	LGU  string `json:"lgu" gorm:"column:lgu"`

	// Polyline holds the path geometry as WKB (LINESTRING, SRID 4326).
	// Controllers convert it to a GeoJSON string for API responses.
	Polyline []byte `json:"-" gorm:"type:bytea"`
}
