package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Location is a point attached to a report, persisted as a jsonb column.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (l Location) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *Location) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("unsupported location column type %T", value)
		}
		b = []byte(s)
	}
	return json.Unmarshal(b, l)
}

// Report is a commuter-submitted incident. ID and TS are server-assigned
// at creation; reports are immutable afterwards. Optional fields stay nil
// and serialize as explicit JSON nulls.
type Report struct {
	ID       string    `json:"id" gorm:"type:uuid;primaryKey"`
	Type     string    `json:"type"`
	Text     *string   `json:"text"`
	RouteID  *string   `json:"route_id" gorm:"type:uuid"`
	TripID   *string   `json:"trip_id" gorm:"type:uuid"`
	Location *Location `json:"location" gorm:"type:jsonb"`
	TS       time.Time `json:"ts" gorm:"column:ts"`
}
