package models

import "time"

// Announcement is an LGU-scoped service notice. Announcements are
// provisioned out-of-band and read-only through this API.
// Severity is one of info, warning or critical.
type Announcement struct {
	ID            string     `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LGU           string     `json:"lgu" gorm:"column:lgu"`
	Title         string     `json:"title"`
	Body          *string    `json:"body"`
	Severity      string     `json:"severity"`
	EffectiveFrom *time.Time `json:"effective_from"`
	EffectiveTo   *time.Time `json:"effective_to"`
}
