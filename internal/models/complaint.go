package models

import (
	"time"

	"gorm.io/gorm"
)

// StatusOpen is the initial lifecycle status of every stored complaint.
// Nothing in the service transitions it yet; the column exists so that a
// future triage workflow can move records through a lifecycle.
const StatusOpen = "OPEN"

// SentimentUnknown is stored when the sentiment service could not classify
// the complaint (unreachable, timed out, or returned an unexpected shape).
const SentimentUnknown = "unknown"

// Complaint represents an enriched complaint persisted in PostgreSQL.
// ID and CreatedAt are assigned by the database on insert and are immutable
// afterwards, as is the submitted text.
type Complaint struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Status    string    `gorm:"type:text;not null" json:"status"`
	CreatedAt time.Time `json:"created_at"`

	// Sentiment is the label returned by the sentiment service, or
	// SentimentUnknown when the lookup degraded. Confidence is only set when
	// the lookup succeeded — nil and 0.0 are different statements.
	Sentiment  string   `gorm:"type:text;not null" json:"sentiment"`
	Confidence *float64 `json:"confidence,omitempty"`

	// IPAddress is the submitter address captured by the request layer.
	// The four locality fields stay nil unless the geolocation lookup
	// reported a successful resolution.
	IPAddress string  `gorm:"column:ip_address;type:text;not null" json:"ip_address"`
	IPCountry *string `gorm:"column:ip_country;type:text" json:"ip_country"`
	IPRegion  *string `gorm:"column:ip_region;type:text" json:"ip_region"`
	IPCity    *string `gorm:"column:ip_city;type:text" json:"ip_city"`
	IPISP     *string `gorm:"column:ip_isp;type:text" json:"ip_isp"`
}

// BeforeCreate is a GORM hook that defaults the lifecycle status before the
// record is inserted.
func (c *Complaint) BeforeCreate(tx *gorm.DB) (err error) {
	if c.Status == "" {
		c.Status = StatusOpen
	}
	return
}
