package models

import "time"

// ComplaintEvent is the message published to Redis for every complaint that
// passed the spam gate and was stored. Feed subscribers (the ops dashboard
// WebSocket) receive it as JSON.
type ComplaintEvent struct {
	ComplaintID uint      `json:"complaint_id"`
	Sentiment   string    `json:"sentiment"`
	IPCountry   *string   `json:"ip_country,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
