package feed

import "complaintdesk/backend/internal/models"

// Client is the interface for one feed subscriber connection. It abstracts
// the underlying transport so the hub can manage subscribers uniformly.
type Client interface {
	// GetID returns the unique identifier for this subscriber connection.
	GetID() string

	// GetSendChannel returns the channel to which the hub delivers complaint
	// events intended for this subscriber. It is a send-only channel.
	GetSendChannel() chan<- models.ComplaintEvent

	// Run starts the client's pumps, which push events out and watch the
	// connection for closure.
	Run()

	// Close shuts down the client's send channel, stopping its write pump.
	Close()
}
