// Package feed streams stored-complaint events to connected dashboard
// clients. Events arrive over Redis Pub/Sub, so every instance of the
// service sees submissions accepted by any other instance.
package feed

import (
	"encoding/json"
	"log/slog"

	"complaintdesk/backend/internal/models"

	"github.com/redis/go-redis/v9"
)

// EventSource provides the subscription to the complaint event channel.
// Satisfied by *storage.Service.
type EventSource interface {
	SubscribeComplaintEvents() *redis.PubSub
}

// Hub owns the set of connected feed subscribers and fans complaint events
// out to them. All client-map mutation happens on the Run goroutine.
type Hub struct {
	Clients map[string]Client

	RegisterCh   chan Client
	UnregisterCh chan Client

	Source EventSource

	eventsCh chan models.ComplaintEvent
}

// NewHub creates a feed hub reading events from the given source. A nil
// source is allowed in tests; events are then injected via Broadcast.
func NewHub(source EventSource) *Hub {
	return &Hub{
		Clients:      make(map[string]Client),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		Source:       source,
		eventsCh:     make(chan models.ComplaintEvent),
	}
}

// Broadcast hands an event to the hub for delivery to every subscriber.
func (h *Hub) Broadcast(event models.ComplaintEvent) {
	h.eventsCh <- event
}

// StartPubSubListener starts the goroutine that relays Redis Pub/Sub
// messages into the hub's event channel.
func (h *Hub) StartPubSubListener() {
	if h.Source == nil {
		return
	}

	go func() {
		pubsub := h.Source.SubscribeComplaintEvents()
		defer pubsub.Close()

		for msg := range pubsub.Channel() {
			var event models.ComplaintEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				slog.Warn("dropping malformed feed event", "error", err)
				continue
			}
			h.Broadcast(event)
		}
	}()
}

// Run is the hub's dispatcher loop. It must run on its own goroutine.
func (h *Hub) Run() {
	h.StartPubSubListener()

	for {
		select {
		case client := <-h.RegisterCh:
			h.Clients[client.GetID()] = client
			client.Run()

		case client := <-h.UnregisterCh:
			if _, ok := h.Clients[client.GetID()]; ok {
				delete(h.Clients, client.GetID())
				client.Close()
			}

		case event := <-h.eventsCh:
			for id, client := range h.Clients {
				select {
				case client.GetSendChannel() <- event:
				default:
					// Subscriber cannot keep up; drop it rather than
					// blocking the whole feed.
					delete(h.Clients, id)
					client.Close()
				}
			}
		}
	}
}
