package handler

import (
	"context"

	"complaintdesk/backend/internal/feed"
	"complaintdesk/backend/internal/models"
	"complaintdesk/backend/internal/storage"
)

// ComplaintService is the part of the complaint service the HTTP layer
// depends on.
type ComplaintService interface {
	Submit(ctx context.Context, text, ip string) (*models.Complaint, error)
}

// Handler holds the dependencies for all HTTP endpoints.
type Handler struct {
	Complaints ComplaintService
	Storage    storage.Storage
	Hub        *feed.Hub
}

func NewHandler(complaints ComplaintService, s storage.Storage, hub *feed.Hub) *Handler {
	return &Handler{
		Complaints: complaints,
		Storage:    s,
		Hub:        hub,
	}
}
