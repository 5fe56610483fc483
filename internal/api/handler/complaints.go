package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"complaintdesk/backend/internal/complaint"
	"complaintdesk/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

type createComplaintRequest struct {
	Text string `json:"text"`
}

// CreateComplaint accepts a complaint submission, runs the enrichment
// pipeline, and returns the stored record.
//
// A spam-flagged submission gets 202 with an empty body: a generic
// acknowledgement with no identifier, so the spam verdict is never exposed
// to the submitter. External lookup failures never produce an error here —
// the response simply carries "unknown"/null enrichment fields.
func (h *Handler) CreateComplaint(c *gin.Context) {
	var req createComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text must not be empty"})
		return
	}

	result, err := h.Complaints.Submit(c.Request.Context(), req.Text, c.ClientIP())
	if errors.Is(err, complaint.ErrComplaintRejected) {
		c.Status(http.StatusAccepted)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store complaint"})
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetComplaint returns one stored complaint by identifier.
func (h *Handler) GetComplaint(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid complaint id"})
		return
	}

	result, err := h.Storage.GetComplaintByID(uint(id))
	if errors.Is(err, storage.ErrComplaintNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "complaint not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load complaint"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Healthz is the liveness endpoint.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
