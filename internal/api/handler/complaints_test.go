package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"complaintdesk/backend/internal/api/handler"
	"complaintdesk/backend/internal/complaint"
	"complaintdesk/backend/internal/models"
	"complaintdesk/backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestRouter() (*gin.Engine, *MockComplaintService, *MockStorage) {
	gin.SetMode(gin.TestMode)

	svc := new(MockComplaintService)
	store := new(MockStorage)
	h := handler.NewHandler(svc, store, nil)

	r := gin.New()
	r.POST("/complaints", h.CreateComplaint)
	r.GET("/complaints/:id", h.GetComplaint)
	r.GET("/healthz", h.Healthz)
	return r, svc, store
}

// TestCreateComplaint_Success verifies the accepted path returns 201 with
// the stored record, including nullable locality fields.
func TestCreateComplaint_Success(t *testing.T) {
	// Arrange
	r, svc, _ := newTestRouter()
	country := "United States"
	svc.On("Submit", mock.Anything, "Service was terrible", mock.AnythingOfType("string")).
		Return(&models.Complaint{
			ID:        42,
			Text:      "Service was terrible",
			Status:    models.StatusOpen,
			CreatedAt: time.Now(),
			Sentiment: "negative",
			IPAddress: "8.8.8.8",
			IPCountry: &country,
		}, nil).Once()

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/complaints",
		strings.NewReader(`{"text": "Service was terrible"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusCreated, w.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.EqualValues(t, 42, body["id"])
	assert.Equal(t, "Service was terrible", body["text"])
	assert.Equal(t, "negative", body["sentiment"])
	assert.Equal(t, "United States", body["ip_country"])
	assert.Nil(t, body["ip_city"], "unresolved locality fields must be null, not omitted")
	svc.AssertExpectations(t)
}

// TestCreateComplaint_SpamGetsEmptyAck verifies the chosen spam policy:
// 202, empty body, no identifier.
func TestCreateComplaint_SpamGetsEmptyAck(t *testing.T) {
	r, svc, _ := newTestRouter()
	svc.On("Submit", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, complaint.ErrComplaintRejected).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/complaints",
		strings.NewReader(`{"text": "CHEAP PILLS"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Empty(t, w.Body.String(), "spam ack must carry no content")
}

// TestCreateComplaint_InvalidBody covers the validation failures that must
// not reach the pipeline.
func TestCreateComplaint_InvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty text", body: `{"text": ""}`},
		{name: "whitespace text", body: `{"text": "   "}`},
		{name: "missing field", body: `{}`},
		{name: "not json", body: `text=hello`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, svc, _ := newTestRouter()

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/complaints", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			svc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

// TestCreateComplaint_StoreFailure verifies persistence failures surface as
// a server error, unlike adapter degradation.
func TestCreateComplaint_StoreFailure(t *testing.T) {
	r, svc, _ := newTestRouter()
	svc.On("Submit", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("save complaint: connection refused")).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/complaints",
		strings.NewReader(`{"text": "my order never arrived"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// TestGetComplaint_Success verifies retrieval by identifier.
func TestGetComplaint_Success(t *testing.T) {
	r, _, store := newTestRouter()
	store.On("GetComplaintByID", uint(42)).
		Return(&models.Complaint{ID: 42, Text: "broken", Sentiment: "negative"}, nil).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/complaints/42", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.EqualValues(t, 42, body["id"])
	store.AssertExpectations(t)
}

// TestGetComplaint_NotFound verifies an unknown identifier is a 404, not a
// generic server error.
func TestGetComplaint_NotFound(t *testing.T) {
	r, _, store := newTestRouter()
	store.On("GetComplaintByID", uint(999)).
		Return(nil, storage.ErrComplaintNotFound).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/complaints/999", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestGetComplaint_InvalidID verifies non-integer identifiers are rejected
// before touching the store.
func TestGetComplaint_InvalidID(t *testing.T) {
	r, _, store := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/complaints/abc", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	store.AssertNotCalled(t, "GetComplaintByID", mock.Anything)
}

// TestGetComplaint_StoreFailure verifies store errors other than not-found
// are server errors.
func TestGetComplaint_StoreFailure(t *testing.T) {
	r, _, store := newTestRouter()
	store.On("GetComplaintByID", uint(1)).
		Return(nil, errors.New("connection reset")).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/complaints/1", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHealthz(t *testing.T) {
	r, _, _ := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
