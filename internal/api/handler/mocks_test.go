package handler_test

import (
	"context"

	"complaintdesk/backend/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockComplaintService is a testify mock for the handler.ComplaintService
// interface.
type MockComplaintService struct {
	mock.Mock
}

func (m *MockComplaintService) Submit(ctx context.Context, text, ip string) (*models.Complaint, error) {
	args := m.Called(ctx, text, ip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Complaint), args.Error(1)
}

// MockStorage is a testify mock for the storage.Storage interface.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) SaveComplaint(complaint *models.Complaint) error {
	args := m.Called(complaint)
	return args.Error(0)
}

func (m *MockStorage) GetComplaintByID(id uint) (*models.Complaint, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Complaint), args.Error(1)
}

func (m *MockStorage) ListRecentComplaints(limit int) ([]models.Complaint, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *MockStorage) PublishComplaintEvent(event models.ComplaintEvent) error {
	args := m.Called(event)
	return args.Error(0)
}
