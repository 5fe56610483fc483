package complaint_test

import (
	"context"

	"complaintdesk/backend/internal/analysis"
	"complaintdesk/backend/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockSentiment is a testify mock for the SentimentAnalyzer interface.
type MockSentiment struct {
	mock.Mock
}

func (m *MockSentiment) Analyze(ctx context.Context, text string) (*analysis.SentimentResult, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analysis.SentimentResult), args.Error(1)
}

// MockSpam is a testify mock for the SpamChecker interface.
type MockSpam struct {
	mock.Mock
}

func (m *MockSpam) Check(ctx context.Context, text string) (bool, error) {
	args := m.Called(ctx, text)
	return args.Bool(0), args.Error(1)
}

// MockGeo is a testify mock for the GeoLocator interface.
type MockGeo struct {
	mock.Mock
}

func (m *MockGeo) Locate(ctx context.Context, ip string) (*analysis.GeoResult, error) {
	args := m.Called(ctx, ip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analysis.GeoResult), args.Error(1)
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

// MockNotifier is a testify mock for the Notifier interface.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyComplaint(complaint *models.Complaint) error {
	args := m.Called(complaint)
	return args.Error(0)
}
