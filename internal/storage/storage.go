package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"complaintdesk/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ErrComplaintNotFound is returned by GetComplaintByID when no record with
// the given identifier exists. Callers distinguish it from persistence
// failures with errors.Is.
var ErrComplaintNotFound = errors.New("complaint not found")

// Storage is the persistence boundary for enriched complaints. PostgreSQL
// owns record identity and timestamps; Redis carries the live event feed.
type Storage interface {
	SaveComplaint(complaint *models.Complaint) error
	GetComplaintByID(id uint) (*models.Complaint, error)
	ListRecentComplaints(limit int) ([]models.Complaint, error)

	PublishComplaintEvent(event models.ComplaintEvent) error
}

// Service implements Storage over GORM and go-redis.
type Service struct {
	DB            *gorm.DB
	Redis         *redis.Client
	Ctx           context.Context
	EventsChannel string
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client, eventsChannel string) *Service {
	return &Service{
		DB:            db,
		Redis:         rdb,
		Ctx:           context.Background(),
		EventsChannel: eventsChannel,
	}
}

// SaveComplaint inserts a new enriched complaint. The insert commits before
// returning; GORM fills ID and CreatedAt on the passed record.
func (s *Service) SaveComplaint(complaint *models.Complaint) error {
	if complaint.Status == "" {
		complaint.Status = models.StatusOpen
	}

	if err := s.DB.Create(complaint).Error; err != nil {
		return fmt.Errorf("save complaint: %w", err)
	}
	return nil
}

// GetComplaintByID returns the full persisted record, including the
// store-assigned fields, or ErrComplaintNotFound.
func (s *Service) GetComplaintByID(id uint) (*models.Complaint, error) {
	var complaint models.Complaint

	err := s.DB.First(&complaint, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrComplaintNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get complaint %d: %w", id, err)
	}

	return &complaint, nil
}

// ListRecentComplaints returns up to limit complaints, newest first. Used by
// the admin CLI.
func (s *Service) ListRecentComplaints(limit int) ([]models.Complaint, error) {
	var complaints []models.Complaint

	if err := s.DB.Order("created_at desc").Limit(limit).Find(&complaints).Error; err != nil {
		return nil, fmt.Errorf("list recent complaints: %w", err)
	}
	return complaints, nil
}

// PublishComplaintEvent fans the event out to feed subscribers over Redis
// Pub/Sub.
func (s *Service) PublishComplaintEvent(event models.ComplaintEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := s.Redis.Publish(s.Ctx, s.EventsChannel, payload).Err(); err != nil {
		return fmt.Errorf("publish complaint event: %w", err)
	}
	return nil
}

// SubscribeComplaintEvents subscribes to the complaint event channel. The
// caller owns the returned PubSub and must close it.
func (s *Service) SubscribeComplaintEvents() *redis.PubSub {
	return s.Redis.Subscribe(s.Ctx, s.EventsChannel)
}
