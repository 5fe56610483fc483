// Package complaint provides the core logic for handling user complaints:
// enriching a submission through the external lookups and persisting the
// result behind the spam gate.
package complaint

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"complaintdesk/backend/internal/analysis"
	"complaintdesk/backend/internal/models"
	"complaintdesk/backend/internal/storage"

	"github.com/google/uuid"
)

// ErrComplaintRejected is returned by Submit when the spam check flagged the
// submission. No record exists and no identifier was assigned.
var ErrComplaintRejected = errors.New("complaint rejected")

// SentimentAnalyzer classifies complaint text. A non-nil error means the
// lookup is unavailable.
type SentimentAnalyzer interface {
	Analyze(ctx context.Context, text string) (*analysis.SentimentResult, error)
}

// SpamChecker returns a spam verdict for complaint text.
type SpamChecker interface {
	Check(ctx context.Context, text string) (bool, error)
}

// GeoLocator resolves locality fields for a submitter address.
type GeoLocator interface {
	Locate(ctx context.Context, ip string) (*analysis.GeoResult, error)
}

// Notifier alerts the ops channel about a stored complaint. Best effort.
type Notifier interface {
	NotifyComplaint(complaint *models.Complaint) error
}

// Service handles the business logic for complaints.
type Service struct {
	Sentiment SentimentAnalyzer
	Spam      SpamChecker
	Geo       GeoLocator
	Storage   storage.Storage
	Notifier  Notifier
}

// NewService creates a new complaint service. The notifier is optional; set
// it with SetNotifier when ops alerts are configured.
func NewService(sentiment SentimentAnalyzer, spam SpamChecker, geo GeoLocator, s storage.Storage) *Service {
	return &Service{
		Sentiment: sentiment,
		Spam:      spam,
		Geo:       geo,
		Storage:   s,
	}
}

// SetNotifier attaches an ops notifier for hostile complaints.
func (s *Service) SetNotifier(n Notifier) {
	s.Notifier = n
}

// Enrich runs the three lookups for one submission and applies the
// degradation policy. The lookups have no data dependency on each other, so
// they run concurrently and the call is bounded by the slowest adapter.
//
// A true second return value means the submission was classified as spam and
// must be discarded; the returned complaint is nil in that case. Otherwise
// the complaint carries the submitted text, the submitter address, a
// sentiment label (SentimentUnknown when that lookup degraded), and the
// locality fields (nil when geolocation degraded). A degraded spam check
// fails open: the submission is treated as not spam.
//
// Beyond the adapter calls Enrich performs no I/O; every degradation is
// recorded as a structured log event, never surfaced as an error.
func (s *Service) Enrich(ctx context.Context, text, ip string) (*models.Complaint, bool) {
	requestID := uuid.New().String()

	var (
		wg sync.WaitGroup

		sentiment    *analysis.SentimentResult
		sentimentErr error
		isSpam       bool
		spamErr      error
		geo          *analysis.GeoResult
		geoErr       error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		isSpam, spamErr = s.Spam.Check(ctx, text)
	}()
	go func() {
		defer wg.Done()
		sentiment, sentimentErr = s.Sentiment.Analyze(ctx, text)
	}()
	go func() {
		defer wg.Done()
		geo, geoErr = s.Geo.Locate(ctx, ip)
	}()
	wg.Wait()

	if spamErr != nil {
		slog.Warn("spam lookup degraded, failing open",
			"request_id", requestID, "error", spamErr)
		isSpam = false
	}
	if isSpam {
		slog.Info("complaint rejected as spam", "request_id", requestID)
		return nil, true
	}

	complaint := &models.Complaint{
		Text:      text,
		IPAddress: ip,
		Sentiment: models.SentimentUnknown,
	}

	if sentimentErr != nil {
		slog.Warn("sentiment lookup degraded",
			"request_id", requestID, "error", sentimentErr)
	} else {
		complaint.Sentiment = sentiment.Label
		complaint.Confidence = sentiment.Confidence
	}

	if geoErr != nil {
		slog.Warn("geolocation lookup degraded",
			"request_id", requestID, "ip", ip, "error", geoErr)
	} else {
		complaint.IPCountry = &geo.Country
		complaint.IPRegion = &geo.Region
		complaint.IPCity = &geo.City
		complaint.IPISP = &geo.ISP
	}

	return complaint, false
}

// Submit enriches a submission and, unless it was flagged as spam, persists
// it. The stored record is re-read by its new identifier before returning,
// so callers always see exactly what a later retrieval will return. A stored
// complaint is also announced on the event feed and, when it is hostile, to
// the ops notifier; failures on those two paths are logged and swallowed.
func (s *Service) Submit(ctx context.Context, text, ip string) (*models.Complaint, error) {
	enriched, rejected := s.Enrich(ctx, text, ip)
	if rejected {
		return nil, ErrComplaintRejected
	}

	if err := s.Storage.SaveComplaint(enriched); err != nil {
		return nil, err
	}

	stored, err := s.Storage.GetComplaintByID(enriched.ID)
	if err != nil {
		return nil, err
	}

	if err := s.Storage.PublishComplaintEvent(models.ComplaintEvent{
		ComplaintID: stored.ID,
		Sentiment:   stored.Sentiment,
		IPCountry:   stored.IPCountry,
		CreatedAt:   stored.CreatedAt,
	}); err != nil {
		slog.Warn("complaint event publish failed",
			"complaint_id", stored.ID, "error", err)
	}

	if s.Notifier != nil && stored.Sentiment == "negative" {
		if err := s.Notifier.NotifyComplaint(stored); err != nil {
			slog.Warn("ops notification failed",
				"complaint_id", stored.ID, "error", err)
		}
	}

	return stored, nil
}
