package leads

import (
	"context"
	"fmt"
	"time"

	"github.com/beaconhouse/beacon/internal/domain"
	"github.com/beaconhouse/beacon/internal/pubsub"
	"github.com/beaconhouse/beacon/internal/registry"
	"github.com/google/uuid"
)

// ServiceKey registers the Service with the application registry.
var ServiceKey = registry.Key[*Service]("leads.service")

// Service turns contact requests into published leads.
type Service struct {
	publisher pubsub.Publisher
	now       func() time.Time
}

// NewService creates a new Service.
func NewService(publisher pubsub.Publisher) *Service {
	return &Service{publisher: publisher, now: time.Now}
}

// Submit validates req, assigns it an id and publishes it as a lead.
func (s *Service) Submit(ctx context.Context, req ContactRequest) (domain.Lead, error) {
	req.normalize()
	lead := domain.Lead{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Grade:       req.Grade,
		Message:     req.Message,
		SubmittedAt: s.now().UTC(),
	}
	if err := lead.Validate(); err != nil {
		return domain.Lead{}, fmt.Errorf("%w: %v", domain.ErrInvalidLead, err)
	}
	if err := pubsub.Publish(ctx, s.publisher, LeadRequested, lead); err != nil {
		return domain.Lead{}, fmt.Errorf("publish lead %s: %w", lead.ID, err)
	}
	return lead, nil
}
