package services

import (
	"encoding/json"
	"log"
	"time"

	"github.com/sitebeam/models"
	"github.com/sitebeam/repositories"
)

// OutboxService writes background jobs for an external worker to consume
type OutboxService struct {
	repo *repositories.OutboxRepository
}

// NewOutboxService creates a new outbox service instance
func NewOutboxService() *OutboxService {
	return &OutboxService{repo: repositories.NewOutboxRepository()}
}

// Enqueue records a pending job. Failures are logged, never surfaced: the
// request that triggered the job must not fail because the outbox write did.
func (s *OutboxService) Enqueue(orgID, kind string, payload map[string]interface{}) {
	raw, err := json.Marshal(payload)
	if err != nil {
		log.Printf("⚠️ Failed to marshal outbox payload for %s: %v", kind, err)
		return
	}

	job := models.OutboxJob{
		OrgID:    orgID,
		Kind:     kind,
		Payload:  raw,
		Status:   models.OutboxStatusPending,
		RunAfter: time.Now(),
	}
	if _, err := s.repo.Create(job); err != nil {
		log.Printf("⚠️ Failed to enqueue outbox job %s: %v", kind, err)
	}
}

// Requeue resets a stuck job to pending with a fresh run-after time
func (s *OutboxService) Requeue(id string) (models.OutboxJob, error) {
	if _, err := s.repo.FindByID(id); err != nil {
		return models.OutboxJob{}, err
	}
	if err := s.repo.Requeue(id, time.Now()); err != nil {
		return models.OutboxJob{}, err
	}
	return s.repo.FindByID(id)
}
