package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/sitebeam/dto"
	"github.com/sitebeam/models"
	"github.com/sitebeam/repositories"
	"github.com/sitebeam/utils"
	"gorm.io/gorm"
)

// SigningService runs the sequential co-signing flow: one recipient at a time,
// in sequence order, until every required recipient has a terminal status.
type SigningService struct {
	repo   *repositories.DocumentRepository
	outbox *OutboxService
}

// NewSigningService creates a new signing service instance
func NewSigningService() *SigningService {
	return &SigningService{
		repo:   repositories.NewDocumentRepository(),
		outbox: NewOutboxService(),
	}
}

// PickNextSigningRequest returns the next request that still needs a
// signature: the first required, non-terminal request in sequence order
// (ties broken by creation time), or nil when everyone is done.
func PickNextSigningRequest(requests []models.SigningRequest) *models.SigningRequest {
	var next *models.SigningRequest
	for i := range requests {
		r := &requests[i]
		if !r.Required || r.Status.IsTerminal() {
			continue
		}
		if next == nil {
			next = r
			continue
		}
		if r.Sequence < next.Sequence ||
			(r.Sequence == next.Sequence && r.CreatedAt.Before(next.CreatedAt)) {
			next = r
		}
	}
	return next
}

// Send routes a draft document for signature: signing requests are created
// from the party list and the first recipient is notified.
func (s *SigningService) Send(orgID, documentID string, req dto.SendDocumentRequest) (models.Document, error) {
	doc, err := s.repo.FindByID(orgID, documentID)
	if err != nil {
		return models.Document{}, err
	}
	if doc.Status != models.DocumentStatusDraft {
		return models.Document{}, fmt.Errorf("document is already %s", doc.Status)
	}

	requests := make([]models.SigningRequest, 0, len(req.Parties))
	for _, party := range req.Parties {
		required := true
		if party.Required != nil {
			required = *party.Required
		}
		requests = append(requests, models.SigningRequest{
			DocumentID:     doc.ID,
			Sequence:       party.Sequence,
			Required:       required,
			RecipientName:  party.Name,
			RecipientEmail: party.Email,
			Status:         models.SigningStatusPending,
		})
	}
	if err := s.repo.CreateSigningRequests(requests); err != nil {
		return models.Document{}, err
	}

	doc.Status = models.DocumentStatusOutForSignature
	if err := s.repo.Update(doc); err != nil {
		return models.Document{}, err
	}

	if err := s.sendNext(doc); err != nil {
		return models.Document{}, err
	}
	return s.repo.FindByID(orgID, documentID)
}

// sendNext picks the next pending recipient, mints their signing token and
// queues the notification. A nil pick means signing is finished: the document
// completes when no required request was declined, and is voided otherwise.
func (s *SigningService) sendNext(doc models.Document) error {
	requests, err := s.repo.FindSigningRequests(doc.ID)
	if err != nil {
		return err
	}

	next := PickNextSigningRequest(requests)
	if next == nil {
		return s.finish(doc, requests)
	}
	if next.Status == models.SigningStatusSent {
		return nil
	}

	token, err := utils.NewToken()
	if err != nil {
		return err
	}
	hash := utils.HashToken(token)
	now := time.Now()

	next.TokenHash = &hash
	next.Status = models.SigningStatusSent
	next.SentAt = &now
	if err := s.repo.UpdateSigningRequest(*next); err != nil {
		return err
	}

	signURL := fmt.Sprintf("%s/sign/%s", publicURL(), token)
	s.outbox.Enqueue(doc.OrgID, "signing.notify", map[string]interface{}{
		"documentId":       doc.ID,
		"signingRequestId": next.ID,
		"recipientEmail":   next.RecipientEmail,
		"signUrl":          signURL,
	})

	body := fmt.Sprintf("Hello %s,\n\n%q is ready for your signature:\n%s\n", next.RecipientName, doc.Title, signURL)
	if err := sendMail(next.RecipientEmail, "Signature requested: "+doc.Title, body); err != nil {
		log.Printf("⚠️ Failed to email signing request %s: %v", next.ID, err)
	}
	return nil
}

// finish closes out a document whose signing queue is exhausted
func (s *SigningService) finish(doc models.Document, requests []models.SigningRequest) error {
	for _, r := range requests {
		if r.Required && r.Status == models.SigningStatusDeclined {
			doc.Status = models.DocumentStatusVoided
			return s.repo.Update(doc)
		}
	}
	doc.Status = models.DocumentStatusCompleted
	if err := s.repo.Update(doc); err != nil {
		return err
	}
	s.outbox.Enqueue(doc.OrgID, "signing.completed", map[string]interface{}{
		"documentId": doc.ID,
	})
	return nil
}

// View returns the public signer-facing view for a raw signing token
func (s *SigningService) View(token string) (dto.SignViewResponse, error) {
	request, doc, err := s.lookup(token)
	if err != nil {
		return dto.SignViewResponse{}, err
	}

	resp := dto.SignViewResponse{
		DocumentTitle:  doc.Title,
		RecipientName:  request.RecipientName,
		RecipientEmail: request.RecipientEmail,
		Status:         string(request.Status),
	}
	if doc.StorageKey != "" && objectStore != nil {
		url, err := objectStore.PresignDownload(context.Background(), doc.StorageKey, 15*time.Minute)
		if err == nil {
			resp.DownloadURL = url
		}
	}
	return resp, nil
}

// Complete records a signature for the request behind the token. The submitted
// email must match the recipient on file; a mismatch reads the same as an
// unknown token so the page leaks nothing about other recipients.
func (s *SigningService) Complete(token string, req dto.SubmitSignatureRequest) error {
	request, doc, err := s.lookup(token)
	if err != nil {
		return err
	}
	if request.RecipientEmail != req.Email {
		return gorm.ErrRecordNotFound
	}
	if request.Status != models.SigningStatusSent {
		return fmt.Errorf("signing request is already %s", request.Status)
	}

	now := time.Now()
	request.Status = models.SigningStatusSigned
	request.SignedAt = &now
	if err := s.repo.UpdateSigningRequest(request); err != nil {
		return err
	}
	return s.sendNext(doc)
}

// Decline records a refusal for the request behind the token
func (s *SigningService) Decline(token string, req dto.SubmitSignatureRequest) error {
	request, doc, err := s.lookup(token)
	if err != nil {
		return err
	}
	if request.RecipientEmail != req.Email {
		return gorm.ErrRecordNotFound
	}
	if request.Status != models.SigningStatusSent {
		return fmt.Errorf("signing request is already %s", request.Status)
	}

	request.Status = models.SigningStatusDeclined
	if err := s.repo.UpdateSigningRequest(request); err != nil {
		return err
	}
	return s.sendNext(doc)
}

// Void cancels an out-for-signature document and expires its open requests
func (s *SigningService) Void(orgID, documentID string) (models.Document, error) {
	doc, err := s.repo.FindByID(orgID, documentID)
	if err != nil {
		return models.Document{}, err
	}
	if doc.Status != models.DocumentStatusOutForSignature {
		return models.Document{}, fmt.Errorf("only out-for-signature documents can be voided")
	}

	for _, r := range doc.SigningRequests {
		if r.Status.IsTerminal() {
			continue
		}
		r.Status = models.SigningStatusVoided
		if err := s.repo.UpdateSigningRequest(r); err != nil {
			return models.Document{}, err
		}
	}

	doc.Status = models.DocumentStatusVoided
	if err := s.repo.Update(doc); err != nil {
		return models.Document{}, err
	}
	return s.repo.FindByID(orgID, documentID)
}

func (s *SigningService) lookup(token string) (models.SigningRequest, models.Document, error) {
	hash := utils.HashToken(token)
	request, err := s.repo.FindSigningRequestByTokenHash(hash)
	if err != nil {
		return models.SigningRequest{}, models.Document{}, err
	}
	doc, err := s.repo.FindDocumentBySigningRequest(request)
	if err != nil {
		return models.SigningRequest{}, models.Document{}, err
	}
	return request, doc, nil
}
